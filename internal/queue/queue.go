package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer schedules one delivery task per calendar entry.
type Enqueuer struct {
	client taskEnqueuer
	now    func() time.Time
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client, now: time.Now}
}

func NewDeliveryTask(scheduledPostID string) (*asynq.Task, error) {
	payload, err := json.Marshal(DeliverScheduledPostPayload{ScheduledPostID: scheduledPostID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeDeliverScheduledPost, payload, asynq.MaxRetry(0)), nil
}

func (e *Enqueuer) EnqueueScheduledPost(ctx context.Context, scheduledPostID string, at time.Time) error {
	task, err := NewDeliveryTask(scheduledPostID)
	if err != nil {
		return err
	}

	delay := at.Sub(e.now())
	if delay < 0 {
		delay = 0
	}

	if _, err := e.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.TaskID(scheduledPostID)); err != nil {
		slog.Info(err.Error())
		return err
	}

	slog.Info("delivery task scheduled", "scheduled_post_id", scheduledPostID, "delay", delay)
	return nil
}
