package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/maheshrc27/postflow-tools/internal/repository"
	"github.com/maheshrc27/postflow-tools/internal/service"
)

func (q *Queue) HandleDeliverScheduledPostTask(ctx context.Context, task *asynq.Task) error {
	var payload DeliverScheduledPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
	}

	result, err := q.ps.DeliverScheduled(ctx, payload.ScheduledPostID)
	switch {
	case errors.Is(err, service.ErrNotPending), errors.Is(err, repository.ErrScheduledPostNotFound):
		// Deleted or already handled since it was enqueued.
		slog.Info("skipping scheduled post", "scheduled_post_id", payload.ScheduledPostID, "reason", err)
		return nil
	case err != nil:
		return err
	}

	if !result.Success {
		slog.Info("scheduled post failed", "scheduled_post_id", payload.ScheduledPostID, "platform", result.Platform, "error", result.Error)
	}

	return nil
}
