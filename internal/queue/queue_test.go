package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/repository"
	"github.com/maheshrc27/postflow-tools/internal/service"
)

type fakeClient struct {
	task *asynq.Task
	opts []asynq.Option
	err  error
}

func (f *fakeClient) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.task = task
	f.opts = opts
	return &asynq.TaskInfo{}, f.err
}

func TestEnqueuer_EnqueueScheduledPost(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	client := &fakeClient{}
	e := &Enqueuer{client: client, now: func() time.Time { return now }}

	require.NoError(t, e.EnqueueScheduledPost(context.Background(), "sp1", now.Add(2*time.Hour)))

	assert.Equal(t, TaskTypeDeliverScheduledPost, client.task.Type())
	var payload DeliverScheduledPostPayload
	require.NoError(t, json.Unmarshal(client.task.Payload(), &payload))
	assert.Equal(t, "sp1", payload.ScheduledPostID)

	var delay time.Duration
	for _, opt := range client.opts {
		if opt.Type() == asynq.ProcessInOpt {
			delay = opt.Value().(time.Duration)
		}
	}
	assert.Equal(t, 2*time.Hour, delay)
}

func TestEnqueuer_PastTimeRunsImmediately(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	client := &fakeClient{}
	e := &Enqueuer{client: client, now: func() time.Time { return now }}

	require.NoError(t, e.EnqueueScheduledPost(context.Background(), "sp1", now.Add(-time.Hour)))

	for _, opt := range client.opts {
		if opt.Type() == asynq.ProcessInOpt {
			assert.Equal(t, time.Duration(0), opt.Value().(time.Duration))
		}
	}
}

func TestEnqueuer_ClientError(t *testing.T) {
	e := &Enqueuer{client: &fakeClient{err: errors.New("redis down")}, now: time.Now}
	assert.Error(t, e.EnqueueScheduledPost(context.Background(), "sp1", time.Now()))
}

type fakeDeliverer struct {
	service.PostService
	result *models.PostResult
	err    error
	got    string
}

func (f *fakeDeliverer) DeliverScheduled(ctx context.Context, id string) (*models.PostResult, error) {
	f.got = id
	return f.result, f.err
}

func TestHandleDeliverScheduledPostTask(t *testing.T) {
	task, err := NewDeliveryTask("sp9")
	require.NoError(t, err)

	tests := []struct {
		name    string
		result  *models.PostResult
		err     error
		wantErr bool
	}{
		{"delivered", &models.PostResult{Success: true}, nil, false},
		{"platform failure is not retried", &models.PostResult{Success: false, Error: "boom"}, nil, false},
		{"already handled", nil, service.ErrNotPending, false},
		{"deleted", nil, repository.ErrScheduledPostNotFound, false},
		{"unexpected", nil, errors.New("calendar unavailable"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDeliverer{result: tt.result, err: tt.err}
			err := NewQueue(d).HandleDeliverScheduledPostTask(context.Background(), task)

			assert.Equal(t, "sp9", d.got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandleDeliverScheduledPostTask_BadPayload(t *testing.T) {
	task := asynq.NewTask(TaskTypeDeliverScheduledPost, []byte("not json"))

	err := NewQueue(&fakeDeliverer{}).HandleDeliverScheduledPostTask(context.Background(), task)

	assert.ErrorIs(t, err, asynq.SkipRetry)
}
