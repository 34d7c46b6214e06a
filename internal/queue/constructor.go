package queue

import (
	"github.com/maheshrc27/postflow-tools/internal/service"
)

type Queue struct {
	ps service.PostService
}

func NewQueue(ps service.PostService) *Queue {
	return &Queue{ps: ps}
}

const TaskTypeDeliverScheduledPost = "calendar:deliver"

type DeliverScheduledPostPayload struct {
	ScheduledPostID string `json:"scheduled_post_id"`
}
