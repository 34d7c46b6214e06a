package publisher

import (
	"context"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

// Nop discards events. The app falls back to it when RABBITMQ_URL is unset.
type Nop struct{}

func (Nop) PublishDispatch(ctx context.Context, event *models.DispatchEvent) error {
	return nil
}

func (Nop) Close() error {
	return nil
}
