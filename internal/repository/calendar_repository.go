package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

var ErrScheduledPostNotFound = errors.New("scheduled post not found")

type CalendarRepository interface {
	Add(ctx context.Context, sp *models.ScheduledPost) error
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, error)
	List(ctx context.Context, dateRange *models.DateRange) ([]*models.ScheduledPost, error)
	Delete(ctx context.Context, ids []string) (int, error)
	UpdateStatus(ctx context.Context, id string, status models.ScheduleStatus, errMsg string) error
	PruneBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// calendarRepository keeps scheduled posts in memory for the lifetime of the
// process. Entries are kept in insertion order.
type calendarRepository struct {
	mu    sync.RWMutex
	posts []*models.ScheduledPost
	now   func() time.Time
}

func NewCalendarRepository() CalendarRepository {
	return &calendarRepository{now: time.Now}
}

func (r *calendarRepository) Add(ctx context.Context, sp *models.ScheduledPost) error {
	if sp == nil || sp.ID == "" {
		err := errors.New("scheduled post must have an id")
		slog.Info(err.Error())
		return err
	}

	now := r.now().UTC()
	entry := *sp
	if entry.Status == "" {
		entry.Status = models.ScheduleStatusPending
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.posts {
		if existing.ID == entry.ID {
			return fmt.Errorf("scheduled post %s already exists", entry.ID)
		}
	}
	r.posts = append(r.posts, &entry)

	return nil
}

func (r *calendarRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sp := range r.posts {
		if sp.ID == id {
			c := *sp
			return &c, nil
		}
	}

	return nil, ErrScheduledPostNotFound
}

// List returns copies of every entry, or only those whose scheduled time falls
// within dateRange (inclusive) when it is non-nil.
func (r *calendarRepository) List(ctx context.Context, dateRange *models.DateRange) ([]*models.ScheduledPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.ScheduledPost, 0, len(r.posts))
	for _, sp := range r.posts {
		if dateRange != nil && !dateRange.Contains(sp.ScheduledTime) {
			continue
		}
		c := *sp
		result = append(result, &c)
	}

	return result, nil
}

// Delete removes the entries with the given ids and reports how many were
// actually removed.
func (r *calendarRepository) Delete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	remove := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]*models.ScheduledPost, 0, len(r.posts))
	for _, sp := range r.posts {
		if _, ok := remove[sp.ID]; ok {
			continue
		}
		kept = append(kept, sp)
	}

	deleted := len(r.posts) - len(kept)
	r.posts = kept

	return deleted, nil
}

func (r *calendarRepository) UpdateStatus(ctx context.Context, id string, status models.ScheduleStatus, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sp := range r.posts {
		if sp.ID == id {
			sp.Status = status
			sp.Error = errMsg
			sp.UpdatedAt = r.now().UTC()
			return nil
		}
	}

	slog.Info(ErrScheduledPostNotFound.Error(), "id", id)
	return ErrScheduledPostNotFound
}

// PruneBefore drops settled entries (anything but pending) scheduled before
// cutoff.
func (r *calendarRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]*models.ScheduledPost, 0, len(r.posts))
	for _, sp := range r.posts {
		if sp.Status != models.ScheduleStatusPending && sp.ScheduledTime.Before(cutoff) {
			continue
		}
		kept = append(kept, sp)
	}

	pruned := len(r.posts) - len(kept)
	r.posts = kept

	return pruned, nil
}
