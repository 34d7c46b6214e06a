package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

func scheduled(id string, at time.Time) *models.ScheduledPost {
	return &models.ScheduledPost{
		ID:            id,
		Platform:      models.PlatformTwitter,
		ScheduledTime: at,
		Post:          models.Post{ID: "post-" + id, Text: "hello"},
	}
}

func TestCalendar_AddAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarRepository()

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(ctx, scheduled("a", base)))
	require.NoError(t, repo.Add(ctx, scheduled("b", base.Add(24*time.Hour))))
	require.NoError(t, repo.Add(ctx, scheduled("c", base.Add(72*time.Hour))))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, models.ScheduleStatusPending, all[0].Status)

	r := &models.DateRange{Start: base, End: base.Add(24 * time.Hour)}
	inRange, err := repo.List(ctx, r)
	require.NoError(t, err)
	require.Len(t, inRange, 2)
	assert.Equal(t, "b", inRange[1].ID)
}

func TestCalendar_AddRejectsDuplicateAndEmptyID(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarRepository()

	require.NoError(t, repo.Add(ctx, scheduled("a", time.Now())))
	assert.Error(t, repo.Add(ctx, scheduled("a", time.Now())))
	assert.Error(t, repo.Add(ctx, &models.ScheduledPost{}))
}

func TestCalendar_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarRepository()
	require.NoError(t, repo.Add(ctx, scheduled("a", time.Now())))

	list, err := repo.List(ctx, nil)
	require.NoError(t, err)
	list[0].Status = models.ScheduleStatusPosted

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusPending, got.Status)
}

func TestCalendar_DeleteCountsActualRemovals(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarRepository()
	require.NoError(t, repo.Add(ctx, scheduled("a", time.Now())))
	require.NoError(t, repo.Add(ctx, scheduled("b", time.Now())))

	deleted, err := repo.Delete(ctx, []string{"a", "missing"})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = repo.Delete(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)

	all, _ := repo.List(ctx, nil)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestCalendar_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarRepository()
	require.NoError(t, repo.Add(ctx, scheduled("a", time.Now())))

	require.NoError(t, repo.UpdateStatus(ctx, "a", models.ScheduleStatusFailed, "boom"))
	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusFailed, got.Status)
	assert.Equal(t, "boom", got.Error)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "nope", models.ScheduleStatusPosted, ""), ErrScheduledPostNotFound)
	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrScheduledPostNotFound)
}

func TestCalendar_PruneBeforeKeepsPending(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarRepository()
	old := time.Now().Add(-48 * time.Hour)

	require.NoError(t, repo.Add(ctx, scheduled("pending", old)))
	require.NoError(t, repo.Add(ctx, scheduled("posted", old)))
	require.NoError(t, repo.Add(ctx, scheduled("recent", time.Now())))
	require.NoError(t, repo.UpdateStatus(ctx, "posted", models.ScheduleStatusPosted, ""))
	require.NoError(t, repo.UpdateStatus(ctx, "recent", models.ScheduleStatusPosted, ""))

	pruned, err := repo.PruneBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	all, _ := repo.List(ctx, nil)
	ids := []string{all[0].ID, all[1].ID}
	assert.ElementsMatch(t, []string{"pending", "recent"}, ids)
}

func TestCalendar_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Add(ctx, scheduled(fmt.Sprintf("post-%d", i), time.Now())))
			_, _ = repo.List(ctx, nil)
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
