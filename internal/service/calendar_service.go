package service

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/repository"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

const calendarPreviewLength = 100

type CalendarService interface {
	Manage(ctx context.Context, args transfer.ManageCalendarArgs) (any, error)
}

type calendarService struct {
	calendar repository.CalendarRepository
}

func NewCalendarService(calendar repository.CalendarRepository) CalendarService {
	return &calendarService{calendar: calendar}
}

func (s *calendarService) Manage(ctx context.Context, args transfer.ManageCalendarArgs) (any, error) {
	switch args.Action {
	case "view":
		return s.view(ctx, args.DateRange)
	case "delete":
		deleted, err := s.calendar.Delete(ctx, args.PostIDs)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		return &transfer.CalendarActionResponse{Action: "delete", DeletedCount: &deleted}, nil
	case "reschedule":
		return &transfer.CalendarActionResponse{
			Action:  "reschedule",
			Message: "Rescheduling functionality to be implemented",
		}, nil
	default:
		return &transfer.CalendarActionResponse{Action: args.Action, Status: "completed"}, nil
	}
}

func (s *calendarService) view(ctx context.Context, rangeArgs *transfer.DateRangeArgs) (*transfer.CalendarViewResponse, error) {
	dateRange, err := ParseDateRange(rangeArgs)
	if err != nil {
		return nil, validationErrorf("%s", err)
	}

	posts, err := s.calendar.List(ctx, dateRange)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	entries := make([]transfer.CalendarEntry, 0, len(posts))
	for _, sp := range posts {
		entries = append(entries, calendarEntry(sp))
	}

	return &transfer.CalendarViewResponse{ScheduledPosts: entries, TotalCount: len(entries)}, nil
}

func calendarEntry(sp *models.ScheduledPost) transfer.CalendarEntry {
	hashtags := sp.Post.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return transfer.CalendarEntry{
		ID:            sp.ID,
		Platform:      sp.Platform,
		ScheduledTime: sp.ScheduledTime,
		Status:        sp.Status,
		Content:       truncateText(sp.Post.Text, calendarPreviewLength) + "...",
		MediaCount:    len(sp.Post.Media),
		Hashtags:      hashtags,
	}
}
