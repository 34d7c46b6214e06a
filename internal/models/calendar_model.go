package models

import "time"

type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "pending"
	ScheduleStatusPosted    ScheduleStatus = "posted"
	ScheduleStatusFailed    ScheduleStatus = "failed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

type ScheduledPost struct {
	ID            string         `json:"id"`
	Post          Post           `json:"post"`
	Platform      Platform       `json:"platform"`
	ScheduledTime time.Time      `json:"scheduled_time"`
	Status        ScheduleStatus `json:"status"`
	Error         string         `json:"error,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains treats both bounds as inclusive.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
