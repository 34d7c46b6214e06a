package transfer

import (
	"time"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

type MediaArgs struct {
	Type    string `json:"type" validate:"required,oneof=image video"`
	Path    string `json:"path" validate:"required"`
	AltText string `json:"alt_text"`
}

type ContentArgs struct {
	Text     string      `json:"text" validate:"required"`
	Media    []MediaArgs `json:"media" validate:"omitempty,dive"`
	Hashtags []string    `json:"hashtags"`
	Mentions []string    `json:"mentions"`
}

type CreatePostArgs struct {
	Platforms      []string    `json:"platforms" validate:"required,min=1,dive,required"`
	Content        ContentArgs `json:"content"`
	Schedule       string      `json:"schedule"`
	OptimizeTiming bool        `json:"optimize_timing"`
}

type SchedulePostsArgs struct {
	Posts           []CreatePostArgs `json:"posts" validate:"required,min=1,dive"`
	OptimizeSpacing bool             `json:"optimize_spacing"`
	Strategy        string           `json:"strategy" validate:"omitempty,oneof=even_spacing peak_times"`
}

type DateRangeArgs struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type GetAnalyticsArgs struct {
	Platforms  []string       `json:"platforms" validate:"required,min=1"`
	MetricType string         `json:"metric_type" validate:"omitempty,oneof=engagement reach impressions clicks conversions"`
	DateRange  *DateRangeArgs `json:"date_range"`
	PostIDs    []string       `json:"post_ids"`
}

type GenerateHashtagsArgs struct {
	Content         string `json:"content" validate:"required"`
	Platform        string `json:"platform"`
	MaxHashtags     int    `json:"max_hashtags" validate:"omitempty,min=1,max=30"`
	IncludeTrending *bool  `json:"include_trending"`
	Analyze         bool   `json:"analyze"`
}

type OptimizeMediaArgs struct {
	MediaPath string   `json:"media_path" validate:"required"`
	Platforms []string `json:"platforms" validate:"required,min=1"`
	MediaType string   `json:"media_type" validate:"required,oneof=image video"`
}

type GetTrendingArgs struct {
	Platforms []string `json:"platforms" validate:"required,min=1"`
	Category  string   `json:"category"`
	Location  string   `json:"location"`
}

type ManageCalendarArgs struct {
	Action    string         `json:"action" validate:"required,oneof=view update delete reschedule"`
	DateRange *DateRangeArgs `json:"date_range"`
	PostIDs   []string       `json:"post_ids"`
}

type ContentSummary struct {
	Text       string   `json:"text"`
	Hashtags   []string `json:"hashtags"`
	MediaCount int      `json:"media_count"`
}

type CreatePostResponse struct {
	Results map[models.Platform]*models.PostResult `json:"results"`
	Content ContentSummary                         `json:"content"`
	Error   string                                 `json:"error,omitempty"`
}

type SchedulePostsResponse struct {
	ScheduledCount int                   `json:"scheduled_count"`
	Results        []*CreatePostResponse `json:"results"`
}

type AnalyticsResponse struct {
	Platforms  map[models.Platform]any    `json:"platforms"`
	Aggregated models.AggregatedAnalytics `json:"aggregated"`
}

type HashtagsResponse struct {
	Hashtags        []string                       `json:"hashtags"`
	Count           int                            `json:"count"`
	Platform        string                         `json:"platform"`
	Recommendations []models.HashtagRecommendation `json:"recommendations,omitempty"`
}

type MediaOutcome struct {
	Path    string `json:"path,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type OptimizeMediaResponse struct {
	OriginalPath string                  `json:"original_path"`
	Optimized    map[string]MediaOutcome `json:"optimized"`
}

type TrendingTopics struct {
	TrendingTopics []models.TrendingTopic `json:"trending_topics"`
}

type TrendingResponse struct {
	Platforms map[models.Platform]any `json:"platforms"`
	Timestamp time.Time               `json:"timestamp"`
}

type ErrorEntry struct {
	Error string `json:"error"`
}

type CalendarEntry struct {
	ID            string                `json:"id"`
	Platform      models.Platform       `json:"platform"`
	ScheduledTime time.Time             `json:"scheduled_time"`
	Status        models.ScheduleStatus `json:"status"`
	Content       string                `json:"content"`
	MediaCount    int                   `json:"media_count"`
	Hashtags      []string              `json:"hashtags"`
}

type CalendarViewResponse struct {
	ScheduledPosts []CalendarEntry `json:"scheduled_posts"`
	TotalCount     int             `json:"total_count"`
}

type CalendarActionResponse struct {
	Action       string `json:"action"`
	DeletedCount *int   `json:"deleted_count,omitempty"`
	Message      string `json:"message,omitempty"`
	Status       string `json:"status,omitempty"`
}

type ToolError struct {
	Error string `json:"error"`
	Tool  string `json:"tool"`
}
