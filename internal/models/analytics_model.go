package models

import "time"

const (
	MetricImpressions = "impressions"
	MetricEngagement  = "engagement"
	MetricReach       = "reach"
	MetricClicks      = "clicks"
	MetricFollowers   = "followers"
	MetricLikes       = "likes"
	MetricComments    = "comments"
	MetricShares      = "shares"
)

type AnalyticsQuery struct {
	MetricType string
	DateRange  *DateRange
	PostIDs    []string
}

type Analytics struct {
	Platform  Platform         `json:"platform"`
	Metrics   map[string]int64 `json:"metrics"`
	DateRange *DateRange       `json:"date_range,omitempty"`
	PostIDs   []string         `json:"post_ids,omitempty"`
	FetchedAt time.Time        `json:"fetched_at"`
}

type AggregatedAnalytics struct {
	TotalImpressions int64   `json:"total_impressions"`
	TotalEngagement  int64   `json:"total_engagement"`
	EngagementRate   float64 `json:"engagement_rate"`
}

// Aggregate sums impressions and engagement over every analytics entry.
// EngagementRate is a fraction, not a percentage.
func Aggregate(entries []*Analytics) AggregatedAnalytics {
	var agg AggregatedAnalytics
	for _, a := range entries {
		if a == nil {
			continue
		}
		agg.TotalImpressions += a.Metrics[MetricImpressions]
		agg.TotalEngagement += a.Metrics[MetricEngagement]
	}
	if agg.TotalImpressions > 0 {
		agg.EngagementRate = float64(agg.TotalEngagement) / float64(agg.TotalImpressions)
	}
	return agg
}

// CalculateEngagementRate returns engagement as a percentage of impressions.
func CalculateEngagementRate(impressions, engagement int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(engagement) / float64(impressions) * 100
}

type TrendingTopic struct {
	Topic    string   `json:"topic"`
	Hashtag  string   `json:"hashtag,omitempty"`
	Volume   int64    `json:"volume,omitempty"`
	Platform Platform `json:"platform"`
	Location string   `json:"location,omitempty"`
	Category string   `json:"category,omitempty"`
}

type HashtagRecommendation struct {
	Hashtag          string  `json:"hashtag"`
	RelevanceScore   float64 `json:"relevance_score"`
	CompetitionLevel string  `json:"competition_level"`
	Trending         bool    `json:"trending"`
}
