package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	cfg "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

const LINKEDIN_API_URL = "https://api.linkedin.com"

var linkedinHeaders = map[string]string{"X-Restli-Protocol-Version": "2.0.0"}

type linkedinService struct {
	api *apiClient
}

func NewLinkedInService(c cfg.LinkedIn, timeout time.Duration) Platform {
	return newLinkedInService(bearerClient(c.AccessToken, timeout), LINKEDIN_API_URL)
}

func newLinkedInService(httpClient *http.Client, baseURL string) *linkedinService {
	return &linkedinService{
		api: &apiClient{platform: models.PlatformLinkedIn, http: httpClient, baseURL: baseURL},
	}
}

// bearerClient wraps a long-lived access token in an oauth2 transport.
func bearerClient(accessToken string, timeout time.Duration) *http.Client {
	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	return withTimeout(oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})), timeout)
}

func (s *linkedinService) Name() models.Platform {
	return models.PlatformLinkedIn
}

func (s *linkedinService) author(ctx context.Context) (string, error) {
	var info transfer.LinkedInUserInfo
	if _, err := s.api.do(ctx, http.MethodGet, "/v2/userinfo", nil, &info, nil); err != nil {
		return "", fmt.Errorf("failed to fetch LinkedIn profile: %w", err)
	}
	if info.Sub == "" {
		return "", fmt.Errorf("no member ID returned from LinkedIn")
	}
	return "urn:li:person:" + info.Sub, nil
}

func (s *linkedinService) Post(ctx context.Context, post *models.Post) (*models.PostResult, error) {
	author, err := s.author(ctx)
	if err != nil {
		return nil, err
	}

	if len(post.Media) > 0 {
		slog.Info("linkedin shares are published as text only", "media_count", len(post.Media))
	}

	var ugc transfer.LinkedInUGCPost
	ugc.Author = author
	ugc.LifecycleState = "PUBLISHED"
	ugc.SpecificContent.ShareContent = transfer.LinkedInShareContent{
		ShareCommentary:    transfer.LinkedInShareCommentary{Text: FormatCaption(post, models.PlatformLinkedIn)},
		ShareMediaCategory: "NONE",
	}
	ugc.Visibility.MemberNetworkVisibility = "PUBLIC"

	var resp struct {
		ID string `json:"id"`
	}
	headers, err := s.api.do(ctx, http.MethodPost, "/v2/ugcPosts", ugc, &resp, linkedinHeaders)
	if err != nil {
		return nil, fmt.Errorf("failed to create LinkedIn post: %w", err)
	}

	id := headers.Get("X-RestLi-Id")
	if id == "" {
		id = resp.ID
	}
	if id == "" {
		return nil, fmt.Errorf("no post ID returned from LinkedIn")
	}

	return &models.PostResult{
		Success:   true,
		Platform:  models.PlatformLinkedIn,
		PostID:    id,
		URL:       "https://www.linkedin.com/feed/update/" + id,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *linkedinService) Analytics(ctx context.Context, query models.AnalyticsQuery) (*models.Analytics, error) {
	metrics := map[string]int64{
		models.MetricImpressions: 0,
		models.MetricEngagement:  0,
	}

	for _, id := range query.PostIDs {
		var actions transfer.LinkedInSocialActions
		if _, err := s.api.do(ctx, http.MethodGet, "/v2/socialActions/"+url.PathEscape(id), nil, &actions, linkedinHeaders); err != nil {
			return nil, fmt.Errorf("failed to fetch LinkedIn social actions for %s: %w", id, err)
		}
		likes := actions.LikesSummary.TotalLikes
		comments := actions.CommentsSummary.AggregatedTotalComments
		metrics[models.MetricLikes] += likes
		metrics[models.MetricComments] += comments
		metrics[models.MetricEngagement] += likes + comments
	}

	return &models.Analytics{
		Platform:  models.PlatformLinkedIn,
		Metrics:   metrics,
		DateRange: query.DateRange,
		PostIDs:   query.PostIDs,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Trending is always empty: LinkedIn has no public trending API.
func (s *linkedinService) Trending(ctx context.Context, category, location string) ([]models.TrendingTopic, error) {
	return []models.TrendingTopic{}, nil
}

func (s *linkedinService) Schedule(ctx context.Context, post *models.Post, at time.Time) (*models.PostResult, error) {
	return scheduleAck(models.PlatformLinkedIn, at), nil
}

func (s *linkedinService) Delete(ctx context.Context, postID string) error {
	if _, err := s.api.do(ctx, http.MethodDelete, "/v2/ugcPosts/"+url.PathEscape(postID), nil, nil, linkedinHeaders); err != nil {
		return fmt.Errorf("failed to delete LinkedIn post %s: %w", postID, err)
	}
	return nil
}

func (s *linkedinService) Get(ctx context.Context, postID string) (*models.RemotePost, error) {
	var raw map[string]any
	if _, err := s.api.do(ctx, http.MethodGet, "/v2/ugcPosts/"+url.PathEscape(postID), nil, &raw, linkedinHeaders); err != nil {
		return nil, fmt.Errorf("failed to fetch LinkedIn post %s: %w", postID, err)
	}

	return &models.RemotePost{
		ID:       postID,
		Platform: models.PlatformLinkedIn,
		URL:      "https://www.linkedin.com/feed/update/" + postID,
		Raw:      raw,
	}, nil
}
