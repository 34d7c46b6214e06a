package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	twitterscraper "github.com/n0madic/twitter-scraper"

	cfg "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

const (
	TWITTER_API_URL    = "https://api.twitter.com"
	TWITTER_UPLOAD_URL = "https://upload.twitter.com/1.1/media/upload.json"
	maxTweetImages     = 4
	maxTrendingTopics  = 20
)

type twitterService struct {
	api       *apiClient
	uploadURL string
	trends    func(ctx context.Context) ([]string, error)
}

func NewTwitterService(c cfg.Twitter, timeout time.Duration) Platform {
	config := oauth1.NewConfig(c.APIKey, c.APISecret)
	token := oauth1.NewToken(c.AccessToken, c.AccessSecret)
	httpClient := withTimeout(config.Client(oauth1.NoContext, token), timeout)

	return newTwitterService(httpClient, TWITTER_API_URL, TWITTER_UPLOAD_URL, scrapeTrends(timeout))
}

func newTwitterService(httpClient *http.Client, apiURL, uploadURL string, trends func(ctx context.Context) ([]string, error)) *twitterService {
	return &twitterService{
		api:       &apiClient{platform: models.PlatformTwitter, http: httpClient, baseURL: apiURL},
		uploadURL: uploadURL,
		trends:    trends,
	}
}

func scrapeTrends(timeout time.Duration) func(ctx context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		scraper := twitterscraper.New()
		if timeout > 0 {
			scraper = scraper.WithClientTimeout(timeout)
		}
		return trendsWithContext(ctx, scraper.GetTrends)
	}
}

// trendsWithContext returns as soon as ctx is done. The scraper has no
// context support, so fetch keeps running until its client timeout.
func trendsWithContext(ctx context.Context, fetch func() ([]string, error)) ([]string, error) {
	type outcome struct {
		names []string
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		names, err := fetch()
		done <- outcome{names, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		return o.names, o.err
	}
}

func (s *twitterService) Name() models.Platform {
	return models.PlatformTwitter
}

func (s *twitterService) Post(ctx context.Context, post *models.Post) (*models.PostResult, error) {
	var mediaIDs []string
	for _, media := range post.Media {
		if media.Type != models.MediaTypeImage {
			slog.Info("skipping non-image media for twitter", "path", media.Path, "type", media.Type)
			continue
		}
		if len(mediaIDs) == maxTweetImages {
			break
		}

		id, err := s.uploadMedia(ctx, media.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to upload media to Twitter: %w", err)
		}
		mediaIDs = append(mediaIDs, id)
	}

	req := transfer.TweetRequest{Text: FormatCaption(post, models.PlatformTwitter)}
	if len(mediaIDs) > 0 {
		req.Media = &transfer.TweetMedia{MediaIDs: mediaIDs}
	}

	var resp transfer.TweetResponse
	if _, err := s.api.do(ctx, http.MethodPost, "/2/tweets", req, &resp, nil); err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}
	if resp.Data.ID == "" {
		return nil, fmt.Errorf("no tweet ID returned from Twitter")
	}

	return &models.PostResult{
		Success:   true,
		Platform:  models.PlatformTwitter,
		PostID:    resp.Data.ID,
		URL:       "https://twitter.com/i/web/status/" + resp.Data.ID,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *twitterService) uploadMedia(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("media", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.api.http.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("HTTP request error: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Platform: models.PlatformTwitter, StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	var result transfer.TwitterMediaUploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}
	if result.MediaIDString == "" {
		return "", fmt.Errorf("no media ID returned from Twitter")
	}

	return result.MediaIDString, nil
}

func (s *twitterService) Analytics(ctx context.Context, query models.AnalyticsQuery) (*models.Analytics, error) {
	metrics := map[string]int64{
		models.MetricImpressions: 0,
		models.MetricEngagement:  0,
	}

	if len(query.PostIDs) > 0 {
		params := url.Values{}
		params.Set("ids", strings.Join(query.PostIDs, ","))
		params.Set("tweet.fields", "public_metrics")

		var resp transfer.TweetsResponse
		if _, err := s.api.do(ctx, http.MethodGet, "/2/tweets?"+params.Encode(), nil, &resp, nil); err != nil {
			return nil, fmt.Errorf("failed to fetch tweet metrics: %w", err)
		}

		for _, tweet := range resp.Data {
			m := tweet.PublicMetrics
			metrics[models.MetricImpressions] += m.ImpressionCount
			metrics[models.MetricLikes] += m.LikeCount
			metrics[models.MetricShares] += m.RetweetCount + m.QuoteCount
			metrics[models.MetricComments] += m.ReplyCount
			metrics[models.MetricEngagement] += m.LikeCount + m.RetweetCount + m.QuoteCount + m.ReplyCount
		}
	} else {
		var resp transfer.TwitterUserResponse
		if _, err := s.api.do(ctx, http.MethodGet, "/2/users/me?user.fields=public_metrics", nil, &resp, nil); err != nil {
			return nil, fmt.Errorf("failed to fetch account metrics: %w", err)
		}
		metrics[models.MetricFollowers] = resp.Data.PublicMetrics.FollowersCount
	}

	return &models.Analytics{
		Platform:  models.PlatformTwitter,
		Metrics:   metrics,
		DateRange: query.DateRange,
		PostIDs:   query.PostIDs,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (s *twitterService) Trending(ctx context.Context, category, location string) ([]models.TrendingTopic, error) {
	names, err := s.trends(ctx)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to fetch Twitter trends: %w", err)
	}

	if len(names) > maxTrendingTopics {
		names = names[:maxTrendingTopics]
	}

	topics := make([]models.TrendingTopic, 0, len(names))
	for _, name := range names {
		hashtag := name
		if !strings.HasPrefix(hashtag, "#") {
			hashtag = "#" + strings.ReplaceAll(name, " ", "")
		}
		topics = append(topics, models.TrendingTopic{
			Topic:    name,
			Hashtag:  hashtag,
			Platform: models.PlatformTwitter,
			Location: location,
			Category: category,
		})
	}

	return topics, nil
}

func (s *twitterService) Schedule(ctx context.Context, post *models.Post, at time.Time) (*models.PostResult, error) {
	return scheduleAck(models.PlatformTwitter, at), nil
}

func (s *twitterService) Delete(ctx context.Context, postID string) error {
	if _, err := s.api.do(ctx, http.MethodDelete, "/2/tweets/"+url.PathEscape(postID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete tweet %s: %w", postID, err)
	}
	return nil
}

func (s *twitterService) Get(ctx context.Context, postID string) (*models.RemotePost, error) {
	var resp transfer.TweetResponse
	path := "/2/tweets/" + url.PathEscape(postID) + "?tweet.fields=created_at,public_metrics"
	if _, err := s.api.do(ctx, http.MethodGet, path, nil, &resp, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch tweet %s: %w", postID, err)
	}

	return &models.RemotePost{
		ID:        resp.Data.ID,
		Platform:  models.PlatformTwitter,
		Text:      resp.Data.Text,
		URL:       "https://twitter.com/i/web/status/" + resp.Data.ID,
		CreatedAt: resp.Data.CreatedAt,
	}, nil
}
