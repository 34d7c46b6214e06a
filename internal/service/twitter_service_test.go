package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

func TestTwitterService_PostWithMedia(t *testing.T) {
	var tweet transfer.TweetRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("media")
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(transfer.TwitterMediaUploadResponse{MediaIDString: "m1"})
	})
	mux.HandleFunc("/2/tweets", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&tweet))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"1789","text":"hi"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	img := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(img, []byte{0xFF, 0xD8, 0xFF}, 0o644))

	svc := newTwitterService(srv.Client(), srv.URL, srv.URL+"/upload", nil)
	result, err := svc.Post(context.Background(), &models.Post{
		Text:     "hi",
		Hashtags: []string{"go"},
		Mentions: []string{"gopher"},
		Media: []models.MediaAsset{
			{Type: models.MediaTypeImage, Path: img},
			{Type: models.MediaTypeVideo, Path: "skip.mp4"},
		},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "1789", result.PostID)
	assert.Equal(t, "https://twitter.com/i/web/status/1789", result.URL)
	assert.Equal(t, "@gopher hi #go", tweet.Text)
	require.NotNil(t, tweet.Media)
	assert.Equal(t, []string{"m1"}, tweet.Media.MediaIDs)
}

func TestTwitterService_PostAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"title":"Forbidden","detail":"You are not allowed to create a Tweet with duplicate content."}`))
	}))
	defer srv.Close()

	svc := newTwitterService(srv.Client(), srv.URL, srv.URL, nil)
	_, err := svc.Post(context.Background(), &models.Post{Text: "dup"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "duplicate content")
}

func TestTwitterService_AnalyticsForPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/tweets", r.URL.Path)
		assert.Equal(t, "1,2", r.URL.Query().Get("ids"))
		_, _ = w.Write([]byte(`{"data":[
			{"id":"1","public_metrics":{"impression_count":100,"like_count":5,"retweet_count":2,"reply_count":1,"quote_count":0}},
			{"id":"2","public_metrics":{"impression_count":50,"like_count":1,"retweet_count":0,"reply_count":0,"quote_count":1}}
		]}`))
	}))
	defer srv.Close()

	svc := newTwitterService(srv.Client(), srv.URL, srv.URL, nil)
	a, err := svc.Analytics(context.Background(), models.AnalyticsQuery{PostIDs: []string{"1", "2"}})

	require.NoError(t, err)
	assert.Equal(t, int64(150), a.Metrics[models.MetricImpressions])
	assert.Equal(t, int64(10), a.Metrics[models.MetricEngagement])
	assert.Equal(t, int64(6), a.Metrics[models.MetricLikes])
}

func TestTwitterService_AnalyticsForAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/users/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"id":"9","public_metrics":{"followers_count":420}}}`))
	}))
	defer srv.Close()

	svc := newTwitterService(srv.Client(), srv.URL, srv.URL, nil)
	a, err := svc.Analytics(context.Background(), models.AnalyticsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(420), a.Metrics[models.MetricFollowers])
	assert.Equal(t, int64(0), a.Metrics[models.MetricImpressions])
}

func TestTwitterService_Trending(t *testing.T) {
	svc := newTwitterService(http.DefaultClient, "", "", func(context.Context) ([]string, error) {
		return []string{"#GoLang", "World Cup"}, nil
	})

	topics, err := svc.Trending(context.Background(), "sports", "US")

	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "#GoLang", topics[0].Hashtag)
	assert.Equal(t, "#WorldCup", topics[1].Hashtag)
	assert.Equal(t, "US", topics[1].Location)
	assert.Equal(t, "sports", topics[1].Category)
}

func TestTwitterService_TrendingError(t *testing.T) {
	svc := newTwitterService(http.DefaultClient, "", "", func(context.Context) ([]string, error) {
		return nil, errors.New("scrape blocked")
	})

	_, err := svc.Trending(context.Background(), "", "")
	assert.ErrorContains(t, err, "scrape blocked")
}

func TestTwitterService_DeleteAndGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/tweets/55", r.URL.Path)
		if r.Method == http.MethodDelete {
			_, _ = w.Write([]byte(`{"data":{"deleted":true}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":"55","text":"hello","created_at":"2024-01-01T00:00:00Z"}}`))
	}))
	defer srv.Close()

	svc := newTwitterService(srv.Client(), srv.URL, srv.URL, nil)
	require.NoError(t, svc.Delete(context.Background(), "55"))

	post, err := svc.Get(context.Background(), "55")
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Text)
	assert.Equal(t, models.PlatformTwitter, post.Platform)
}

func TestTrendsWithContext_ReturnsFetchResult(t *testing.T) {
	names, err := trendsWithContext(context.Background(), func() ([]string, error) {
		return []string{"#golang"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"#golang"}, names)
}

func TestTrendsWithContext_StopsWhenContextEnds(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := trendsWithContext(ctx, func() ([]string, error) {
		<-release
		return nil, nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
