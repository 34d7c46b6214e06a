package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/repository"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

const scheduleStride = 4 * time.Hour

type PostService interface {
	CreatePost(ctx context.Context, args transfer.CreatePostArgs) (*transfer.CreatePostResponse, error)
	SchedulePosts(ctx context.Context, args transfer.SchedulePostsArgs) (*transfer.SchedulePostsResponse, error)
	GetAnalytics(ctx context.Context, args transfer.GetAnalyticsArgs) (*transfer.AnalyticsResponse, error)
	GetTrending(ctx context.Context, args transfer.GetTrendingArgs) (*transfer.TrendingResponse, error)
	OptimizeMedia(ctx context.Context, args transfer.OptimizeMediaArgs) (*transfer.OptimizeMediaResponse, error)
	GenerateHashtags(ctx context.Context, args transfer.GenerateHashtagsArgs) (*transfer.HashtagsResponse, error)
	DeliverScheduled(ctx context.Context, scheduledPostID string) (*models.PostResult, error)
}

// PostServiceOptions wires the dispatch coordinator. Store, History, Events
// and Enqueuer are optional.
type PostServiceOptions struct {
	Platforms PlatformService
	Calendar  repository.CalendarRepository
	Media     MediaService
	Hashtags  HashtagService
	Store     MediaStore
	History   PostingHistoryStore
	Events    EventPublisher
	Enqueuer  ScheduleEnqueuer
	Now       func() time.Time
}

type postService struct {
	platforms PlatformService
	calendar  repository.CalendarRepository
	media     MediaService
	hashtags  HashtagService
	store     MediaStore
	history   PostingHistoryStore
	events    EventPublisher
	enqueuer  ScheduleEnqueuer
	now       func() time.Time
}

func NewPostService(opts PostServiceOptions) PostService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &postService{
		platforms: opts.Platforms,
		calendar:  opts.Calendar,
		media:     opts.Media,
		hashtags:  opts.Hashtags,
		store:     opts.Store,
		history:   opts.History,
		events:    opts.Events,
		enqueuer:  opts.Enqueuer,
		now:       now,
	}
}

func uniquePlatforms(names []string) []models.Platform {
	seen := make(map[models.Platform]struct{}, len(names))
	out := make([]models.Platform, 0, len(names))
	for _, p := range models.ToPlatforms(names) {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// buildPost validates args and turns them into a Post. Nothing is dispatched
// when it fails.
func (s *postService) buildPost(args transfer.CreatePostArgs) (*models.Post, error) {
	platforms := uniquePlatforms(args.Platforms)
	text := args.Content.Text

	length := utf8.RuneCountInString(text)
	for _, p := range platforms {
		if limit := p.CharacterLimit(); length > limit {
			return nil, validationErrorf("content exceeds %s character limit (%d > %d)", p, length, limit)
		}
	}

	post := &models.Post{
		Text:      text,
		Platforms: platforms,
		Mentions:  args.Content.Mentions,
		CreatedAt: s.now().UTC(),
	}

	for _, tag := range args.Content.Hashtags {
		if tag = strings.TrimPrefix(strings.TrimSpace(tag), "#"); tag != "" {
			post.Hashtags = append(post.Hashtags, tag)
		}
	}

	for _, m := range args.Content.Media {
		mediaType := models.MediaType(m.Type)
		if mediaType != models.MediaTypeImage && mediaType != models.MediaTypeVideo {
			return nil, validationErrorf("unsupported media type %q", m.Type)
		}
		if m.Path == "" {
			return nil, validationErrorf("media path is required")
		}
		post.Media = append(post.Media, models.MediaAsset{Type: mediaType, Path: m.Path, AltText: m.AltText})
	}

	if args.Schedule != "" {
		at, err := ParseTimestamp(args.Schedule)
		if err != nil {
			return nil, validationErrorf("schedule: %s", err)
		}
		post.ScheduledTime = &at
	}

	return post, nil
}

func (s *postService) CreatePost(ctx context.Context, args transfer.CreatePostArgs) (*transfer.CreatePostResponse, error) {
	post, err := s.buildPost(args)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	post.ID = id

	if len(post.Hashtags) == 0 {
		convention := models.PlatformTwitter
		if len(post.Platforms) > 0 {
			convention = post.Platforms[0]
		}
		post.Hashtags = s.hashtags.Generate(post.Text, convention, DefaultMaxHashtags)
	}

	for i := range post.Media {
		if err := s.prepareMedia(ctx, &post.Media[i], post.Platforms); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
	}

	if args.OptimizeTiming && post.ScheduledTime == nil {
		at := OptimalPostingTime(post.Platforms, s.now())
		post.ScheduledTime = &at
	}

	results := make(map[models.Platform]*models.PostResult, len(post.Platforms))
	for _, p := range post.Platforms {
		results[p] = s.dispatch(ctx, post, p)
	}

	hashtags := post.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	return &transfer.CreatePostResponse{
		Results: results,
		Content: transfer.ContentSummary{
			Text:       post.Text,
			Hashtags:   hashtags,
			MediaCount: len(post.Media),
		},
	}, nil
}

// prepareMedia normalizes the asset for every target platform and, when a
// store is configured, uploads the result so it can be referenced by URL.
func (s *postService) prepareMedia(ctx context.Context, asset *models.MediaAsset, platforms []models.Platform) error {
	var out string
	var err error
	switch asset.Type {
	case models.MediaTypeImage:
		out, err = s.media.NormalizeImage(ctx, asset.Path, platforms)
	case models.MediaTypeVideo:
		out, err = s.media.NormalizeVideo(ctx, asset.Path, platforms)
	}
	if err != nil {
		return fmt.Errorf("media %s: %w", asset.Path, err)
	}
	asset.Path = out

	if s.store == nil {
		return nil
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return fmt.Errorf("media %s: %w", out, err)
	}

	contentType := "application/octet-stream"
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		contentType = kind.MIME.Value
	}

	key, err := gonanoid.New()
	if err != nil {
		return err
	}

	url, err := s.store.Upload(ctx, key+filepath.Ext(out), data, contentType)
	if err != nil {
		// URL-only platforms report their own failure later.
		slog.Info("media upload failed", "path", out, "error", err)
		return nil
	}
	asset.URL = url

	return nil
}

func (s *postService) dispatch(ctx context.Context, post *models.Post, name models.Platform) *models.PostResult {
	platform, ok := s.platforms.Get(name)
	if !ok {
		result := models.FailedResult(name, notConfigured(name))
		if post.ScheduledTime == nil {
			s.record(ctx, post.ID, result)
		}
		return result
	}

	if post.ScheduledTime != nil {
		return s.schedule(ctx, platform, post)
	}

	result := callPlatform(name, func() (*models.PostResult, error) {
		return platform.Post(ctx, post)
	})
	s.record(ctx, post.ID, result)

	return result
}

// callPlatform turns errors and panics from a platform into a failed result.
func callPlatform(name models.Platform, fn func() (*models.PostResult, error)) (result *models.PostResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("platform panicked", "platform", name, "panic", r)
			result = models.FailedResult(name, fmt.Sprintf("%v", r))
		}
	}()

	res, err := fn()
	if err != nil {
		slog.Info(err.Error(), "platform", name)
		return models.FailedResult(name, err.Error())
	}
	if res == nil {
		return models.FailedResult(name, "no result returned")
	}

	return res
}

func (s *postService) schedule(ctx context.Context, platform Platform, post *models.Post) *models.PostResult {
	name := platform.Name()
	at := *post.ScheduledTime

	ack := callPlatform(name, func() (*models.PostResult, error) {
		return platform.Schedule(ctx, post, at)
	})
	if !ack.Success {
		return ack
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return models.FailedResult(name, err.Error())
	}

	entry := &models.ScheduledPost{
		ID:            id,
		Post:          *post,
		Platform:      name,
		ScheduledTime: at,
		Status:        models.ScheduleStatusPending,
	}
	if err := s.calendar.Add(ctx, entry); err != nil {
		return models.FailedResult(name, err.Error())
	}
	ack.ScheduledPostID = id

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueScheduledPost(ctx, id, at); err != nil {
			slog.Info("failed to enqueue scheduled post", "id", id, "error", err)
		}
	}

	return ack
}

func (s *postService) record(ctx context.Context, postID string, result *models.PostResult) {
	if s.history != nil {
		if _, err := s.history.Create(ctx, models.NewPostingHistory(postID, result)); err != nil {
			slog.Info("failed to save posting history", "post_id", postID, "error", err)
		}
	}
	if s.events != nil {
		event := &models.DispatchEvent{PostID: postID, Result: result, Timestamp: s.now().UTC()}
		if err := s.events.PublishDispatch(ctx, event); err != nil {
			slog.Info("failed to publish dispatch event", "post_id", postID, "error", err)
		}
	}
}

func (s *postService) SchedulePosts(ctx context.Context, args transfer.SchedulePostsArgs) (*transfer.SchedulePostsResponse, error) {
	posts := make([]transfer.CreatePostArgs, len(args.Posts))
	copy(posts, args.Posts)

	now := s.now().UTC()
	var times []time.Time
	switch {
	case args.Strategy != "":
		assigned, err := AssignTimes(SchedulingStrategy(args.Strategy), len(posts), now)
		if err != nil {
			return nil, validationErrorf("%s", err)
		}
		times = assigned
	case args.OptimizeSpacing && len(posts) > 1:
		for i := range posts {
			times = append(times, now.Add(time.Duration(i)*scheduleStride))
		}
	}
	for i := range times {
		posts[i].Schedule = times[i].Format(time.RFC3339)
	}

	for _, p := range posts {
		if _, err := s.buildPost(p); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
	}

	// Results stay positional. A post failing after validation gets an error entry.
	resp := &transfer.SchedulePostsResponse{Results: make([]*transfer.CreatePostResponse, 0, len(posts))}
	for i, p := range posts {
		result, err := s.CreatePost(ctx, p)
		if err != nil {
			slog.Info("scheduled post failed", "index", i, "error", err)
			resp.Results = append(resp.Results, &transfer.CreatePostResponse{
				Results: map[models.Platform]*models.PostResult{},
				Content: transfer.ContentSummary{Text: p.Content.Text, Hashtags: []string{}, MediaCount: len(p.Content.Media)},
				Error:   err.Error(),
			})
			continue
		}
		resp.Results = append(resp.Results, result)
		resp.ScheduledCount++
	}

	return resp, nil
}

func (s *postService) GetAnalytics(ctx context.Context, args transfer.GetAnalyticsArgs) (*transfer.AnalyticsResponse, error) {
	dateRange, err := ParseDateRange(args.DateRange)
	if err != nil {
		return nil, validationErrorf("%s", err)
	}

	query := models.AnalyticsQuery{
		MetricType: args.MetricType,
		DateRange:  dateRange,
		PostIDs:    args.PostIDs,
	}

	resp := &transfer.AnalyticsResponse{Platforms: map[models.Platform]any{}}
	var collected []*models.Analytics

	for _, name := range uniquePlatforms(args.Platforms) {
		platform, ok := s.platforms.Get(name)
		if !ok {
			resp.Platforms[name] = transfer.ErrorEntry{Error: notConfigured(name)}
			continue
		}

		analytics, err := analyticsFrom(ctx, platform, query)
		if err != nil {
			slog.Info(err.Error(), "platform", name)
			resp.Platforms[name] = transfer.ErrorEntry{Error: err.Error()}
			continue
		}

		resp.Platforms[name] = analytics
		collected = append(collected, analytics)
	}

	resp.Aggregated = models.Aggregate(collected)

	return resp, nil
}

func analyticsFrom(ctx context.Context, platform Platform, query models.AnalyticsQuery) (a *models.Analytics, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	a, err = platform.Analytics(ctx, query)
	if err == nil && a == nil {
		err = fmt.Errorf("no analytics returned")
	}
	return a, err
}

func trendingFrom(ctx context.Context, platform Platform, category, location string) (topics []models.TrendingTopic, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return platform.Trending(ctx, category, location)
}

func (s *postService) GetTrending(ctx context.Context, args transfer.GetTrendingArgs) (*transfer.TrendingResponse, error) {
	resp := &transfer.TrendingResponse{
		Platforms: map[models.Platform]any{},
		Timestamp: s.now().UTC(),
	}

	for _, name := range uniquePlatforms(args.Platforms) {
		platform, ok := s.platforms.Get(name)
		if !ok {
			resp.Platforms[name] = transfer.ErrorEntry{Error: notConfigured(name)}
			continue
		}

		topics, err := trendingFrom(ctx, platform, args.Category, args.Location)
		if err != nil {
			slog.Info(err.Error(), "platform", name)
			resp.Platforms[name] = transfer.ErrorEntry{Error: err.Error()}
			continue
		}
		if topics == nil {
			topics = []models.TrendingTopic{}
		}
		resp.Platforms[name] = transfer.TrendingTopics{TrendingTopics: topics}
	}

	return resp, nil
}

// OptimizeMedia normalizes the file for each platform independently.
func (s *postService) OptimizeMedia(ctx context.Context, args transfer.OptimizeMediaArgs) (*transfer.OptimizeMediaResponse, error) {
	resp := &transfer.OptimizeMediaResponse{
		OriginalPath: args.MediaPath,
		Optimized:    map[string]transfer.MediaOutcome{},
	}

	for _, name := range uniquePlatforms(args.Platforms) {
		if !name.Known() {
			resp.Optimized[string(name)] = transfer.MediaOutcome{Success: false, Error: fmt.Sprintf("unsupported platform %s", name)}
			continue
		}

		target := []models.Platform{name}
		var out string
		var err error
		if models.MediaType(args.MediaType) == models.MediaTypeVideo {
			out, err = s.media.NormalizeVideo(ctx, args.MediaPath, target)
		} else {
			out, err = s.media.NormalizeImage(ctx, args.MediaPath, target)
		}

		if err != nil {
			resp.Optimized[string(name)] = transfer.MediaOutcome{Success: false, Error: err.Error()}
			continue
		}
		resp.Optimized[string(name)] = transfer.MediaOutcome{Path: out, Success: true}
	}

	return resp, nil
}

func (s *postService) GenerateHashtags(ctx context.Context, args transfer.GenerateHashtagsArgs) (*transfer.HashtagsResponse, error) {
	platform := args.Platform
	if platform == "" {
		platform = string(models.PlatformTwitter)
	}
	maxCount := args.MaxHashtags
	if maxCount <= 0 {
		maxCount = DefaultMaxHashtags
	}

	// include_trending is accepted but trending data is not mixed in.
	tags := s.hashtags.Generate(args.Content, models.Platform(platform), maxCount)

	resp := &transfer.HashtagsResponse{
		Hashtags: tags,
		Count:    len(tags),
		Platform: platform,
	}
	if args.Analyze {
		resp.Recommendations = s.hashtags.Analyze(tags, models.Platform(platform))
	}

	return resp, nil
}

// DeliverScheduled posts a pending calendar entry and records whether it
// went out.
func (s *postService) DeliverScheduled(ctx context.Context, scheduledPostID string) (*models.PostResult, error) {
	entry, err := s.calendar.GetByID(ctx, scheduledPostID)
	if err != nil {
		return nil, err
	}
	if entry.Status != models.ScheduleStatusPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotPending, entry.ID, entry.Status)
	}

	post := entry.Post
	post.ScheduledTime = nil

	var result *models.PostResult
	if platform, ok := s.platforms.Get(entry.Platform); ok {
		result = callPlatform(entry.Platform, func() (*models.PostResult, error) {
			return platform.Post(ctx, &post)
		})
	} else {
		result = models.FailedResult(entry.Platform, notConfigured(entry.Platform))
	}

	status := models.ScheduleStatusPosted
	if !result.Success {
		status = models.ScheduleStatusFailed
	}
	if err := s.calendar.UpdateStatus(ctx, entry.ID, status, result.Error); err != nil {
		return result, err
	}
	s.record(ctx, post.ID, result)

	return result, nil
}
