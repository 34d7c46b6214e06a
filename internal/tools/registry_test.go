package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/repository"
	"github.com/maheshrc27/postflow-tools/internal/service"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	calendar := repository.NewCalendarRepository()
	posts := service.NewPostService(service.PostServiceOptions{
		Platforms: service.NewPlatformService(),
		Calendar:  calendar,
		Media:     service.NewMediaService(t.TempDir(), "ffmpeg"),
		Hashtags:  service.NewHashtagService(),
	})
	r, err := NewRegistry(posts, service.NewCalendarService(calendar))
	require.NoError(t, err)
	return r
}

func TestRegistry_CatalogListsEveryTool(t *testing.T) {
	r := newTestRegistry(t)

	var names []Name
	for _, def := range r.Catalog() {
		names = append(names, def.Name)
		assert.NotEmpty(t, def.Description)
		assert.Equal(t, "object", def.InputSchema["type"])
	}

	assert.ElementsMatch(t, []Name{
		CreatePost, SchedulePosts, GetAnalytics, GenerateHashtags, OptimizeMedia, GetTrending, ManageCalendar,
	}, names)
}

func TestRegistry_UnknownTool(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Invoke(context.Background(), "delete_everything", nil)

	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.True(t, IsClientError(err))
	assert.Equal(t, transfer.ToolError{Error: "unknown tool: delete_everything", Tool: "delete_everything"}, Envelope("delete_everything", err))
}

func TestRegistry_ValidationErrors(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name string
		tool Name
		args string
		want string
	}{
		{"missing platforms", CreatePost, `{"content":{"text":"hi"}}`, "platforms is required"},
		{"empty platforms", CreatePost, `{"platforms":[],"content":{"text":"hi"}}`, "platforms must be at least 1"},
		{"missing text", CreatePost, `{"platforms":["twitter"],"content":{}}`, "content.text is required"},
		{"bad media type", CreatePost, `{"platforms":["twitter"],"content":{"text":"hi","media":[{"type":"gif","path":"a"}]}}`, "content.media[0].type must be one of [image video]"},
		{"bad action", ManageCalendar, `{"action":"explode"}`, "action must be one of"},
		{"too many hashtags", GenerateHashtags, `{"content":"hello","max_hashtags":50}`, "max_hashtags must be at most 30"},
		{"bad strategy", SchedulePosts, `{"posts":[{"platforms":["twitter"],"content":{"text":"x"}}],"strategy":"random"}`, "strategy must be one of"},
		{"malformed json", GetTrending, `{"platforms":`, "invalid arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Invoke(ctx, string(tt.tool), json.RawMessage(tt.args))
			require.Error(t, err)
			assert.True(t, IsClientError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegistry_OverLimitContentIsClientError(t *testing.T) {
	r := newTestRegistry(t)
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	args, _ := json.Marshal(map[string]any{
		"platforms": []string{"twitter"},
		"content":   map[string]any{"text": string(long)},
	})

	_, err := r.Invoke(context.Background(), string(CreatePost), args)

	require.Error(t, err)
	assert.True(t, IsClientError(err))
}

func TestRegistry_CreatePostOnUnconfiguredPlatform(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Invoke(context.Background(), string(CreatePost),
		json.RawMessage(`{"platforms":["twitter"],"content":{"text":"Shipping the release notes today"}}`))

	require.NoError(t, err)
	resp := out.(*transfer.CreatePostResponse)
	assert.False(t, resp.Results[models.PlatformTwitter].Success)
	assert.Equal(t, "Platform twitter not configured", resp.Results[models.PlatformTwitter].Error)
	assert.Equal(t, []string{"shipping", "release"}, resp.Content.Hashtags)
}

func TestRegistry_CreatePostOnUnknownPlatform(t *testing.T) {
	r := newTestRegistry(t)
	text := strings.Repeat("alpha bravo charlie delta echo foxtrot golf ", 90)
	args, _ := json.Marshal(map[string]any{
		"platforms": []string{"nonexistent"},
		"content":   map[string]any{"text": text},
	})

	out, err := r.Invoke(context.Background(), string(CreatePost), args)

	require.NoError(t, err)
	resp := out.(*transfer.CreatePostResponse)
	result := resp.Results[models.Platform("nonexistent")]
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not configured")
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echo"}, resp.Content.Hashtags)
}

func TestRegistry_UnknownPlatformUsesDefaultLimit(t *testing.T) {
	r := newTestRegistry(t)
	args, _ := json.Marshal(map[string]any{
		"platforms": []string{"nonexistent"},
		"content":   map[string]any{"text": strings.Repeat("a", 5001)},
	})

	_, err := r.Invoke(context.Background(), string(CreatePost), args)

	require.Error(t, err)
	assert.True(t, IsClientError(err))
	assert.Contains(t, err.Error(), "5001 > 5000")
}

func TestRegistry_ManageCalendarViewEmpty(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Invoke(context.Background(), string(ManageCalendar),
		json.RawMessage(`{"action":"view","date_range":{"start":"2024-01-01","end":"2024-01-01"}}`))

	require.NoError(t, err)
	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"scheduled_posts":[],"total_count":0}`, string(body))
}

func TestRegistry_GenerateHashtagsDefaults(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Invoke(context.Background(), string(GenerateHashtags), json.RawMessage(`{"content":"#golang tips for gophers"}`))

	require.NoError(t, err)
	resp := out.(*transfer.HashtagsResponse)
	assert.Equal(t, "twitter", resp.Platform)
	assert.Equal(t, []string{"golang", "tips", "gophers"}, resp.Hashtags)
}
