package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postflow-tools/internal/repository"
	"github.com/maheshrc27/postflow-tools/internal/service"
	"github.com/maheshrc27/postflow-tools/internal/tools"
)

func newRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	calendar := repository.NewCalendarRepository()
	posts := service.NewPostService(service.PostServiceOptions{
		Platforms: service.NewPlatformService(),
		Calendar:  calendar,
		Media:     service.NewMediaService(t.TempDir(), "ffmpeg"),
		Hashtags:  service.NewHashtagService(),
	})
	r, err := tools.NewRegistry(posts, service.NewCalendarService(calendar))
	require.NoError(t, err)
	return r
}

func TestServeLines(t *testing.T) {
	in := strings.Join([]string{
		`{"id":1,"tool":"manage_calendar","arguments":{"action":"view"}}`,
		``,
		`not json`,
		`{"id":"b","tool":"missing"}`,
		`{"id":3,"tool":"generate_hashtags","arguments":{"content":"hello gophers"}}`,
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, serveLines(context.Background(), newRegistry(t), strings.NewReader(in), &out))

	var responses []map[string]any
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.Len(t, responses, 4)

	assert.Equal(t, float64(1), responses[0]["id"])
	assert.Equal(t, map[string]any{"scheduled_posts": []any{}, "total_count": float64(0)}, responses[0]["result"])

	assert.Contains(t, responses[1]["error"], "malformed request")

	assert.Equal(t, "b", responses[2]["id"])
	assert.Equal(t, "unknown tool: missing", responses[2]["error"])

	result := responses[3]["result"].(map[string]any)
	assert.Equal(t, []any{"hello", "gophers"}, result["hashtags"])
}

func TestPrintCatalog(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printCatalog(&out, newRegistry(t).Catalog(), false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "create_post"))
}
