package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateLayout = "2006-01-02"

// ParseTimestamp accepts ISO-8601 date-times and plain dates. Values without
// an offset are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// ParseDateRange builds an inclusive range. A date-only end covers that whole day.
func ParseDateRange(args *transfer.DateRangeArgs) (*models.DateRange, error) {
	if args == nil {
		return nil, nil
	}

	start, err := ParseTimestamp(args.Start)
	if err != nil {
		return nil, fmt.Errorf("date_range.start: %w", err)
	}
	end, err := ParseTimestamp(args.End)
	if err != nil {
		return nil, fmt.Errorf("date_range.end: %w", err)
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(args.End)); err == nil {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	if end.Before(start) {
		return nil, errors.New("date_range.end is before date_range.start")
	}

	return &models.DateRange{Start: start, End: end}, nil
}

func truncateText(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n])
}

func hashtagLine(hashtags []string) string {
	tags := make([]string, 0, len(hashtags))
	for _, tag := range hashtags {
		tags = append(tags, "#"+strings.TrimPrefix(tag, "#"))
	}
	return strings.Join(tags, " ")
}

func mentionLine(mentions []string) string {
	handles := make([]string, 0, len(mentions))
	for _, m := range mentions {
		handles = append(handles, "@"+strings.TrimPrefix(m, "@"))
	}
	return strings.Join(handles, " ")
}

// FormatCaption composes the text a platform receives: mentions lead on
// Twitter and trail elsewhere, hashtags always trail.
func FormatCaption(post *models.Post, platform models.Platform) string {
	caption := post.Text

	if len(post.Mentions) > 0 {
		mentions := mentionLine(post.Mentions)
		if platform == models.PlatformTwitter {
			caption = mentions + " " + caption
		} else {
			caption = caption + "\n\n" + mentions
		}
	}

	if len(post.Hashtags) > 0 {
		tags := hashtagLine(post.Hashtags)
		if platform == models.PlatformTwitter {
			caption = caption + " " + tags
		} else {
			caption = caption + "\n\n" + tags
		}
	}

	return caption
}
