package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

const DefaultMaxHashtags = 10

var (
	hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)
	wordPattern    = regexp.MustCompile(`[\p{L}\p{N}_]{4,}`)
)

type hashtagRule struct {
	candidates int
	cap        int // 0 means the caller's max
}

var hashtagRules = map[models.Platform]hashtagRule{
	models.PlatformTwitter:   {candidates: 2, cap: 3},
	models.PlatformLinkedIn:  {candidates: 3, cap: 5},
	models.PlatformInstagram: {candidates: 5, cap: 30},
}

var defaultHashtagRule = hashtagRule{candidates: 5}

var genericHashtags = map[string]struct{}{
	"love":          {},
	"instagood":     {},
	"photooftheday": {},
	"beautiful":     {},
	"happy":         {},
}

type HashtagService interface {
	Generate(content string, platform models.Platform, maxCount int) []string
	Analyze(hashtags []string, platform models.Platform) []models.HashtagRecommendation
}

type hashtagService struct{}

func NewHashtagService() HashtagService {
	return &hashtagService{}
}

// Generate keeps hashtags already written in content, then adds the most
// frequent words of four or more characters under the platform's cap.
func (s *hashtagService) Generate(content string, platform models.Platform, maxCount int) []string {
	if maxCount <= 0 {
		maxCount = DefaultMaxHashtags
	}

	var tags []string
	for _, m := range hashtagPattern.FindAllStringSubmatch(content, -1) {
		tags = append(tags, m[1])
	}

	rule, ok := hashtagRules[platform]
	if !ok {
		rule = defaultHashtagRule
	}

	remaining := hashtagPattern.ReplaceAllString(content, " ")
	ranked := rankWords(strings.ToLower(remaining))
	if len(ranked) > rule.candidates {
		ranked = ranked[:rule.candidates]
	}
	tags = append(tags, ranked...)

	limit := maxCount
	if rule.cap > 0 && rule.cap < limit {
		limit = rule.cap
	}

	result := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
		if len(result) == limit {
			break
		}
	}

	return result
}

// rankWords orders words by frequency, ties broken by first appearance.
func rankWords(text string) []string {
	words := wordPattern.FindAllString(text, -1)

	counts := make(map[string]int, len(words))
	var order []string
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return order
}

func (s *hashtagService) Analyze(hashtags []string, platform models.Platform) []models.HashtagRecommendation {
	recs := make([]models.HashtagRecommendation, 0, len(hashtags))

	for _, tag := range hashtags {
		tag = strings.TrimPrefix(tag, "#")
		length := len([]rune(tag))
		score := 0.5

		if length >= 5 && length <= 15 {
			score += 0.2
		}
		if _, generic := genericHashtags[strings.ToLower(tag)]; !generic {
			score += 0.2
		}
		switch {
		case platform == models.PlatformInstagram && length < 20:
			score += 0.1
		case platform == models.PlatformTwitter && length < 15:
			score += 0.1
		}
		if score > 1 {
			score = 1
		}

		recs = append(recs, models.HashtagRecommendation{
			Hashtag:          tag,
			RelevanceScore:   score,
			CompetitionLevel: "medium",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RelevanceScore > recs[j].RelevanceScore
	})

	return recs
}
