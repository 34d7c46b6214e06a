package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

type SchedulingStrategy string

const (
	StrategyEvenSpacing SchedulingStrategy = "even_spacing"
	StrategyPeakTimes   SchedulingStrategy = "peak_times"
)

const (
	windowStartHour = 9
	windowHours     = 11
)

var peakHours = []int{9, 12, 17, 19}

var bestPostingHours = map[models.Platform][]int{
	models.PlatformTwitter:   {9, 12, 15, 17, 20},
	models.PlatformInstagram: {11, 13, 17, 19},
	models.PlatformLinkedIn:  {7, 10, 12, 17},
	models.PlatformFacebook:  {9, 13, 15, 19},
}

func atHour(now time.Time, hour int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
}

// AssignTimes returns one timestamp per post. None of them lies before now.
func AssignTimes(strategy SchedulingStrategy, count int, now time.Time) ([]time.Time, error) {
	now = now.UTC()
	switch strategy {
	case StrategyEvenSpacing:
		return evenSpacing(count, now), nil
	case StrategyPeakTimes:
		return peakTimes(count, now), nil
	default:
		return nil, fmt.Errorf("unknown scheduling strategy %q", strategy)
	}
}

// evenSpacing spreads posts across 09:00-20:00 UTC with a stride of 11/count hours.
func evenSpacing(count int, now time.Time) []time.Time {
	if count <= 0 {
		return nil
	}

	stride := float64(windowHours) / float64(count)
	times := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		hour := windowStartHour + int(math.Floor(float64(i)*stride))
		t := atHour(now, hour)
		if t.Before(now) {
			t = t.AddDate(0, 0, 1)
		}
		times = append(times, t)
	}

	return times
}

// peakTimes cycles through the peak hours, moving one day further every
// full cycle.
func peakTimes(count int, now time.Time) []time.Time {
	times := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		t := atHour(now, peakHours[i%len(peakHours)])
		if t.Before(now) {
			t = t.AddDate(0, 0, 1)
		}
		times = append(times, t.AddDate(0, 0, i/len(peakHours)))
	}

	return times
}

// OptimalPostingTime picks the next best hour shared by the given platforms.
// Without any known platform it returns the next top of the hour.
func OptimalPostingTime(platforms []models.Platform, now time.Time) time.Time {
	now = now.UTC()

	set := make(map[int]struct{})
	for _, p := range platforms {
		for _, h := range bestPostingHours[p] {
			set[h] = struct{}{}
		}
	}

	if len(set) == 0 {
		return now.Truncate(time.Hour).Add(time.Hour)
	}

	hours := make([]int, 0, len(set))
	for h := range set {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	for _, h := range hours {
		if h > now.Hour() {
			return atHour(now, h)
		}
	}

	return atHour(now, hours[0]).AddDate(0, 0, 1)
}
