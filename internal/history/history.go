// Package history turns persisted session records into summary statistics
// and chart-ready series. Everything here is a pure function over a record
// slice; stats are recomputed per query and never stored.
package history

import (
	"math"
	"time"

	"github.com/abhisek/mathsprint/internal/store"
)

// TimeRange selects how far back a query reaches, relative to Filter.Now.
type TimeRange string

const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
	RangeAll   TimeRange = "all"
)

// TimeRanges lists the selectable ranges in cycling order.
func TimeRanges() []TimeRange {
	return []TimeRange{RangeWeek, RangeMonth, RangeYear, RangeAll}
}

// Filter narrows which records a summary covers. GameType "all" (or empty)
// matches every type; RangeAll (or empty) disables the time predicate.
type Filter struct {
	GameType string
	Range    TimeRange
	Now      time.Time
}

// Stats is the aggregate view over a set of session records. An empty
// record set yields the zero value, never an error.
type Stats struct {
	TotalGames      int
	AverageScore    int
	HighestScore    int
	TotalTimePlayed int // seconds
	GamesByType     map[string]int
}

// Summarize computes aggregate statistics over the records matching f.
func Summarize(records []store.SessionRecord, f Filter) Stats {
	stats := Stats{GamesByType: make(map[string]int)}

	sum := 0
	for _, rec := range records {
		if !Matches(rec, f) {
			continue
		}
		stats.TotalGames++
		sum += rec.Score
		if rec.Score > stats.HighestScore {
			stats.HighestScore = rec.Score
		}
		stats.TotalTimePlayed += rec.TimeSpentSeconds
		stats.GamesByType[rec.GameType]++
	}

	if stats.TotalGames > 0 {
		stats.AverageScore = int(math.Round(float64(sum) / float64(stats.TotalGames)))
	}
	return stats
}

// Matches reports whether a single record passes the filter.
func Matches(rec store.SessionRecord, f Filter) bool {
	if f.GameType != "" && f.GameType != "all" && rec.GameType != f.GameType {
		return false
	}

	cutoff, ok := rangeCutoff(f)
	if !ok {
		return true
	}
	// Closed interval [cutoff, now] on the completion timestamp.
	return !rec.CompletedAt.Before(cutoff) && !rec.CompletedAt.After(f.Now)
}

func rangeCutoff(f Filter) (time.Time, bool) {
	if f.Now.IsZero() {
		return time.Time{}, false
	}
	switch f.Range {
	case RangeWeek:
		return f.Now.AddDate(0, 0, -7), true
	case RangeMonth:
		return f.Now.AddDate(0, -1, 0), true
	case RangeYear:
		return f.Now.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}
