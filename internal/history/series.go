package history

import (
	"sort"
	"time"

	"github.com/abhisek/mathsprint/internal/store"
)

// DefaultMaxPoints bounds chart rendering cost.
const DefaultMaxPoints = 15

// Point is one chart sample.
type Point struct {
	Timestamp time.Time
	Score     int
	GameType  string
}

// SeriesForChart maps records to chart points in ascending time order,
// keeping only the maxPoints most recent. maxPoints <= 0 falls back to
// DefaultMaxPoints.
func SeriesForChart(records []store.SessionRecord, maxPoints int) []Point {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	points := make([]Point, 0, len(records))
	for _, rec := range records {
		points = append(points, Point{
			Timestamp: rec.CompletedAt,
			Score:     rec.Score,
			GameType:  rec.GameType,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})

	// Keep the tail: the most recent points, still ascending.
	if len(points) > maxPoints {
		points = points[len(points)-maxPoints:]
	}
	return points
}
