package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/history"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/store"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Err      error
}

// typeFilters is the game-type filter cycle: "all" plus every game type.
func typeFilters() []string {
	filters := []string{"all"}
	for _, gt := range problem.GameTypes() {
		filters = append(filters, string(gt))
	}
	return filters
}

// HistoryScreen displays aggregate stats and a score chart over past
// sessions. Records are loaded once; filtering happens in memory.
type HistoryScreen struct {
	repo      store.SessionRepo
	maxPoints int
	sessions  []store.SessionRecord
	typeIdx   int
	rangeIdx  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.SessionRepo, maxPoints int) *HistoryScreen {
	if maxPoints < 1 {
		maxPoints = history.DefaultMaxPoints
	}
	// Start on the all-time range; cycling moves to week, month, year.
	rangeIdx := len(history.TimeRanges()) - 1
	return &HistoryScreen{repo: repo, maxPoints: maxPoints, rangeIdx: rangeIdx}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.repo.ListSessions(context.Background(), store.HistoryFilter{})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "T", Description: "Game type"},
		{Key: "R", Description: "Time range"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "t", "T":
			s.typeIdx = (s.typeIdx + 1) % len(typeFilters())
			return s, nil
		case "r", "R":
			s.rangeIdx = (s.rangeIdx + 1) % len(history.TimeRanges())
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) filter() history.Filter {
	return history.Filter{
		GameType: typeFilters()[s.typeIdx],
		Range:    history.TimeRanges()[s.rangeIdx],
		Now:      time.Now(),
	}
}

// filtered returns the records matching the current filter selection,
// newest first as loaded from the store.
func (s *HistoryScreen) filtered() []store.SessionRecord {
	f := s.filter()
	var out []store.SessionRecord
	for _, rec := range s.sessions {
		if history.Matches(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	f := s.filter()
	records := s.filtered()
	stats := history.Summarize(s.sessions, f)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderFilterLine(width, f))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No sessions yet. Go play!"))
		return b.String()
	}

	b.WriteString(s.renderStats(width, stats))
	b.WriteString("\n\n")
	b.WriteString(s.renderChart(width, records))
	b.WriteString("\n\n")
	b.WriteString(s.renderRecent(width, height, records))

	return b.String()
}

func (s *HistoryScreen) renderFilterLine(width int, f history.Filter) string {
	typeLabel := f.GameType
	if gt := problem.GameType(f.GameType); gt.Valid() {
		typeLabel = gt.DisplayName()
	} else {
		typeLabel = "All types"
	}

	line := fmt.Sprintf("%s   ·   %s",
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(typeLabel),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(rangeLabel(f.Range)),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func rangeLabel(r history.TimeRange) string {
	switch r {
	case history.RangeWeek:
		return "Past week"
	case history.RangeMonth:
		return "Past month"
	case history.RangeYear:
		return "Past year"
	default:
		return "All time"
	}
}

func (s *HistoryScreen) renderStats(width int, stats history.Stats) string {
	mins := stats.TotalTimePlayed / 60
	secs := stats.TotalTimePlayed % 60

	line := fmt.Sprintf("Games: %d    Average: %d    Best: %d    Played: %d:%02d",
		stats.TotalGames, stats.AverageScore, stats.HighestScore, mins, secs)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(line))
}

// renderChart draws scores as a bar sparkline, oldest on the left.
func (s *HistoryScreen) renderChart(width int, records []store.SessionRecord) string {
	points := history.SeriesForChart(records, s.maxPoints)
	if len(points) == 0 {
		return ""
	}

	high := 0
	for _, p := range points {
		if p.Score > high {
			high = p.Score
		}
	}
	if high == 0 {
		high = 1
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	var bars strings.Builder
	for _, p := range points {
		idx := p.Score * (len(blocks) - 1) / high
		bars.WriteRune(blocks[idx])
		bars.WriteRune(' ')
	}

	chart := lipgloss.NewStyle().Foreground(theme.Primary).Render(
		strings.TrimRight(bars.String(), " "))
	caption := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("last %d scores", len(points)))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, chart) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, caption)
}

func (s *HistoryScreen) renderRecent(width, height int, records []store.SessionRecord) string {
	maxRows := height - 14
	if maxRows < 3 {
		maxRows = 3
	}
	if len(records) > maxRows {
		records = records[:maxRows]
	}

	var b strings.Builder
	for _, rec := range records {
		gt := problem.GameType(rec.GameType)
		line := fmt.Sprintf("%s  %-14s  score %-3d  %s",
			rec.CompletedAt.Format("Jan 02 15:04"),
			gt.DisplayName(),
			rec.Score,
			rec.DifficultyReached,
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
