package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/history"
	"github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/store"
)

// mockRepo implements store.SessionRepo for testing.
type mockRepo struct {
	records []store.SessionRecord
	err     error
}

func (m *mockRepo) SaveResult(_ context.Context, _ *session.Result) error {
	return nil
}

func (m *mockRepo) ListSessions(_ context.Context, _ store.HistoryFilter) ([]store.SessionRecord, error) {
	return m.records, m.err
}

func (m *mockRepo) ListAttempts(_ context.Context, _ string) ([]store.AttemptRecord, error) {
	return nil, nil
}

func testRecords() []store.SessionRecord {
	now := time.Now()
	return []store.SessionRecord{
		{
			SessionID:         "s2",
			GameType:          "addition",
			Score:             12,
			TimeSpentSeconds:  60,
			DifficultyReached: "hard",
			CompletedAt:       now.Add(-1 * time.Hour),
		},
		{
			SessionID:         "s1",
			GameType:          "division",
			Score:             4,
			TimeSpentSeconds:  60,
			DifficultyReached: "easy",
			CompletedAt:       now.Add(-48 * time.Hour),
		},
	}
}

func loadedScreen(records []store.SessionRecord) *HistoryScreen {
	s := New(&mockRepo{records: records}, 15)
	msg := s.Init()()
	s.Update(msg)
	return s
}

func TestHistoryScreen_LoadsRecords(t *testing.T) {
	s := loadedScreen(testRecords())
	if !s.loaded {
		t.Fatal("expected screen to be loaded")
	}
	if len(s.sessions) != 2 {
		t.Errorf("loaded %d sessions, want 2", len(s.sessions))
	}
}

func TestHistoryScreen_LoadErrorShown(t *testing.T) {
	s := New(&mockRepo{err: errors.New("db locked")}, 15)
	msg := s.Init()()
	s.Update(msg)

	view := s.View(80, 24)
	if !strings.Contains(view, "db locked") {
		t.Error("expected load error in view")
	}
}

func TestHistoryScreen_EmptyState(t *testing.T) {
	s := loadedScreen(nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "No sessions yet") {
		t.Error("expected empty state message")
	}
}

func TestHistoryScreen_ShowsStats(t *testing.T) {
	s := loadedScreen(testRecords())
	view := s.View(80, 24)
	// Average of 12 and 4 is 8; best is 12.
	for _, want := range []string{"Games: 2", "Average: 8", "Best: 12"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_TypeFilterCycles(t *testing.T) {
	s := loadedScreen(testRecords())

	s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if got := s.filter().GameType; got != "addition" {
		t.Errorf("GameType = %q, want addition", got)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Games: 1") {
		t.Error("expected stats filtered to addition")
	}

	// Cycling past the last type wraps back to all.
	for i := 0; i < len(typeFilters())-1; i++ {
		s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	}
	if got := s.filter().GameType; got != "all" {
		t.Errorf("GameType = %q, want all after full cycle", got)
	}
}

func TestHistoryScreen_RangeFilterCycles(t *testing.T) {
	s := loadedScreen(testRecords())

	if got := s.filter().Range; got != history.RangeAll {
		t.Errorf("Range = %q, want all by default", got)
	}

	// First cycle lands on week; only the 1-hour-old session matches.
	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if got := s.filter().Range; got != history.RangeWeek {
		t.Errorf("Range = %q, want week after one cycle", got)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Past week") {
		t.Error("expected week range label")
	}
	if !strings.Contains(view, "Games: 1") {
		t.Error("expected stats filtered to the past week")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := loadedScreen(testRecords())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected pop command on Esc")
	}
}
