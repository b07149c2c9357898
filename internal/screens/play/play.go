package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathsprint/internal/config"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/screens/summary"
	"github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/store"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
)

// PlayScreen runs one timed session of a single game type.
type PlayScreen struct {
	sess *session.Session
	repo store.SessionRepo
	cfg  config.Config
	log  *logrus.Logger

	input components.AnswerInput

	showingFeedback    bool
	showingQuitConfirm bool
	feedbackSeq        int
	lastOutcome        session.Outcome
	lastProblem        problem.Problem
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the given game type.
func New(gt problem.GameType, repo store.SessionRepo, cfg config.Config, log *logrus.Logger) *PlayScreen {
	return newWithSession(
		session.New(gt, cfg.TimeLimitSeconds, problem.NewGenerator()),
		repo, cfg, log,
	)
}

func newWithSession(sess *session.Session, repo store.SessionRepo, cfg config.Config, log *logrus.Logger) *PlayScreen {
	return &PlayScreen{
		sess:  sess,
		repo:  repo,
		cfg:   cfg,
		log:   log,
		input: components.NewAnswerInput("?", 9),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	if err := p.sess.Start(); err != nil {
		p.log.WithError(err).Error("failed to start session")
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	p.log.WithFields(logrus.Fields{
		"session_id": p.sess.ID,
		"game_type":  p.sess.GameType,
		"time_limit": p.sess.TimeLimit,
	}).Info("session started")
	return tea.Batch(tickCmd(), p.input.Init())
}

func (p *PlayScreen) Title() string {
	return p.sess.GameType.DisplayName()
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	if p.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return p.handleTimerTick()

	case feedbackDoneMsg:
		if msg.Seq != p.feedbackSeq {
			return p, nil
		}
		return p.endFeedback()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.canType() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PlayScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if p.sess.Status != session.StatusActive {
		return p, nil
	}

	res, err := p.sess.Tick()
	if err != nil {
		return p, nil
	}
	if res == nil {
		return p, tickCmd()
	}

	// Clock hit zero. Hand the result off for saving and move to the
	// summary, regardless of whether feedback was on screen.
	p.log.WithFields(logrus.Fields{
		"session_id": res.SessionID,
		"score":      res.Score,
		"mistakes":   res.Mistakes,
	}).Info("session complete")

	return p, tea.Batch(
		p.saveResult(res),
		func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(res)}
		},
	)
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.showingQuitConfirm {
		switch key {
		case "y", "Y":
			p.showingQuitConfirm = false
			if err := p.sess.Exit(); err == nil {
				p.log.WithField("session_id", p.sess.ID).Info("session abandoned")
			}
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.showingQuitConfirm = false
			return p, nil
		}
		return p, nil
	}

	if p.showingFeedback {
		// Any key skips the rest of the feedback window.
		return p.endFeedback()
	}

	if p.sess.Status != session.StatusActive {
		return p, nil
	}

	switch key {
	case "esc":
		p.showingQuitConfirm = true
		return p, nil
	case "enter":
		return p.submit()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	current := p.sess.Current
	outcome, err := p.sess.SubmitAnswer(p.input.Value())
	if err != nil {
		return p, nil
	}
	if !outcome.Recorded {
		// Blank or non-numeric input changes nothing.
		return p, nil
	}

	p.lastOutcome = outcome
	p.lastProblem = *current
	p.showingFeedback = true
	p.feedbackSeq++

	seq := p.feedbackSeq
	delay := time.Duration(p.cfg.FeedbackDelayMs) * time.Millisecond
	return p, tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Seq: seq}
	})
}

func (p *PlayScreen) endFeedback() (screen.Screen, tea.Cmd) {
	p.showingFeedback = false
	p.feedbackSeq++
	if p.sess.Status != session.StatusActive {
		// The clock ran out while feedback was showing; the summary
		// transition already happened.
		return p, nil
	}
	if err := p.sess.AdvanceProblem(); err != nil {
		return p, nil
	}
	p.input.Reset()
	return p, nil
}

func (p *PlayScreen) canType() bool {
	return p.sess.Status == session.StatusActive &&
		!p.showingFeedback && !p.showingQuitConfirm
}

// saveResult persists the finished session off the update loop.
func (p *PlayScreen) saveResult(res *session.Result) tea.Cmd {
	return func() tea.Msg {
		err := p.repo.SaveResult(context.Background(), res)
		if err != nil {
			p.log.WithError(err).WithField("session_id", res.SessionID).
				Error("failed to save session result")
		}
		return summary.ResultSavedMsg{Err: err}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
