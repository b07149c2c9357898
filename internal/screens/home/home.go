package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathsprint/internal/config"
	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	historyscreen "github.com/abhisek/mathsprint/internal/screens/history"
	"github.com/abhisek/mathsprint/internal/screens/play"
	"github.com/abhisek/mathsprint/internal/store"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// HomeScreen is the main menu: one entry per game type, plus history.
type HomeScreen struct {
	menu components.Menu
	repo store.SessionRepo
	cfg  config.Config
	log  *logrus.Logger
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(repo store.SessionRepo, cfg config.Config, log *logrus.Logger) *HomeScreen {
	h := &HomeScreen{repo: repo, cfg: cfg, log: log}

	var items []components.MenuItem
	for _, gt := range problem.GameTypes() {
		gt := gt
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(gt.DisplayName()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: play.New(gt, repo, cfg, log),
					}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: historyscreen.New(repo, cfg.ChartMaxPoints),
				}
			}
		}},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("MathSprint"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("How many can you solve before the clock runs out?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
