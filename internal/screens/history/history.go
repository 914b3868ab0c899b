package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quotienthq/quotient/internal/engine"
	"github.com/quotienthq/quotient/internal/router"
	"github.com/quotienthq/quotient/internal/scoring"
	"github.com/quotienthq/quotient/internal/screen"
	"github.com/quotienthq/quotient/internal/screens/results"
	"github.com/quotienthq/quotient/internal/ui/layout"
	"github.com/quotienthq/quotient/internal/ui/theme"
)

type sessionsMsg struct {
	sessions []engine.SessionSummary
	err      error
}

// HistoryScreen lists the user's past sessions, newest first. A
// completed session can be opened to re-show its results screen;
// abandoned sessions are listed but not openable.
type HistoryScreen struct {
	eng    *engine.Engine
	userID int

	sessions []engine.SessionSummary
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen; sessions load on Init.
func New(eng *engine.Engine, userID int) *HistoryScreen {
	return &HistoryScreen{eng: eng, userID: userID}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "View details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eng.ListSessions(context.Background(), s.userID)
		return sessionsMsg{sessions: sessions, err: err}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.sessions = msg.sessions
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.sessions) {
				sel := s.sessions[s.selected]
				if sel.Completed {
					return s, func() tea.Msg {
						return router.PushScreenMsg{Screen: results.New(s.eng, sel.Ref)}
					}
				}
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading history..."))
	}
	if len(s.sessions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No tests taken yet. Start one from the menu."))
	}

	var b strings.Builder
	header := fmt.Sprintf("  %-12s %-9s %-8s %-14s %s",
		"DATE", "SCORE", "PERCENT", "RATING", "STATUS")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	for i, sess := range s.sessions {
		band := "-"
		status := "in progress"
		if sess.Completed {
			band = scoring.Evaluate(sess.Score, sess.Total).Band.Label
			status = "completed"
		}
		line := fmt.Sprintf("%-12s %2d / %-4d  %5.1f%%  %-14s %s",
			sess.DateTaken.Format("2006-01-02"),
			sess.Score, sess.Total, sess.Percentage, band, status)

		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line))
		}
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}
