package results

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
	"github.com/quotienthq/quotient/internal/ui/layout"
	"github.com/quotienthq/quotient/internal/ui/theme"
)

type detailMsg struct {
	detail *engine.Detail
	err    error
}

// ResultsScreen shows the outcome of a finished session: the raw
// score, its percentage, the rating band with an estimated IQ, and a
// per-question breakdown.
type ResultsScreen struct {
	eng *engine.Engine
	ref string

	detail *engine.Detail
	rating scoring.Rating
	errMsg string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the session ref; the detail loads on
// Init.
func New(eng *engine.Engine, ref string) *ResultsScreen {
	return &ResultsScreen{eng: eng, ref: ref}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc/Enter", Description: "Back to menu"},
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		d, err := s.eng.SessionDetail(context.Background(), s.ref)
		return detailMsg{detail: d, err: err}
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.detail = msg.detail
		s.rating = scoring.Evaluate(msg.detail.Score, msg.detail.Total)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}
	if s.detail == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Scoring..."))
	}

	d := s.detail
	r := s.rating

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Test Complete"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %d / %d  (%.0f%%)\n",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Score"),
		d.Score, d.Total, r.Percentage))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Rating"),
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(r.Band.Label)))
	b.WriteString(fmt.Sprintf("%s  %d\n\n",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Est. IQ"),
		r.Band.IQ))

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Italic(true).
		Width(min(width-8, 64)).Render(r.Band.Description))
	b.WriteString("\n\n")

	b.WriteString(s.breakdown(width))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}

func (s *ResultsScreen) breakdown(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Breakdown"))
	b.WriteString("\n")

	textWidth := min(width-24, 48)
	for _, a := range s.detail.Attempts {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !a.IsCorrect {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		text := a.QuestionText
		if len(text) > textWidth {
			text = text[:textWidth-1] + "…"
		}
		line := fmt.Sprintf("%s %2d. %s", mark, a.Position, text)
		if !a.IsCorrect {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  (you: %s, ans: %s)", a.ChosenLabel, a.CorrectLabel))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
