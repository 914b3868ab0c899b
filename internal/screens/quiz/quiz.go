package quiz

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quotienthq/quotient/internal/engine"
	"github.com/quotienthq/quotient/internal/router"
	"github.com/quotienthq/quotient/internal/screen"
	"github.com/quotienthq/quotient/internal/screens/results"
	"github.com/quotienthq/quotient/internal/ui/components"
	"github.com/quotienthq/quotient/internal/ui/layout"
	"github.com/quotienthq/quotient/internal/ui/theme"
)

type sessionStartedMsg struct {
	ref string
	err error
}

type questionMsg struct {
	question *engine.Question
	err      error
}

type answerMsg struct {
	progress engine.Progress
	err      error
}

// QuizScreen drives one test session: it pulls the current question
// from the engine, submits the chosen answer, and advances until the
// session completes. Leaving the screen mid-test simply abandons the
// session; it stays in progress in history and is harmless.
type QuizScreen struct {
	eng       *engine.Engine
	userID    int
	questions int

	ref      string
	question *engine.Question
	choice   components.Choice
	score    int
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen; the session starts on Init. questions is
// the session length, 0 meaning the whole catalog.
func New(eng *engine.Engine, userID, questions int) *QuizScreen {
	return &QuizScreen{eng: eng, userID: userID, questions: questions}
}

func (s *QuizScreen) Title() string {
	return "IQ Test"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon test"},
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ref, err := s.eng.StartSession(context.Background(), s.userID, s.questions)
		return sessionStartedMsg{ref: ref, err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.ref = msg.ref
		return s, s.loadQuestion()

	case questionMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.question = msg.question
		s.choice = components.NewChoice(toChoiceOptions(msg.question.Options))
		return s, nil

	case answerMsg:
		if msg.err != nil {
			s.choice.Unlock()
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.score = msg.progress.Score
		if msg.progress.Completed {
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: results.New(s.eng, s.ref)}
			}
		}
		s.question = nil
		return s, s.loadQuestion()

	case tea.KeyMsg:
		if msg.String() == "enter" && s.question != nil {
			return s, s.submit()
		}
	}

	if s.question != nil {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) loadQuestion() tea.Cmd {
	return func() tea.Msg {
		q, err := s.eng.CurrentQuestion(context.Background(), s.ref)
		return questionMsg{question: q, err: err}
	}
}

func (s *QuizScreen) submit() tea.Cmd {
	chosen := s.choice.Chosen()
	if chosen.Label == "" {
		return nil
	}
	s.choice.Lock()
	return func() tea.Msg {
		progress, err := s.eng.SubmitAnswer(context.Background(), s.ref, chosen.Label)
		return answerMsg{progress: progress, err: err}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}
	if s.question == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading question..."))
	}

	q := s.question
	var b strings.Builder

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		"Question "+strconv.Itoa(q.Position)+"/"+strconv.Itoa(q.Total)) +
		"    " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render("Score: "+strconv.Itoa(s.score))
	b.WriteString(counter)
	b.WriteString("\n")

	barWidth := min(width-10, 60)
	bar := components.NewProgressBar("", float64(q.Position-1)/float64(q.Total), false, barWidth)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	prompt := theme.Card.Width(min(width-8, 72)).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Text))
	b.WriteString(prompt)
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func toChoiceOptions(opts []engine.Option) []components.ChoiceOption {
	out := make([]components.ChoiceOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, components.ChoiceOption{Label: o.Label, Text: o.Text})
	}
	return out
}
