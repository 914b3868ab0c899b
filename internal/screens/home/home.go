package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quotienthq/quotient/internal/engine"
	"github.com/quotienthq/quotient/internal/router"
	"github.com/quotienthq/quotient/internal/screen"
	"github.com/quotienthq/quotient/internal/screens/history"
	"github.com/quotienthq/quotient/internal/screens/quiz"
	"github.com/quotienthq/quotient/internal/ui/components"
	"github.com/quotienthq/quotient/internal/ui/theme"
)

// HomeScreen is the main menu shown after sign-in.
type HomeScreen struct {
	menu     components.Menu
	username string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for the signed-in user. questions is the
// per-session question count; 0 means the whole catalog.
func New(eng *engine.Engine, userID int, username string, questions int) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(eng, userID, questions)}
			}
		}},
		{Label: "VIEW HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eng, userID)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		username: username,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Q U O T I E N T"))
	sections = append(sections, theme.Subtitle.Render("How sharp are you today?"))
	sections = append(sections, "")
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("Welcome, %s!", h.username)))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
