package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quotienthq/quotient/internal/engine"
	"github.com/quotienthq/quotient/internal/identity"
	"github.com/quotienthq/quotient/internal/router"
	"github.com/quotienthq/quotient/internal/screen"
	"github.com/quotienthq/quotient/internal/screens/home"
	"github.com/quotienthq/quotient/internal/screens/welcome"
	"github.com/quotienthq/quotient/internal/ui/layout"
)

// Options carries the services the UI needs.
type Options struct {
	Engine   *engine.Engine
	Identity *identity.Service

	// Questions is the per-session question count; 0 means the whole
	// catalog.
	Questions int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts     Options
	router   *router.Router
	username string
	width    int
	height   int
}

// newAppModel creates a new AppModel starting at the sign-in screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:   opts,
		router: router.New(welcome.New(opts.Identity)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case welcome.SignedInMsg:
		m.username = msg.Username
		return m, func() tea.Msg {
			return router.ResetScreenMsg{
				Screen: home.New(m.opts.Engine, msg.UserID, msg.Username, m.opts.Questions),
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.username, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
