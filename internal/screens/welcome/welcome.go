package welcome

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quotienthq/quotient/internal/identity"
	"github.com/quotienthq/quotient/internal/screen"
	"github.com/quotienthq/quotient/internal/ui/components"
	"github.com/quotienthq/quotient/internal/ui/layout"
	"github.com/quotienthq/quotient/internal/ui/theme"
)

// SignedInMsg is emitted once the user has authenticated. The app
// model catches it and swaps in the home screen.
type SignedInMsg struct {
	UserID   int
	Username string
}

type authResultMsg struct {
	userID int
	err    error
}

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

const (
	fieldUsername = iota
	fieldPassword
	fieldEmail
	fieldCount
)

// WelcomeScreen is the sign-in / registration form shown at startup.
type WelcomeScreen struct {
	ids *identity.Service

	mode    mode
	focus   int
	inputs  []components.TextInput
	working bool
	errMsg  string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen backed by the identity service.
func New(ids *identity.Service) *WelcomeScreen {
	inputs := []components.TextInput{
		components.NewTextInput("username", false, 32),
		components.NewTextInput("password", true, 64),
		components.NewTextInput("email (optional)", false, 64),
	}
	return &WelcomeScreen{
		ids:    ids,
		inputs: inputs,
	}
}

func (w *WelcomeScreen) Title() string {
	return "Sign In"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+R", Description: "Toggle sign in / register"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.inputs[fieldUsername].Focus()
}

func (w *WelcomeScreen) fieldCount() int {
	if w.mode == modeRegister {
		return fieldCount
	}
	return fieldEmail // login: username + password only
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		w.working = false
		if msg.err != nil {
			w.errMsg = authMessage(msg.err)
			return w, nil
		}
		username := strings.TrimSpace(w.inputs[fieldUsername].Value())
		return w, func() tea.Msg {
			return SignedInMsg{UserID: msg.userID, Username: username}
		}

	case tea.KeyMsg:
		if w.working {
			return w, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			n := w.fieldCount()
			dir := 1
			if msg.String() == "shift+tab" {
				dir = n - 1
			}
			w.inputs[w.focus].Blur()
			w.focus = (w.focus + dir) % n
			return w, w.inputs[w.focus].Focus()
		case "ctrl+r":
			w.toggleMode()
			return w, nil
		case "enter":
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	w.inputs[w.focus], cmd = w.inputs[w.focus].Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) toggleMode() {
	if w.mode == modeLogin {
		w.mode = modeRegister
	} else {
		w.mode = modeLogin
		if w.focus >= w.fieldCount() {
			w.inputs[w.focus].Blur()
			w.focus = fieldUsername
			w.inputs[w.focus].Focus()
		}
	}
	w.errMsg = ""
}

func (w *WelcomeScreen) submit() tea.Cmd {
	username := strings.TrimSpace(w.inputs[fieldUsername].Value())
	password := w.inputs[fieldPassword].Value()
	email := strings.TrimSpace(w.inputs[fieldEmail].Value())

	if username == "" || password == "" {
		w.errMsg = "Username and password are required."
		return nil
	}

	w.working = true
	w.errMsg = ""
	register := w.mode == modeRegister

	return func() tea.Msg {
		ctx := context.Background()
		var userID int
		var err error
		if register {
			userID, err = w.ids.Register(ctx, username, password, email)
		} else {
			userID, err = w.ids.Login(ctx, username, password)
		}
		return authResultMsg{userID: userID, err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var b strings.Builder

	heading := "Sign in to take the test"
	if w.mode == modeRegister {
		heading = "Create your account"
	}
	b.WriteString(theme.Title.Render(heading))
	b.WriteString("\n\n")

	labels := []string{"Username", "Password", "Email"}
	for i := 0; i < w.fieldCount(); i++ {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(labels[i])
		b.WriteString(label + "\n")
		b.WriteString(w.inputs[i].View() + "\n\n")
	}

	if w.working {
		b.WriteString(theme.Hint.Render("Working..."))
	} else if w.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
	} else if w.mode == modeLogin {
		b.WriteString(theme.Hint.Render("No account? Press Ctrl+R to register."))
	} else {
		b.WriteString(theme.Hint.Render("Already registered? Press Ctrl+R to sign in."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// authMessage translates identity errors into user-facing text; the
// engine and services never render messages themselves.
func authMessage(err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, identity.ErrUsernameTaken):
		return "That username is already taken."
	default:
		return "Something went wrong: " + err.Error()
	}
}
