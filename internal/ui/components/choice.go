package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quotienthq/quotient/internal/ui/theme"
)

// ChoiceOption is one selectable answer.
type ChoiceOption struct {
	Label string // A, B, C or D
	Text  string
}

// Choice is a four-option answer selector. Unlike a reveal-style
// component it never shows which option was correct; the test gives
// no per-answer feedback, only a final score.
type Choice struct {
	Options  []ChoiceOption
	Selected int
	locked   bool
}

// NewChoice creates a selector over the given options.
func NewChoice(options []ChoiceOption) Choice {
	return Choice{Options: options}
}

// Update handles navigation keys. Selection confirmation is left to
// the parent screen, which watches for "enter" itself.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "a", "b", "c", "d":
		for i, opt := range c.Options {
			if opt.Label == string(kmsg.String()[0]-'a'+'A') {
				c.Selected = i
				break
			}
		}
	}

	return c, nil
}

// Lock freezes the selector while an answer is in flight, so a slow
// write can't be raced by further keystrokes.
func (c *Choice) Lock() { c.locked = true }

// Unlock re-enables the selector.
func (c *Choice) Unlock() { c.locked = false }

// Chosen returns the currently selected option.
func (c Choice) Chosen() ChoiceOption {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ChoiceOption{}
	}
	return c.Options[c.Selected]
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Label, opt.Text)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
