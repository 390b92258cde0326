// Package keys holds the key bindings shared by the lesson player screens.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/designlab/internal/ui/layout"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	)
	NextCategory = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "Category"),
	)
	PrevCategory = key.NewBinding(
		key.WithKeys("shift+tab"),
	)
	Select = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Start = key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("Enter", "Start"),
	)
	Resume = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Resume"),
	)
	Next = key.NewBinding(
		key.WithKeys("right", "l", "n", "enter", "space"),
		key.WithHelp("→/Enter", "Next"),
	)
	Back = key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←", "Back"),
	)
	History = key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "History"),
	)
	Close = key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("Esc", "Close"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// Hints converts bindings to footer hints, skipping disabled bindings and
// those without help text.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || h.Key == "" {
			continue
		}
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
