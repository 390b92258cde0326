package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/designlab/internal/ui/layout"
)

// Screen is one page of the lesson player.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the stack.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body. Header and footer are drawn by the app.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
