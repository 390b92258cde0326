package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/designlab/internal/router"
	"github.com/abhisek/designlab/internal/screen"
	"github.com/abhisek/designlab/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	totalDur     = 3 * time.Second
)

// Request path drawn one hop at a time: client, balancer, servers, cache, db.
var diagram = []string{
	"  client",
	"    │",
	"    ▼",
	"┌──────────┐",
	"│    LB    │",
	"└──────────┘",
	"  ╱  │  ╲",
	"[s1][s2][s3]",
	"    │",
	"  cache",
	"    │",
	"   (db)",
}

// packetFrames animate a request travelling down the diagram.
var packetFrames = []string{"◆", "◇"}

type tickMsg time.Time

// WelcomeScreen is the first-run splash. Any key continues to the screen
// built by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that is replaced by next() on the first key press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// visibleRows is how many diagram rows have been drawn so far.
func (w *WelcomeScreen) visibleRows() int {
	perRow := totalDur / 2 / time.Duration(len(diagram))
	return min(int(w.elapsed/perRow)+1, len(diagram))
}

func (w *WelcomeScreen) View(width, height int) string {
	rows := w.visibleRows()
	lines := make([]string, rows)
	copy(lines, diagram[:rows])

	if rows == len(diagram) {
		packet := lipgloss.NewStyle().Foreground(theme.Accent).
			Render(packetFrames[w.tickCount%len(packetFrames)])
		hop := w.tickCount % len(lines)
		lines[hop] = lines[hop] + "  " + packet
	}

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Join(lines, "\n")),
	}

	if w.elapsed >= totalDur/2 {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Learn system design one stage at a time."),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
