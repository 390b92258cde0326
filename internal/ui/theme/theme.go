package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/designlab/internal/catalog"
)

// Palette: cool blueprint tones with a warm accent.
var (
	Primary   = lipgloss.Color("#60A5FA") // Sky blue
	Secondary = lipgloss.Color("#2DD4BF") // Teal
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B1120")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Selection
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Card frames a stage body.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// StateColor is the foreground used for a lesson in the given state.
func StateColor(s catalog.LessonState) color.Color {
	switch s {
	case catalog.StateCompleted:
		return Success
	case catalog.StateInProgress:
		return Accent
	case catalog.StateAvailable:
		return Secondary
	default:
		return TextDim
	}
}

// StageColor is the accent used for a stage type.
func StageColor(t catalog.StageType) color.Color {
	switch t {
	case catalog.StageQuiz, catalog.StageDecision:
		return Accent
	case catalog.StageBreak:
		return Error
	case catalog.StageSimulate, catalog.StageDemo, catalog.StagePractice:
		return Secondary
	case catalog.StageSummary:
		return Success
	default:
		return Primary
	}
}
