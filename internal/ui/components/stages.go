package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/ui/theme"
)

// StageTrack renders a lesson's stages as a row of markers: completed stages
// filled, the current stage highlighted, the rest hollow.
type StageTrack struct {
	Stages    []catalog.Stage
	Current   int             // -1 when the lesson is not active
	Completed map[string]bool // keyed by stage ID
}

// View renders the track.
func (t StageTrack) View() string {
	parts := make([]string, len(t.Stages))
	for i, s := range t.Stages {
		marker, color := "○", theme.TextDim
		switch {
		case i == t.Current:
			marker, color = "◉", theme.Accent
		case t.Completed[s.ID]:
			marker, color = "●", theme.Success
		}
		parts[i] = lipgloss.NewStyle().Foreground(color).Render(marker)
	}
	return strings.Join(parts, theme.Dim.Render("─"))
}
