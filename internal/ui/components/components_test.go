package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/designlab/internal/catalog"
)

func TestProgressBarWidth(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
	}{
		{"empty", 0},
		{"half", 0.5},
		{"full", 1},
		{"overflow", 1.5},
		{"negative", -0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewProgressBar("", tt.percent, false, 20).View()
			if w := lipgloss.Width(view); w != 20 {
				t.Errorf("width = %d, want 20", w)
			}
		})
	}
}

func TestProgressBarShowsPercent(t *testing.T) {
	view := NewProgressBar("Caching", 0.4, true, 40).View()
	if !strings.Contains(view, "40%") {
		t.Errorf("view %q missing percentage", view)
	}
	if !strings.Contains(view, "Caching") {
		t.Errorf("view %q missing label", view)
	}
}

func TestStageTrack(t *testing.T) {
	track := StageTrack{
		Stages: []catalog.Stage{
			{ID: "theory"}, {ID: "demo"}, {ID: "quiz"},
		},
		Current:   1,
		Completed: map[string]bool{"theory": true},
	}
	view := track.View()
	for _, marker := range []string{"●", "◉", "○"} {
		if !strings.Contains(view, marker) {
			t.Errorf("view %q missing marker %q", view, marker)
		}
	}
}
