package keys

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
)

func TestBindingsMatchKeyPresses(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"enter advances", tea.KeyPressMsg{Code: tea.KeyEnter}, Next},
		{"right advances", tea.KeyPressMsg{Code: tea.KeyRight}, Next},
		{"left goes back", tea.KeyPressMsg{Code: tea.KeyLeft}, Back},
		{"j moves down", tea.KeyPressMsg{Code: 'j', Text: "j"}, Down},
		{"esc closes", tea.KeyPressMsg{Code: tea.KeyEscape}, Close},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q did not match %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
}

func TestHintsSkipsBindingsWithoutHelp(t *testing.T) {
	hints := Hints(NextCategory, PrevCategory, Quit)
	if len(hints) != 2 {
		t.Fatalf("hints = %d, want 2", len(hints))
	}
	if hints[0].Key != "Tab" || hints[1].Description != "Quit" {
		t.Errorf("hints = %+v", hints)
	}

	disabled := Resume
	disabled.SetEnabled(false)
	if got := Hints(disabled); len(got) != 0 {
		t.Errorf("disabled binding produced hints %+v", got)
	}
}
