package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ctrl-C", "Ctrl+C"},
		{"Ctrl-T", "Ctrl+T"},
		{"Rune[j]", "Rune[j]"},
		{"Enter", "Enter"},
		{"Escape", "Escape"},
		{"Ctrl-Shift-A", "Ctrl+Shift-A"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBound(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		bind  string
		want  bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), "Rune[c]", true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), "Rune[c]", false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "Enter", true},
		{"ctrl", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "Ctrl+C", true},
		{"unbound", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bound(tt.event, tt.bind); got != tt.want {
				t.Errorf("Bound(%q, %q) = %v, want %v", Name(tt.event), tt.bind, got, tt.want)
			}
		})
	}
}
