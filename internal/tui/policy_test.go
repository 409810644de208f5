package tui

import (
	"testing"

	"github.com/nikbrunner/dialer/internal/shortcut"
)

func TestShortcutPolicy(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		settings  Settings
		attaching bool
		want      []shortcut.Kind
	}{
		{"empty query", "", Settings{VideoCalling: true, CallProvider: "Acme"}, false, nil},
		{"name query", "alice", Settings{}, false, nil},
		{
			"number",
			"555 0100",
			Settings{},
			false,
			[]shortcut.Kind{shortcut.DirectCall, shortcut.CreateNewContact, shortcut.AddToExistingContact, shortcut.SendSmsMessage},
		},
		{
			"number with video and provider",
			"+1 800",
			Settings{VideoCalling: true, CallProvider: "Acme"},
			false,
			shortcut.All(),
		},
		{"attaching", "555", Settings{VideoCalling: true}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortcutPolicy(tt.query, tt.settings, tt.attaching)

			var enabled []shortcut.Kind
			for _, k := range shortcut.All() {
				if got[k] {
					enabled = append(enabled, k)
				}
			}
			if len(enabled) != len(tt.want) {
				t.Fatalf("shortcutPolicy(%q) enabled %v, want %v", tt.query, enabled, tt.want)
			}
			for i := range enabled {
				if enabled[i] != tt.want[i] {
					t.Errorf("shortcutPolicy(%q) enabled %v, want %v", tt.query, enabled, tt.want)
				}
			}
		})
	}
}
