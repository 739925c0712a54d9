// Package keys maps tcell key events onto the names used by keybinds in
// config.toml.
package keys

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Normalize converts tcell key names to the config format.
// tcell outputs "Ctrl-C" (hyphen) for bare Ctrl keys but config uses "Ctrl+C" (plus).
func Normalize(name string) string {
	return strings.ReplaceAll(name, "Ctrl-", "Ctrl+")
}

// Name returns the config name of event.
func Name(event *tcell.EventKey) string {
	return Normalize(event.Name())
}

// Bound reports whether bind is set and names event. An empty bind disables
// the action it belongs to.
func Bound(event *tcell.EventKey, bind string) bool {
	return bind != "" && Name(event) == bind
}
