package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// StyleWrapper wraps tcell.Style and implements TOML unmarshalling.
// In TOML it is represented as a table with optional "foreground",
// "background", and "attributes" string fields. The source colour names
// are kept so the style can also be written as a tview colour tag.
type StyleWrapper struct {
	tcell.Style
	fg, bg, attrs string
}

// UnmarshalTOML implements the toml.Unmarshaler interface.
func (s *StyleWrapper) UnmarshalTOML(data any) error {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("expected table for style, got %T", data)
	}

	fg, _ := m["foreground"].(string)
	bg, _ := m["background"].(string)
	attrs, _ := m["attributes"].(string)
	if _, err := stringToAttrMask(attrs); err != nil {
		return err
	}

	*s = makeStyle(fg, bg, attrsToTviewString(attrs))
	return nil
}

// Foreground returns the foreground colour, or tcell.ColorDefault.
func (s StyleWrapper) Foreground() tcell.Color {
	fg, _, _ := s.Style.Decompose()
	return fg
}

// Background returns the background colour, or tcell.ColorDefault.
func (s StyleWrapper) Background() tcell.Color {
	_, bg, _ := s.Style.Decompose()
	return bg
}

// Tag returns the tview colour tag that switches to this style.
func (s StyleWrapper) Tag() string {
	if s.bg == "" && s.attrs == "" {
		return "[" + orDash(s.fg) + "]"
	}
	return "[" + orDash(s.fg) + ":" + orDash(s.bg) + ":" + orDash(s.attrs) + "]"
}

// Reset returns the tview tag that undoes Tag.
func (s StyleWrapper) Reset() string {
	switch {
	case s.attrs != "" && s.bg != "":
		return "[-:-:-]"
	case s.attrs != "":
		return "[-::-]"
	case s.bg != "":
		return "[-:-]"
	default:
		return "[-]"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// makeStyle builds a style from colour names and tview attribute letters.
func makeStyle(fg, bg, attrs string) StyleWrapper {
	style := tcell.StyleDefault
	if fg != "" {
		style = style.Foreground(tcell.GetColor(fg))
	}
	if bg != "" {
		style = style.Background(tcell.GetColor(bg))
	}
	var mask tcell.AttrMask
	for _, r := range attrs {
		mask |= attrLetters[r]
	}
	if mask != 0 {
		style = style.Attributes(mask)
	}
	return StyleWrapper{Style: style, fg: fg, bg: bg, attrs: attrs}
}

// attrNames maps config attribute names to tview tag letters, in the order
// the letters are emitted.
var attrNames = []struct {
	name   string
	letter rune
	mask   tcell.AttrMask
}{
	{"bold", 'b', tcell.AttrBold},
	{"italic", 'i', tcell.AttrItalic},
	{"underline", 'u', tcell.AttrUnderline},
	{"dim", 'd', tcell.AttrDim},
	{"reverse", 'r', tcell.AttrReverse},
	{"blink", 'l', tcell.AttrBlink},
	{"strikethrough", 's', tcell.AttrStrikeThrough},
}

var attrLetters = func() map[rune]tcell.AttrMask {
	m := make(map[rune]tcell.AttrMask, len(attrNames))
	for _, a := range attrNames {
		m[a.letter] = a.mask
	}
	return m
}()

// stringToAttrMask parses a pipe-separated list of attribute names into
// a tcell.AttrMask. For example: "bold|underline".
func stringToAttrMask(s string) (tcell.AttrMask, error) {
	var mask tcell.AttrMask
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" || part == "none" {
			continue
		}
		found := false
		for _, a := range attrNames {
			if a.name == part {
				mask |= a.mask
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown style attribute: %q", part)
		}
	}
	return mask, nil
}

// attrsToTviewString converts "bold|underline" to the tag letters "bu".
// Unknown names are skipped.
func attrsToTviewString(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		for _, a := range attrNames {
			if a.name == part {
				b.WriteRune(a.letter)
				break
			}
		}
	}
	return b.String()
}

// Theme holds the complete theme configuration.
type Theme struct {
	Preset    string         `toml:"preset"`
	Border    BorderTheme    `toml:"border"`
	Title     TitleTheme     `toml:"title"`
	TeamsTree TeamsTreeTheme `toml:"teams_tree"`
	StatusBar StatusBarTheme `toml:"status_bar"`
}

// BorderTheme configures border styling.
type BorderTheme struct {
	Focused StyleWrapper `toml:"focused"`
	Normal  StyleWrapper `toml:"normal"`
}

// TitleTheme configures title bar styling.
type TitleTheme struct {
	Focused StyleWrapper `toml:"focused"`
	Normal  StyleWrapper `toml:"normal"`
}

// TeamsTreeTheme configures the teams tree styling.
type TeamsTreeTheme struct {
	Team     StyleWrapper `toml:"team"`
	Channel  StyleWrapper `toml:"channel"`
	Left     StyleWrapper `toml:"left"` // channels the user is not in
	Badge    StyleWrapper `toml:"badge"`
	Selected StyleWrapper `toml:"selected"`
}

// StatusBarTheme configures the status bar styling.
type StatusBarTheme struct {
	Text       StyleWrapper `toml:"text"`
	Background StyleWrapper `toml:"background"`
}
