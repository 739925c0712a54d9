package config

var presets = []string{"default", "dark", "light", "monokai", "solarized_dark", "solarized_light"}

func isPreset(name string) bool {
	for _, p := range presets {
		if p == name {
			return true
		}
	}
	return false
}

// palette is the handful of colours a preset is built from.
type palette struct {
	accent, muted, text, strong, badge, bar string
}

// BuiltinTheme returns a fully populated Theme for the given preset name.
// Unknown names fall back to "default".
func BuiltinTheme(name string) Theme {
	var p palette
	switch name {
	case "dark":
		p = palette{accent: "#5f87ff", muted: "#585858", text: "#bcbcbc", strong: "#eeeeee", badge: "#5faf5f", bar: "#5f87ff"}
	case "light":
		p = palette{accent: "#0087af", muted: "#a8a8a8", text: "#3a3a3a", strong: "#1c1c1c", badge: "#008700", bar: "#0087af"}
	case "monokai":
		p = palette{accent: "#66d9ef", muted: "#75715e", text: "#f8f8f2", strong: "#a6e22e", badge: "#e6db74", bar: "#75715e"}
	case "solarized_dark":
		p = palette{accent: "#268bd2", muted: "#586e75", text: "#839496", strong: "#eee8d5", badge: "#859900", bar: "#268bd2"}
	case "solarized_light":
		p = palette{accent: "#268bd2", muted: "#93a1a1", text: "#657b83", strong: "#073642", badge: "#859900", bar: "#eee8d5"}
	default:
		name = "default"
		p = palette{accent: "blue", muted: "gray", text: "white", strong: "white", badge: "green", bar: "blue"}
	}
	return p.theme(name)
}

func (p palette) theme(name string) Theme {
	return Theme{
		Preset: name,
		Border: BorderTheme{
			Focused: makeStyle(p.accent, "", ""),
			Normal:  makeStyle(p.muted, "", ""),
		},
		Title: TitleTheme{
			Focused: makeStyle(p.strong, "", "b"),
			Normal:  makeStyle(p.muted, "", ""),
		},
		TeamsTree: TeamsTreeTheme{
			Team:     makeStyle(p.strong, "", "b"),
			Channel:  makeStyle(p.text, "", ""),
			Left:     makeStyle(p.muted, "", "d"),
			Badge:    makeStyle(p.badge, "", ""),
			Selected: makeStyle(p.accent, "", "b"),
		},
		StatusBar: StatusBarTheme{
			Text:       makeStyle(p.strong, "", ""),
			Background: makeStyle("", p.bar, ""),
		},
	}
}
