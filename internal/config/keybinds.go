package config

// Keybinds holds all keybinding configuration. Values are plain strings
// matching the tcell.EventKey.Name() format (e.g. "Rune[j]", "Ctrl+W", "Enter").
type Keybinds struct {
	Quit        string `toml:"quit"`
	FocusFilter string `toml:"focus_filter"`
	Logout      string `toml:"logout"`

	TeamsTree TeamsTreeKeybinds `toml:"teams_tree"`
}

// TeamsTreeKeybinds holds keybindings for the teams tree panel.
type TeamsTreeKeybinds struct {
	SelectCurrent string `toml:"select_current"`
	Collapse      string `toml:"collapse"`
	MoveToParent  string `toml:"move_to_parent"`
	CreateChannel string `toml:"create_channel"`
	DeleteChannel string `toml:"delete_channel"`
}
