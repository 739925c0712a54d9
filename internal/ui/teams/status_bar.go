package teams

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/m96-chan/slacko-teams/internal/config"
	"github.com/m96-chan/slacko-teams/internal/teams"
)

// StatusBar displays the connection status and the selected node's details
// at the bottom.
type StatusBar struct {
	*tview.TextView
	cfg        *config.Config
	connStatus string
	countText  string
	detailText string
	errorText  string
}

// NewStatusBar creates a themed status bar.
func NewStatusBar(cfg *config.Config) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)

	// Apply status bar theme.
	_, bg, _ := cfg.Theme.StatusBar.Background.Style.Decompose()
	fg, _, _ := cfg.Theme.StatusBar.Text.Style.Decompose()
	tv.SetBackgroundColor(bg)
	tv.SetTextColor(fg)

	return &StatusBar{
		TextView: tv,
		cfg:      cfg,
	}
}

// SetConnectionStatus updates the connection status text.
func (sb *StatusBar) SetConnectionStatus(s string) {
	sb.connStatus = s
	sb.render()
}

// SetSummary shows the team count and the last error recorded in s.
func (sb *StatusBar) SetSummary(s *teams.State) {
	n := len(teams.SortedTeamnames(s))
	switch n {
	case 0:
		sb.countText = ""
	case 1:
		sb.countText = "1 team"
	default:
		sb.countText = fmt.Sprintf("%d teams", n)
	}
	sb.errorText = lastError(s)
	sb.render()
}

// SetSelection shows details for the selected team or channel.
func (sb *StatusBar) SetSelection(s *teams.State, team, conversationID string) {
	sb.detailText = selectionText(s, team, conversationID)
	sb.render()
}

// render rebuilds the status bar text from current state.
func (sb *StatusBar) render() {
	text := " " + sb.connStatus
	for _, part := range []string{sb.countText, sb.detailText, sb.errorText} {
		if part != "" {
			text += "  |  " + part
		}
	}
	sb.TextView.SetText(text)
}

func selectionText(s *teams.State, team, conversationID string) string {
	if team == "" {
		return ""
	}
	if conversationID == "" {
		return fmt.Sprintf("%s: %d channels", team, len(teams.ChannelsForTeam(s, team)))
	}
	info, ok := teams.ChannelInfoFor(s, team, conversationID)
	if !ok {
		return ""
	}
	text := fmt.Sprintf("#%s (%s)", info.ChannelName, info.MemberStatus)
	if info.Description != "" {
		text += " " + tview.Escape(info.Description)
	}
	return text
}

// lastError returns the first non-empty error string in s.
func lastError(s *teams.State) string {
	for _, e := range []string{s.ChannelCreationError, s.TeamCreationError, s.TeamJoinError, s.TeamInviteError} {
		if e != "" {
			return "error: " + tview.Escape(e)
		}
	}
	return ""
}
