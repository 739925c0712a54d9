package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/m96-chan/slacko-teams/internal/teambuilding"
	"github.com/m96-chan/slacko-teams/internal/teams"
)

// WriteSummary prints the teams matching filter with their channels, then
// the team-building state with recommendations ranked against match.
func WriteSummary(w io.Writer, s *teams.State, filter, match string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	names := teams.FilterTeamnames(s, filter)
	fmt.Fprintf(tw, "%d teams\n", len(names))
	for _, team := range names {
		fmt.Fprintf(tw, "%s\trole=%s\tmembers=%d\n", team, teams.RoleForTeam(s, team), teams.MemberCount(s, team))
		for _, ch := range teams.ChannelsForTeam(s, team) {
			fmt.Fprintf(tw, "  #%s\t%s\t%s\n", ch.Info.ChannelName, ch.Info.MemberStatus, ch.Info.Description)
		}
	}

	for _, e := range []struct{ label, msg string }{
		{"channel creation", s.ChannelCreationError},
		{"team creation", s.TeamCreationError},
		{"team invite", s.TeamInviteError},
		{"team join", s.TeamJoinError},
	} {
		if e.msg != "" {
			fmt.Fprintf(tw, "error\t%s\t%s\n", e.label, e.msg)
		}
	}
	if s.TeamJoinSuccess {
		fmt.Fprintf(tw, "joined\t%s\n", s.TeamJoinSuccessTeamName)
	}

	tb := s.TeamBuilding
	if tb == nil {
		tb = teambuilding.MakeState()
	}
	fmt.Fprintf(tw, "team building\t%d selected\trole=%s\n", len(tb.TeamSoFar), tb.SelectedRole)
	for _, u := range tb.TeamSoFar {
		fmt.Fprintf(tw, "  +%s\t%s\n", u.Username, u.PrettyName)
	}
	if tb.UserRecs != nil {
		recs := teambuilding.MatchUserRecs(tb, match)
		fmt.Fprintf(tw, "recommendations\t%d\n", len(recs))
		for _, u := range recs {
			fmt.Fprintf(tw, "  %s\t%s\n", u.Username, u.PrettyName)
		}
	}

	return tw.Flush()
}
