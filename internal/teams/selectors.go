package teams

import (
	"slices"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ChannelEntry pairs a conversation id with its info.
type ChannelEntry struct {
	ConversationIDKey string
	Info              ChannelInfo
}

// SortedTeamnames returns the known team names, falling back to the keys
// of the role map when the name list has not been loaded yet.
func SortedTeamnames(s *State) []string {
	if len(s.Teamnames) > 0 {
		return slices.Clone(s.Teamnames)
	}
	return Keys(s.TeamNameToRole)
}

// FilterTeamnames returns the teams matching query, best match first. An
// empty query returns every team in sorted order.
func FilterTeamnames(s *State, query string) []string {
	names := SortedTeamnames(s)
	if query == "" {
		return names
	}

	matches := fuzzy.Find(query, names)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = names[m.Index]
	}
	return out
}

// ChannelsForTeam returns a team's channels sorted by name, then id.
func ChannelsForTeam(s *State, team string) []ChannelEntry {
	byConv, ok := s.TeamNameToChannelInfos.Get(team)
	if !ok {
		return nil
	}

	entries := make([]ChannelEntry, 0, byConv.Len())
	itr := byConv.Iterator()
	for !itr.Done() {
		id, info, _ := itr.Next()
		entries = append(entries, ChannelEntry{ConversationIDKey: id, Info: info})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Info.ChannelName), strings.ToLower(entries[j].Info.ChannelName)
		if a != b {
			return a < b
		}
		return entries[i].ConversationIDKey < entries[j].ConversationIDKey
	})
	return entries
}

// ChannelInfoFor returns the info for one channel of a team.
func ChannelInfoFor(s *State, team, conv string) (ChannelInfo, bool) {
	byConv, ok := s.TeamNameToChannelInfos.Get(team)
	if !ok {
		return ChannelInfo{}, false
	}
	return byConv.Get(conv)
}

// MembersForTeam returns a team's members sorted by username.
func MembersForTeam(s *State, team string) []MemberInfo {
	members, ok := s.TeamNameToMembers.Get(team)
	if !ok {
		return nil
	}
	out := make([]MemberInfo, 0, members.Len())
	for _, name := range Keys(members) {
		m, _ := members.Get(name)
		out = append(out, m)
	}
	return out
}

// IsInviteLoading reports whether an invite for invitees is in flight.
func IsInviteLoading(s *State, team, invitees string) bool {
	loading, ok := s.TeamNameToLoadingInvites.Get(team)
	if !ok {
		return false
	}
	v, _ := loading.Get(invitees)
	return v
}

// CanPerform returns the operations allowed in a team. Unknown teams allow
// nothing.
func CanPerform(s *State, team string) TeamOperations {
	ops, _ := s.TeamNameToCanPerform.Get(team)
	return ops
}

// RoleForTeam returns the current user's role, RoleNone when unknown.
func RoleForTeam(s *State, team string) TeamRoleType {
	if role, ok := s.TeamNameToRole.Get(team); ok && role != "" {
		return role
	}
	return RoleNone
}

// IsAdmin reports whether the user is an admin or owner of team.
func IsAdmin(s *State, team string) bool {
	role := RoleForTeam(s, team)
	return role == RoleAdmin || role == RoleOwner
}

// MemberCount returns the member count reported for team.
func MemberCount(s *State, team string) int {
	n, _ := s.TeamMemberCounts.Get(team)
	return n
}

// TeamNameForID resolves a team id back to its name.
func TeamNameForID(s *State, id string) (string, bool) {
	itr := s.TeamNameToID.Iterator()
	for !itr.Done() {
		name, teamID, _ := itr.Next()
		if teamID == id {
			return name, true
		}
	}
	return "", false
}
