package slack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/m96-chan/slacko-teams/internal/action"
	"github.com/m96-chan/slacko-teams/internal/teams"
)

// Translator converts Slack events into teams actions.
type Translator struct {
	// UserID is the connected user; membership events for anyone else are
	// ignored.
	UserID string
	// TeamID is the connected workspace, used when an event has no team.
	TeamID string
	// DefaultTeam names the team when TeamID is not in the state yet.
	DefaultTeam string
	// State returns the current teams state for team id lookups.
	State func() *teams.State
}

// TeamName resolves a Slack team id to a team name.
func (t *Translator) TeamName(teamID string) string {
	if teamID == "" {
		teamID = t.TeamID
	}
	if t.State != nil {
		if name, ok := teams.TeamNameForID(t.State(), teamID); ok {
			return name
		}
	}
	return t.DefaultTeam
}

// ChannelCreated adds the new channel to the team. Channels created by
// someone else start out as never joined.
func (t *Translator) ChannelCreated(e *slackevents.ChannelCreatedEvent) (action.Action, bool) {
	info := teams.MakeChannelInfo()
	info.ChannelName = e.Channel.Name
	info.Mtime = int64(e.Channel.Created)
	if e.Channel.Creator != t.UserID {
		info.MemberStatus = teams.MemberStatusNeverJoined
	}
	return teams.SetTeamChannelInfoAction{
		Teamname:          t.TeamName(""),
		ConversationIDKey: e.Channel.ID,
		ChannelInfo:       info,
	}, true
}

// ChannelRename updates the stored channel name.
func (t *Translator) ChannelRename(e *slackevents.ChannelRenameEvent) (action.Action, bool) {
	return teams.SetUpdatedChannelNameAction{
		Teamname:          t.TeamName(""),
		ConversationIDKey: e.Channel.ID,
		NewChannelName:    e.Channel.Name,
	}, true
}

// ChannelDeleted drops the channel from the team.
func (t *Translator) ChannelDeleted(e *slackevents.ChannelDeletedEvent) (action.Action, bool) {
	return teams.DeleteChannelInfoAction{Teamname: t.TeamName(""), ConversationIDKey: e.Channel}, true
}

// ChannelArchive drops the channel: archived channels are not listed.
func (t *Translator) ChannelArchive(e *slackevents.ChannelArchiveEvent) (action.Action, bool) {
	return teams.DeleteChannelInfoAction{Teamname: t.TeamName(""), ConversationIDKey: e.Channel}, true
}

// MemberJoinedChannel marks the channel joined when the signed-in user is
// the one who joined. Other members are ignored.
func (t *Translator) MemberJoinedChannel(e *slackevents.MemberJoinedChannelEvent) (action.Action, bool) {
	if e.User != t.UserID {
		return nil, false
	}
	return teams.AddParticipantAction{Teamname: t.TeamName(e.Team), ConversationIDKey: e.Channel}, true
}

// MemberLeftChannel is the inverse of MemberJoinedChannel.
func (t *Translator) MemberLeftChannel(e *slackevents.MemberLeftChannelEvent) (action.Action, bool) {
	if e.User != t.UserID {
		return nil, false
	}
	return teams.RemoveParticipantAction{Teamname: t.TeamName(e.Team), ConversationIDKey: e.Channel}, true
}

// ChannelInfoFromSlack converts a conversation into the teams channel record.
// The topic is used as the description, falling back to the purpose.
func ChannelInfoFromSlack(ch slack.Channel) teams.ChannelInfo {
	info := teams.ChannelInfo{
		ChannelName:     ch.Name,
		Description:     ch.Topic.Value,
		MemberStatus:    teams.MemberStatusActive,
		NumParticipants: ch.NumMembers,
		HasAllMembers:   ch.IsGeneral,
		Mtime:           int64(ch.Created),
	}
	if info.Description == "" {
		info.Description = ch.Purpose.Value
	}
	if !ch.IsMember {
		info.MemberStatus = teams.MemberStatusNeverJoined
	}
	return info
}

// SetTeamChannelsFromSlack builds the action replacing team's channel list.
func SetTeamChannelsFromSlack(team string, channels []slack.Channel) teams.SetTeamChannelsAction {
	infos := make(map[string]teams.ChannelInfo, len(channels))
	for _, ch := range channels {
		infos[ch.ID] = ChannelInfoFromSlack(ch)
	}
	return teams.SetTeamChannelsAction{Teamname: team, ChannelInfos: infos}
}

// RoleFromSlackUser maps workspace flags to a team role. Guests are
// readers.
func RoleFromSlackUser(u *slack.User) teams.TeamRoleType {
	switch {
	case u == nil:
		return teams.RoleNone
	case u.IsOwner || u.IsPrimaryOwner:
		return teams.RoleOwner
	case u.IsAdmin:
		return teams.RoleAdmin
	case u.IsRestricted || u.IsUltraRestricted:
		return teams.RoleReader
	default:
		return teams.RoleWriter
	}
}

// TeamNameFromSlack returns the team name used for a workspace: its domain,
// or its display name when no domain is set.
func TeamNameFromSlack(info *slack.TeamInfo) string {
	if info.Domain != "" {
		return info.Domain
	}
	return info.Name
}

// SetTeamInfoFromSlack builds the team list action for a single workspace.
func SetTeamInfoFromSlack(info *slack.TeamInfo, role teams.TeamRoleType) teams.SetTeamInfoAction {
	name := TeamNameFromSlack(info)
	return teams.SetTeamInfoAction{
		Teamnames:              []string{name},
		TeamNameToID:           map[string]string{name: info.ID},
		TeamNameToRole:         map[string]teams.TeamRoleType{name: role},
		TeamNameToIsOpen:       map[string]bool{name: false},
		TeamNameToAllowPromote: map[string]bool{name: false},
		TeamNameToIsShowcasing: map[string]bool{name: false},
		TeamMemberCounts:       map[string]int{},
	}
}
