package slack

import (
	"testing"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/m96-chan/slacko-teams/internal/action"
	"github.com/m96-chan/slacko-teams/internal/teams"
)

func testTranslator() *Translator {
	st := teams.Reduce(teams.MakeState(), teams.SetTeamInfoAction{
		Teamnames:    []string{"acme", "beta"},
		TeamNameToID: map[string]string{"acme": "T1", "beta": "T2"},
	})
	return &Translator{
		UserID:      "U1",
		TeamID:      "T1",
		DefaultTeam: "fallback",
		State:       func() *teams.State { return st },
	}
}

func TestTranslator_TeamName(t *testing.T) {
	tr := testTranslator()

	tests := []struct {
		teamID string
		want   string
	}{
		{"", "acme"},
		{"T2", "beta"},
		{"T9", "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.teamID, func(t *testing.T) {
			if got := tr.TeamName(tt.teamID); got != tt.want {
				t.Errorf("TeamName(%q) = %q, want %q", tt.teamID, got, tt.want)
			}
		})
	}

	noState := &Translator{DefaultTeam: "fallback"}
	if got := noState.TeamName("T1"); got != "fallback" {
		t.Errorf("without state TeamName = %q", got)
	}
}

func TestTranslator_Events(t *testing.T) {
	tr := testTranslator()

	tests := []struct {
		name   string
		run    func() (action.Action, bool)
		want   action.Action
		wantOK bool
	}{
		{
			name: "channel rename",
			run: func() (action.Action, bool) {
				return tr.ChannelRename(&slackevents.ChannelRenameEvent{Channel: slackevents.ChannelRenameInfo{ID: "C1", Name: "lobby"}})
			},
			want:   teams.SetUpdatedChannelNameAction{Teamname: "acme", ConversationIDKey: "C1", NewChannelName: "lobby"},
			wantOK: true,
		},
		{
			name: "channel deleted",
			run: func() (action.Action, bool) {
				return tr.ChannelDeleted(&slackevents.ChannelDeletedEvent{Channel: "C2"})
			},
			want:   teams.DeleteChannelInfoAction{Teamname: "acme", ConversationIDKey: "C2"},
			wantOK: true,
		},
		{
			name: "channel archive",
			run: func() (action.Action, bool) {
				return tr.ChannelArchive(&slackevents.ChannelArchiveEvent{Channel: "C3"})
			},
			want:   teams.DeleteChannelInfoAction{Teamname: "acme", ConversationIDKey: "C3"},
			wantOK: true,
		},
		{
			name: "self joined",
			run: func() (action.Action, bool) {
				return tr.MemberJoinedChannel(&slackevents.MemberJoinedChannelEvent{User: "U1", Channel: "C4", Team: "T2"})
			},
			want:   teams.AddParticipantAction{Teamname: "beta", ConversationIDKey: "C4"},
			wantOK: true,
		},
		{
			name: "other user joined",
			run: func() (action.Action, bool) {
				return tr.MemberJoinedChannel(&slackevents.MemberJoinedChannelEvent{User: "U2", Channel: "C4"})
			},
		},
		{
			name: "self left",
			run: func() (action.Action, bool) {
				return tr.MemberLeftChannel(&slackevents.MemberLeftChannelEvent{User: "U1", Channel: "C5"})
			},
			want:   teams.RemoveParticipantAction{Teamname: "acme", ConversationIDKey: "C5"},
			wantOK: true,
		},
		{
			name: "other user left",
			run: func() (action.Action, bool) {
				return tr.MemberLeftChannel(&slackevents.MemberLeftChannelEvent{User: "U3", Channel: "C5"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.run()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTranslator_ChannelCreated(t *testing.T) {
	tr := testTranslator()

	tests := []struct {
		creator string
		status  teams.ConversationMemberStatus
	}{
		{"U1", teams.MemberStatusActive},
		{"U2", teams.MemberStatusNeverJoined},
	}
	for _, tt := range tests {
		t.Run(tt.creator, func(t *testing.T) {
			a, ok := tr.ChannelCreated(&slackevents.ChannelCreatedEvent{
				Channel: slackevents.ChannelCreatedInfo{ID: "C9", Name: "new", Created: 1700000000, Creator: tt.creator},
			})
			got, isSet := a.(teams.SetTeamChannelInfoAction)
			if !ok || !isSet {
				t.Fatalf("got %#v", a)
			}
			if got.Teamname != "acme" || got.ConversationIDKey != "C9" {
				t.Errorf("target = %s/%s", got.Teamname, got.ConversationIDKey)
			}
			if got.ChannelInfo.ChannelName != "new" || got.ChannelInfo.Mtime != 1700000000 || got.ChannelInfo.MemberStatus != tt.status {
				t.Errorf("info = %+v", got.ChannelInfo)
			}
		})
	}
}

func slackChannel(id, name, topic, purpose string, member bool) slack.Channel {
	var ch slack.Channel
	ch.ID = id
	ch.Name = name
	ch.Topic.Value = topic
	ch.Purpose.Value = purpose
	ch.IsMember = member
	ch.NumMembers = 5
	return ch
}

func TestChannelInfoFromSlack(t *testing.T) {
	tests := []struct {
		name string
		ch   slack.Channel
		want teams.ChannelInfo
	}{
		{
			"topic wins",
			slackChannel("C1", "general", "today", "about", true),
			teams.ChannelInfo{ChannelName: "general", Description: "today", MemberStatus: teams.MemberStatusActive, NumParticipants: 5},
		},
		{
			"purpose fallback",
			slackChannel("C2", "random", "", "about", true),
			teams.ChannelInfo{ChannelName: "random", Description: "about", MemberStatus: teams.MemberStatusActive, NumParticipants: 5},
		},
		{
			"not a member",
			slackChannel("C3", "ops", "", "", false),
			teams.ChannelInfo{ChannelName: "ops", MemberStatus: teams.MemberStatusNeverJoined, NumParticipants: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChannelInfoFromSlack(tt.ch); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetTeamChannelsFromSlack(t *testing.T) {
	a := SetTeamChannelsFromSlack("acme", []slack.Channel{
		slackChannel("C1", "general", "", "", true),
		slackChannel("C2", "random", "", "", false),
	})
	if a.Teamname != "acme" || len(a.ChannelInfos) != 2 {
		t.Fatalf("got %+v", a)
	}
	if a.ChannelInfos["C2"].ChannelName != "random" {
		t.Errorf("C2 = %+v", a.ChannelInfos["C2"])
	}
}

func TestRoleFromSlackUser(t *testing.T) {
	tests := []struct {
		name string
		user *slack.User
		want teams.TeamRoleType
	}{
		{"nil", nil, teams.RoleNone},
		{"owner", &slack.User{IsOwner: true, IsAdmin: true}, teams.RoleOwner},
		{"primary owner", &slack.User{IsPrimaryOwner: true}, teams.RoleOwner},
		{"admin", &slack.User{IsAdmin: true}, teams.RoleAdmin},
		{"guest", &slack.User{IsRestricted: true}, teams.RoleReader},
		{"single channel guest", &slack.User{IsUltraRestricted: true}, teams.RoleReader},
		{"member", &slack.User{}, teams.RoleWriter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleFromSlackUser(tt.user); got != tt.want {
				t.Errorf("RoleFromSlackUser() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetTeamInfoFromSlack(t *testing.T) {
	a := SetTeamInfoFromSlack(&slack.TeamInfo{ID: "T1", Name: "Acme Corp", Domain: "acme"}, teams.RoleAdmin)
	if len(a.Teamnames) != 1 || a.Teamnames[0] != "acme" {
		t.Errorf("Teamnames = %v", a.Teamnames)
	}
	if a.TeamNameToID["acme"] != "T1" || a.TeamNameToRole["acme"] != teams.RoleAdmin {
		t.Errorf("got %+v", a)
	}

	if got := TeamNameFromSlack(&slack.TeamInfo{Name: "NoDomain"}); got != "NoDomain" {
		t.Errorf("TeamNameFromSlack = %q", got)
	}
}
