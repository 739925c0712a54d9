package teams

import (
	"reflect"
	"testing"

	"github.com/m96-chan/slacko-teams/internal/action"
	"github.com/m96-chan/slacko-teams/internal/teambuilding"
)

// populated returns a state with a little of everything set, used to check
// that branches leave unrelated fields alone.
func populated(t *testing.T) *State {
	t.Helper()
	s := MakeState()
	s = Reduce(s, SetTeamInfoAction{
		Teamnames:      []string{"acme", "beta"},
		TeamNameToRole: map[string]TeamRoleType{"acme": RoleAdmin, "beta": RoleWriter},
		TeamNameToID:   map[string]string{"acme": "T1", "beta": "T2"},
	})
	s = Reduce(s, SetTeamChannelsAction{
		Teamname: "acme",
		ChannelInfos: map[string]ChannelInfo{
			"C1": {ChannelName: "general", Description: "talk"},
			"C2": {ChannelName: "random"},
		},
	})
	s = Reduce(s, SetMembersAction{
		Teamname: "acme",
		Members:  map[string]MemberInfo{"alice": {Username: "alice", Type: RoleOwner}},
	})
	return s
}

func channel(t *testing.T, s *State, team, conv string) ChannelInfo {
	t.Helper()
	info, ok := ChannelInfoFor(s, team, conv)
	if !ok {
		t.Fatalf("no channel info for %s/%s", team, conv)
	}
	return info
}

func TestReduce_NilStateUsesDefault(t *testing.T) {
	got := Reduce(nil, SetTeamSawChatBannerAction{})
	if !got.SawChatBanner {
		t.Error("expected SawChatBanner=true")
	}
	if got.AddUserToTeamsState != AddUserNotStarted {
		t.Errorf("AddUserToTeamsState = %q, want notStarted", got.AddUserToTeamsState)
	}
}

func TestReduce_ResetStore(t *testing.T) {
	s := populated(t)
	s = Reduce(s, SetTeamJoinErrorAction{Error: "nope"})
	s = Reduce(s, teambuilding.SelectRoleAction{Namespace: Namespace, Role: "admin"})

	got := Reduce(s, action.ResetStoreAction{})

	if len(got.Teamnames) != 0 || got.TeamNameToChannelInfos.Len() != 0 || got.TeamNameToMembers.Len() != 0 {
		t.Error("reset should discard all team data")
	}
	if got.TeamJoinError != "" {
		t.Errorf("TeamJoinError = %q after reset", got.TeamJoinError)
	}
	if got.TeamBuilding.SelectedRole != "writer" {
		t.Errorf("team building not reset: role %q", got.TeamBuilding.SelectedRole)
	}
	if !reflect.DeepEqual(summarize(got), summarize(MakeState())) {
		t.Error("reset state differs from default")
	}
}

func TestReduce_ScalarErrors(t *testing.T) {
	tests := []struct {
		name  string
		act   action.Action
		field func(*State) string
	}{
		{"channel creation", SetChannelCreationErrorAction{Error: "e1"}, func(s *State) string { return s.ChannelCreationError }},
		{"team creation", SetTeamCreationErrorAction{Error: "e1"}, func(s *State) string { return s.TeamCreationError }},
		{"team invite", SetTeamInviteErrorAction{Error: "e1"}, func(s *State) string { return s.TeamInviteError }},
		{"team join", SetTeamJoinErrorAction{Error: "e1"}, func(s *State) string { return s.TeamJoinError }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := populated(t)
			got := Reduce(prev, tt.act)
			if tt.field(got) != "e1" {
				t.Errorf("field = %q, want e1", tt.field(got))
			}
			if tt.field(prev) != "" {
				t.Error("previous state was mutated")
			}
			if got.TeamNameToChannelInfos != prev.TeamNameToChannelInfos {
				t.Error("untouched map should be shared")
			}
		})
	}
}

func TestReduce_AddUserToTeamsResults(t *testing.T) {
	s := Reduce(MakeState(), SetAddUserToTeamsResultsAction{Results: "added to acme"})
	if s.AddUserToTeamsState != AddUserSucceeded || s.AddUserToTeamsResults != "added to acme" {
		t.Errorf("got %q/%q", s.AddUserToTeamsState, s.AddUserToTeamsResults)
	}

	s = Reduce(s, SetAddUserToTeamsResultsAction{Results: "failed", Error: true})
	if s.AddUserToTeamsState != AddUserFailed {
		t.Errorf("state = %q, want failed", s.AddUserToTeamsState)
	}

	s = Reduce(s, ClearAddUserToTeamsResultsAction{})
	if s.AddUserToTeamsState != AddUserNotStarted || s.AddUserToTeamsResults != "" {
		t.Errorf("after clear got %q/%q", s.AddUserToTeamsState, s.AddUserToTeamsResults)
	}
}

func TestReduce_PointerActions(t *testing.T) {
	got := Reduce(MakeState(), &SetTeamJoinSuccessAction{Teamname: "acme", Success: true})
	if !got.TeamJoinSuccess || got.TeamJoinSuccessTeamName != "acme" {
		t.Errorf("pointer action dropped: success %v team %q", got.TeamJoinSuccess, got.TeamJoinSuccessTeamName)
	}

	got = Reduce(MakeState(), &teambuilding.SearchAction{Namespace: Namespace, Query: "ali"})
	if got.TeamBuilding.SearchQuery != "ali" {
		t.Errorf("pointer team-building action dropped: query %q", got.TeamBuilding.SearchQuery)
	}
}

func TestReduce_SetTeamJoinSuccess(t *testing.T) {
	prev := MakeState()
	got := Reduce(prev, SetTeamJoinSuccessAction{Teamname: "acme", Success: true})

	if !got.TeamJoinSuccess {
		t.Error("expected TeamJoinSuccess=true")
	}
	if got.TeamJoinSuccessTeamName != "acme" {
		t.Errorf("TeamJoinSuccessTeamName = %q, want acme", got.TeamJoinSuccessTeamName)
	}

	// Everything else must be the default.
	want := summarize(prev)
	want["TeamJoinSuccess"] = true
	want["TeamJoinSuccessTeamName"] = "acme"
	if !reflect.DeepEqual(summarize(got), want) {
		t.Errorf("unexpected state:\n got %v\nwant %v", summarize(got), want)
	}
	if got.TeamNameToRole != prev.TeamNameToRole || got.TeamNameToChannelInfos != prev.TeamNameToChannelInfos {
		t.Error("untouched maps should be shared with the previous state")
	}
}

func TestReduce_SetTeamRetentionPolicy(t *testing.T) {
	policy := RetentionPolicy{Type: RetentionExpire, Seconds: 86400, Title: "1 day"}
	got := Reduce(MakeState(), SetTeamRetentionPolicyAction{Teamname: "acme", RetentionPolicy: policy})

	p, ok := got.TeamNameToRetentionPolicy.Get("acme")
	if !ok || p != policy {
		t.Errorf("policy = %+v, %v", p, ok)
	}
}

func TestReduce_SetTeamLoadingInvites(t *testing.T) {
	s := Reduce(MakeState(), SetTeamLoadingInvitesAction{Teamname: "acme", Invitees: "a@x.io", LoadingInvites: true})
	s = Reduce(s, SetTeamLoadingInvitesAction{Teamname: "acme", Invitees: "b@x.io", LoadingInvites: true})
	s = Reduce(s, SetTeamLoadingInvitesAction{Teamname: "acme", Invitees: "a@x.io", LoadingInvites: false})

	if IsInviteLoading(s, "acme", "a@x.io") {
		t.Error("a@x.io should no longer be loading")
	}
	if !IsInviteLoading(s, "acme", "b@x.io") {
		t.Error("b@x.io should be loading")
	}
	if IsInviteLoading(s, "beta", "a@x.io") {
		t.Error("unknown team reports loading")
	}
}

func TestReduce_ClearTeamRequests(t *testing.T) {
	s := Reduce(MakeState(), SetTeamDetailsAction{
		Teamname: "acme",
		Requests: map[string][]RequestInfo{"acme": {{Username: "mallory"}}},
	})
	s = Reduce(s, ClearTeamRequestsAction{Teamname: "acme"})

	reqs, ok := s.TeamNameToRequests.Get("acme")
	if !ok {
		t.Fatal("cleared team should still have an entry")
	}
	if len(reqs) != 0 {
		t.Errorf("requests = %+v, want empty", reqs)
	}
}

func TestReduce_SetTeamDetails(t *testing.T) {
	prev := Reduce(MakeState(), SetTeamDetailsAction{
		Teamname: "beta",
		Requests: map[string][]RequestInfo{"beta": {{Username: "carol"}}, "acme": {{Username: "old"}}},
	})

	got := Reduce(prev, SetTeamDetailsAction{
		Teamname: "acme",
		Members:  map[string]MemberInfo{"alice": {Username: "alice", Type: RoleOwner}},
		Settings: TeamSettings{Open: true, JoinAs: RoleReader},
		Invites:  []InviteInfo{{ID: "i1", Email: "x@y.io", Role: RoleWriter}},
		Subteams: []string{"acme.dev", "acme.ops", "acme.dev"},
		Requests: map[string][]RequestInfo{"acme": {{Username: "dave"}}},
	})

	if members := MembersForTeam(got, "acme"); len(members) != 1 || members[0].Username != "alice" {
		t.Errorf("members = %+v", members)
	}
	if settings, _ := got.TeamNameToSettings.Get("acme"); !settings.Open || settings.JoinAs != RoleReader {
		t.Errorf("settings = %+v", settings)
	}
	if invites, _ := got.TeamNameToInvites.Get("acme"); len(invites) != 1 || invites[0].ID != "i1" {
		t.Errorf("invites = %+v", invites)
	}
	if subteams, _ := got.TeamNameToSubteams.Get("acme"); !reflect.DeepEqual(subteams, []string{"acme.dev", "acme.ops"}) {
		t.Errorf("subteams = %v", subteams)
	}

	// Requests merge: acme overwritten, beta kept.
	if reqs, _ := got.TeamNameToRequests.Get("acme"); len(reqs) != 1 || reqs[0].Username != "dave" {
		t.Errorf("acme requests = %+v, want dave", reqs)
	}
	if reqs, _ := got.TeamNameToRequests.Get("beta"); len(reqs) != 1 || reqs[0].Username != "carol" {
		t.Errorf("beta requests = %+v, want carol kept", reqs)
	}
}

func TestReduce_RequestsMergeLastWriteWins(t *testing.T) {
	s := Reduce(MakeState(), SetTeamDetailsAction{Teamname: "acme", Requests: map[string][]RequestInfo{"a": {{Username: "1"}}}})
	s = Reduce(s, SetTeamDetailsAction{Teamname: "acme", Requests: map[string][]RequestInfo{"a": {{Username: "2"}}}})

	reqs, _ := s.TeamNameToRequests.Get("a")
	if len(reqs) != 1 || reqs[0].Username != "2" {
		t.Errorf("requests = %+v, want last write", reqs)
	}
}

func TestReduce_PayloadCopiedOnEntry(t *testing.T) {
	members := map[string]MemberInfo{"alice": {Username: "alice"}}
	invites := []InviteInfo{{ID: "i1"}}
	s := Reduce(MakeState(), SetTeamDetailsAction{Teamname: "acme", Members: members, Invites: invites})

	members["bob"] = MemberInfo{Username: "bob"}
	invites[0].ID = "changed"

	if len(MembersForTeam(s, "acme")) != 1 {
		t.Error("caller's members map leaked into state")
	}
	if got, _ := s.TeamNameToInvites.Get("acme"); got[0].ID != "i1" {
		t.Error("caller's invite slice leaked into state")
	}
}

func TestReduce_SetMembersReplacesWholesale(t *testing.T) {
	s := populated(t)
	got := Reduce(s, SetMembersAction{Teamname: "acme", Members: map[string]MemberInfo{"bob": {Username: "bob"}}})

	members := MembersForTeam(got, "acme")
	if len(members) != 1 || members[0].Username != "bob" {
		t.Errorf("members = %+v, want only bob", members)
	}
	if len(MembersForTeam(s, "acme")) != 1 || MembersForTeam(s, "acme")[0].Username != "alice" {
		t.Error("previous state was mutated")
	}
}

func TestReduce_SetTeamCanPerform(t *testing.T) {
	ops := TeamOperations{ManageMembers: true, CreateChannel: true}
	got := Reduce(MakeState(), SetTeamCanPerformAction{Teamname: "acme", TeamOperation: ops})
	if CanPerform(got, "acme") != ops {
		t.Errorf("CanPerform = %+v", CanPerform(got, "acme"))
	}
	if CanPerform(got, "beta") != (TeamOperations{}) {
		t.Error("unknown team should allow nothing")
	}
}

func TestReduce_SetTeamPublicitySettings(t *testing.T) {
	pub := PublicitySettings{Member: true, Team: true}
	got := Reduce(MakeState(), SetTeamPublicitySettingsAction{Teamname: "acme", Publicity: pub})
	if p, _ := got.TeamNameToPublicitySettings.Get("acme"); p != pub {
		t.Errorf("publicity = %+v", p)
	}
}

func TestReduce_SetTeamChannelInfo(t *testing.T) {
	t.Run("existing team", func(t *testing.T) {
		prev := populated(t)
		info := ChannelInfo{ChannelName: "dev", NumParticipants: 3}
		got := Reduce(prev, SetTeamChannelInfoAction{Teamname: "acme", ConversationIDKey: "C3", ChannelInfo: info})

		if channel(t, got, "acme", "C3") != info {
			t.Errorf("C3 = %+v", channel(t, got, "acme", "C3"))
		}
		if channel(t, got, "acme", "C1").ChannelName != "general" {
			t.Error("sibling channel lost")
		}
		if _, ok := ChannelInfoFor(prev, "acme", "C3"); ok {
			t.Error("previous state was mutated")
		}
	})

	t.Run("new team", func(t *testing.T) {
		info := ChannelInfo{ChannelName: "hello"}
		got := Reduce(MakeState(), SetTeamChannelInfoAction{Teamname: "zeta", ConversationIDKey: "C9", ChannelInfo: info})
		if channel(t, got, "zeta", "C9") != info {
			t.Error("channel not created for new team")
		}
	})
}

func TestReduce_SetTeamChannelsReplacesTeam(t *testing.T) {
	got := Reduce(populated(t), SetTeamChannelsAction{
		Teamname:     "acme",
		ChannelInfos: map[string]ChannelInfo{"C7": {ChannelName: "only"}},
	})
	entries := ChannelsForTeam(got, "acme")
	if len(entries) != 1 || entries[0].ConversationIDKey != "C7" {
		t.Errorf("channels = %+v, want only C7", entries)
	}
}

func TestReduce_SetEmailInviteError(t *testing.T) {
	got := Reduce(MakeState(), SetEmailInviteErrorAction{
		Message:   "bad addresses",
		Malformed: []string{"b@", "a@", "b@"},
	})
	if got.EmailInviteError.Message != "bad addresses" {
		t.Errorf("message = %q", got.EmailInviteError.Message)
	}
	if !reflect.DeepEqual(got.EmailInviteError.Malformed, []string{"a@", "b@"}) {
		t.Errorf("malformed = %v", got.EmailInviteError.Malformed)
	}
}

func TestReduce_SetTeamInfo(t *testing.T) {
	prev := populated(t)
	got := Reduce(prev, SetTeamInfoAction{
		Teamnames:              []string{"gamma"},
		TeamNameToIsOpen:       map[string]bool{"gamma": true},
		TeamNameToRole:         map[string]TeamRoleType{"gamma": RoleOwner},
		TeamMemberCounts:       map[string]int{"gamma": 12},
		TeamNameToAllowPromote: map[string]bool{"gamma": true},
		TeamNameToIsShowcasing: map[string]bool{"gamma": false},
		TeamNameToID:           map[string]string{"gamma": "T3"},
	})

	if !reflect.DeepEqual(got.Teamnames, []string{"gamma"}) {
		t.Errorf("Teamnames = %v", got.Teamnames)
	}
	if RoleForTeam(got, "acme") != RoleNone {
		t.Error("role map should be replaced, not merged")
	}
	if RoleForTeam(got, "gamma") != RoleOwner || MemberCount(got, "gamma") != 12 {
		t.Error("gamma info missing")
	}
	if open, _ := got.TeamNameToIsOpen.Get("gamma"); !open {
		t.Error("gamma should be open")
	}
	if promote, _ := got.TeamNameToAllowPromote.Get("gamma"); !promote {
		t.Error("gamma should allow promote")
	}
	if _, ok := got.TeamNameToIsShowcasing.Get("gamma"); !ok {
		t.Error("showcasing flag missing")
	}
	if id, _ := got.TeamNameToID.Get("gamma"); id != "T3" {
		t.Errorf("id = %q", id)
	}
	if got.TeamNameToChannelInfos != prev.TeamNameToChannelInfos {
		t.Error("channel infos should be shared")
	}
}

func TestReduce_SetTeamAccessRequestsPending(t *testing.T) {
	got := Reduce(MakeState(), SetTeamAccessRequestsPendingAction{AccessRequestsPending: []string{"zeta", "acme"}})
	if !reflect.DeepEqual(got.TeamAccessRequestsPending, []string{"acme", "zeta"}) {
		t.Errorf("pending = %v", got.TeamAccessRequestsPending)
	}
}

func TestReduce_SetNewTeamInfo(t *testing.T) {
	got := Reduce(MakeState(), SetNewTeamInfoAction{
		DeletedTeams:         []DeletedTeamInfo{{TeamName: "old", DeletedBy: "bob"}},
		NewTeams:             []string{"fresh"},
		NewTeamRequests:      []string{"acme", "acme"},
		TeamNameToResetUsers: map[string][]ResetUser{"acme": {{Username: "eve", EldestSeq: 2}}},
	})

	if len(got.DeletedTeams) != 1 || got.DeletedTeams[0].DeletedBy != "bob" {
		t.Errorf("DeletedTeams = %+v", got.DeletedTeams)
	}
	if !reflect.DeepEqual(got.NewTeams, []string{"fresh"}) {
		t.Errorf("NewTeams = %v", got.NewTeams)
	}
	// A list, so duplicates are kept.
	if len(got.NewTeamRequests) != 2 {
		t.Errorf("NewTeamRequests = %v", got.NewTeamRequests)
	}
	if users, _ := got.TeamNameToResetUsers.Get("acme"); len(users) != 1 || users[0].Username != "eve" {
		t.Errorf("reset users = %+v", users)
	}
}

func TestReduce_SetTeamProfileAddList(t *testing.T) {
	list := []TeamProfileAddEntry{{TeamName: "acme", Open: true}, {TeamName: "beta", DisabledReason: "not an admin"}}
	got := Reduce(MakeState(), SetTeamProfileAddListAction{Teamlist: list})
	if !reflect.DeepEqual(got.TeamProfileAddList, list) {
		t.Errorf("TeamProfileAddList = %+v", got.TeamProfileAddList)
	}
}

func TestReduce_Banners(t *testing.T) {
	s := Reduce(MakeState(), SetTeamSawChatBannerAction{})
	if !s.SawChatBanner || s.SawSubteamsBanner {
		t.Errorf("chat=%v subteams=%v", s.SawChatBanner, s.SawSubteamsBanner)
	}
	s = Reduce(s, SetTeamSawSubteamsBannerAction{})
	if !s.SawSubteamsBanner {
		t.Error("expected SawSubteamsBanner=true")
	}
}

func TestReduce_SetTeamsWithChosenChannels(t *testing.T) {
	got := Reduce(MakeState(), SetTeamsWithChosenChannelsAction{TeamsWithChosenChannels: []string{"b", "a"}})
	if !reflect.DeepEqual(got.TeamsWithChosenChannels, []string{"a", "b"}) {
		t.Errorf("TeamsWithChosenChannels = %v", got.TeamsWithChosenChannels)
	}
}

func TestReduce_SetUpdatedChannelName(t *testing.T) {
	t.Run("merges into existing", func(t *testing.T) {
		got := Reduce(populated(t), SetUpdatedChannelNameAction{Teamname: "acme", ConversationIDKey: "C1", NewChannelName: "lobby"})
		info := channel(t, got, "acme", "C1")
		if info.ChannelName != "lobby" || info.Description != "talk" {
			t.Errorf("C1 = %+v, want renamed with description kept", info)
		}
	})

	t.Run("creates default when absent", func(t *testing.T) {
		got := Reduce(MakeState(), SetUpdatedChannelNameAction{Teamname: "acme", ConversationIDKey: "C5", NewChannelName: "new"})
		want := MakeChannelInfo()
		want.ChannelName = "new"
		if channel(t, got, "acme", "C5") != want {
			t.Errorf("C5 = %+v, want %+v", channel(t, got, "acme", "C5"), want)
		}
	})
}

func TestReduce_SetUpdatedTopic(t *testing.T) {
	t.Run("merges into existing", func(t *testing.T) {
		got := Reduce(populated(t), SetUpdatedTopicAction{Teamname: "acme", ConversationIDKey: "C1", NewTopic: "news"})
		info := channel(t, got, "acme", "C1")
		if info.Description != "news" || info.ChannelName != "general" {
			t.Errorf("C1 = %+v", info)
		}
	})

	t.Run("creates default when absent", func(t *testing.T) {
		prev := populated(t)
		got := Reduce(prev, SetUpdatedTopicAction{Teamname: "acme", ConversationIDKey: "C9", NewTopic: "fresh"})
		want := MakeChannelInfo()
		want.Description = "fresh"
		if channel(t, got, "acme", "C9") != want {
			t.Errorf("C9 = %+v, want %+v", channel(t, got, "acme", "C9"), want)
		}
		if _, ok := ChannelInfoFor(prev, "acme", "C9"); ok {
			t.Error("previous state was mutated")
		}
	})
}

func TestReduce_DeleteChannelInfo(t *testing.T) {
	prev := populated(t)
	got := Reduce(prev, DeleteChannelInfoAction{Teamname: "acme", ConversationIDKey: "C1"})

	if _, ok := ChannelInfoFor(got, "acme", "C1"); ok {
		t.Error("C1 should be removed")
	}
	if channel(t, got, "acme", "C2").ChannelName != "random" {
		t.Error("sibling C2 should be untouched")
	}
	if _, ok := ChannelInfoFor(prev, "acme", "C1"); !ok {
		t.Error("previous state was mutated")
	}

	t.Run("absent pair", func(t *testing.T) {
		for _, a := range []DeleteChannelInfoAction{
			{Teamname: "acme", ConversationIDKey: "nope"},
			{Teamname: "nope", ConversationIDKey: "C1"},
		} {
			if Reduce(prev, a) != prev {
				t.Errorf("%+v should return the same state", a)
			}
		}
	})
}

func TestReduce_Participants(t *testing.T) {
	s := populated(t)

	s = Reduce(s, RemoveParticipantAction{Teamname: "acme", ConversationIDKey: "C1"})
	if got := channel(t, s, "acme", "C1"); got.MemberStatus != MemberStatusLeft || got.ChannelName != "general" {
		t.Errorf("after remove C1 = %+v", got)
	}

	s = Reduce(s, AddParticipantAction{Teamname: "acme", ConversationIDKey: "C1"})
	if got := channel(t, s, "acme", "C1"); got.MemberStatus != MemberStatusActive {
		t.Errorf("after add C1 = %+v", got)
	}

	s = Reduce(s, RemoveParticipantAction{Teamname: "beta", ConversationIDKey: "C8"})
	want := MakeChannelInfo()
	want.MemberStatus = MemberStatusLeft
	if got := channel(t, s, "beta", "C8"); got != want {
		t.Errorf("absent channel: got %+v, want %+v", got, want)
	}
}

func TestReduce_SideEffectActionsReturnSameState(t *testing.T) {
	c := NewCatalog()
	prev := populated(t)

	for _, typ := range sideEffectTypes {
		t.Run(string(typ), func(t *testing.T) {
			a, err := c.New(typ)
			if err != nil {
				t.Fatal(err)
			}
			if got := Reduce(prev, a); got != prev {
				t.Errorf("%s changed the state", typ)
			}
		})
	}
}

func TestReduce_SideEffectCount(t *testing.T) {
	if got := len(sideEffectTypes); got != 39 {
		t.Errorf("side-effect actions = %d, want 39", got)
	}
}

func TestReduce_TeamBuildingDelegated(t *testing.T) {
	prev := populated(t)
	user := teambuilding.User{ID: "u1", Username: "frank"}

	got := Reduce(prev, teambuilding.AddUsersToTeamSoFarAction{Namespace: Namespace, Users: []teambuilding.User{user}})
	if len(got.TeamBuilding.TeamSoFar) != 1 {
		t.Fatalf("TeamSoFar = %+v", got.TeamBuilding.TeamSoFar)
	}
	if got.TeamNameToChannelInfos != prev.TeamNameToChannelInfos {
		t.Error("unrelated fields should be shared")
	}
	if len(prev.TeamBuilding.TeamSoFar) != 0 {
		t.Error("previous sub-state was mutated")
	}

	t.Run("other namespace", func(t *testing.T) {
		other := Reduce(prev, teambuilding.AddUsersToTeamSoFarAction{Namespace: "chat2", Users: []teambuilding.User{user}})
		if other != prev {
			t.Error("actions for another namespace should leave the state unchanged")
		}
	})

	t.Run("every type routed", func(t *testing.T) {
		for _, typ := range teambuilding.Types() {
			if _, ok := handlers[typ]; !ok {
				t.Errorf("%s not delegated", typ)
			}
		}
	})
}

func TestReduce_ReplacementIdempotent(t *testing.T) {
	acts := []action.Action{
		SetTeamJoinSuccessAction{Teamname: "acme", Success: true},
		SetTeamInfoAction{Teamnames: []string{"a"}, TeamNameToRole: map[string]TeamRoleType{"a": RoleReader}},
		SetMembersAction{Teamname: "acme", Members: map[string]MemberInfo{"x": {Username: "x"}}},
		SetTeamRetentionPolicyAction{Teamname: "acme", RetentionPolicy: RetentionPolicy{Type: RetentionRetain}},
		SetUpdatedTopicAction{Teamname: "acme", ConversationIDKey: "C1", NewTopic: "t"},
		SetTeamSawChatBannerAction{},
	}

	for _, a := range acts {
		t.Run(string(a.Type()), func(t *testing.T) {
			once := Reduce(populated(t), a)
			twice := Reduce(once, a)
			if !reflect.DeepEqual(summarize(once), summarize(twice)) {
				t.Errorf("applying twice differs:\n once %v\ntwice %v", summarize(once), summarize(twice))
			}
		})
	}
}

func TestReduce_UnknownTypeUnchanged(t *testing.T) {
	prev := MakeState()
	if got := Reduce(prev, unknownAction{}); got != prev {
		t.Error("unknown action should return the same state")
	}
}

func TestCatalogCoversHandlers(t *testing.T) {
	if err := checkCoverage(NewCatalog(), handlers); err != nil {
		t.Fatal(err)
	}

	c := NewCatalog()
	c.Register(func() action.Action { return &unknownAction{} })
	if err := checkCoverage(c, handlers); err == nil {
		t.Error("expected an error for a catalog type without a branch")
	}
}

type unknownAction struct{}

func (unknownAction) Type() action.Type { return "teams:notARealAction" }

// summarize flattens a state into comparable values.
func summarize(s *State) map[string]any {
	channels := map[string]map[string]ChannelInfo{}
	for team, byConv := range ToGoMap(s.TeamNameToChannelInfos) {
		channels[team] = ToGoMap(byConv)
	}
	members := map[string]map[string]MemberInfo{}
	for team, m := range ToGoMap(s.TeamNameToMembers) {
		members[team] = ToGoMap(m)
	}
	loading := map[string]map[string]bool{}
	for team, m := range ToGoMap(s.TeamNameToLoadingInvites) {
		loading[team] = ToGoMap(m)
	}

	return map[string]any{
		"AddUserToTeamsState":         s.AddUserToTeamsState,
		"AddUserToTeamsResults":       s.AddUserToTeamsResults,
		"ChannelCreationError":        s.ChannelCreationError,
		"TeamCreationError":           s.TeamCreationError,
		"TeamInviteError":             s.TeamInviteError,
		"TeamJoinError":               s.TeamJoinError,
		"EmailInviteError":            s.EmailInviteError,
		"TeamJoinSuccess":             s.TeamJoinSuccess,
		"TeamJoinSuccessTeamName":     s.TeamJoinSuccessTeamName,
		"SawChatBanner":               s.SawChatBanner,
		"SawSubteamsBanner":           s.SawSubteamsBanner,
		"DeletedTeams":                s.DeletedTeams,
		"NewTeams":                    s.NewTeams,
		"NewTeamRequests":             s.NewTeamRequests,
		"TeamAccessRequestsPending":   s.TeamAccessRequestsPending,
		"TeamsWithChosenChannels":     s.TeamsWithChosenChannels,
		"Teamnames":                   s.Teamnames,
		"TeamProfileAddList":          s.TeamProfileAddList,
		"TeamNameToAllowPromote":      ToGoMap(s.TeamNameToAllowPromote),
		"TeamNameToCanPerform":        ToGoMap(s.TeamNameToCanPerform),
		"TeamNameToChannelInfos":      channels,
		"TeamNameToID":                ToGoMap(s.TeamNameToID),
		"TeamNameToInvites":           ToGoMap(s.TeamNameToInvites),
		"TeamNameToIsOpen":            ToGoMap(s.TeamNameToIsOpen),
		"TeamNameToIsShowcasing":      ToGoMap(s.TeamNameToIsShowcasing),
		"TeamNameToLoadingInvites":    loading,
		"TeamNameToMembers":           members,
		"TeamNameToPublicitySettings": ToGoMap(s.TeamNameToPublicitySettings),
		"TeamNameToRequests":          ToGoMap(s.TeamNameToRequests),
		"TeamNameToResetUsers":        ToGoMap(s.TeamNameToResetUsers),
		"TeamNameToRetentionPolicy":   ToGoMap(s.TeamNameToRetentionPolicy),
		"TeamNameToRole":              ToGoMap(s.TeamNameToRole),
		"TeamNameToSettings":          ToGoMap(s.TeamNameToSettings),
		"TeamNameToSubteams":          ToGoMap(s.TeamNameToSubteams),
		"TeamMemberCounts":            ToGoMap(s.TeamMemberCounts),
		"TeamBuilding":                teamBuildingSummary(s.TeamBuilding),
	}
}

func teamBuildingSummary(tb *teambuilding.State) teambuilding.State {
	out := *tb
	out.SearchResults = nil
	return out
}
