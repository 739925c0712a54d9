package teams

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/m96-chan/slacko-teams/internal/action"
	"github.com/m96-chan/slacko-teams/internal/teambuilding"
)

// handler computes the next state for one action type. It must return s
// itself when nothing changes.
type handler func(s *State, a action.Action) *State

// Reduce returns the state that follows s after a. It never mutates s: the
// result shares every untouched field with s, and is s itself for actions
// that only drive side effects. A nil s is treated as MakeState(), and a
// pointer action as the value it points to.
func Reduce(s *State, a action.Action) *State {
	if s == nil {
		s = MakeState()
	}
	a = action.Value(a)
	h, ok := handlers[a.Type()]
	if !ok {
		slog.Warn("teams: no handler for action", "type", a.Type())
		return s
	}
	return h(s, a)
}

// on adapts a typed handler to the registry.
func on[A action.Action](fn func(*State, A) *State) handler {
	return func(s *State, a action.Action) *State {
		typed, ok := a.(A)
		if !ok {
			slog.Warn("teams: unexpected payload",
				"type", a.Type(),
				"data_type", fmt.Sprintf("%T", a))
			return s
		}
		return fn(s, typed)
	}
}

// update copies s, applies fn to the copy and returns it.
func update(s *State, fn func(next *State)) *State {
	next := *s
	fn(&next)
	return &next
}

// passthrough leaves the state for side-effect handlers.
func passthrough(s *State, _ action.Action) *State { return s }

// delegateTeamBuilding forwards an action to the team-building reducer for
// the teams namespace.
func delegateTeamBuilding(s *State, a action.Action) *State {
	sub := teambuilding.Reduce(Namespace, s.TeamBuilding, a)
	if sub == s.TeamBuilding {
		return s
	}
	return update(s, func(n *State) { n.TeamBuilding = sub })
}

var handlers = buildHandlers()

func init() {
	if err := checkCoverage(NewCatalog(), handlers); err != nil {
		panic(err)
	}
}

// checkCoverage verifies that the registry and the catalog describe the same
// set of action types.
func checkCoverage(c *action.Catalog, h map[action.Type]handler) error {
	for _, t := range c.Types() {
		if _, ok := h[t]; !ok {
			return fmt.Errorf("teams: action %q has no reducer branch", t)
		}
	}
	for t := range h {
		if !c.Has(t) {
			return fmt.Errorf("teams: reducer branch %q is not in the catalog", t)
		}
	}
	return nil
}

func buildHandlers() map[action.Type]handler {
	h := map[action.Type]handler{
		ResetStore: func(*State, action.Action) *State { return MakeState() },

		SetChannelCreationError: on(func(s *State, a SetChannelCreationErrorAction) *State {
			return update(s, func(n *State) { n.ChannelCreationError = a.Error })
		}),
		SetTeamCreationError: on(func(s *State, a SetTeamCreationErrorAction) *State {
			return update(s, func(n *State) { n.TeamCreationError = a.Error })
		}),
		ClearAddUserToTeamsResults: on(func(s *State, _ ClearAddUserToTeamsResultsAction) *State {
			return update(s, func(n *State) {
				n.AddUserToTeamsResults = ""
				n.AddUserToTeamsState = AddUserNotStarted
			})
		}),
		SetAddUserToTeamsResults: on(func(s *State, a SetAddUserToTeamsResultsAction) *State {
			return update(s, func(n *State) {
				n.AddUserToTeamsResults = a.Results
				n.AddUserToTeamsState = AddUserSucceeded
				if a.Error {
					n.AddUserToTeamsState = AddUserFailed
				}
			})
		}),
		SetTeamInviteError: on(func(s *State, a SetTeamInviteErrorAction) *State {
			return update(s, func(n *State) { n.TeamInviteError = a.Error })
		}),
		SetTeamJoinError: on(func(s *State, a SetTeamJoinErrorAction) *State {
			return update(s, func(n *State) { n.TeamJoinError = a.Error })
		}),
		SetTeamJoinSuccess: on(func(s *State, a SetTeamJoinSuccessAction) *State {
			return update(s, func(n *State) {
				n.TeamJoinSuccess = a.Success
				n.TeamJoinSuccessTeamName = a.Teamname
			})
		}),
		SetTeamRetentionPolicy: on(func(s *State, a SetTeamRetentionPolicyAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToRetentionPolicy = s.TeamNameToRetentionPolicy.Set(a.Teamname, a.RetentionPolicy)
			})
		}),
		SetTeamLoadingInvites: on(func(s *State, a SetTeamLoadingInvitesAction) *State {
			loading, ok := s.TeamNameToLoadingInvites.Get(a.Teamname)
			if !ok {
				loading = newMap[bool]()
			}
			return update(s, func(n *State) {
				n.TeamNameToLoadingInvites = s.TeamNameToLoadingInvites.Set(a.Teamname, loading.Set(a.Invitees, a.LoadingInvites))
			})
		}),
		ClearTeamRequests: on(func(s *State, a ClearTeamRequestsAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToRequests = s.TeamNameToRequests.Set(a.Teamname, []RequestInfo{})
			})
		}),
		SetTeamDetails: on(func(s *State, a SetTeamDetailsAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToMembers = s.TeamNameToMembers.Set(a.Teamname, fromMap(a.Members))
				n.TeamNameToSettings = s.TeamNameToSettings.Set(a.Teamname, a.Settings)
				n.TeamNameToInvites = s.TeamNameToInvites.Set(a.Teamname, slices.Clone(a.Invites))
				n.TeamNameToSubteams = s.TeamNameToSubteams.Set(a.Teamname, uniqueSorted(a.Subteams))
				requests := s.TeamNameToRequests
				for team, reqs := range a.Requests {
					requests = requests.Set(team, slices.Clone(reqs))
				}
				n.TeamNameToRequests = requests
			})
		}),
		SetMembers: on(func(s *State, a SetMembersAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToMembers = s.TeamNameToMembers.Set(a.Teamname, fromMap(a.Members))
			})
		}),
		SetTeamCanPerform: on(func(s *State, a SetTeamCanPerformAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToCanPerform = s.TeamNameToCanPerform.Set(a.Teamname, a.TeamOperation)
			})
		}),
		SetTeamPublicitySettings: on(func(s *State, a SetTeamPublicitySettingsAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToPublicitySettings = s.TeamNameToPublicitySettings.Set(a.Teamname, a.Publicity)
			})
		}),
		SetTeamChannelInfo: on(func(s *State, a SetTeamChannelInfoAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToChannelInfos = upsertChannel(s.TeamNameToChannelInfos, a.Teamname, a.ConversationIDKey,
					func(ChannelInfo) ChannelInfo { return a.ChannelInfo })
			})
		}),
		SetTeamChannels: on(func(s *State, a SetTeamChannelsAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToChannelInfos = s.TeamNameToChannelInfos.Set(a.Teamname, fromMap(a.ChannelInfos))
			})
		}),
		SetEmailInviteError: on(func(s *State, a SetEmailInviteErrorAction) *State {
			return update(s, func(n *State) {
				n.EmailInviteError = MakeEmailInviteError(a.Malformed, a.Message)
			})
		}),
		SetTeamInfo: on(func(s *State, a SetTeamInfoAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToAllowPromote = fromMap(a.TeamNameToAllowPromote)
				n.TeamNameToID = fromMap(a.TeamNameToID)
				n.TeamNameToIsOpen = fromMap(a.TeamNameToIsOpen)
				n.TeamNameToIsShowcasing = fromMap(a.TeamNameToIsShowcasing)
				n.TeamNameToRole = fromMap(a.TeamNameToRole)
				n.TeamMemberCounts = fromMap(a.TeamMemberCounts)
				n.Teamnames = uniqueSorted(a.Teamnames)
			})
		}),
		SetTeamAccessRequestsPending: on(func(s *State, a SetTeamAccessRequestsPendingAction) *State {
			return update(s, func(n *State) { n.TeamAccessRequestsPending = uniqueSorted(a.AccessRequestsPending) })
		}),
		SetNewTeamInfo: on(func(s *State, a SetNewTeamInfoAction) *State {
			return update(s, func(n *State) {
				n.DeletedTeams = slices.Clone(a.DeletedTeams)
				n.NewTeamRequests = slices.Clone(a.NewTeamRequests)
				n.NewTeams = uniqueSorted(a.NewTeams)
				n.TeamNameToResetUsers = fromSliceMap(a.TeamNameToResetUsers)
			})
		}),
		SetTeamProfileAddList: on(func(s *State, a SetTeamProfileAddListAction) *State {
			return update(s, func(n *State) { n.TeamProfileAddList = slices.Clone(a.Teamlist) })
		}),
		SetTeamSawChatBanner: on(func(s *State, _ SetTeamSawChatBannerAction) *State {
			return update(s, func(n *State) { n.SawChatBanner = true })
		}),
		SetTeamSawSubteamsBanner: on(func(s *State, _ SetTeamSawSubteamsBannerAction) *State {
			return update(s, func(n *State) { n.SawSubteamsBanner = true })
		}),
		SetTeamsWithChosenChannels: on(func(s *State, a SetTeamsWithChosenChannelsAction) *State {
			return update(s, func(n *State) { n.TeamsWithChosenChannels = uniqueSorted(a.TeamsWithChosenChannels) })
		}),
		SetUpdatedChannelName: on(func(s *State, a SetUpdatedChannelNameAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToChannelInfos = upsertChannel(s.TeamNameToChannelInfos, a.Teamname, a.ConversationIDKey,
					func(ci ChannelInfo) ChannelInfo {
						ci.ChannelName = a.NewChannelName
						return ci
					})
			})
		}),
		SetUpdatedTopic: on(func(s *State, a SetUpdatedTopicAction) *State {
			return update(s, func(n *State) {
				n.TeamNameToChannelInfos = upsertChannel(s.TeamNameToChannelInfos, a.Teamname, a.ConversationIDKey,
					func(ci ChannelInfo) ChannelInfo {
						ci.Description = a.NewTopic
						return ci
					})
			})
		}),
		DeleteChannelInfo: on(func(s *State, a DeleteChannelInfoAction) *State {
			byConv, ok := s.TeamNameToChannelInfos.Get(a.Teamname)
			if !ok {
				return s
			}
			if _, ok := byConv.Get(a.ConversationIDKey); !ok {
				return s
			}
			return update(s, func(n *State) {
				n.TeamNameToChannelInfos = s.TeamNameToChannelInfos.Set(a.Teamname, byConv.Delete(a.ConversationIDKey))
			})
		}),
		AddParticipant: on(func(s *State, a AddParticipantAction) *State {
			return setMemberStatus(s, a.Teamname, a.ConversationIDKey, MemberStatusActive)
		}),
		RemoveParticipant: on(func(s *State, a RemoveParticipantAction) *State {
			return setMemberStatus(s, a.Teamname, a.ConversationIDKey, MemberStatusLeft)
		}),
	}

	for _, t := range sideEffectTypes {
		h[t] = passthrough
	}
	for _, t := range teambuilding.Types() {
		h[t] = delegateTeamBuilding
	}
	return h
}

func setMemberStatus(s *State, team, conv string, status ConversationMemberStatus) *State {
	return update(s, func(n *State) {
		n.TeamNameToChannelInfos = upsertChannel(s.TeamNameToChannelInfos, team, conv,
			func(ci ChannelInfo) ChannelInfo {
				ci.MemberStatus = status
				return ci
			})
	})
}
