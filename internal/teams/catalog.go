package teams

import (
	"github.com/m96-chan/slacko-teams/internal/action"
	"github.com/m96-chan/slacko-teams/internal/teambuilding"
)

// NewCatalog returns the closed set of actions the teams reducer accepts:
// the shared reset, every teams action and every team-building action.
func NewCatalog() *action.Catalog {
	c := action.NewCatalog()
	c.Register(func() action.Action { return &action.ResetStoreAction{} })
	for _, ctor := range teamsConstructors {
		c.Register(ctor)
	}
	teambuilding.Register(c)
	return c
}

var teamsConstructors = []func() action.Action{
	func() action.Action { return &SetChannelCreationErrorAction{} },
	func() action.Action { return &SetTeamCreationErrorAction{} },
	func() action.Action { return &ClearAddUserToTeamsResultsAction{} },
	func() action.Action { return &SetAddUserToTeamsResultsAction{} },
	func() action.Action { return &SetTeamInviteErrorAction{} },
	func() action.Action { return &SetTeamJoinErrorAction{} },
	func() action.Action { return &SetTeamJoinSuccessAction{} },
	func() action.Action { return &SetTeamRetentionPolicyAction{} },
	func() action.Action { return &SetTeamLoadingInvitesAction{} },
	func() action.Action { return &ClearTeamRequestsAction{} },
	func() action.Action { return &SetTeamDetailsAction{} },
	func() action.Action { return &SetMembersAction{} },
	func() action.Action { return &SetTeamCanPerformAction{} },
	func() action.Action { return &SetTeamPublicitySettingsAction{} },
	func() action.Action { return &SetTeamChannelInfoAction{} },
	func() action.Action { return &SetTeamChannelsAction{} },
	func() action.Action { return &SetEmailInviteErrorAction{} },
	func() action.Action { return &SetTeamInfoAction{} },
	func() action.Action { return &SetTeamAccessRequestsPendingAction{} },
	func() action.Action { return &SetNewTeamInfoAction{} },
	func() action.Action { return &SetTeamProfileAddListAction{} },
	func() action.Action { return &SetTeamSawChatBannerAction{} },
	func() action.Action { return &SetTeamSawSubteamsBannerAction{} },
	func() action.Action { return &SetTeamsWithChosenChannelsAction{} },
	func() action.Action { return &SetUpdatedChannelNameAction{} },
	func() action.Action { return &SetUpdatedTopicAction{} },
	func() action.Action { return &DeleteChannelInfoAction{} },
	func() action.Action { return &AddParticipantAction{} },
	func() action.Action { return &RemoveParticipantAction{} },

	func() action.Action { return &AddUserToTeamsAction{} },
	func() action.Action { return &AddToTeamAction{} },
	func() action.Action { return &ReAddToTeamAction{} },
	func() action.Action { return &BadgeAppForTeamsAction{} },
	func() action.Action { return &CheckRequestedAccessAction{} },
	func() action.Action { return &ClearNavBadgesAction{} },
	func() action.Action { return &CreateChannelAction{} },
	func() action.Action { return &CreateNewTeamAction{} },
	func() action.Action { return &CreateNewTeamFromConversationAction{} },
	func() action.Action { return &DeleteChannelConfirmedAction{} },
	func() action.Action { return &DeleteTeamAction{} },
	func() action.Action { return &EditMembershipAction{} },
	func() action.Action { return &EditTeamDescriptionAction{} },
	func() action.Action { return &UploadTeamAvatarAction{} },
	func() action.Action { return &GetChannelInfoAction{} },
	func() action.Action { return &GetChannelsAction{} },
	func() action.Action { return &GetDetailsAction{} },
	func() action.Action { return &GetDetailsForAllTeamsAction{} },
	func() action.Action { return &GetMembersAction{} },
	func() action.Action { return &GetTeamOperationsAction{} },
	func() action.Action { return &GetTeamProfileAddListAction{} },
	func() action.Action { return &GetTeamPublicityAction{} },
	func() action.Action { return &GetTeamRetentionPolicyAction{} },
	func() action.Action { return &GetTeamsAction{} },
	func() action.Action { return &AddTeamWithChosenChannelsAction{} },
	func() action.Action { return &IgnoreRequestAction{} },
	func() action.Action { return &InviteToTeamByEmailAction{} },
	func() action.Action { return &InviteToTeamByPhoneAction{} },
	func() action.Action { return &JoinTeamAction{} },
	func() action.Action { return &LeaveTeamAction{} },
	func() action.Action { return &LeftTeamAction{} },
	func() action.Action { return &RemoveMemberOrPendingInviteAction{} },
	func() action.Action { return &RenameTeamAction{} },
	func() action.Action { return &SaveChannelMembershipAction{} },
	func() action.Action { return &SetMemberPublicityAction{} },
	func() action.Action { return &SetPublicityAction{} },
	func() action.Action { return &SaveTeamRetentionPolicyAction{} },
	func() action.Action { return &UpdateChannelNameAction{} },
	func() action.Action { return &UpdateTopicAction{} },
}
