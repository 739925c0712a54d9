package teams

import (
	"github.com/m96-chan/slacko-teams/internal/action"
)

// Actions handled by the reducer.
const (
	ResetStore                   action.Type = action.ResetStore
	SetChannelCreationError      action.Type = "teams:setChannelCreationError"
	SetTeamCreationError         action.Type = "teams:setTeamCreationError"
	ClearAddUserToTeamsResults   action.Type = "teams:clearAddUserToTeamsResults"
	SetAddUserToTeamsResults     action.Type = "teams:setAddUserToTeamsResults"
	SetTeamInviteError           action.Type = "teams:setTeamInviteError"
	SetTeamJoinError             action.Type = "teams:setTeamJoinError"
	SetTeamJoinSuccess           action.Type = "teams:setTeamJoinSuccess"
	SetTeamRetentionPolicy       action.Type = "teams:setTeamRetentionPolicy"
	SetTeamLoadingInvites        action.Type = "teams:setTeamLoadingInvites"
	ClearTeamRequests            action.Type = "teams:clearTeamRequests"
	SetTeamDetails               action.Type = "teams:setTeamDetails"
	SetMembers                   action.Type = "teams:setMembers"
	SetTeamCanPerform            action.Type = "teams:setTeamCanPerform"
	SetTeamPublicitySettings     action.Type = "teams:setTeamPublicitySettings"
	SetTeamChannelInfo           action.Type = "teams:setTeamChannelInfo"
	SetTeamChannels              action.Type = "teams:setTeamChannels"
	SetEmailInviteError          action.Type = "teams:setEmailInviteError"
	SetTeamInfo                  action.Type = "teams:setTeamInfo"
	SetTeamAccessRequestsPending action.Type = "teams:setTeamAccessRequestsPending"
	SetNewTeamInfo               action.Type = "teams:setNewTeamInfo"
	SetTeamProfileAddList        action.Type = "teams:setTeamProfileAddList"
	SetTeamSawChatBanner         action.Type = "teams:setTeamSawChatBanner"
	SetTeamSawSubteamsBanner     action.Type = "teams:setTeamSawSubteamsBanner"
	SetTeamsWithChosenChannels   action.Type = "teams:setTeamsWithChosenChannels"
	SetUpdatedChannelName        action.Type = "teams:setUpdatedChannelName"
	SetUpdatedTopic              action.Type = "teams:setUpdatedTopic"
	DeleteChannelInfo            action.Type = "teams:deleteChannelInfo"
	AddParticipant               action.Type = "teams:addParticipant"
	RemoveParticipant            action.Type = "teams:removeParticipant"
)

// Actions consumed by side-effect handlers only; the reducer passes them
// through untouched.
const (
	AddUserToTeams                action.Type = "teams:addUserToTeams"
	AddToTeam                     action.Type = "teams:addToTeam"
	ReAddToTeam                   action.Type = "teams:reAddToTeam"
	BadgeAppForTeams              action.Type = "teams:badgeAppForTeams"
	CheckRequestedAccess          action.Type = "teams:checkRequestedAccess"
	ClearNavBadges                action.Type = "teams:clearNavBadges"
	CreateChannel                 action.Type = "teams:createChannel"
	CreateNewTeam                 action.Type = "teams:createNewTeam"
	CreateNewTeamFromConversation action.Type = "teams:createNewTeamFromConversation"
	DeleteChannelConfirmed        action.Type = "teams:deleteChannelConfirmed"
	DeleteTeam                    action.Type = "teams:deleteTeam"
	EditMembership                action.Type = "teams:editMembership"
	EditTeamDescription           action.Type = "teams:editTeamDescription"
	UploadTeamAvatar              action.Type = "teams:uploadTeamAvatar"
	GetChannelInfo                action.Type = "teams:getChannelInfo"
	GetChannels                   action.Type = "teams:getChannels"
	GetDetails                    action.Type = "teams:getDetails"
	GetDetailsForAllTeams         action.Type = "teams:getDetailsForAllTeams"
	GetMembers                    action.Type = "teams:getMembers"
	GetTeamOperations             action.Type = "teams:getTeamOperations"
	GetTeamProfileAddList         action.Type = "teams:getTeamProfileAddList"
	GetTeamPublicity              action.Type = "teams:getTeamPublicity"
	GetTeamRetentionPolicy        action.Type = "teams:getTeamRetentionPolicy"
	GetTeams                      action.Type = "teams:getTeams"
	AddTeamWithChosenChannels     action.Type = "teams:addTeamWithChosenChannels"
	IgnoreRequest                 action.Type = "teams:ignoreRequest"
	InviteToTeamByEmail           action.Type = "teams:inviteToTeamByEmail"
	InviteToTeamByPhone           action.Type = "teams:inviteToTeamByPhone"
	JoinTeam                      action.Type = "teams:joinTeam"
	LeaveTeam                     action.Type = "teams:leaveTeam"
	LeftTeam                      action.Type = "teams:leftTeam"
	RemoveMemberOrPendingInvite   action.Type = "teams:removeMemberOrPendingInvite"
	RenameTeam                    action.Type = "teams:renameTeam"
	SaveChannelMembership         action.Type = "teams:saveChannelMembership"
	SetMemberPublicity            action.Type = "teams:setMemberPublicity"
	SetPublicity                  action.Type = "teams:setPublicity"
	SaveTeamRetentionPolicy       action.Type = "teams:saveTeamRetentionPolicy"
	UpdateChannelName             action.Type = "teams:updateChannelName"
	UpdateTopic                   action.Type = "teams:updateTopic"
)

// --- reducer actions ---

// SetChannelCreationErrorAction records the last channel creation failure. An empty Error clears it.
type SetChannelCreationErrorAction struct {
	Error string `json:"error"`
}

// SetTeamCreationErrorAction records the last team creation failure.
type SetTeamCreationErrorAction struct {
	Error string `json:"error"`
}

// ClearAddUserToTeamsResultsAction clears the results of the last add-to-teams request.
type ClearAddUserToTeamsResultsAction struct{}

// SetAddUserToTeamsResultsAction stores the outcome of an add-to-teams request.
type SetAddUserToTeamsResultsAction struct {
	Error   bool   `json:"error"`
	Results string `json:"results"`
}

// SetTeamInviteErrorAction records the last invite failure.
type SetTeamInviteErrorAction struct {
	Error string `json:"error"`
}

// SetTeamJoinErrorAction records the last join failure.
type SetTeamJoinErrorAction struct {
	Error string `json:"error"`
}

// SetTeamJoinSuccessAction records whether joining Teamname succeeded.
type SetTeamJoinSuccessAction struct {
	Success  bool   `json:"success"`
	Teamname string `json:"teamname"`
}

// SetTeamRetentionPolicyAction replaces a team's retention policy.
type SetTeamRetentionPolicyAction struct {
	Teamname        string          `json:"teamname"`
	RetentionPolicy RetentionPolicy `json:"retentionPolicy"`
}

// SetTeamLoadingInvitesAction flags an invite batch for a team as loading or done.
type SetTeamLoadingInvitesAction struct {
	Teamname       string `json:"teamname"`
	Invitees       string `json:"invitees"`
	LoadingInvites bool   `json:"loadingInvites"`
}

// ClearTeamRequestsAction drops the pending access requests of a team.
type ClearTeamRequestsAction struct {
	Teamname string `json:"teamname"`
}

// SetTeamDetailsAction replaces everything known about one team in one step. Requests merge into the existing map.
type SetTeamDetailsAction struct {
	Teamname string                   `json:"teamname"`
	Members  map[string]MemberInfo    `json:"members"`
	Settings TeamSettings             `json:"settings"`
	Invites  []InviteInfo             `json:"invites"`
	Subteams []string                 `json:"subteams"`
	Requests map[string][]RequestInfo `json:"requests"`
}

// SetMembersAction replaces a team's member list.
type SetMembersAction struct {
	Teamname string                `json:"teamname"`
	Members  map[string]MemberInfo `json:"members"`
}

// SetTeamCanPerformAction replaces the operations the user may perform in a team.
type SetTeamCanPerformAction struct {
	Teamname      string         `json:"teamname"`
	TeamOperation TeamOperations `json:"teamOperation"`
}

// SetTeamPublicitySettingsAction replaces a team's publicity settings.
type SetTeamPublicitySettingsAction struct {
	Teamname  string            `json:"teamname"`
	Publicity PublicitySettings `json:"publicity"`
}

// SetTeamChannelInfoAction sets one channel of a team, creating the team entry if needed.
type SetTeamChannelInfoAction struct {
	Teamname          string      `json:"teamname"`
	ConversationIDKey string      `json:"conversationIDKey"`
	ChannelInfo       ChannelInfo `json:"channelInfo"`
}

// SetTeamChannelsAction replaces every channel of a team.
type SetTeamChannelsAction struct {
	Teamname     string                 `json:"teamname"`
	ChannelInfos map[string]ChannelInfo `json:"channelInfos"`
}

// SetEmailInviteErrorAction records which addresses of an email invite were rejected.
type SetEmailInviteErrorAction struct {
	Message   string   `json:"message"`
	Malformed []string `json:"malformed"`
}

// SetTeamInfoAction replaces the team list and its per-team lookups.
type SetTeamInfoAction struct {
	Teamnames              []string                `json:"teamnames"`
	TeamNameToIsOpen       map[string]bool         `json:"teamNameToIsOpen"`
	TeamNameToRole         map[string]TeamRoleType `json:"teamNameToRole"`
	TeamMemberCounts       map[string]int          `json:"teammembercounts"`
	TeamNameToAllowPromote map[string]bool         `json:"teamNameToAllowPromote"`
	TeamNameToIsShowcasing map[string]bool         `json:"teamNameToIsShowcasing"`
	TeamNameToID           map[string]string       `json:"teamNameToID"`
}

// SetTeamAccessRequestsPendingAction lists the teams with an access request from the user.
type SetTeamAccessRequestsPendingAction struct {
	AccessRequestsPending []string `json:"accessRequestsPending"`
}

// SetNewTeamInfoAction stores the badge data for deleted, new and reset teams.
type SetNewTeamInfoAction struct {
	DeletedTeams         []DeletedTeamInfo      `json:"deletedTeams"`
	NewTeams             []string               `json:"newTeams"`
	NewTeamRequests      []string               `json:"newTeamRequests"`
	TeamNameToResetUsers map[string][]ResetUser `json:"teamNameToResetUsers"`
}

// SetTeamProfileAddListAction stores the teams a profile can be added to.
type SetTeamProfileAddListAction struct {
	Teamlist []TeamProfileAddEntry `json:"teamlist"`
}

// SetTeamSawChatBannerAction marks the chat banner as seen.
type SetTeamSawChatBannerAction struct{}

// SetTeamSawSubteamsBannerAction marks the subteams banner as seen.
type SetTeamSawSubteamsBannerAction struct{}

// SetTeamsWithChosenChannelsAction lists the teams where the user picked channels.
type SetTeamsWithChosenChannelsAction struct {
	TeamsWithChosenChannels []string `json:"teamsWithChosenChannels"`
}

// SetUpdatedChannelNameAction renames a channel in state after the server accepted it.
type SetUpdatedChannelNameAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
	NewChannelName    string `json:"newChannelName"`
}

// SetUpdatedTopicAction changes a channel description in state after the server accepted it.
type SetUpdatedTopicAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
	NewTopic          string `json:"newTopic"`
}

// DeleteChannelInfoAction removes one channel from a team.
type DeleteChannelInfoAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
}

// AddParticipantAction marks the user as an active member of a channel.
type AddParticipantAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
}

// RemoveParticipantAction marks the user as having left a channel.
type RemoveParticipantAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
}

func (SetChannelCreationErrorAction) Type() action.Type      { return SetChannelCreationError }
func (SetTeamCreationErrorAction) Type() action.Type         { return SetTeamCreationError }
func (ClearAddUserToTeamsResultsAction) Type() action.Type   { return ClearAddUserToTeamsResults }
func (SetAddUserToTeamsResultsAction) Type() action.Type     { return SetAddUserToTeamsResults }
func (SetTeamInviteErrorAction) Type() action.Type           { return SetTeamInviteError }
func (SetTeamJoinErrorAction) Type() action.Type             { return SetTeamJoinError }
func (SetTeamJoinSuccessAction) Type() action.Type           { return SetTeamJoinSuccess }
func (SetTeamRetentionPolicyAction) Type() action.Type       { return SetTeamRetentionPolicy }
func (SetTeamLoadingInvitesAction) Type() action.Type        { return SetTeamLoadingInvites }
func (ClearTeamRequestsAction) Type() action.Type            { return ClearTeamRequests }
func (SetTeamDetailsAction) Type() action.Type               { return SetTeamDetails }
func (SetMembersAction) Type() action.Type                   { return SetMembers }
func (SetTeamCanPerformAction) Type() action.Type            { return SetTeamCanPerform }
func (SetTeamPublicitySettingsAction) Type() action.Type     { return SetTeamPublicitySettings }
func (SetTeamChannelInfoAction) Type() action.Type           { return SetTeamChannelInfo }
func (SetTeamChannelsAction) Type() action.Type              { return SetTeamChannels }
func (SetEmailInviteErrorAction) Type() action.Type          { return SetEmailInviteError }
func (SetTeamInfoAction) Type() action.Type                  { return SetTeamInfo }
func (SetTeamAccessRequestsPendingAction) Type() action.Type { return SetTeamAccessRequestsPending }
func (SetNewTeamInfoAction) Type() action.Type               { return SetNewTeamInfo }
func (SetTeamProfileAddListAction) Type() action.Type        { return SetTeamProfileAddList }
func (SetTeamSawChatBannerAction) Type() action.Type         { return SetTeamSawChatBanner }
func (SetTeamSawSubteamsBannerAction) Type() action.Type     { return SetTeamSawSubteamsBanner }
func (SetTeamsWithChosenChannelsAction) Type() action.Type   { return SetTeamsWithChosenChannels }
func (SetUpdatedChannelNameAction) Type() action.Type        { return SetUpdatedChannelName }
func (SetUpdatedTopicAction) Type() action.Type              { return SetUpdatedTopic }
func (DeleteChannelInfoAction) Type() action.Type            { return DeleteChannelInfo }
func (AddParticipantAction) Type() action.Type               { return AddParticipant }
func (RemoveParticipantAction) Type() action.Type            { return RemoveParticipant }

// --- side-effect actions ---

// UserRolePair names a user to add and the role they receive.
type UserRolePair struct {
	Assertion string       `json:"assertion"`
	Role      TeamRoleType `json:"role"`
}

// ChannelMembershipState maps conversation ids to "member of" flags.
type ChannelMembershipState map[string]bool

// AddUserToTeamsAction asks to add User to several teams with one role.
type AddUserToTeamsAction struct {
	Role  TeamRoleType `json:"role"`
	Teams []string     `json:"teams"`
	User  string       `json:"user"`
}

// AddToTeamAction asks to add users to a team.
type AddToTeamAction struct {
	Teamname             string         `json:"teamname"`
	Users                []UserRolePair `json:"users"`
	SendChatNotification bool           `json:"sendChatNotification"`
}

// ReAddToTeamAction asks to re-add a user who reset their account.
type ReAddToTeamAction struct {
	Teamname string `json:"teamname"`
	Username string `json:"username"`
}

// BadgeAppForTeamsAction asks to update the app badges for team changes.
type BadgeAppForTeamsAction struct {
	DeletedTeams          []DeletedTeamInfo `json:"deletedTeams"`
	NewTeamNames          []string          `json:"newTeamNames"`
	NewTeamAccessRequests []string          `json:"newTeamAccessRequests"`
	TeamsWithResetUsers   []ResetUser       `json:"teamsWithResetUsers"`
}

// CheckRequestedAccessAction asks whether the user has requested access to a team.
type CheckRequestedAccessAction struct {
	Teamname string `json:"teamname"`
}

// ClearNavBadgesAction asks to clear the team badges.
type ClearNavBadgesAction struct{}

// CreateChannelAction asks to create a channel in a team.
type CreateChannelAction struct {
	Teamname           string `json:"teamname"`
	Channelname        string `json:"channelname"`
	Description        string `json:"description"`
	NavToChatOnSuccess bool   `json:"navToChatOnSuccess"`
}

// CreateNewTeamAction asks to create a team.
type CreateNewTeamAction struct {
	Teamname    string `json:"teamname"`
	JoinSubteam bool   `json:"joinSubteam"`
}

// CreateNewTeamFromConversationAction asks to create a team from the members of a conversation.
type CreateNewTeamFromConversationAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
}

// DeleteChannelConfirmedAction asks to delete a channel after the user confirmed.
type DeleteChannelConfirmedAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
}

// DeleteTeamAction asks to delete a team.
type DeleteTeamAction struct {
	Teamname string `json:"teamname"`
}

// EditMembershipAction asks to change a member's role.
type EditMembershipAction struct {
	Teamname string       `json:"teamname"`
	Username string       `json:"username"`
	Role     TeamRoleType `json:"role"`
}

// EditTeamDescriptionAction asks to change a team's description.
type EditTeamDescriptionAction struct {
	Teamname    string `json:"teamname"`
	Description string `json:"description"`
}

// UploadTeamAvatarAction asks to set a team's avatar from a file.
type UploadTeamAvatarAction struct {
	Teamname             string `json:"teamname"`
	Filename             string `json:"filename"`
	SendChatNotification bool   `json:"sendChatNotification"`
}

// GetChannelInfoAction asks for fresh details of one channel.
type GetChannelInfoAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
}

// GetChannelsAction asks for the channel list of a team.
type GetChannelsAction struct {
	Teamname string `json:"teamname"`
}

// GetDetailsAction asks for the details of one team.
type GetDetailsAction struct {
	Teamname string `json:"teamname"`
}

// GetDetailsForAllTeamsAction asks for the details of every team.
type GetDetailsForAllTeamsAction struct{}

// GetMembersAction asks for a team's members.
type GetMembersAction struct {
	Teamname string `json:"teamname"`
}

// GetTeamOperationsAction asks which operations the user may perform in a team.
type GetTeamOperationsAction struct {
	Teamname string `json:"teamname"`
}

// GetTeamProfileAddListAction asks which teams a profile can be added to.
type GetTeamProfileAddListAction struct {
	Username string `json:"username"`
}

// GetTeamPublicityAction asks for a team's publicity settings.
type GetTeamPublicityAction struct {
	Teamname string `json:"teamname"`
}

// GetTeamRetentionPolicyAction asks for a team's retention policy.
type GetTeamRetentionPolicyAction struct {
	Teamname string `json:"teamname"`
}

// GetTeamsAction asks for the user's teams.
type GetTeamsAction struct{}

// AddTeamWithChosenChannelsAction records that the user picked channels in a team.
type AddTeamWithChosenChannelsAction struct {
	Teamname string `json:"teamname"`
}

// IgnoreRequestAction asks to ignore an access request.
type IgnoreRequestAction struct {
	Teamname string `json:"teamname"`
	Username string `json:"username"`
}

// InviteToTeamByEmailAction asks to invite a comma-separated list of addresses.
type InviteToTeamByEmailAction struct {
	Teamname   string       `json:"teamname"`
	Invitees   string       `json:"invitees"`
	Role       TeamRoleType `json:"role"`
	LoadingKey string       `json:"loadingKey,omitempty"`
}

// InviteToTeamByPhoneAction asks to invite someone by phone number.
type InviteToTeamByPhoneAction struct {
	Teamname    string       `json:"teamname"`
	PhoneNumber string       `json:"phoneNumber"`
	FullName    string       `json:"fullName"`
	Role        TeamRoleType `json:"role"`
	LoadingKey  string       `json:"loadingKey,omitempty"`
}

// JoinTeamAction asks to join a team.
type JoinTeamAction struct {
	Teamname string `json:"teamname"`
}

// LeaveTeamAction asks to leave a team.
type LeaveTeamAction struct {
	Teamname string `json:"teamname"`
	Context  string `json:"context"` // "teams" or "chat"
}

// LeftTeamAction reports that the user left a team.
type LeftTeamAction struct {
	Teamname string `json:"teamname"`
	Context  string `json:"context"`
}

// RemoveMemberOrPendingInviteAction asks to remove a member or cancel an invite.
type RemoveMemberOrPendingInviteAction struct {
	Teamname   string `json:"teamname"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	InviteID   string `json:"inviteID"`
	LoadingKey string `json:"loadingKey,omitempty"`
}

// RenameTeamAction asks to rename a subteam.
type RenameTeamAction struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

// SaveChannelMembershipAction asks to join and leave channels to match NewChannelState.
type SaveChannelMembershipAction struct {
	Teamname        string                 `json:"teamname"`
	OldChannelState ChannelMembershipState `json:"oldChannelState"`
	NewChannelState ChannelMembershipState `json:"newChannelState"`
}

// SetMemberPublicityAction asks to show or hide the team on the user's profile.
type SetMemberPublicityAction struct {
	Teamname string `json:"teamname"`
	Showcase bool   `json:"showcase"`
}

// SetPublicityAction asks to change a team's publicity settings.
type SetPublicityAction struct {
	Teamname string            `json:"teamname"`
	Settings PublicitySettings `json:"settings"`
}

// SaveTeamRetentionPolicyAction asks to change a team's retention policy.
type SaveTeamRetentionPolicyAction struct {
	Teamname string          `json:"teamname"`
	Policy   RetentionPolicy `json:"policy"`
}

// UpdateChannelNameAction asks to rename a channel.
type UpdateChannelNameAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
	NewChannelName    string `json:"newChannelName"`
}

// UpdateTopicAction asks to change a channel's topic.
type UpdateTopicAction struct {
	Teamname          string `json:"teamname"`
	ConversationIDKey string `json:"conversationIDKey"`
	NewTopic          string `json:"newTopic"`
}

func (AddUserToTeamsAction) Type() action.Type                { return AddUserToTeams }
func (AddToTeamAction) Type() action.Type                     { return AddToTeam }
func (ReAddToTeamAction) Type() action.Type                   { return ReAddToTeam }
func (BadgeAppForTeamsAction) Type() action.Type              { return BadgeAppForTeams }
func (CheckRequestedAccessAction) Type() action.Type          { return CheckRequestedAccess }
func (ClearNavBadgesAction) Type() action.Type                { return ClearNavBadges }
func (CreateChannelAction) Type() action.Type                 { return CreateChannel }
func (CreateNewTeamAction) Type() action.Type                 { return CreateNewTeam }
func (CreateNewTeamFromConversationAction) Type() action.Type { return CreateNewTeamFromConversation }
func (DeleteChannelConfirmedAction) Type() action.Type        { return DeleteChannelConfirmed }
func (DeleteTeamAction) Type() action.Type                    { return DeleteTeam }
func (EditMembershipAction) Type() action.Type                { return EditMembership }
func (EditTeamDescriptionAction) Type() action.Type           { return EditTeamDescription }
func (UploadTeamAvatarAction) Type() action.Type              { return UploadTeamAvatar }
func (GetChannelInfoAction) Type() action.Type                { return GetChannelInfo }
func (GetChannelsAction) Type() action.Type                   { return GetChannels }
func (GetDetailsAction) Type() action.Type                    { return GetDetails }
func (GetDetailsForAllTeamsAction) Type() action.Type         { return GetDetailsForAllTeams }
func (GetMembersAction) Type() action.Type                    { return GetMembers }
func (GetTeamOperationsAction) Type() action.Type             { return GetTeamOperations }
func (GetTeamProfileAddListAction) Type() action.Type         { return GetTeamProfileAddList }
func (GetTeamPublicityAction) Type() action.Type              { return GetTeamPublicity }
func (GetTeamRetentionPolicyAction) Type() action.Type        { return GetTeamRetentionPolicy }
func (GetTeamsAction) Type() action.Type                      { return GetTeams }
func (AddTeamWithChosenChannelsAction) Type() action.Type     { return AddTeamWithChosenChannels }
func (IgnoreRequestAction) Type() action.Type                 { return IgnoreRequest }
func (InviteToTeamByEmailAction) Type() action.Type           { return InviteToTeamByEmail }
func (InviteToTeamByPhoneAction) Type() action.Type           { return InviteToTeamByPhone }
func (JoinTeamAction) Type() action.Type                      { return JoinTeam }
func (LeaveTeamAction) Type() action.Type                     { return LeaveTeam }
func (LeftTeamAction) Type() action.Type                      { return LeftTeam }
func (RemoveMemberOrPendingInviteAction) Type() action.Type   { return RemoveMemberOrPendingInvite }
func (RenameTeamAction) Type() action.Type                    { return RenameTeam }
func (SaveChannelMembershipAction) Type() action.Type         { return SaveChannelMembership }
func (SetMemberPublicityAction) Type() action.Type            { return SetMemberPublicity }
func (SetPublicityAction) Type() action.Type                  { return SetPublicity }
func (SaveTeamRetentionPolicyAction) Type() action.Type       { return SaveTeamRetentionPolicy }
func (UpdateChannelNameAction) Type() action.Type             { return UpdateChannelName }
func (UpdateTopicAction) Type() action.Type                   { return UpdateTopic }

// sideEffectTypes lists the actions the reducer deliberately ignores.
var sideEffectTypes = []action.Type{
	AddUserToTeams,
	AddToTeam,
	ReAddToTeam,
	BadgeAppForTeams,
	CheckRequestedAccess,
	ClearNavBadges,
	CreateChannel,
	CreateNewTeam,
	CreateNewTeamFromConversation,
	DeleteChannelConfirmed,
	DeleteTeam,
	EditMembership,
	EditTeamDescription,
	UploadTeamAvatar,
	GetChannelInfo,
	GetChannels,
	GetDetails,
	GetDetailsForAllTeams,
	GetMembers,
	GetTeamOperations,
	GetTeamProfileAddList,
	GetTeamPublicity,
	GetTeamRetentionPolicy,
	GetTeams,
	AddTeamWithChosenChannels,
	IgnoreRequest,
	InviteToTeamByEmail,
	InviteToTeamByPhone,
	JoinTeam,
	LeaveTeam,
	LeftTeam,
	RemoveMemberOrPendingInvite,
	RenameTeam,
	SaveChannelMembership,
	SetMemberPublicity,
	SetPublicity,
	SaveTeamRetentionPolicy,
	UpdateChannelName,
	UpdateTopic,
}
