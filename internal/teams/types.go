package teams

import (
	"github.com/benbjohnson/immutable"

	"github.com/m96-chan/slacko-teams/internal/teambuilding"
)

// Namespace is the team-building namespace owned by the teams slice.
const Namespace = "teams"

// TeamRoleType is a member's role within a team.
type TeamRoleType string

const (
	RoleNone   TeamRoleType = "none"
	RoleReader TeamRoleType = "reader"
	RoleWriter TeamRoleType = "writer"
	RoleAdmin  TeamRoleType = "admin"
	RoleOwner  TeamRoleType = "owner"
)

// ConversationMemberStatus mirrors the chat service's membership enum.
type ConversationMemberStatus int

const (
	MemberStatusActive ConversationMemberStatus = iota
	MemberStatusRemoved
	MemberStatusLeft
	MemberStatusPreview
	MemberStatusReset
	MemberStatusNeverJoined
)

func (s ConversationMemberStatus) String() string {
	switch s {
	case MemberStatusActive:
		return "active"
	case MemberStatusRemoved:
		return "removed"
	case MemberStatusLeft:
		return "left"
	case MemberStatusPreview:
		return "preview"
	case MemberStatusReset:
		return "reset"
	case MemberStatusNeverJoined:
		return "neverJoined"
	default:
		return "unknown"
	}
}

// AddUserToTeamsState tracks the "add user to teams" flow.
type AddUserToTeamsState string

const (
	AddUserNotStarted AddUserToTeamsState = "notStarted"
	AddUserPending    AddUserToTeamsState = "pending"
	AddUserSucceeded  AddUserToTeamsState = "succeeded"
	AddUserFailed     AddUserToTeamsState = "failed"
)

// RetentionPolicyType selects how long chat history is kept.
type RetentionPolicyType string

const (
	RetentionRetain  RetentionPolicyType = "retain"
	RetentionExpire  RetentionPolicyType = "expire"
	RetentionInherit RetentionPolicyType = "inherit"
	RetentionExplode RetentionPolicyType = "explode"
)

// RetentionPolicy is a team's message retention setting.
type RetentionPolicy struct {
	Type    RetentionPolicyType `json:"type"`
	Seconds int                 `json:"seconds"`
	Title   string              `json:"title"`
}

// MemberInfo describes one member of a team.
type MemberInfo struct {
	Username string       `json:"username"`
	FullName string       `json:"fullName"`
	Status   string       `json:"status"` // active, reset, deleted
	Type     TeamRoleType `json:"type"`
}

// InviteInfo is a pending invitation.
type InviteInfo struct {
	ID       string       `json:"id"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	Name     string       `json:"name"`
	Username string       `json:"username"`
	Role     TeamRoleType `json:"role"`
}

// RequestInfo is a pending access request.
type RequestInfo struct {
	Username string `json:"username"`
}

// ResetUser is a member whose account was reset.
type ResetUser struct {
	Username  string `json:"username"`
	EldestSeq int    `json:"eldestSeq"`
}

// TeamSettings holds open-team configuration.
type TeamSettings struct {
	Open   bool         `json:"open"`
	JoinAs TeamRoleType `json:"joinAs"`
}

// PublicitySettings controls what a team exposes on profiles.
type PublicitySettings struct {
	AnyMemberShowcase    bool `json:"anyMemberShowcase"`
	Description          bool `json:"description"`
	IgnoreAccessRequests bool `json:"ignoreAccessRequests"`
	Member               bool `json:"member"`
	Team                 bool `json:"team"`
}

// TeamOperations lists what the current user may do in a team.
type TeamOperations struct {
	ManageMembers          bool `json:"manageMembers"`
	ManageSubteams         bool `json:"manageSubteams"`
	CreateChannel          bool `json:"createChannel"`
	Chat                   bool `json:"chat"`
	DeleteChannel          bool `json:"deleteChannel"`
	RenameChannel          bool `json:"renameChannel"`
	EditChannelDescription bool `json:"editChannelDescription"`
	SetTeamShowcase        bool `json:"setTeamShowcase"`
	SetMemberShowcase      bool `json:"setMemberShowcase"`
	SetRetentionPolicy     bool `json:"setRetentionPolicy"`
	SetMinWriterRole       bool `json:"setMinWriterRole"`
	ChangeOpenTeam         bool `json:"changeOpenTeam"`
	LeaveTeam              bool `json:"leaveTeam"`
	JoinTeam               bool `json:"joinTeam"`
	SetPublicityAny        bool `json:"setPublicityAny"`
	ListFirst              bool `json:"listFirst"`
	ChangeTarsDisabled     bool `json:"changeTarsDisabled"`
	DeleteChatHistory      bool `json:"deleteChatHistory"`
	DeleteOtherMessages    bool `json:"deleteOtherMessages"`
	DeleteTeam             bool `json:"deleteTeam"`
	PinMessage             bool `json:"pinMessage"`
	ManageBots             bool `json:"manageBots"`
}

// ChannelInfo is the metadata shown for one conversation of a team.
type ChannelInfo struct {
	ChannelName     string                   `json:"channelname"`
	Description     string                   `json:"description"`
	MemberStatus    ConversationMemberStatus `json:"memberStatus"`
	NumParticipants int                      `json:"numParticipants"`
	HasAllMembers   bool                     `json:"hasAllMembers"`
	Mtime           int64                    `json:"mtime"`
}

// EmailInviteError reports addresses rejected by an email invite.
type EmailInviteError struct {
	Malformed []string
	Message   string
}

// DeletedTeamInfo names a team deleted by someone else.
type DeletedTeamInfo struct {
	TeamName  string `json:"teamName"`
	DeletedBy string `json:"deletedBy"`
}

// TeamProfileAddEntry is one row of the "add to team" profile list.
type TeamProfileAddEntry struct {
	TeamName       string `json:"teamName"`
	Open           bool   `json:"open"`
	DisabledReason string `json:"disabledReason"`
}

// Map is the persistent map used for every keyed field of State.
type Map[V any] = *immutable.Map[string, V]

// State is the teams slice of the client store. A State is never mutated
// once published: transitions copy the struct and replace only the fields
// they touch, so untouched maps and slices are shared between snapshots.
// Slice fields are read-only.
type State struct {
	AddUserToTeamsState   AddUserToTeamsState
	AddUserToTeamsResults string

	ChannelCreationError string
	TeamCreationError    string
	TeamInviteError      string
	TeamJoinError        string
	EmailInviteError     EmailInviteError

	TeamJoinSuccess         bool
	TeamJoinSuccessTeamName string

	SawChatBanner     bool
	SawSubteamsBanner bool

	DeletedTeams              []DeletedTeamInfo
	NewTeams                  []string
	NewTeamRequests           []string
	TeamAccessRequestsPending []string
	TeamsWithChosenChannels   []string
	Teamnames                 []string
	TeamProfileAddList        []TeamProfileAddEntry

	TeamNameToAllowPromote      Map[bool]
	TeamNameToCanPerform        Map[TeamOperations]
	TeamNameToChannelInfos      Map[Map[ChannelInfo]]
	TeamNameToID                Map[string]
	TeamNameToInvites           Map[[]InviteInfo]
	TeamNameToIsOpen            Map[bool]
	TeamNameToIsShowcasing      Map[bool]
	TeamNameToLoadingInvites    Map[Map[bool]]
	TeamNameToMembers           Map[Map[MemberInfo]]
	TeamNameToPublicitySettings Map[PublicitySettings]
	TeamNameToRequests          Map[[]RequestInfo]
	TeamNameToResetUsers        Map[[]ResetUser]
	TeamNameToRetentionPolicy   Map[RetentionPolicy]
	TeamNameToRole              Map[TeamRoleType]
	TeamNameToSettings          Map[TeamSettings]
	TeamNameToSubteams          Map[[]string]
	TeamMemberCounts            Map[int]

	TeamBuilding *teambuilding.State
}

func newMap[V any]() Map[V] {
	return immutable.NewMap[string, V](nil)
}

// MakeState returns the default teams state.
func MakeState() *State {
	return &State{
		AddUserToTeamsState:         AddUserNotStarted,
		EmailInviteError:            MakeEmailInviteError(nil, ""),
		TeamNameToAllowPromote:      newMap[bool](),
		TeamNameToCanPerform:        newMap[TeamOperations](),
		TeamNameToChannelInfos:      newMap[Map[ChannelInfo]](),
		TeamNameToID:                newMap[string](),
		TeamNameToInvites:           newMap[[]InviteInfo](),
		TeamNameToIsOpen:            newMap[bool](),
		TeamNameToIsShowcasing:      newMap[bool](),
		TeamNameToLoadingInvites:    newMap[Map[bool]](),
		TeamNameToMembers:           newMap[Map[MemberInfo]](),
		TeamNameToPublicitySettings: newMap[PublicitySettings](),
		TeamNameToRequests:          newMap[[]RequestInfo](),
		TeamNameToResetUsers:        newMap[[]ResetUser](),
		TeamNameToRetentionPolicy:   newMap[RetentionPolicy](),
		TeamNameToRole:              newMap[TeamRoleType](),
		TeamNameToSettings:          newMap[TeamSettings](),
		TeamNameToSubteams:          newMap[[]string](),
		TeamMemberCounts:            newMap[int](),
		TeamBuilding:                teambuilding.MakeState(),
	}
}

// MakeChannelInfo returns the record used when a channel is edited before
// its info has been loaded.
func MakeChannelInfo() ChannelInfo {
	return ChannelInfo{MemberStatus: MemberStatusActive}
}

// MakeEmailInviteError builds an EmailInviteError with a deduplicated,
// sorted copy of malformed.
func MakeEmailInviteError(malformed []string, message string) EmailInviteError {
	return EmailInviteError{Malformed: uniqueSorted(malformed), Message: message}
}
