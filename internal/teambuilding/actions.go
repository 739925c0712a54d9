package teambuilding

import (
	"github.com/m96-chan/slacko-teams/internal/action"
)

// Team-building action types.
const (
	CancelTeamBuilding       action.Type = "team-building:cancelTeamBuilding"
	AddUsersToTeamSoFar      action.Type = "team-building:addUsersToTeamSoFar"
	RemoveUsersFromTeamSoFar action.Type = "team-building:removeUsersFromTeamSoFar"
	SearchResultsLoaded      action.Type = "team-building:searchResultsLoaded"
	FinishedTeamBuilding     action.Type = "team-building:finishedTeamBuilding"
	FetchedUserRecs          action.Type = "team-building:fetchedUserRecs"
	FetchUserRecs            action.Type = "team-building:fetchUserRecs"
	Search                   action.Type = "team-building:search"
	SelectRole               action.Type = "team-building:selectRole"
	LabelsSeen               action.Type = "team-building:labelsSeen"
	ChangeSendNotification   action.Type = "team-building:changeSendNotification"
)

// Namespaced is implemented by every team-building action except the
// shared reset.
type Namespaced interface {
	action.Action
	ActionNamespace() string
}

// CancelTeamBuildingAction abandons the flow and resets the sub-state.
type CancelTeamBuildingAction struct {
	Namespace string `json:"namespace"`
}

// AddUsersToTeamSoFarAction adds users to the selection, skipping ones already in it.
type AddUsersToTeamSoFarAction struct {
	Namespace string `json:"namespace"`
	Users     []User `json:"users"`
}

// RemoveUsersFromTeamSoFarAction removes users from the selection by id.
type RemoveUsersFromTeamSoFarAction struct {
	Namespace string   `json:"namespace"`
	Users     []string `json:"users"` // user ids
}

// SearchResultsLoadedAction stores the results for one query and service.
type SearchResultsLoadedAction struct {
	Namespace string `json:"namespace"`
	Query     string `json:"query"`
	Service   string `json:"service"`
	Users     []User `json:"users"`
}

// FinishedTeamBuildingAction ends the flow and keeps the selection for the caller.
type FinishedTeamBuildingAction struct {
	Namespace string `json:"namespace"`
	Teamname  string `json:"teamname,omitempty"`
}

// FetchedUserRecsAction stores the recommended users.
type FetchedUserRecsAction struct {
	Namespace string `json:"namespace"`
	Users     []User `json:"users"`
}

// FetchUserRecsAction asks for recommended users.
type FetchUserRecsAction struct {
	Namespace string `json:"namespace"`
}

// SearchAction starts a search. A zero Limit uses the default.
type SearchAction struct {
	Namespace string `json:"namespace"`
	Query     string `json:"query"`
	Service   string `json:"service"`
	Limit     int    `json:"limit,omitempty"`
}

// SelectRoleAction picks the role new members receive.
type SelectRoleAction struct {
	Namespace string `json:"namespace"`
	Role      string `json:"role"`
}

// LabelsSeenAction marks the role labels as seen.
type LabelsSeenAction struct {
	Namespace string `json:"namespace"`
}

// ChangeSendNotificationAction toggles the chat notification for new members.
type ChangeSendNotificationAction struct {
	Namespace        string `json:"namespace"`
	SendNotification bool   `json:"sendNotification"`
}

func (CancelTeamBuildingAction) Type() action.Type       { return CancelTeamBuilding }
func (AddUsersToTeamSoFarAction) Type() action.Type      { return AddUsersToTeamSoFar }
func (RemoveUsersFromTeamSoFarAction) Type() action.Type { return RemoveUsersFromTeamSoFar }
func (SearchResultsLoadedAction) Type() action.Type      { return SearchResultsLoaded }
func (FinishedTeamBuildingAction) Type() action.Type     { return FinishedTeamBuilding }
func (FetchedUserRecsAction) Type() action.Type          { return FetchedUserRecs }
func (FetchUserRecsAction) Type() action.Type            { return FetchUserRecs }
func (SearchAction) Type() action.Type                   { return Search }
func (SelectRoleAction) Type() action.Type               { return SelectRole }
func (LabelsSeenAction) Type() action.Type               { return LabelsSeen }
func (ChangeSendNotificationAction) Type() action.Type   { return ChangeSendNotification }

func (a CancelTeamBuildingAction) ActionNamespace() string       { return a.Namespace }
func (a AddUsersToTeamSoFarAction) ActionNamespace() string      { return a.Namespace }
func (a RemoveUsersFromTeamSoFarAction) ActionNamespace() string { return a.Namespace }
func (a SearchResultsLoadedAction) ActionNamespace() string      { return a.Namespace }
func (a FinishedTeamBuildingAction) ActionNamespace() string     { return a.Namespace }
func (a FetchedUserRecsAction) ActionNamespace() string          { return a.Namespace }
func (a FetchUserRecsAction) ActionNamespace() string            { return a.Namespace }
func (a SearchAction) ActionNamespace() string                   { return a.Namespace }
func (a SelectRoleAction) ActionNamespace() string               { return a.Namespace }
func (a LabelsSeenAction) ActionNamespace() string               { return a.Namespace }
func (a ChangeSendNotificationAction) ActionNamespace() string   { return a.Namespace }

// Types lists every namespaced team-building action type. The shared
// reset is not included; it belongs to the common catalog.
func Types() []action.Type {
	return []action.Type{
		CancelTeamBuilding,
		AddUsersToTeamSoFar,
		RemoveUsersFromTeamSoFar,
		SearchResultsLoaded,
		FinishedTeamBuilding,
		FetchedUserRecs,
		FetchUserRecs,
		Search,
		SelectRole,
		LabelsSeen,
		ChangeSendNotification,
	}
}

// Register adds the team-building actions to c.
func Register(c *action.Catalog) {
	c.Register(func() action.Action { return &CancelTeamBuildingAction{} })
	c.Register(func() action.Action { return &AddUsersToTeamSoFarAction{} })
	c.Register(func() action.Action { return &RemoveUsersFromTeamSoFarAction{} })
	c.Register(func() action.Action { return &SearchResultsLoadedAction{} })
	c.Register(func() action.Action { return &FinishedTeamBuildingAction{} })
	c.Register(func() action.Action { return &FetchedUserRecsAction{} })
	c.Register(func() action.Action { return &FetchUserRecsAction{} })
	c.Register(func() action.Action { return &SearchAction{} })
	c.Register(func() action.Action { return &SelectRoleAction{} })
	c.Register(func() action.Action { return &LabelsSeenAction{} })
	c.Register(func() action.Action { return &ChangeSendNotificationAction{} })
}
