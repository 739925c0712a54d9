package teambuilding

import (
	"slices"

	"github.com/benbjohnson/immutable"

	"github.com/m96-chan/slacko-teams/internal/action"
)

// Reduce applies a team-building action to the sub-state owned by
// namespace. Actions addressed to another namespace leave sub untouched,
// and the returned pointer is sub itself whenever nothing changed.
func Reduce(namespace string, sub *State, a action.Action) *State {
	if sub == nil {
		sub = MakeState()
	}
	a = action.Value(a)
	if a.Type() == action.ResetStore {
		return MakeState()
	}

	ns, ok := a.(Namespaced)
	if !ok || ns.ActionNamespace() != namespace {
		return sub
	}

	switch a := a.(type) {
	case CancelTeamBuildingAction:
		return MakeState()

	case AddUsersToTeamSoFarAction:
		next := *sub
		next.TeamSoFar = slices.Clone(sub.TeamSoFar)
		for _, u := range a.Users {
			if !next.InTeamSoFar(u.ID) {
				next.TeamSoFar = append(next.TeamSoFar, u)
			}
		}
		return &next

	case RemoveUsersFromTeamSoFarAction:
		next := *sub
		next.TeamSoFar = slices.DeleteFunc(slices.Clone(sub.TeamSoFar), func(u User) bool {
			return slices.Contains(a.Users, u.ID)
		})
		return &next

	case SearchResultsLoadedAction:
		byService, ok := sub.SearchResults.Get(a.Query)
		if !ok {
			byService = immutable.NewMap[string, []User](nil)
		}
		next := *sub
		next.SearchResults = sub.SearchResults.Set(a.Query, byService.Set(a.Service, slices.Clone(a.Users)))
		return &next

	case FetchedUserRecsAction:
		next := *sub
		next.UserRecs = slices.Clone(a.Users)
		if next.UserRecs == nil {
			next.UserRecs = []User{}
		}
		return &next

	case FetchUserRecsAction:
		return sub

	case FinishedTeamBuildingAction:
		next := MakeState()
		next.FinishedTeam = sub.TeamSoFar
		next.FinishedSelectedRole = sub.SelectedRole
		next.FinishedSendNotification = sub.SendNotification
		return next

	case SearchAction:
		next := *sub
		next.SearchQuery = a.Query
		next.SelectedService = a.Service
		next.SearchLimit = a.Limit
		if next.SearchLimit <= 0 {
			next.SearchLimit = defaultSearchLimit
		}
		return &next

	case SelectRoleAction:
		next := *sub
		next.SelectedRole = a.Role
		return &next

	case LabelsSeenAction:
		next := *sub
		next.LabelsSeen = true
		return &next

	case ChangeSendNotificationAction:
		next := *sub
		next.SendNotification = a.SendNotification
		return &next
	}

	return sub
}
