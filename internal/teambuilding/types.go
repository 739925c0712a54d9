package teambuilding

import (
	"github.com/benbjohnson/immutable"
)

const (
	defaultSearchLimit = 11
	defaultService     = "keybase"
	defaultRole        = "writer"
)

// User is a search result or recommendation that can be added to a team.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	PrettyName string `json:"prettyName"`
	Label      string `json:"label"`
	Service    string `json:"service"`
}

// State tracks one in-progress "add members" flow. Like the teams state it
// is treated as immutable once returned from Reduce.
type State struct {
	TeamSoFar     []User // ordered, unique by ID
	SearchResults *immutable.Map[string, *immutable.Map[string, []User]]
	UserRecs      []User // nil until fetched

	SearchQuery      string
	SelectedService  string
	SearchLimit      int
	SelectedRole     string
	SendNotification bool
	LabelsSeen       bool

	FinishedTeam             []User
	FinishedSelectedRole     string
	FinishedSendNotification bool
}

// MakeState returns the default sub-state.
func MakeState() *State {
	return &State{
		SearchResults:            immutable.NewMap[string, *immutable.Map[string, []User]](nil),
		SelectedService:          defaultService,
		SearchLimit:              defaultSearchLimit,
		SelectedRole:             defaultRole,
		SendNotification:         true,
		FinishedSelectedRole:     defaultRole,
		FinishedSendNotification: true,
	}
}

// SearchResultsFor returns the loaded results for a query and service.
func (s *State) SearchResultsFor(query, service string) ([]User, bool) {
	byService, ok := s.SearchResults.Get(query)
	if !ok {
		return nil, false
	}
	return byService.Get(service)
}

// InTeamSoFar reports whether the user id is already selected.
func (s *State) InTeamSoFar(id string) bool {
	for _, u := range s.TeamSoFar {
		if u.ID == id {
			return true
		}
	}
	return false
}
