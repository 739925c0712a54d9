package teambuilding

import (
	"github.com/sahilm/fuzzy"
)

// MatchUserRecs ranks the loaded recommendations against query, best match
// first. Users already in the team so far are skipped. An empty query
// returns the unselected recommendations in their original order.
func MatchUserRecs(sub *State, query string) []User {
	candidates := make([]User, 0, len(sub.UserRecs))
	for _, u := range sub.UserRecs {
		if !sub.InTeamSoFar(u.ID) {
			candidates = append(candidates, u)
		}
	}
	if query == "" {
		return candidates
	}

	targets := make([]string, len(candidates))
	for i, u := range candidates {
		targets[i] = searchText(u)
	}

	matches := fuzzy.Find(query, targets)
	out := make([]User, len(matches))
	for i, m := range matches {
		out[i] = candidates[m.Index]
	}
	return out
}

// searchText combines the fields a user may be found by.
func searchText(u User) string {
	text := u.Username
	if u.PrettyName != "" && u.PrettyName != u.Username {
		text += " " + u.PrettyName
	}
	return text
}
