// Package replay loads scripted action sequences and feeds them to a store.
//
// A script is a JSONC array (JSON with // and /* */ comments and trailing
// commas) of action envelopes:
//
//	[
//	  // joined acme
//	  {"type": "teams:setTeamJoinSuccess", "payload": {"teamname": "acme", "success": true}},
//	]
package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/m96-chan/slacko-teams/internal/action"
)

// Dispatcher receives replayed actions.
type Dispatcher interface {
	Dispatch(a action.Action)
}

// Parse strips comments and trailing commas from data and decodes each
// envelope with c.
func Parse(c *action.Catalog, data []byte) ([]action.Action, error) {
	stripped := jsonc.ToJSON(data)

	var raw []json.RawMessage
	if err := json.Unmarshal(stripped, &raw); err != nil {
		return nil, fmt.Errorf("parsing replay script: %w", err)
	}

	actions := make([]action.Action, 0, len(raw))
	for i, r := range raw {
		a, err := c.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// ReadFile reads and parses a script from disk.
func ReadFile(c *action.Catalog, path string) ([]action.Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	actions, err := Parse(c, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return actions, nil
}

// Run dispatches actions in order. It returns ctx.Err() if the context is
// cancelled before every action has been dispatched.
func Run(ctx context.Context, d Dispatcher, actions []action.Action) error {
	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Dispatch(a)
	}
	return nil
}
