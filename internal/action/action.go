package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Type is the discriminator carried by every action, e.g.
// "teams:setTeamJoinSuccess".
type Type string

// Action is a tagged payload describing an intended state transition.
type Action interface {
	Type() Type
}

// ResetStore is shared by every slice: it discards all accumulated state.
const ResetStore Type = "common:resetStore"

// ResetStoreAction restores each slice to its default state.
type ResetStoreAction struct{}

func (ResetStoreAction) Type() Type { return ResetStore }

// ErrUnknownType is returned by Decode for a discriminator that has no
// registered constructor.
var ErrUnknownType = errors.New("unknown action type")

// envelope is the wire form of an action.
type envelope struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Catalog is the closed set of action types known to the application.
// Each entry maps a discriminator to a constructor that returns a pointer
// to the zero payload, used for decoding.
type Catalog struct {
	ctors map[Type]func() Action
	order []Type
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{ctors: make(map[Type]func() Action)}
}

// Register adds an action type. ctor must return a pointer so the payload
// can be decoded into it. Registering the same type twice panics.
func (c *Catalog) Register(ctor func() Action) {
	t := ctor().Type()
	if _, exists := c.ctors[t]; exists {
		panic(fmt.Sprintf("action: duplicate registration of %q", t))
	}
	c.ctors[t] = ctor
	c.order = append(c.order, t)
}

// Has reports whether t is registered.
func (c *Catalog) Has(t Type) bool {
	_, ok := c.ctors[t]
	return ok
}

// Types returns every registered type in registration order.
func (c *Catalog) Types() []Type {
	out := make([]Type, len(c.order))
	copy(out, c.order)
	return out
}

// New returns a fresh zero-valued action of type t.
func (c *Catalog) New(t Type) (Action, error) {
	ctor, ok := c.ctors[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return ctor(), nil
}

// Decode parses a {"type": ..., "payload": ...} envelope into the concrete
// action registered for its type. The returned action is a value, not the
// pointer used for decoding.
func (c *Catalog) Decode(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding action envelope: %w", err)
	}
	if env.Type == "" {
		return nil, errors.New("decoding action envelope: missing type")
	}

	a, err := c.New(env.Type)
	if err != nil {
		return nil, err
	}
	if len(env.Payload) > 0 && string(env.Payload) != "null" {
		if err := json.Unmarshal(env.Payload, a); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
	}
	return Value(a), nil
}

// Encode produces the envelope for a.
func Encode(a Action) ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", a.Type(), err)
	}
	if string(payload) == "{}" {
		payload = nil
	}
	return json.Marshal(envelope{Type: a.Type(), Payload: payload})
}

// Value returns the T behind a *T action, and a itself otherwise. Reducers
// switch on value types, so pointer actions go through Value first.
func Value(a Action) Action {
	v := reflect.ValueOf(a)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return a
	}
	if elem, ok := v.Elem().Interface().(Action); ok {
		return elem
	}
	return a
}
