// Package keyring stores Slack tokens in the system keyring. Environment
// variables take priority so scripted runs never touch the keyring.
package keyring

import (
	"errors"
	"fmt"
	"os"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/m96-chan/slacko-teams/internal/consts"
)

// ErrNotFound matches errors for a token that is neither in the environment
// nor in the keyring.
var ErrNotFound = gokeyring.ErrNotFound

// Tokens is the user token and app-level token pair a live session needs.
type Tokens struct {
	User string // xoxp-
	App  string // xapp-
}

// slot is one token's location in the environment and the keyring.
type slot struct {
	env  string
	key  string
	kind string
}

var (
	userSlot = slot{env: consts.EnvPrefix + "USER_TOKEN", key: "user_token", kind: "user"}
	appSlot  = slot{env: consts.EnvPrefix + "APP_TOKEN", key: "app_token", kind: "app"}
)

func (s slot) get() (string, error) {
	if v := os.Getenv(s.env); v != "" {
		return v, nil
	}
	v, err := gokeyring.Get(consts.Name, s.key)
	if err != nil {
		return "", fmt.Errorf("%s token: %w", s.kind, err)
	}
	return v, nil
}

// Load returns the default token pair. Both tokens are looked up so that a
// failure can be reported for each.
func Load() (Tokens, error) {
	user, userErr := userSlot.get()
	app, appErr := appSlot.get()
	if err := errors.Join(userErr, appErr); err != nil {
		return Tokens{}, err
	}
	return Tokens{User: user, App: app}, nil
}

// Save stores t as the default token pair.
func Save(t Tokens) error {
	if err := gokeyring.Set(consts.Name, userSlot.key, t.User); err != nil {
		return fmt.Errorf("storing user token: %w", err)
	}
	if err := gokeyring.Set(consts.Name, appSlot.key, t.App); err != nil {
		return fmt.Errorf("storing app token: %w", err)
	}
	return nil
}

// Delete removes the default token pair. Missing tokens are not an error.
func Delete() error {
	var errs []error
	for _, s := range []slot{userSlot, appSlot} {
		if err := gokeyring.Delete(consts.Name, s.key); err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
			errs = append(errs, fmt.Errorf("deleting %s token: %w", s.kind, err))
		}
	}
	return errors.Join(errs...)
}
