package keyring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/m96-chan/slacko-teams/internal/consts"
)

// Workspace is a Slack workspace the user has connected before. Each one is
// listed as a team even while offline.
type Workspace struct {
	ID      string `json:"id"`       // Slack team ID
	Name    string `json:"name"`     // team name as shown in the tree
	UserKey string `json:"user_key"` // keyring key for the user token
	AppKey  string `json:"app_key"`  // keyring key for the app token
}

const workspacesFile = "workspaces.json"

// workspacesPath returns the path to the workspaces registry file.
func workspacesPath() string {
	return filepath.Join(consts.CacheDir, workspacesFile)
}

// ListWorkspaces returns all stored workspaces.
func ListWorkspaces() ([]Workspace, error) {
	data, err := os.ReadFile(workspacesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var ws []Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", workspacesFile, err)
	}
	return ws, nil
}

// saveWorkspaces writes the workspace list to disk.
func saveWorkspaces(ws []Workspace) error {
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(workspacesPath(), data, 0o600)
}

// AddWorkspace stores a workspace's tokens and adds it to the registry.
// If a workspace with the same ID already exists, it is updated.
func AddWorkspace(id, name string, tokens Tokens) error {
	ws, err := ListWorkspaces()
	if err != nil {
		ws = nil
	}

	userKey := "user_" + id
	appKey := "app_" + id

	if err := gokeyring.Set(consts.Name, userKey, tokens.User); err != nil {
		return fmt.Errorf("storing user token for %s: %w", id, err)
	}
	if err := gokeyring.Set(consts.Name, appKey, tokens.App); err != nil {
		return fmt.Errorf("storing app token for %s: %w", id, err)
	}

	found := false
	for i, w := range ws {
		if w.ID == id {
			ws[i].Name = name
			ws[i].UserKey = userKey
			ws[i].AppKey = appKey
			found = true
			break
		}
	}
	if !found {
		ws = append(ws, Workspace{
			ID:      id,
			Name:    name,
			UserKey: userKey,
			AppKey:  appKey,
		})
	}

	return saveWorkspaces(ws)
}

// RemoveWorkspace removes a workspace from the registry and deletes its tokens.
func RemoveWorkspace(id string) error {
	ws, err := ListWorkspaces()
	if err != nil {
		return err
	}

	var updated []Workspace
	for _, w := range ws {
		if w.ID == id {
			_ = gokeyring.Delete(consts.Name, w.UserKey)
			_ = gokeyring.Delete(consts.Name, w.AppKey)
			continue
		}
		updated = append(updated, w)
	}

	return saveWorkspaces(updated)
}

// GetWorkspaceTokens retrieves the tokens for a workspace from the keyring.
func GetWorkspaceTokens(w Workspace) (Tokens, error) {
	user, err := gokeyring.Get(consts.Name, w.UserKey)
	if err != nil {
		return Tokens{}, err
	}
	app, err := gokeyring.Get(consts.Name, w.AppKey)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{User: user, App: app}, nil
}
