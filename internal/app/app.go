package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/m96-chan/slacko-teams/internal/action"
	"github.com/m96-chan/slacko-teams/internal/config"
	"github.com/m96-chan/slacko-teams/internal/keyring"
	"github.com/m96-chan/slacko-teams/internal/replay"
	slackclient "github.com/m96-chan/slacko-teams/internal/slack"
	"github.com/m96-chan/slacko-teams/internal/store"
	"github.com/m96-chan/slacko-teams/internal/teams"
	"github.com/m96-chan/slacko-teams/internal/ui/keys"
	"github.com/m96-chan/slacko-teams/internal/ui/login"
	uiteams "github.com/m96-chan/slacko-teams/internal/ui/teams"
)

// ErrNoTokens is returned for a live session when no tokens are stored.
var ErrNoTokens = errors.New("no Slack tokens found: set SLACKO_TEAMS_USER_TOKEN and SLACKO_TEAMS_APP_TOKEN or store them in the keyring")

// Options selects what a run does besides showing the teams tree.
type Options struct {
	// Replay is a JSONC action script dispatched after startup.
	Replay string
	// Headless prints a summary to Out instead of starting the TUI.
	Headless bool
	// Filter is the initial fuzzy team filter.
	Filter string
	// Match ranks team-building recommendations in the headless summary.
	Match string
	// Live connects to Slack over Socket Mode.
	Live bool

	Out io.Writer
}

// App is the top-level application struct.
type App struct {
	Config  *config.Config
	opts    Options
	catalog *action.Catalog
	store   *store.Store[*teams.State]

	tview      *tview.Application
	pages      *tview.Pages
	tree       *uiteams.Tree
	statusBar  *uiteams.StatusBar
	filter     *tview.InputField
	createForm *uiteams.ChannelCreateForm
	confirm    *tview.Modal

	// ctx and cancel span the whole run. They are set before any goroutine
	// that reads them starts.
	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	live *liveSession
}

// liveSession is the connection to one Slack workspace.
type liveSession struct {
	client    *slackclient.Client
	cancel    context.CancelFunc
	unobserve func()
}

// New creates a new App with the given config.
func New(cfg *config.Config, opts Options) *App {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &App{
		Config:  cfg,
		opts:    opts,
		catalog: teams.NewCatalog(),
		store: store.New(teams.MakeState(), teams.Reduce,
			store.WithActionLog(cfg.Store.LogActions),
			store.WithHistory(cfg.Store.HistoryLimit),
		),
	}
}

// Run loads the replay script, connects to Slack when asked, and then
// either prints the resulting state or starts the TUI event loop.
func (a *App) Run() error {
	// Set up OS signal handling for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var script []action.Action
	if a.opts.Replay != "" {
		var err error
		if script, err = replay.ReadFile(a.catalog, a.opts.Replay); err != nil {
			return err
		}
	}

	a.seedWorkspaces()

	if a.opts.Headless {
		return a.runHeadless(ctx, script)
	}
	return a.runTUI(ctx, script)
}

func (a *App) runHeadless(ctx context.Context, script []action.Action) error {
	if a.opts.Live {
		client, err := a.connect()
		if err != nil {
			return err
		}
		bridge, unobserve := a.attach(client)
		defer unobserve()
		if err := bridge.Bootstrap(); err != nil {
			return err
		}
	}
	if err := replay.Run(ctx, a.store, script); err != nil {
		return err
	}
	slog.Info("replay finished", "actions", len(script), "recent", a.store.History())
	return WriteSummary(a.opts.Out, a.store.State(), a.opts.Filter, a.opts.Match)
}

func (a *App) runTUI(ctx context.Context, script []action.Action) error {
	ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()
	a.ctx = ctx
	a.tview = tview.NewApplication()
	a.tview.EnableMouse(a.Config.Mouse)
	a.buildLayout()

	go func() {
		<-ctx.Done()
		a.shutdown()
	}()

	// Register global keybindings.
	a.tview.SetInputCapture(a.handleGlobalKey)

	a.store.Subscribe(func(s *teams.State) {
		a.tview.QueueUpdateDraw(func() { a.render(s) })
	})
	a.render(a.store.State())

	if a.opts.Live {
		client, err := a.connect()
		switch {
		case errors.Is(err, ErrNoTokens):
			a.showLogin(ctx)
		case err != nil:
			return err
		default:
			a.goLive(ctx, client)
		}
	} else {
		a.statusBar.SetConnectionStatus("Offline")
	}

	if len(script) > 0 {
		go func() {
			if err := replay.Run(ctx, a.store, script); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("replay failed", "error", err)
			}
		}()
	}

	return a.tview.Run()
}

// connect authenticates with the default tokens, falling back to the tokens
// of a saved workspace.
func (a *App) connect() (*slackclient.Client, error) {
	tokens, err := keyring.Load()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			slog.Warn("error reading tokens", "error", err)
		}
		saved, ok := a.savedTokens()
		if !ok {
			return nil, ErrNoTokens
		}
		tokens = saved
	}

	client, err := slackclient.New(tokens.User, tokens.App)
	if err != nil {
		return nil, fmt.Errorf("connecting to slack: %w", err)
	}
	if err := keyring.AddWorkspace(client.TeamID, client.TeamName, tokens); err != nil {
		slog.Warn("failed to remember workspace", "team", client.TeamName, "error", err)
	}
	return client, nil
}

// savedTokens returns the tokens of a saved workspace, preferring the
// configured default team.
func (a *App) savedTokens() (keyring.Tokens, bool) {
	ws, err := keyring.ListWorkspaces()
	if err != nil {
		slog.Warn("failed to read workspaces", "error", err)
		return keyring.Tokens{}, false
	}
	slices.SortStableFunc(ws, func(x, y keyring.Workspace) int {
		return boolRank(y.Name == a.Config.DefaultTeam) - boolRank(x.Name == a.Config.DefaultTeam)
	})
	for _, w := range ws {
		tokens, err := keyring.GetWorkspaceTokens(w)
		if err != nil {
			slog.Warn("saved workspace has no tokens", "team", w.Name, "error", err)
			continue
		}
		return tokens, true
	}
	return keyring.Tokens{}, false
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// attach creates the bridge for client and starts carrying out side-effect
// actions against Slack until unobserve is called.
func (a *App) attach(client *slackclient.Client) (bridge *slackclient.Bridge, unobserve func()) {
	bridge = slackclient.NewBridge(client, a.store, a.Config.DefaultTeam)
	unobserve = a.store.Observe(func(act action.Action) {
		go func() {
			if err := bridge.Perform(act); err != nil {
				slog.Error("slack request failed", "action", act.Type(), "error", err)
			}
		}()
	})
	return bridge, unobserve
}

// goLive attaches client and runs Socket Mode until ctx, logout or shutdown.
func (a *App) goLive(ctx context.Context, client *slackclient.Client) {
	bridge, unobserve := a.attach(client)
	runCtx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	a.live = &liveSession{client: client, cancel: cancel, unobserve: unobserve}
	a.mu.Unlock()

	a.statusBar.SetConnectionStatus("Connected to " + client.TeamName)
	go func() {
		if err := bridge.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("socket mode stopped", "error", err)
			a.tview.QueueUpdateDraw(func() { a.statusBar.SetConnectionStatus("Disconnected") })
		}
	}()
}

// endLive disconnects the live session, if any, and returns it.
func (a *App) endLive() *liveSession {
	a.mu.Lock()
	live := a.live
	a.live = nil
	a.mu.Unlock()

	if live != nil {
		live.cancel()
		live.unobserve()
	}
	return live
}

// logout disconnects, forgets the workspace and its tokens, and shows the
// login form again.
func (a *App) logout() {
	live := a.endLive()
	if live == nil {
		return
	}
	if err := keyring.RemoveWorkspace(live.client.TeamID); err != nil {
		slog.Warn("failed to forget workspace", "team", live.client.TeamName, "error", err)
	}
	if err := keyring.Delete(); err != nil {
		slog.Warn("failed to delete tokens", "error", err)
	}
	slog.Info("logged out", "team", live.client.TeamName)

	a.store.Dispatch(action.ResetStoreAction{})
	a.seedWorkspaces()
	a.showLogin(a.ctx)
}

// confirmLogout asks before logging out. It reports false when there is no
// live session.
func (a *App) confirmLogout() bool {
	a.mu.Lock()
	live := a.live
	a.mu.Unlock()
	if live == nil {
		return false
	}
	a.confirm.SetText("Log out of " + live.client.TeamName + "?")
	a.confirm.ClearButtons().AddButtons([]string{"Log out", "Cancel"})
	a.confirm.SetDoneFunc(func(_ int, label string) {
		a.closeModal()
		if label == "Log out" {
			a.logout()
		}
	})
	a.pages.ShowPage(pageConfirm)
	a.tview.SetFocus(a.confirm)
	return true
}

// showLogin puts the token form in front until the user authenticates.
func (a *App) showLogin(ctx context.Context) {
	form := login.New(a.tview, a.Config, func(client *slackclient.Client) {
		a.tview.SetRoot(a.pages, true)
		a.tview.SetFocus(a.tree)
		a.goLive(ctx, client)
	})
	a.statusBar.SetConnectionStatus("Not logged in")
	a.tview.SetRoot(form, true)
}

// seedWorkspaces lists previously connected workspaces as teams so the tree
// is not empty before any team data arrives.
func (a *App) seedWorkspaces() {
	ws, err := keyring.ListWorkspaces()
	if err != nil {
		slog.Warn("failed to read workspaces", "error", err)
		return
	}
	if seed, ok := workspaceTeams(ws); ok {
		a.store.Dispatch(seed)
	}
}

func workspaceTeams(ws []keyring.Workspace) (teams.SetTeamInfoAction, bool) {
	if len(ws) == 0 {
		return teams.SetTeamInfoAction{}, false
	}
	seed := teams.SetTeamInfoAction{TeamNameToID: make(map[string]string, len(ws))}
	for _, w := range ws {
		seed.Teamnames = append(seed.Teamnames, w.Name)
		seed.TeamNameToID[w.Name] = w.ID
	}
	return seed, true
}

// shutdown tears down Socket Mode and stops the TUI.
func (a *App) shutdown() {
	a.endLive()
	if a.cancel != nil {
		a.cancel()
	}
	if a.tview != nil {
		a.tview.Stop()
	}
}

// handleGlobalKey processes global keybindings. It returns nil to consume the
// event or the original event to let it propagate.
func (a *App) handleGlobalKey(event *tcell.EventKey) *tcell.EventKey {
	kb := a.Config.Keybinds

	switch {
	case keys.Bound(event, kb.Quit):
		a.shutdown()
		return nil
	case keys.Bound(event, kb.Logout):
		if !a.modalOpen() && a.confirmLogout() {
			return nil
		}
	case keys.Bound(event, kb.FocusFilter):
		if a.filter != nil && !a.filter.HasFocus() && !a.modalOpen() {
			a.tview.SetFocus(a.filter)
			return nil
		}
	}

	return event
}
