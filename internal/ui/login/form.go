package login

import (
	"log/slog"

	"github.com/rivo/tview"

	"github.com/m96-chan/slacko-teams/internal/config"
	"github.com/m96-chan/slacko-teams/internal/keyring"
	slackclient "github.com/m96-chan/slacko-teams/internal/slack"
)

// DoneFn is called after successful authentication with the validated client.
type DoneFn func(client *slackclient.Client)

// ConnectFn authenticates a token pair.
type ConnectFn func(userToken, appToken string) (*slackclient.Client, error)

// Form is a tview form that prompts for Slack tokens.
type Form struct {
	*tview.Form
	app       *tview.Application
	cfg       *config.Config
	done      DoneFn
	connect   ConnectFn
	userField *tview.InputField
	appField  *tview.InputField
}

// New creates a login form. Submitted tokens are checked with
// slackclient.New and saved to the keyring on success.
func New(app *tview.Application, cfg *config.Config, done DoneFn) *Form {
	f := &Form{
		Form:    tview.NewForm(),
		app:     app,
		cfg:     cfg,
		done:    done,
		connect: slackclient.New,
	}

	f.userField = tview.NewInputField().
		SetLabel("User Token (xoxp-)").
		SetMaskCharacter('*')
	f.appField = tview.NewInputField().
		SetLabel("App Token (xapp-)").
		SetMaskCharacter('*')

	f.AddFormItem(f.userField).
		AddFormItem(f.appField).
		AddButton("Login", f.submit).
		AddButton("Quit", func() { f.app.Stop() }).
		SetBorder(true).
		SetBorderStyle(cfg.Theme.Border.Focused.Style).
		SetTitle(" slacko-teams login ").
		SetTitleAlign(tview.AlignCenter)

	return f
}

// submit validates the tokens, creates a client, saves to keyring, and
// calls the done callback.
func (f *Form) submit() {
	user := f.userField.GetText()
	app := f.appField.GetText()

	if user == "" || app == "" {
		f.showError("Both tokens are required.")
		return
	}

	client, err := f.connect(user, app)
	if err != nil {
		f.showError("Authentication failed: " + err.Error())
		return
	}

	tokens := keyring.Tokens{User: user, App: app}
	if err := keyring.Save(tokens); err != nil {
		slog.Warn("failed to store tokens in keyring", "error", err)
	}
	if err := keyring.AddWorkspace(client.TeamID, client.TeamName, tokens); err != nil {
		slog.Warn("failed to register workspace", "error", err)
	}

	f.done(client)
}

// showError displays a modal error message and returns to the form on dismiss.
func (f *Form) showError(msg string) {
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(_ int, _ string) {
			f.app.SetRoot(f, true)
		})
	f.app.SetRoot(modal, true)
}
