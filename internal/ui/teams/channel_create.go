package teams

import (
	"regexp"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/m96-chan/slacko-teams/internal/config"
)

// channelNameRe matches valid Slack channel names: lowercase letters, numbers,
// hyphens, and underscores. No spaces, no uppercase.
var channelNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ChannelCreateForm is a modal form for creating a channel in one team.
type ChannelCreateForm struct {
	*tview.Flex
	cfg       *config.Config
	form      *tview.Form
	nameInput *tview.InputField
	descInput *tview.InputField
	status    *tview.TextView
	team      string
	onCreate  func(team, name, description string)
	onClose   func()
}

// NewChannelCreateForm creates a new channel creation form.
func NewChannelCreateForm(cfg *config.Config) *ChannelCreateForm {
	f := &ChannelCreateForm{
		cfg: cfg,
	}

	f.nameInput = tview.NewInputField().
		SetLabel("Channel name").
		SetFieldWidth(40)
	f.nameInput.SetAcceptanceFunc(func(text string, lastChar rune) bool {
		// Only allow characters valid in Slack channel names.
		return lastChar == '-' || lastChar == '_' ||
			(lastChar >= 'a' && lastChar <= 'z') ||
			(lastChar >= '0' && lastChar <= '9')
	})
	f.descInput = tview.NewInputField().
		SetLabel("Description").
		SetFieldWidth(40)

	f.form = tview.NewForm().
		AddFormItem(f.nameInput).
		AddFormItem(f.descInput).
		AddButton("Create", func() {
			f.submit()
		}).
		AddButton("Cancel", func() {
			if f.onClose != nil {
				f.onClose()
			}
		})
	f.form.SetBorder(true).SetTitle(" Create Channel ")
	f.form.SetBorderStyle(cfg.Theme.Border.Focused.Style)
	f.form.SetInputCapture(f.handleInput)

	f.status = tview.NewTextView().SetDynamicColors(true)

	f.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.form, 0, 1, true).
		AddItem(f.status, 1, 0, false)

	return f
}

// SetOnCreate sets the callback invoked when the user submits the form.
func (f *ChannelCreateForm) SetOnCreate(fn func(team, name, description string)) {
	f.onCreate = fn
}

// SetOnClose sets the callback invoked when the form is dismissed.
func (f *ChannelCreateForm) SetOnClose(fn func()) {
	f.onClose = fn
}

// Open clears the form and targets team.
func (f *ChannelCreateForm) Open(team string) {
	f.Reset()
	f.team = team
	f.form.SetTitle(" Create Channel in " + tview.Escape(team) + " ")
}

// Team returns the team the form creates channels in.
func (f *ChannelCreateForm) Team() string {
	return f.team
}

// GetName returns the current channel name input value.
func (f *ChannelCreateForm) GetName() string {
	return strings.TrimSpace(f.nameInput.GetText())
}

// GetDescription returns the current description input value.
func (f *ChannelCreateForm) GetDescription() string {
	return strings.TrimSpace(f.descInput.GetText())
}

// SetStatus updates the status text at the bottom.
func (f *ChannelCreateForm) SetStatus(text string) {
	if text == "" {
		f.status.SetText("")
		return
	}
	f.status.SetText(" " + tview.Escape(text))
}

// Reset clears all form fields.
func (f *ChannelCreateForm) Reset() {
	f.nameInput.SetText("")
	f.descInput.SetText("")
	f.status.SetText("")
}

// validate checks that the channel name is valid per Slack's rules.
func (f *ChannelCreateForm) validate() bool {
	name := f.GetName()
	if name == "" {
		return false
	}
	return channelNameRe.MatchString(name)
}

// submit validates and triggers the onCreate callback.
func (f *ChannelCreateForm) submit() {
	if !f.validate() {
		f.SetStatus("Invalid name: use lowercase letters, numbers, hyphens, underscores")
		return
	}
	f.SetStatus("Creating...")
	if f.onCreate != nil {
		f.onCreate(f.team, f.GetName(), f.GetDescription())
	}
}

// handleInput processes keybindings for the channel create form.
func (f *ChannelCreateForm) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if f.onClose != nil {
			f.onClose()
		}
		return nil
	}
	return event
}
