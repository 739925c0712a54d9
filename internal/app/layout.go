package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/m96-chan/slacko-teams/internal/teams"
	uiteams "github.com/m96-chan/slacko-teams/internal/ui/teams"
)

// buildLayout creates the filter, the teams tree and the status bar.
func (a *App) buildLayout() {
	a.tree = uiteams.NewTree(a.Config, a.onSelected)
	a.tree.SetFilter(a.opts.Filter)
	a.tree.SetChangedFunc(func(*tview.TreeNode) { a.showSelection() })
	a.tree.SetFocusFunc(func() { a.setFocused(true) })
	a.tree.SetBlurFunc(func() { a.setFocused(false) })
	a.tree.SetOnCreateChannel(a.openCreateChannel)
	a.tree.SetOnDeleteChannel(a.confirmDeleteChannel)

	a.statusBar = uiteams.NewStatusBar(a.Config)

	a.filter = tview.NewInputField().
		SetLabel("Filter: ").
		SetText(a.opts.Filter)
	a.filter.SetFieldBackgroundColor(a.Config.Theme.StatusBar.Background.Background())
	a.filter.SetChangedFunc(func(text string) {
		a.tree.SetFilter(text)
		a.render(a.store.State())
	})
	a.filter.SetDoneFunc(func(tcell.Key) {
		a.tview.SetFocus(a.tree)
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.filter, 1, 0, false).
		AddItem(a.tree, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.createForm = uiteams.NewChannelCreateForm(a.Config)
	a.createForm.SetOnCreate(a.createChannel)
	a.createForm.SetOnClose(a.closeModal)

	a.confirm = tview.NewModal()

	a.pages = tview.NewPages().
		AddPage(pageMain, layout, true, true).
		AddPage(pageCreate, centered(a.createForm, 60, 9), true, false).
		AddPage(pageConfirm, a.confirm, true, false)

	a.tview.SetRoot(a.pages, true)
	a.tview.SetFocus(a.tree)
}

const (
	pageMain    = "main"
	pageCreate  = "create"
	pageConfirm = "confirm"
)

// centered wraps p in a fixed-size box in the middle of the screen.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}

// modalOpen reports whether a page other than the main layout is in front.
func (a *App) modalOpen() bool {
	if a.pages == nil {
		return false
	}
	name, _ := a.pages.GetFrontPage()
	return name != pageMain
}

func (a *App) closeModal() {
	a.pages.HidePage(pageCreate)
	a.pages.HidePage(pageConfirm)
	a.tview.SetFocus(a.tree)
}

func (a *App) openCreateChannel(team string) {
	a.createForm.Open(team)
	a.pages.ShowPage(pageCreate)
	a.tview.SetFocus(a.createForm)
}

// createChannel clears the previous creation error and asks for the new
// channel. Failures land in the status bar.
func (a *App) createChannel(team, name, description string) {
	a.closeModal()
	a.store.Dispatch(teams.SetChannelCreationErrorAction{})
	a.store.Dispatch(teams.CreateChannelAction{Teamname: team, Channelname: name, Description: description})
}

func (a *App) confirmDeleteChannel(team, conversationID string) {
	name := conversationID
	if info, ok := teams.ChannelInfoFor(a.store.State(), team, conversationID); ok && info.ChannelName != "" {
		name = info.ChannelName
	}
	a.confirm.SetText("Delete #" + name + " from " + team + "?")
	a.confirm.ClearButtons().AddButtons([]string{"Delete", "Cancel"})
	a.confirm.SetDoneFunc(func(_ int, label string) {
		a.closeModal()
		if label == "Delete" {
			a.store.Dispatch(teams.DeleteChannelConfirmedAction{Teamname: team, ConversationIDKey: conversationID})
		}
	})
	a.pages.ShowPage(pageConfirm)
	a.tview.SetFocus(a.confirm)
}

// render redraws everything that depends on the store. Must be called from
// the tview event loop.
func (a *App) render(s *teams.State) {
	a.tree.Render(s)
	a.statusBar.SetSummary(s)
	a.showSelection()
}

func (a *App) showSelection() {
	team, conv, _ := a.tree.Selected()
	a.statusBar.SetSelection(a.store.State(), team, conv)
}

func (a *App) setFocused(focused bool) {
	theme := a.Config.Theme
	if focused {
		a.tree.SetBorderStyle(theme.Border.Focused.Style)
		a.tree.SetTitleColor(theme.Title.Focused.Foreground())
	} else {
		a.tree.SetBorderStyle(theme.Border.Normal.Style)
		a.tree.SetTitleColor(theme.Title.Normal.Foreground())
	}
}

// onSelected asks for fresh details of the chosen team or channel. Without a
// live connection these side-effect actions only reach the store.
func (a *App) onSelected(team, conversationID string) {
	if conversationID == "" {
		a.store.Dispatch(teams.GetChannelsAction{Teamname: team})
		return
	}
	a.store.Dispatch(teams.GetChannelInfoAction{Teamname: team, ConversationIDKey: conversationID})
}
