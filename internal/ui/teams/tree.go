package teams

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/m96-chan/slacko-teams/internal/config"
	"github.com/m96-chan/slacko-teams/internal/teams"
	"github.com/m96-chan/slacko-teams/internal/ui/keys"
)

// nodeRef stores metadata for a tree node, used as tview.TreeNode.Reference.
// ConversationID is empty for team nodes.
type nodeRef struct {
	Team           string
	ConversationID string
}

// OnSelectedFunc is called when the user selects a team or channel node.
type OnSelectedFunc func(team, conversationID string)

// OnCreateChannelFunc is called to create a channel in team.
type OnCreateChannelFunc func(team string)

// OnDeleteChannelFunc is called to delete a team's channel.
type OnDeleteChannelFunc func(team, conversationID string)

// Tree shows every known team with its channels underneath.
type Tree struct {
	*tview.TreeView
	cfg        *config.Config
	root       *tview.TreeNode
	teamNodes  map[string]*tview.TreeNode
	collapsed  map[string]bool // survives re-renders
	filter     string
	onSelected OnSelectedFunc
	onCreate   OnCreateChannelFunc
	onDelete   OnDeleteChannelFunc
}

// NewTree creates an empty teams tree.
func NewTree(cfg *config.Config, onSelected OnSelectedFunc) *Tree {
	tr := &Tree{
		TreeView:   tview.NewTreeView(),
		cfg:        cfg,
		teamNodes:  make(map[string]*tview.TreeNode),
		collapsed:  make(map[string]bool),
		onSelected: onSelected,
	}

	tr.root = tview.NewTreeNode("")
	tr.SetRoot(tr.root)
	tr.SetTopLevel(1)
	tr.SetGraphics(false)
	tr.SetBorder(true).SetTitle(" Teams ")
	tr.SetBorderStyle(cfg.Theme.Border.Normal.Style)
	tr.SetTitleColor(cfg.Theme.Title.Normal.Foreground())

	tr.SetSelectedFunc(tr.selectNode)
	tr.SetInputCapture(tr.handleInput)

	return tr
}

// SetOnSelected sets the callback for node selection.
func (tr *Tree) SetOnSelected(fn OnSelectedFunc) {
	tr.onSelected = fn
}

// SetOnCreateChannel sets the callback for the create channel key.
func (tr *Tree) SetOnCreateChannel(fn OnCreateChannelFunc) {
	tr.onCreate = fn
}

// SetOnDeleteChannel sets the callback for the delete channel key.
func (tr *Tree) SetOnDeleteChannel(fn OnDeleteChannelFunc) {
	tr.onDelete = fn
}

// SetFilter sets the fuzzy team filter applied by the next Render.
func (tr *Tree) SetFilter(query string) {
	tr.filter = query
}

// Filter returns the current team filter.
func (tr *Tree) Filter() string {
	return tr.filter
}

// Selected returns the team and conversation of the current node.
func (tr *Tree) Selected() (team, conversationID string, ok bool) {
	node := tr.GetCurrentNode()
	if node == nil {
		return "", "", false
	}
	ref, ok := node.GetReference().(nodeRef)
	return ref.Team, ref.ConversationID, ok
}

// Render clears and rebuilds the tree from s, keeping the current
// selection when its node still exists.
func (tr *Tree) Render(s *teams.State) {
	prev, hadPrev := tr.currentRef()

	tr.root.ClearChildren()
	tr.teamNodes = make(map[string]*tview.TreeNode)

	var restore *tview.TreeNode
	for _, team := range tr.visibleTeams(s) {
		node := tr.teamNode(s, team)
		tr.root.AddChild(node)
		tr.teamNodes[team] = node
		if hadPrev && prev == (nodeRef{Team: team}) {
			restore = node
		}

		for _, ch := range teams.ChannelsForTeam(s, team) {
			child := tr.channelNode(team, ch)
			node.AddChild(child)
			if hadPrev && prev == child.GetReference() {
				restore = child
			}
		}
	}

	switch {
	case restore != nil:
		tr.SetCurrentNode(restore)
	case len(tr.root.GetChildren()) > 0:
		tr.SetCurrentNode(tr.root.GetChildren()[0])
	default:
		tr.SetCurrentNode(nil)
	}
}

// visibleTeams applies the filter and its limit.
func (tr *Tree) visibleTeams(s *teams.State) []string {
	names := teams.FilterTeamnames(s, tr.filter)
	if limit := tr.cfg.TeamsTree.FilterLimit; tr.filter != "" && limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}

func (tr *Tree) teamNode(s *teams.State, team string) *tview.TreeNode {
	name, badge := teamDisplayText(team, teams.RoleForTeam(s, team), teams.MemberCount(s, team), tr.cfg.TeamsTree, tr.cfg.AsciiIcons)
	text := name
	if badge != "" {
		b := tr.cfg.Theme.TeamsTree.Badge
		text += " " + b.Tag() + badge + b.Reset()
	}

	node := tview.NewTreeNode(text).
		SetReference(nodeRef{Team: team}).
		SetSelectable(true).
		SetExpanded(!tr.collapsed[team])
	node.SetTextStyle(tr.cfg.Theme.TeamsTree.Team.Style)
	node.SetSelectedTextStyle(tr.cfg.Theme.TeamsTree.Selected.Style)
	return node
}

func (tr *Tree) channelNode(team string, ch teams.ChannelEntry) *tview.TreeNode {
	node := tview.NewTreeNode(channelDisplayText(ch.Info, tr.cfg.AsciiIcons)).
		SetReference(nodeRef{Team: team, ConversationID: ch.ConversationIDKey}).
		SetSelectable(true)
	if isMember(ch.Info.MemberStatus) {
		node.SetTextStyle(tr.cfg.Theme.TeamsTree.Channel.Style)
	} else {
		node.SetTextStyle(tr.cfg.Theme.TeamsTree.Left.Style)
	}
	node.SetSelectedTextStyle(tr.cfg.Theme.TeamsTree.Selected.Style)
	return node
}

func (tr *Tree) currentRef() (nodeRef, bool) {
	node := tr.GetCurrentNode()
	if node == nil {
		return nodeRef{}, false
	}
	ref, ok := node.GetReference().(nodeRef)
	return ref, ok
}

func (tr *Tree) selectNode(node *tview.TreeNode) {
	ref, ok := node.GetReference().(nodeRef)
	if ok && tr.onSelected != nil {
		tr.onSelected(ref.Team, ref.ConversationID)
	}
}

// handleInput processes the teams tree keybindings.
func (tr *Tree) handleInput(event *tcell.EventKey) *tcell.EventKey {
	name := keys.Name(event)
	kb := tr.cfg.Keybinds.TeamsTree

	switch name {
	case kb.Collapse:
		ref, ok := tr.currentRef()
		if !ok {
			return event
		}
		// Collapsing a channel folds its team.
		node := tr.teamNodes[ref.Team]
		if node == nil {
			return nil
		}
		expanded := !node.IsExpanded()
		node.SetExpanded(expanded)
		tr.collapsed[ref.Team] = !expanded
		if !expanded {
			tr.SetCurrentNode(node)
		}
		return nil

	case kb.MoveToParent:
		ref, ok := tr.currentRef()
		if !ok {
			return event
		}
		if node := tr.teamNodes[ref.Team]; node != nil {
			tr.SetCurrentNode(node)
		}
		return nil

	case kb.SelectCurrent:
		node := tr.GetCurrentNode()
		if node == nil {
			return event
		}
		tr.selectNode(node)
		return nil

	case kb.CreateChannel:
		ref, ok := tr.currentRef()
		if !ok || tr.onCreate == nil {
			return event
		}
		tr.onCreate(ref.Team)
		return nil

	case kb.DeleteChannel:
		ref, ok := tr.currentRef()
		if !ok || ref.ConversationID == "" || tr.onDelete == nil {
			return event
		}
		tr.onDelete(ref.Team, ref.ConversationID)
		return nil
	}

	return event
}

// teamDisplayText returns a team's label and its badge, which is empty when
// neither the role nor the member count is shown.
func teamDisplayText(team string, role teams.TeamRoleType, members int, opts config.TeamsTree, asciiIcons bool) (string, string) {
	var parts []string
	if opts.ShowRole && role != "" && role != teams.RoleNone {
		parts = append(parts, roleIcon(role, asciiIcons)+string(role))
	}
	if opts.ShowMembers && members > 0 {
		parts = append(parts, fmt.Sprintf("%d", members))
	}
	if len(parts) == 0 {
		return team, ""
	}
	return team, "(" + strings.Join(parts, ", ") + ")"
}

func roleIcon(role teams.TeamRoleType, asciiIcons bool) string {
	switch role {
	case teams.RoleOwner:
		if asciiIcons {
			return "** "
		}
		return "★ "
	case teams.RoleAdmin:
		if asciiIcons {
			return "* "
		}
		return "☆ "
	default:
		return ""
	}
}

// channelDisplayText returns the label for a channel node.
func channelDisplayText(info teams.ChannelInfo, asciiIcons bool) string {
	name := info.ChannelName
	if name == "" {
		name = "(unnamed)"
	}
	return channelIcon(info.MemberStatus, asciiIcons) + " " + name
}

// channelIcon marks whether the user is in the channel.
func channelIcon(status teams.ConversationMemberStatus, asciiIcons bool) string {
	switch {
	case isMember(status):
		return "#"
	case status == teams.MemberStatusNeverJoined || status == teams.MemberStatusPreview:
		if asciiIcons {
			return "o"
		}
		return "○"
	default:
		if asciiIcons {
			return "x"
		}
		return "✕"
	}
}

func isMember(status teams.ConversationMemberStatus) bool {
	return status == teams.MemberStatusActive
}
