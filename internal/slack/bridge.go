package slack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m96-chan/slacko-teams/internal/action"
	"github.com/m96-chan/slacko-teams/internal/teams"
)

// Store is where the bridge reads team state and sends actions.
type Store interface {
	Dispatch(a action.Action)
	State() *teams.State
}

// Bridge keeps a teams store in sync with one Slack workspace. Incoming
// events become reducer actions; side-effect actions dispatched into the
// store are carried out against the Slack API through Perform.
type Bridge struct {
	client *Client
	store  Store
	tr     *Translator
}

// NewBridge creates a bridge for client. defaultTeam names the workspace
// until its team info has been loaded.
func NewBridge(client *Client, store Store, defaultTeam string) *Bridge {
	if defaultTeam == "" {
		defaultTeam = client.TeamName
	}
	return &Bridge{
		client: client,
		store:  store,
		tr: &Translator{
			UserID:      client.UserID,
			TeamID:      client.TeamID,
			DefaultTeam: defaultTeam,
			State:       store.State,
		},
	}
}

// Run connects Socket Mode and blocks until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	return RunSocketMode(ctx, b.client.API(), b.Handler())
}

// Handler returns the event callbacks that feed the store.
func (b *Bridge) Handler() *EventHandler {
	return &EventHandler{
		OnChannelCreated:      translated(b, b.tr.ChannelCreated),
		OnChannelRename:       translated(b, b.tr.ChannelRename),
		OnChannelDeleted:      translated(b, b.tr.ChannelDeleted),
		OnChannelArchive:      translated(b, b.tr.ChannelArchive),
		OnMemberJoinedChannel: translated(b, b.tr.MemberJoinedChannel),
		OnMemberLeftChannel:   translated(b, b.tr.MemberLeftChannel),
		OnConnected: func() {
			go func() {
				if err := b.Bootstrap(); err != nil {
					slog.Error("failed to load team data", "error", err)
				}
			}()
		},
		OnError: func(err error) {
			slog.Error("socket mode error", "error", err)
		},
	}
}

func translated[T any](b *Bridge, fn func(*T) (action.Action, bool)) func(*T) {
	return func(e *T) {
		if a, ok := fn(e); ok {
			b.store.Dispatch(a)
		}
	}
}

// Bootstrap loads the workspace, the user's role in it and its channels.
func (b *Bridge) Bootstrap() error {
	info, err := b.client.GetTeamInfo()
	if err != nil {
		return fmt.Errorf("getting team info: %w", err)
	}
	user, err := b.client.GetUserInfo(b.client.UserID)
	if err != nil {
		return fmt.Errorf("getting user info: %w", err)
	}
	b.store.Dispatch(SetTeamInfoFromSlack(info, RoleFromSlackUser(user)))

	return b.loadChannels(TeamNameFromSlack(info))
}

func (b *Bridge) loadChannels(team string) error {
	channels, err := b.client.ListChannels()
	if err != nil {
		return err
	}
	b.store.Dispatch(SetTeamChannelsFromSlack(team, channels))
	slog.Info("loaded channels", "team", team, "count", len(channels))
	return nil
}

// Perform carries out the side effect behind a, dispatching the resulting
// reducer actions. Actions for other teams, and actions Slack has no
// equivalent for, are ignored.
func (b *Bridge) Perform(a action.Action) error {
	switch a := a.(type) {
	case teams.GetTeamsAction, teams.GetDetailsForAllTeamsAction:
		return b.Bootstrap()

	case teams.GetChannelsAction:
		if !b.owns(a.Teamname) {
			return nil
		}
		return b.loadChannels(a.Teamname)

	case teams.GetChannelInfoAction:
		if !b.owns(a.Teamname) {
			return nil
		}
		ch, err := b.client.GetConversationInfo(a.ConversationIDKey)
		if err != nil {
			return fmt.Errorf("getting channel %s: %w", a.ConversationIDKey, err)
		}
		b.store.Dispatch(teams.SetTeamChannelInfoAction{
			Teamname:          a.Teamname,
			ConversationIDKey: a.ConversationIDKey,
			ChannelInfo:       ChannelInfoFromSlack(*ch),
		})

	case teams.UpdateTopicAction:
		if !b.owns(a.Teamname) {
			return nil
		}
		if _, err := b.client.SetTopic(a.ConversationIDKey, a.NewTopic); err != nil {
			return fmt.Errorf("setting topic: %w", err)
		}
		b.store.Dispatch(teams.SetUpdatedTopicAction{
			Teamname:          a.Teamname,
			ConversationIDKey: a.ConversationIDKey,
			NewTopic:          a.NewTopic,
		})

	case teams.UpdateChannelNameAction:
		if !b.owns(a.Teamname) {
			return nil
		}
		ch, err := b.client.RenameConversation(a.ConversationIDKey, a.NewChannelName)
		if err != nil {
			return fmt.Errorf("renaming channel: %w", err)
		}
		b.store.Dispatch(teams.SetUpdatedChannelNameAction{
			Teamname:          a.Teamname,
			ConversationIDKey: a.ConversationIDKey,
			NewChannelName:    ch.Name,
		})

	case teams.CreateChannelAction:
		if !b.owns(a.Teamname) {
			return nil
		}
		return b.createChannel(a)

	case teams.DeleteChannelConfirmedAction:
		if !b.owns(a.Teamname) {
			return nil
		}
		if err := b.client.ArchiveConversation(a.ConversationIDKey); err != nil {
			return fmt.Errorf("archiving channel: %w", err)
		}
		b.store.Dispatch(teams.DeleteChannelInfoAction{Teamname: a.Teamname, ConversationIDKey: a.ConversationIDKey})
	}
	return nil
}

func (b *Bridge) createChannel(a teams.CreateChannelAction) error {
	ch, err := b.client.CreateConversation(a.Channelname, false)
	if err != nil {
		b.store.Dispatch(teams.SetChannelCreationErrorAction{Error: err.Error()})
		return fmt.Errorf("creating channel %s: %w", a.Channelname, err)
	}
	if a.Description != "" {
		if updated, err := b.client.SetPurpose(ch.ID, a.Description); err != nil {
			slog.Warn("failed to set channel purpose", "channel", ch.ID, "error", err)
		} else {
			ch = updated
		}
	}
	b.store.Dispatch(teams.SetChannelCreationErrorAction{})
	b.store.Dispatch(teams.SetTeamChannelInfoAction{
		Teamname:          a.Teamname,
		ConversationIDKey: ch.ID,
		ChannelInfo:       ChannelInfoFromSlack(*ch),
	})
	return nil
}

// owns reports whether team is the workspace this bridge is connected to.
func (b *Bridge) owns(team string) bool {
	return team == b.tr.TeamName("")
}
