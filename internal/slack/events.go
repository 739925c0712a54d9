package slack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

// EventHandler holds typed callback fields, one per event kind the teams
// state cares about. Nil callbacks are silently skipped.
type EventHandler struct {
	OnChannelCreated      func(*slackevents.ChannelCreatedEvent)
	OnChannelRename       func(*slackevents.ChannelRenameEvent)
	OnChannelDeleted      func(*slackevents.ChannelDeletedEvent)
	OnChannelArchive      func(*slackevents.ChannelArchiveEvent)
	OnMemberJoinedChannel func(*slackevents.MemberJoinedChannelEvent)
	OnMemberLeftChannel   func(*slackevents.MemberLeftChannelEvent)
	OnConnected           func()
	OnDisconnected        func()
	OnError               func(error)
}

// RunSocketMode creates a socketmode.Client for api, registers the
// callbacks from handler, and runs the event loop. It blocks until ctx is
// cancelled or a fatal error occurs.
func RunSocketMode(ctx context.Context, api *slack.Client, handler *EventHandler) error {
	smClient := socketmode.New(api)
	smHandler := socketmode.NewSocketmodeHandler(smClient)

	registerEventHandlers(smHandler, handler)
	registerLifecycleHandlers(smHandler, handler)

	return smHandler.RunEventLoopContext(ctx)
}

func registerEventHandlers(smHandler *socketmode.SocketmodeHandler, handler *EventHandler) {
	// Channel events.
	registerTypedHandler(smHandler, slackevents.ChannelCreated, handler.OnChannelCreated)
	registerTypedHandler(smHandler, slackevents.ChannelRename, handler.OnChannelRename)
	registerTypedHandler(smHandler, slackevents.ChannelDeleted, handler.OnChannelDeleted)
	registerTypedHandler(smHandler, slackevents.ChannelArchive, handler.OnChannelArchive)

	// Membership events.
	registerTypedHandler(smHandler, slackevents.MemberJoinedChannel, handler.OnMemberJoinedChannel)
	registerTypedHandler(smHandler, slackevents.MemberLeftChannel, handler.OnMemberLeftChannel)
}

// registerTypedHandler registers a HandleEvents callback that acks the
// request and hands the inner event to deliver.
func registerTypedHandler[T any](smHandler *socketmode.SocketmodeHandler, eventType slackevents.EventsAPIType, callback func(*T)) {
	smHandler.HandleEvents(eventType, func(evt *socketmode.Event, client *socketmode.Client) {
		client.Ack(*evt.Request)
		deliver(eventType, evt.Data, callback)
	})
}

// deliver extracts the inner event from an Events API payload, type-asserts
// it and calls callback. It reports whether callback ran.
func deliver[T any](eventType slackevents.EventsAPIType, data any, callback func(*T)) bool {
	apiEvt, ok := data.(slackevents.EventsAPIEvent)
	if !ok {
		return false
	}
	inner, ok := apiEvt.InnerEvent.Data.(*T)
	if !ok {
		slog.Warn("unexpected inner event type",
			"event_type", eventType,
			"data_type", fmt.Sprintf("%T", apiEvt.InnerEvent.Data))
		return false
	}
	if callback == nil {
		return false
	}
	callback(inner)
	return true
}

// registerLifecycleHandlers wires socketmode-level connection events to the
// appropriate EventHandler callbacks.
func registerLifecycleHandlers(smHandler *socketmode.SocketmodeHandler, handler *EventHandler) {
	smHandler.Handle(socketmode.EventTypeConnected, func(evt *socketmode.Event, _ *socketmode.Client) {
		slog.Info("socket mode connected")
		if handler.OnConnected != nil {
			handler.OnConnected()
		}
	})

	smHandler.Handle(socketmode.EventTypeDisconnect, func(evt *socketmode.Event, _ *socketmode.Client) {
		slog.Warn("socket mode disconnected")
		if handler.OnDisconnected != nil {
			handler.OnDisconnected()
		}
	})

	smHandler.Handle(socketmode.EventTypeIncomingError, func(evt *socketmode.Event, _ *socketmode.Client) {
		reportError(handler, "socket mode incoming error", evt.Data)
	})

	smHandler.Handle(socketmode.EventTypeConnectionError, func(evt *socketmode.Event, _ *socketmode.Client) {
		slog.Warn("socket mode connection error", "data", evt.Data)
		reportError(handler, "socket mode connection error", evt.Data)
	})

	smHandler.Handle(socketmode.EventTypeInvalidAuth, func(evt *socketmode.Event, _ *socketmode.Client) {
		slog.Error("socket mode invalid auth")
		if handler.OnError != nil {
			handler.OnError(fmt.Errorf("socket mode: invalid auth"))
		}
	})
}

func reportError(handler *EventHandler, prefix string, data any) {
	if handler.OnError == nil {
		return
	}
	if err, ok := data.(error); ok {
		handler.OnError(err)
		return
	}
	handler.OnError(fmt.Errorf("%s: %v", prefix, data))
}
