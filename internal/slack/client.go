package slack

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

// api is the subset of *slack.Client used by the bridge.
type api interface {
	GetConversations(params *slack.GetConversationsParameters) ([]slack.Channel, string, error)
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)
	SetTopicOfConversation(channelID, topic string) (*slack.Channel, error)
	SetPurposeOfConversation(channelID, purpose string) (*slack.Channel, error)
	RenameConversation(channelID, name string) (*slack.Channel, error)
	CreateConversation(params slack.CreateConversationParams) (*slack.Channel, error)
	ArchiveConversation(channelID string) error
	GetTeamInfo() (*slack.TeamInfo, error)
	GetUserInfo(user string) (*slack.User, error)
}

// Client is a thin wrapper around slack.Client with rate-limit retry
// and cached identity information.
type Client struct {
	raw      *slack.Client
	api      api
	UserID   string
	TeamID   string
	TeamName string
	UserName string
}

// New creates a Client, validates the tokens via AuthTest, and populates
// the identity fields.
func New(userToken, appToken string) (*Client, error) {
	if !strings.HasPrefix(appToken, "xapp-") {
		return nil, fmt.Errorf("app token must start with xapp- (got %s...)", safePrefix(appToken))
	}

	raw := slack.New(userToken, slack.OptionAppLevelToken(appToken))

	resp, err := call(raw.AuthTest)
	if err != nil {
		return nil, fmt.Errorf("auth test: %w", err)
	}

	return &Client{
		raw:      raw,
		api:      raw,
		UserID:   resp.UserID,
		TeamID:   resp.TeamID,
		TeamName: resp.Team,
		UserName: resp.User,
	}, nil
}

// API returns the underlying slack.Client for direct access (e.g. socketmode).
func (c *Client) API() *slack.Client { return c.raw }

// retryOnRateLimit executes fn and, if a RateLimitedError is returned,
// sleeps for the requested duration and retries once.
func retryOnRateLimit(fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}

	var rle *slack.RateLimitedError
	if errors.As(err, &rle) {
		time.Sleep(rle.RetryAfter)
		return fn()
	}
	return err
}

// ListChannels returns every non-archived public and private channel,
// following pagination cursors.
func (c *Client) ListChannels() ([]slack.Channel, error) {
	var all []slack.Channel
	params := &slack.GetConversationsParameters{
		Types:           []string{"public_channel", "private_channel"},
		Limit:           200,
		ExcludeArchived: true,
	}

	for {
		var cursor string
		channels, err := call(func() ([]slack.Channel, error) {
			page, next, e := c.api.GetConversations(params)
			cursor = next
			return page, e
		})
		if err != nil {
			return nil, fmt.Errorf("listing channels: %w", err)
		}
		all = append(all, channels...)
		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}
	return all, nil
}

// call runs fn under retryOnRateLimit and returns its result.
func call[T any](fn func() (T, error)) (T, error) {
	var out T
	err := retryOnRateLimit(func() error {
		var e error
		out, e = fn()
		return e
	})
	return out, err
}

// GetConversationInfo returns detailed information about a conversation.
func (c *Client) GetConversationInfo(channelID string) (*slack.Channel, error) {
	return call(func() (*slack.Channel, error) {
		return c.api.GetConversationInfo(&slack.GetConversationInfoInput{
			ChannelID:         channelID,
			IncludeNumMembers: true,
		})
	})
}

// SetTopic sets the topic for a conversation.
func (c *Client) SetTopic(channelID, topic string) (*slack.Channel, error) {
	return call(func() (*slack.Channel, error) { return c.api.SetTopicOfConversation(channelID, topic) })
}

// SetPurpose sets the purpose (description) for a conversation.
func (c *Client) SetPurpose(channelID, purpose string) (*slack.Channel, error) {
	return call(func() (*slack.Channel, error) { return c.api.SetPurposeOfConversation(channelID, purpose) })
}

// RenameConversation renames a channel and returns it as Slack now sees it.
func (c *Client) RenameConversation(channelID, name string) (*slack.Channel, error) {
	return call(func() (*slack.Channel, error) { return c.api.RenameConversation(channelID, name) })
}

// CreateConversation creates a new channel (public or private).
func (c *Client) CreateConversation(name string, isPrivate bool) (*slack.Channel, error) {
	return call(func() (*slack.Channel, error) {
		return c.api.CreateConversation(slack.CreateConversationParams{
			ChannelName: name,
			IsPrivate:   isPrivate,
		})
	})
}

// ArchiveConversation archives a channel. Slack has no user-level delete,
// so this is what a channel deletion maps to.
func (c *Client) ArchiveConversation(channelID string) error {
	return retryOnRateLimit(func() error { return c.api.ArchiveConversation(channelID) })
}

// GetTeamInfo returns the workspace the tokens belong to.
func (c *Client) GetTeamInfo() (*slack.TeamInfo, error) {
	return call(c.api.GetTeamInfo)
}

// GetUserInfo looks up a single user.
func (c *Client) GetUserInfo(userID string) (*slack.User, error) {
	return call(func() (*slack.User, error) { return c.api.GetUserInfo(userID) })
}

// safePrefix returns the first 10 characters of a token for error messages.
func safePrefix(token string) string {
	if len(token) <= 10 {
		return token
	}
	return token[:10]
}
