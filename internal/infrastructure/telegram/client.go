package telegram

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/mediavault/vault-bot/internal/config"
	"github.com/mediavault/vault-bot/internal/domain/vault"
)

// Client wraps the Bot API connection and implements the archive relay. Every
// call is bounded by the HTTP client timeout, so a hung Telegram dependency
// cannot pin a request handler forever.
type Client struct {
	api       *tgbotapi.BotAPI
	archive   config.ChatRef
	welcome   config.ChatRef
	welcomeID int
	log       zerolog.Logger
}

var _ vault.Relay = (*Client)(nil)

func NewClient(cfg *config.Config, log zerolog.Logger) (*Client, error) {
	httpClient := &http.Client{Timeout: cfg.APITimeout}
	api, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("connect bot api: %w", err)
	}

	log = log.With().Str("component", "telegram-client").Logger()
	log.Info().Str("bot", api.Self.UserName).Str("archive", cfg.ArchiveChat.String()).Msg("bot api connected")

	return &Client{
		api:       api,
		archive:   cfg.ArchiveChat,
		welcome:   cfg.WelcomeMediaChat,
		welcomeID: cfg.WelcomeMediaID,
		log:       log,
	}, nil
}

// API exposes the underlying connection for the update loop and plain sends.
func (c *Client) API() *tgbotapi.BotAPI {
	return c.api
}

// RelayToArchive forwards the referenced message into the archive chat and
// returns the message id of the relayed copy.
func (c *Client) RelayToArchive(ctx context.Context, fromChatID int64, messageID int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fwd := tgbotapi.NewForward(c.archive.ID, fromChatID, messageID)
	if c.archive.ByUsername() {
		fwd.ChannelUsername = c.archive.Username
	}

	sent, err := c.api.Send(fwd)
	if err != nil {
		return 0, fmt.Errorf("forward to archive %s: %w", c.archive, err)
	}
	return sent.MessageID, nil
}

// DeliverFromArchive forwards the archived copy to the requesting user.
func (c *Client) DeliverFromArchive(ctx context.Context, userID int64, archiveMessageID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fwd := tgbotapi.NewForward(userID, c.archive.ID, archiveMessageID)
	if c.archive.ByUsername() {
		fwd.FromChannelUsername = c.archive.Username
	}

	if _, err := c.api.Send(fwd); err != nil {
		return fmt.Errorf("forward archive message %d to user %d: %w", archiveMessageID, userID, err)
	}
	return nil
}

// SendWelcomeMedia forwards the fixed introductory media to a newly onboarded
// user. Callers treat failure as non-fatal.
func (c *Client) SendWelcomeMedia(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fwd := tgbotapi.NewForward(userID, c.welcome.ID, c.welcomeID)
	if c.welcome.ByUsername() {
		fwd.FromChannelUsername = c.welcome.Username
	}

	if _, err := c.api.Send(fwd); err != nil {
		return fmt.Errorf("forward welcome media to user %d: %w", userID, err)
	}
	return nil
}
