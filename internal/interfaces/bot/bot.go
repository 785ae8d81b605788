package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/mediavault/vault-bot/internal/config"
	"github.com/mediavault/vault-bot/internal/domain/userpref"
	"github.com/mediavault/vault-bot/internal/domain/vault"
	"github.com/mediavault/vault-bot/internal/infrastructure/metrics"
	"github.com/mediavault/vault-bot/internal/infrastructure/telegram"
)

// Bot consumes the long-poll update stream and routes each update to a
// handler. Handlers run in their own goroutine so one slow archive round trip
// does not stall the stream.
type Bot struct {
	client *telegram.Client
	vault  *vault.Service
	prefs  *userpref.Service
	cfg    *config.Config
	log    zerolog.Logger
}

func New(client *telegram.Client, vaultSvc *vault.Service, prefs *userpref.Service, cfg *config.Config, log zerolog.Logger) *Bot {
	return &Bot{
		client: client,
		vault:  vaultSvc,
		prefs:  prefs,
		cfg:    cfg,
		log:    log.With().Str("component", "bot").Logger(),
	}
}

// Run blocks consuming updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.PollTimeout
	u.AllowedUpdates = []string{"message", "callback_query"}

	updates := b.client.API().GetUpdatesChan(u)
	b.log.Info().Int("poll_timeout", b.cfg.PollTimeout).Msg("update loop started")

	for {
		select {
		case <-ctx.Done():
			b.client.API().StopReceivingUpdates()
			b.log.Info().Msg("update loop stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.dispatch(ctx, update)
		}
	}
}

func (b *Bot) dispatch(parent context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Int("update_id", update.UpdateID).Msg("handler panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(parent, b.cfg.HandlerTimeout)
	defer cancel()

	switch {
	case update.CallbackQuery != nil:
		metrics.RecordUpdate("callback_query")
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		metrics.RecordUpdate("message")
		b.handleMessage(ctx, update.Message)
	default:
		metrics.RecordUpdate("other")
	}
}
