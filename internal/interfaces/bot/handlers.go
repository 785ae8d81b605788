package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mediavault/vault-bot/internal/domain/userpref"
	"github.com/mediavault/vault-bot/internal/domain/vault"
	"github.com/mediavault/vault-bot/internal/i18n"
	"github.com/mediavault/vault-bot/internal/infrastructure/metrics"
)

// langCallbackPrefix marks language menu callbacks; the suffix is the tag.
const langCallbackPrefix = "lang_"

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(ctx, msg)
		case "file":
			b.handleRetrieve(ctx, msg)
		default:
			lang := b.prefs.Language(ctx, msg.From.ID)
			b.sendText(msg.Chat.ID, i18n.T(lang, i18n.KeySendFile))
		}
		return
	}

	if media, ok := ClassifyMedia(msg); ok {
		b.handleMedia(ctx, msg, media)
		return
	}

	lang := b.prefs.Language(ctx, msg.From.ID)
	b.sendText(msg.Chat.ID, i18n.T(lang, i18n.KeySendFile))
}

// handleStart greets returning users in their stored language. First-time
// users get the language menu instead; the welcome follows their selection.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	pref, err := b.prefs.Find(ctx, msg.From.ID)
	if err != nil {
		b.log.Warn().Err(err).Int64("user_id", msg.From.ID).Msg("preference lookup failed on /start")
	}

	if pref != nil {
		lang := b.prefs.Language(ctx, msg.From.ID)
		b.sendText(msg.Chat.ID, fmt.Sprintf(i18n.T(lang, i18n.KeyWelcome), msg.From.FirstName))
		b.vault.SendWelcomeMedia(ctx, msg.From.ID)
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, i18n.ChooseLanguagePrompt)
	out.ReplyMarkup = languageKeyboard()
	if _, err := b.client.API().Send(out); err != nil {
		b.log.Warn().Err(err).Int64("chat_id", msg.Chat.ID).Msg("language menu send failed")
	}
}

// handleCallback completes language selection. The callback is acknowledged
// up front so the client spinner stops regardless of what follows.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.client.API().Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.log.Warn().Err(err).Msg("callback ack failed")
	}

	if !strings.HasPrefix(cq.Data, langCallbackPrefix) {
		return
	}
	lang, ok := i18n.Parse(strings.TrimPrefix(cq.Data, langCallbackPrefix))
	if !ok {
		b.log.Warn().Str("data", cq.Data).Msg("unknown language callback")
		return
	}

	pref := &userpref.Preference{
		UserID:      cq.From.ID,
		Language:    lang,
		DisplayName: cq.From.FirstName,
		Handle:      cq.From.UserName,
	}
	if err := b.prefs.Set(ctx, pref); err != nil {
		b.log.Error().Err(err).Int64("user_id", cq.From.ID).Msg("preference save failed")
		return
	}
	metrics.LanguageSelectionsTotal.WithLabelValues(string(lang)).Inc()

	if cq.Message != nil {
		edit := tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, i18n.T(lang, i18n.KeyLanguageSet))
		if _, err := b.client.API().Send(edit); err != nil {
			b.log.Warn().Err(err).Msg("menu edit failed")
		}
		b.sendText(cq.Message.Chat.ID, fmt.Sprintf(i18n.T(lang, i18n.KeyWelcome), cq.From.FirstName))
	}
	b.vault.SendWelcomeMedia(ctx, cq.From.ID)
}

func (b *Bot) handleMedia(ctx context.Context, msg *tgbotapi.Message, media vault.MediaDescriptor) {
	lang := b.prefs.Language(ctx, msg.From.ID)

	item, err := b.vault.Store(ctx, vault.StoreRequest{
		OwnerID:     msg.From.ID,
		OwnerName:   msg.From.FirstName,
		OwnerHandle: msg.From.UserName,
		ChatID:      msg.Chat.ID,
		MessageID:   msg.MessageID,
		Media:       media,
	})
	if err != nil {
		metrics.RecordStore(string(media.Kind), "error")
		b.log.Error().Err(err).Int64("user_id", msg.From.ID).Str("media_kind", string(media.Kind)).Msg("store failed")
		b.sendText(msg.Chat.ID, fmt.Sprintf("❌ Error: %s", err))
		return
	}

	metrics.RecordStore(string(media.Kind), "success")
	b.sendMarkdown(msg.Chat.ID, fmt.Sprintf(i18n.T(lang, i18n.KeyFileSaved), item.Token, item.Token))
}

func (b *Bot) handleRetrieve(ctx context.Context, msg *tgbotapi.Message) {
	lang := b.prefs.Language(ctx, msg.From.ID)

	token, ok := parseRetrieveArgs(msg.CommandArguments())
	if !ok {
		b.sendText(msg.Chat.ID, i18n.T(lang, i18n.KeySendFile))
		return
	}

	item, err := b.vault.Retrieve(ctx, msg.From.ID, token)
	switch {
	case errors.Is(err, vault.ErrNotFound):
		metrics.RecordRetrieval("not_found")
		b.sendText(msg.Chat.ID, fmt.Sprintf(i18n.T(lang, i18n.KeyFileNotFound), token))
	case err != nil:
		metrics.RecordRetrieval("error")
		b.log.Error().Err(err).Int64("user_id", msg.From.ID).Msg("retrieve failed")
		b.sendText(msg.Chat.ID, fmt.Sprintf("❌ Error: %s", err))
	default:
		metrics.RecordRetrieval("success")
		b.sendText(msg.Chat.ID, fmt.Sprintf(i18n.T(lang, i18n.KeyFileRetrieved), item.Token))
	}
}

// parseRetrieveArgs expects exactly one whitespace-separated argument.
func parseRetrieveArgs(raw string) (string, bool) {
	fields := strings.Fields(raw)
	if len(fields) != 1 {
		return "", false
	}
	return fields[0], true
}

// languageKeyboard lays the supported languages out two per row, labelled in
// their own language.
func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	langs := i18n.Supported()
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(langs)+1)/2)
	for i := 0; i < len(langs); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(langs[i], i18n.KeyName), langCallbackPrefix+string(langs[i])),
		}
		if i+1 < len(langs) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(i18n.T(langs[i+1], i18n.KeyName), langCallbackPrefix+string(langs[i+1])))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) sendText(chatID int64, text string) {
	if _, err := b.client.API().Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Warn().Err(err).Int64("chat_id", chatID).Msg("send failed")
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	out := tgbotapi.NewMessage(chatID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.client.API().Send(out); err != nil {
		b.log.Warn().Err(err).Int64("chat_id", chatID).Msg("send failed")
	}
}
