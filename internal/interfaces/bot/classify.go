package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mediavault/vault-bot/internal/domain/vault"
)

// ClassifyMedia maps an inbound message to the media payload it carries.
// Returns false for plain text and anything else the archive does not accept.
// Photos arrive as a size ladder; only the largest rendition is kept.
func ClassifyMedia(msg *tgbotapi.Message) (vault.MediaDescriptor, bool) {
	switch {
	case msg.Document != nil:
		return vault.MediaDescriptor{
			Kind:     vault.KindDocument,
			FileID:   msg.Document.FileID,
			FileName: msg.Document.FileName,
			FileSize: int64(msg.Document.FileSize),
		}, true
	case len(msg.Photo) > 0:
		best := msg.Photo[len(msg.Photo)-1]
		return vault.MediaDescriptor{
			Kind:     vault.KindPhoto,
			FileID:   best.FileID,
			FileSize: int64(best.FileSize),
		}, true
	case msg.Video != nil:
		return vault.MediaDescriptor{
			Kind:     vault.KindVideo,
			FileID:   msg.Video.FileID,
			FileName: msg.Video.FileName,
			FileSize: int64(msg.Video.FileSize),
		}, true
	case msg.Audio != nil:
		return vault.MediaDescriptor{
			Kind:     vault.KindAudio,
			FileID:   msg.Audio.FileID,
			FileName: msg.Audio.FileName,
			FileSize: int64(msg.Audio.FileSize),
		}, true
	case msg.Voice != nil:
		return vault.MediaDescriptor{
			Kind:     vault.KindVoice,
			FileID:   msg.Voice.FileID,
			FileSize: int64(msg.Voice.FileSize),
		}, true
	case msg.VideoNote != nil:
		return vault.MediaDescriptor{
			Kind:     vault.KindVideoNote,
			FileID:   msg.VideoNote.FileID,
			FileSize: int64(msg.VideoNote.FileSize),
		}, true
	case msg.Animation != nil:
		return vault.MediaDescriptor{
			Kind:     vault.KindAnimation,
			FileID:   msg.Animation.FileID,
			FileName: msg.Animation.FileName,
			FileSize: int64(msg.Animation.FileSize),
		}, true
	case msg.Sticker != nil:
		return vault.MediaDescriptor{
			Kind:     vault.KindSticker,
			FileID:   msg.Sticker.FileID,
			FileSize: int64(msg.Sticker.FileSize),
		}, true
	}
	return vault.MediaDescriptor{}, false
}
