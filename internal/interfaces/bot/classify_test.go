package bot

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mediavault/vault-bot/internal/domain/vault"
	"github.com/mediavault/vault-bot/internal/i18n"
)

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		name     string
		msg      *tgbotapi.Message
		wantOK   bool
		wantKind vault.MediaKind
		wantFile string
		wantName string
		wantSize int64
	}{
		{
			name: "document",
			msg: &tgbotapi.Message{Document: &tgbotapi.Document{
				FileID: "doc-1", FileName: "report.pdf", FileSize: 2048,
			}},
			wantOK: true, wantKind: vault.KindDocument,
			wantFile: "doc-1", wantName: "report.pdf", wantSize: 2048,
		},
		{
			name: "photo keeps largest rendition",
			msg: &tgbotapi.Message{Photo: []tgbotapi.PhotoSize{
				{FileID: "ph-s", FileSize: 100},
				{FileID: "ph-m", FileSize: 400},
				{FileID: "ph-l", FileSize: 900},
			}},
			wantOK: true, wantKind: vault.KindPhoto,
			wantFile: "ph-l", wantSize: 900,
		},
		{
			name: "video",
			msg: &tgbotapi.Message{Video: &tgbotapi.Video{
				FileID: "vid-1", FileName: "clip.mp4", FileSize: 5000,
			}},
			wantOK: true, wantKind: vault.KindVideo,
			wantFile: "vid-1", wantName: "clip.mp4", wantSize: 5000,
		},
		{
			name: "audio",
			msg: &tgbotapi.Message{Audio: &tgbotapi.Audio{
				FileID: "aud-1", FileName: "song.mp3", FileSize: 3000,
			}},
			wantOK: true, wantKind: vault.KindAudio,
			wantFile: "aud-1", wantName: "song.mp3", wantSize: 3000,
		},
		{
			name:   "voice",
			msg:    &tgbotapi.Message{Voice: &tgbotapi.Voice{FileID: "voi-1", FileSize: 700}},
			wantOK: true, wantKind: vault.KindVoice,
			wantFile: "voi-1", wantSize: 700,
		},
		{
			name:   "video note",
			msg:    &tgbotapi.Message{VideoNote: &tgbotapi.VideoNote{FileID: "vn-1", FileSize: 1200}},
			wantOK: true, wantKind: vault.KindVideoNote,
			wantFile: "vn-1", wantSize: 1200,
		},
		{
			name: "animation",
			msg: &tgbotapi.Message{Animation: &tgbotapi.Animation{
				FileID: "ani-1", FileName: "loop.gif", FileSize: 800,
			}},
			wantOK: true, wantKind: vault.KindAnimation,
			wantFile: "ani-1", wantName: "loop.gif", wantSize: 800,
		},
		{
			name:   "sticker",
			msg:    &tgbotapi.Message{Sticker: &tgbotapi.Sticker{FileID: "stk-1", FileSize: 64}},
			wantOK: true, wantKind: vault.KindSticker,
			wantFile: "stk-1", wantSize: 64,
		},
		{
			name:   "plain text",
			msg:    &tgbotapi.Message{Text: "hello"},
			wantOK: false,
		},
		{
			name:   "empty message",
			msg:    &tgbotapi.Message{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyMedia(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.FileID != tt.wantFile {
				t.Errorf("file id = %q, want %q", got.FileID, tt.wantFile)
			}
			if got.FileName != tt.wantName {
				t.Errorf("file name = %q, want %q", got.FileName, tt.wantName)
			}
			if got.FileSize != tt.wantSize {
				t.Errorf("file size = %d, want %d", got.FileSize, tt.wantSize)
			}
		})
	}
}

func TestClassifyMediaDocumentWinsOverPhoto(t *testing.T) {
	msg := &tgbotapi.Message{
		Document: &tgbotapi.Document{FileID: "doc-1"},
		Photo:    []tgbotapi.PhotoSize{{FileID: "ph-1"}},
	}
	got, ok := ClassifyMedia(msg)
	if !ok || got.Kind != vault.KindDocument {
		t.Fatalf("got kind %q ok=%v, want document", got.Kind, ok)
	}
}

func TestParseRetrieveArgs(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"123456789", "123456789", true},
		{"  123456789  ", "123456789", true},
		{"", "", false},
		{"   ", "", false},
		{"123 456", "", false},
		{"abc", "abc", true},
	}

	for _, tt := range tests {
		got, ok := parseRetrieveArgs(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseRetrieveArgs(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLanguageKeyboardLayout(t *testing.T) {
	kb := languageKeyboard()

	langs := i18n.Supported()
	if len(kb.InlineKeyboard) != (len(langs)+1)/2 {
		t.Fatalf("rows = %d, want %d", len(kb.InlineKeyboard), (len(langs)+1)/2)
	}

	var seen []string
	for _, row := range kb.InlineKeyboard {
		if len(row) > 2 {
			t.Fatalf("row has %d buttons, want at most 2", len(row))
		}
		for _, btn := range row {
			if btn.CallbackData == nil {
				t.Fatal("button has no callback data")
			}
			if !strings.HasPrefix(*btn.CallbackData, langCallbackPrefix) {
				t.Errorf("callback data %q missing %q prefix", *btn.CallbackData, langCallbackPrefix)
			}
			seen = append(seen, strings.TrimPrefix(*btn.CallbackData, langCallbackPrefix))
		}
	}

	if len(seen) != len(langs) {
		t.Fatalf("buttons = %d, want %d", len(seen), len(langs))
	}
	for i, lang := range langs {
		if seen[i] != string(lang) {
			t.Errorf("button %d = %q, want %q", i, seen[i], lang)
		}
		if _, ok := i18n.Parse(seen[i]); !ok {
			t.Errorf("button tag %q does not round-trip through Parse", seen[i])
		}
	}
}
