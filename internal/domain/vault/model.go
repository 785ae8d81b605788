package vault

import "time"

// MediaKind classifies the media payload of an inbound message.
type MediaKind string

const (
	KindDocument  MediaKind = "document"
	KindPhoto     MediaKind = "photo"
	KindVideo     MediaKind = "video"
	KindAudio     MediaKind = "audio"
	KindVoice     MediaKind = "voice"
	KindVideoNote MediaKind = "video_note"
	KindAnimation MediaKind = "animation"
	KindSticker   MediaKind = "sticker"
)

// Item is one archived piece of media. Records are created exactly once and
// never mutated afterwards.
type Item struct {
	Token            string    `json:"token"`
	OwnerID          int64     `json:"owner_id"`
	OwnerName        string    `json:"owner_name,omitempty"`
	OwnerHandle      string    `json:"owner_handle,omitempty"`
	MediaKind        MediaKind `json:"media_kind"`
	FileID           string    `json:"file_id"`
	FileName         string    `json:"file_name,omitempty"`
	FileSize         int64     `json:"file_size,omitempty"`
	ArchiveMessageID int       `json:"archive_message_id"`
	SourceChatID     int64     `json:"source_chat_id"`
	SourceMessageID  int       `json:"source_message_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// MediaDescriptor is the transport's view of an inbound media payload.
type MediaDescriptor struct {
	Kind     MediaKind
	FileID   string
	FileName string
	FileSize int64
}

// StoreRequest carries everything the store flow needs about one inbound item.
type StoreRequest struct {
	OwnerID     int64
	OwnerName   string
	OwnerHandle string
	ChatID      int64
	MessageID   int
	Media       MediaDescriptor
}
