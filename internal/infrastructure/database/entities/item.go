package entities

import "time"

// Item is the persisted archived-item record. The token primary key is the
// authoritative uniqueness guard behind the mint loop.
type Item struct {
	Token            string `gorm:"type:char(9);primaryKey"`
	OwnerID          int64  `gorm:"not null;index"`
	OwnerName        string `gorm:"type:varchar(128)"`
	OwnerHandle      string `gorm:"type:varchar(64)"`
	MediaKind        string `gorm:"type:varchar(16);not null"`
	FileID           string `gorm:"type:varchar(256);not null"`
	FileName         string `gorm:"type:varchar(256)"`
	FileSize         int64
	ArchiveMessageID int       `gorm:"not null"`
	SourceChatID     int64     `gorm:"not null"`
	SourceMessageID  int       `gorm:"not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Item) TableName() string {
	return "vault_items"
}
