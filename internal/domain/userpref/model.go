package userpref

import (
	"time"

	"github.com/mediavault/vault-bot/internal/i18n"
)

// Preference is one user's stored settings. There is at most one record per
// user; selecting a language overwrites any prior tag.
type Preference struct {
	UserID      int64         `json:"user_id"`
	Language    i18n.Language `json:"language"`
	DisplayName string        `json:"display_name,omitempty"`
	Handle      string        `json:"handle,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
