package entities

import "time"

// User is one user's stored settings.
type User struct {
	UserID      int64  `gorm:"primaryKey;autoIncrement:false"`
	Language    string `gorm:"type:varchar(8);not null"`
	DisplayName string `gorm:"type:varchar(128)"`
	Handle      string `gorm:"type:varchar(64)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "vault_users"
}
