package userpref

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/mediavault/vault-bot/internal/domain/userpref"
	"github.com/mediavault/vault-bot/internal/i18n"
	"github.com/mediavault/vault-bot/internal/infrastructure/database/entities"
)

// Repository handles user preference persistence.
type Repository struct {
	db *gorm.DB
}

var _ domain.Repository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or overwrites the user's preference in one statement, so
// concurrent writes from the same user resolve to last-write-wins.
func (r *Repository) Upsert(ctx context.Context, pref *domain.Preference) error {
	entity := entities.User{
		UserID:      pref.UserID,
		Language:    string(pref.Language),
		DisplayName: pref.DisplayName,
		Handle:      pref.Handle,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"language":     entity.Language,
				"display_name": entity.DisplayName,
				"handle":       entity.Handle,
				"updated_at":   gorm.Expr("NOW()"),
			}),
		}).
		Create(&entity).
		Error
	if err != nil {
		return fmt.Errorf("upsert user preference: %w", err)
	}
	return nil
}

// FindByUserID returns the stored preference, or nil when absent.
func (r *Repository) FindByUserID(ctx context.Context, userID int64) (*domain.Preference, error) {
	var entity entities.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user preference: %w", err)
	}

	return &domain.Preference{
		UserID:      entity.UserID,
		Language:    i18n.Language(entity.Language),
		DisplayName: entity.DisplayName,
		Handle:      entity.Handle,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}, nil
}
