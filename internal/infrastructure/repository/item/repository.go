package item

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mediavault/vault-bot/internal/domain/vault"
	"github.com/mediavault/vault-bot/internal/infrastructure/database/entities"
)

// Repository handles item record persistence. The collection is append-only:
// no update or delete is exposed.
type Repository struct {
	db *gorm.DB
}

var _ vault.Repository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists a new record. A primary-key collision on token maps to
// vault.ErrDuplicateToken so the mint loop can retry with a fresh candidate.
func (r *Repository) Insert(ctx context.Context, obj *vault.Item) error {
	entity := toEntity(obj)
	err := r.db.WithContext(ctx).Create(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", vault.ErrDuplicateToken, obj.Token)
		}
		return fmt.Errorf("insert item record: %w", err)
	}
	return nil
}

// FindByToken returns the record for token, or nil when absent.
func (r *Repository) FindByToken(ctx context.Context, token string) (*vault.Item, error) {
	var entity entities.Item
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find item by token: %w", err)
	}
	obj := toDomain(entity)
	return &obj, nil
}

func toEntity(obj *vault.Item) entities.Item {
	return entities.Item{
		Token:            obj.Token,
		OwnerID:          obj.OwnerID,
		OwnerName:        obj.OwnerName,
		OwnerHandle:      obj.OwnerHandle,
		MediaKind:        string(obj.MediaKind),
		FileID:           obj.FileID,
		FileName:         obj.FileName,
		FileSize:         obj.FileSize,
		ArchiveMessageID: obj.ArchiveMessageID,
		SourceChatID:     obj.SourceChatID,
		SourceMessageID:  obj.SourceMessageID,
		CreatedAt:        obj.CreatedAt,
	}
}

func toDomain(entity entities.Item) vault.Item {
	return vault.Item{
		Token:            entity.Token,
		OwnerID:          entity.OwnerID,
		OwnerName:        entity.OwnerName,
		OwnerHandle:      entity.OwnerHandle,
		MediaKind:        vault.MediaKind(entity.MediaKind),
		FileID:           entity.FileID,
		FileName:         entity.FileName,
		FileSize:         entity.FileSize,
		ArchiveMessageID: entity.ArchiveMessageID,
		SourceChatID:     entity.SourceChatID,
		SourceMessageID:  entity.SourceMessageID,
		CreatedAt:        entity.CreatedAt,
	}
}
