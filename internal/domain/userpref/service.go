package userpref

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mediavault/vault-bot/internal/i18n"
)

// Repository defines the persistence operations needed by the service.
// Upsert is idempotent per user; FindByUserID returns nil for an absent user.
type Repository interface {
	Upsert(ctx context.Context, pref *Preference) error
	FindByUserID(ctx context.Context, userID int64) (*Preference, error)
}

// Service owns language preference reads and writes.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("component", "userpref-service").Logger(),
	}
}

// Set stores the user's language selection, overwriting any previous one.
func (s *Service) Set(ctx context.Context, pref *Preference) error {
	return s.repo.Upsert(ctx, pref)
}

// Find returns the stored preference, or nil when the user never completed
// language selection.
func (s *Service) Find(ctx context.Context, userID int64) (*Preference, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Language resolves the user's preferred language. Localization is never
// worth failing a flow over, so an absent record or a store error both fall
// back to the default tag.
func (s *Service) Language(ctx context.Context, userID int64) i18n.Language {
	pref, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("preference lookup failed, using default language")
		return i18n.Default
	}
	if pref == nil {
		return i18n.Default
	}
	if _, ok := i18n.Parse(string(pref.Language)); !ok {
		return i18n.Default
	}
	return pref.Language
}
