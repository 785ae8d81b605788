package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mediavault/vault-bot/internal/infrastructure/metrics"
	"github.com/mediavault/vault-bot/internal/utils/tokengen"
)

// maxMintAttempts bounds the mint loop. Each attempt draws uniformly from
// 900M tokens, so even at 100M stored items the chance of burning 64
// consecutive draws on collisions is negligible; the cap only guarantees
// termination if the space ever saturates.
const maxMintAttempts = 64

// Repository defines the persistence operations needed by the service.
// Insert must enforce token uniqueness and report a violation as
// ErrDuplicateToken; FindByToken returns nil for an absent token.
type Repository interface {
	Insert(ctx context.Context, item *Item) error
	FindByToken(ctx context.Context, token string) (*Item, error)
}

// Relay moves media in and out of the archive chat.
type Relay interface {
	RelayToArchive(ctx context.Context, fromChatID int64, messageID int) (int, error)
	DeliverFromArchive(ctx context.Context, userID int64, archiveMessageID int) error
	SendWelcomeMedia(ctx context.Context, userID int64) error
}

// Service orchestrates the store and retrieve flows.
type Service struct {
	repo  Repository
	relay Relay
	log   zerolog.Logger
	draw  func() (string, error)
	now   func() time.Time
}

// Option customizes a Service, mainly for tests.
type Option func(*Service)

// WithTokenSource replaces the candidate token source.
func WithTokenSource(draw func() (string, error)) Option {
	return func(s *Service) { s.draw = draw }
}

// WithClock replaces the record timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, relay Relay, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		relay: relay,
		log:   log.With().Str("component", "vault-service").Logger(),
		draw:  tokengen.Draw,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store relays the inbound item into the archive, mints a token and persists
// the record. The relay must succeed before anything is persisted: a relayed
// copy without a record is a harmless orphan, a record without an archived
// copy would be a dangling reference with no recovery path.
func (s *Service) Store(ctx context.Context, req StoreRequest) (*Item, error) {
	start := time.Now()
	archiveID, err := s.relay.RelayToArchive(ctx, req.ChatID, req.MessageID)
	metrics.RecordRelay(statusOf(err), time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}

	item, err := s.mint(ctx, req, archiveID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("token", item.Token).
		Int64("owner_id", item.OwnerID).
		Str("media_kind", string(item.MediaKind)).
		Int("archive_message_id", item.ArchiveMessageID).
		Msg("item stored")
	return item, nil
}

// mint draws candidates until one inserts cleanly. The pre-check keeps the
// common path to a single insert; the store's uniqueness constraint is the
// authoritative guard against two workers drawing the same candidate.
func (s *Service) mint(ctx context.Context, req StoreRequest, archiveID int) (*Item, error) {
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		token, err := s.draw()
		if err != nil {
			return nil, err
		}

		existing, err := s.repo.FindByToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			metrics.TokenCollisionsTotal.Inc()
			continue
		}

		item := &Item{
			Token:            token,
			OwnerID:          req.OwnerID,
			OwnerName:        req.OwnerName,
			OwnerHandle:      req.OwnerHandle,
			MediaKind:        req.Media.Kind,
			FileID:           req.Media.FileID,
			FileName:         req.Media.FileName,
			FileSize:         req.Media.FileSize,
			ArchiveMessageID: archiveID,
			SourceChatID:     req.ChatID,
			SourceMessageID:  req.MessageID,
			CreatedAt:        s.now().UTC(),
		}

		err = s.repo.Insert(ctx, item)
		if errors.Is(err, ErrDuplicateToken) {
			metrics.TokenCollisionsTotal.Inc()
			continue
		}
		if err != nil {
			return nil, err
		}
		return item, nil
	}
	return nil, ErrTokenSpaceExhausted
}

// Retrieve looks up the record for token and re-delivers the archived copy to
// the requesting user.
func (s *Service) Retrieve(ctx context.Context, userID int64, token string) (*Item, error) {
	if !tokengen.IsValid(token) {
		return nil, ErrNotFound
	}

	item, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	start := time.Now()
	err = s.relay.DeliverFromArchive(ctx, userID, item.ArchiveMessageID)
	metrics.RecordDelivery(statusOf(err), time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	s.log.Info().
		Str("token", item.Token).
		Int64("user_id", userID).
		Msg("item retrieved")
	return item, nil
}

// SendWelcomeMedia forwards the fixed introductory media. Failure is logged
// and swallowed; the caller's flow must not be affected.
func (s *Service) SendWelcomeMedia(ctx context.Context, userID int64) {
	if err := s.relay.SendWelcomeMedia(ctx, userID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("welcome media forward failed")
	}
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
