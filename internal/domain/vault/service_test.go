package vault_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mediavault/vault-bot/internal/domain/vault"
	"github.com/mediavault/vault-bot/internal/utils/tokengen"
)

// mockRepo is a func-field mock of vault.Repository.
type mockRepo struct {
	InsertFunc      func(ctx context.Context, item *vault.Item) error
	FindByTokenFunc func(ctx context.Context, token string) (*vault.Item, error)
}

func (m *mockRepo) Insert(ctx context.Context, item *vault.Item) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, item)
	}
	return nil
}

func (m *mockRepo) FindByToken(ctx context.Context, token string) (*vault.Item, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, nil
}

// mockRelay is a func-field mock of vault.Relay.
type mockRelay struct {
	RelayFunc   func(ctx context.Context, fromChatID int64, messageID int) (int, error)
	DeliverFunc func(ctx context.Context, userID int64, archiveMessageID int) error
	WelcomeFunc func(ctx context.Context, userID int64) error

	relayCalls   int
	deliverCalls int
}

func (m *mockRelay) RelayToArchive(ctx context.Context, fromChatID int64, messageID int) (int, error) {
	m.relayCalls++
	if m.RelayFunc != nil {
		return m.RelayFunc(ctx, fromChatID, messageID)
	}
	return 1, nil
}

func (m *mockRelay) DeliverFromArchive(ctx context.Context, userID int64, archiveMessageID int) error {
	m.deliverCalls++
	if m.DeliverFunc != nil {
		return m.DeliverFunc(ctx, userID, archiveMessageID)
	}
	return nil
}

func (m *mockRelay) SendWelcomeMedia(ctx context.Context, userID int64) error {
	if m.WelcomeFunc != nil {
		return m.WelcomeFunc(ctx, userID)
	}
	return nil
}

// memRepo enforces token uniqueness like the real store does.
type memRepo struct {
	mu    sync.Mutex
	items map[string]*vault.Item
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[string]*vault.Item)}
}

func (r *memRepo) Insert(ctx context.Context, item *vault.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.Token]; ok {
		return vault.ErrDuplicateToken
	}
	copied := *item
	r.items[item.Token] = &copied
	return nil
}

func (r *memRepo) FindByToken(ctx context.Context, token string) (*vault.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[token]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func fixedTokens(tokens ...string) func() (string, error) {
	i := 0
	var mu sync.Mutex
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		token := tokens[i%len(tokens)]
		i++
		return token, nil
	}
}

func storeRequest() vault.StoreRequest {
	return vault.StoreRequest{
		OwnerID:     42,
		OwnerName:   "Ada",
		OwnerHandle: "ada",
		ChatID:      42,
		MessageID:   1001,
		Media: vault.MediaDescriptor{
			Kind:     vault.KindDocument,
			FileID:   "file-abc",
			FileName: "notes.pdf",
			FileSize: 2048,
		},
	}
}

func TestStoreHappyPath(t *testing.T) {
	var events []string
	repo := &mockRepo{
		InsertFunc: func(ctx context.Context, item *vault.Item) error {
			events = append(events, "insert")
			return nil
		},
	}
	relay := &mockRelay{
		RelayFunc: func(ctx context.Context, fromChatID int64, messageID int) (int, error) {
			events = append(events, "relay")
			if fromChatID != 42 || messageID != 1001 {
				t.Errorf("relay called with (%d, %d), want (42, 1001)", fromChatID, messageID)
			}
			return 777, nil
		},
	}

	svc := vault.NewService(repo, relay, testLogger())
	item, err := svc.Store(context.Background(), storeRequest())
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	if !tokengen.IsValid(item.Token) {
		t.Errorf("Store() minted malformed token %q", item.Token)
	}
	if item.ArchiveMessageID != 777 {
		t.Errorf("ArchiveMessageID = %d, want 777", item.ArchiveMessageID)
	}
	if item.MediaKind != vault.KindDocument || item.FileName != "notes.pdf" {
		t.Errorf("record lost media fields: %+v", item)
	}
	if len(events) != 2 || events[0] != "relay" || events[1] != "insert" {
		t.Errorf("events = %v, relay must complete before insert", events)
	}
}

func TestStoreRelayFailureLeavesNoRecord(t *testing.T) {
	repo := &mockRepo{
		InsertFunc: func(ctx context.Context, item *vault.Item) error {
			t.Error("Insert must not be called after a failed relay")
			return nil
		},
		FindByTokenFunc: func(ctx context.Context, token string) (*vault.Item, error) {
			t.Error("FindByToken must not be called after a failed relay")
			return nil, nil
		},
	}
	relay := &mockRelay{
		RelayFunc: func(ctx context.Context, fromChatID int64, messageID int) (int, error) {
			return 0, errors.New("channel unreachable")
		},
	}

	svc := vault.NewService(repo, relay, testLogger())
	_, err := svc.Store(context.Background(), storeRequest())
	if !errors.Is(err, vault.ErrRelayFailed) {
		t.Fatalf("Store() error = %v, want ErrRelayFailed", err)
	}
}

func TestStoreRetriesOnDuplicateInsert(t *testing.T) {
	repo := newMemRepo()
	if err := repo.Insert(context.Background(), &vault.Item{Token: "111111111"}); err != nil {
		t.Fatal(err)
	}

	var inserts []string
	wrapped := &mockRepo{
		InsertFunc: func(ctx context.Context, item *vault.Item) error {
			inserts = append(inserts, item.Token)
			return repo.Insert(ctx, item)
		},
		// No pre-check hits: simulate the race where the winning insert
		// happened after our existence check.
		FindByTokenFunc: func(ctx context.Context, token string) (*vault.Item, error) {
			return nil, nil
		},
	}

	svc := vault.NewService(wrapped, &mockRelay{}, testLogger(),
		vault.WithTokenSource(fixedTokens("111111111", "222222222")))

	item, err := svc.Store(context.Background(), storeRequest())
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if item.Token != "222222222" {
		t.Errorf("Store() token = %q, want the retried candidate 222222222", item.Token)
	}
	if len(inserts) != 2 {
		t.Errorf("insert attempts = %v, want duplicate then success", inserts)
	}
}

func TestStoreSkipsCandidateSeenInPrecheck(t *testing.T) {
	var inserted string
	repo := &mockRepo{
		FindByTokenFunc: func(ctx context.Context, token string) (*vault.Item, error) {
			if token == "111111111" {
				return &vault.Item{Token: token}, nil
			}
			return nil, nil
		},
		InsertFunc: func(ctx context.Context, item *vault.Item) error {
			inserted = item.Token
			return nil
		},
	}

	svc := vault.NewService(repo, &mockRelay{}, testLogger(),
		vault.WithTokenSource(fixedTokens("111111111", "333333333")))

	item, err := svc.Store(context.Background(), storeRequest())
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if item.Token != "333333333" || inserted != "333333333" {
		t.Errorf("Store() = %q (inserted %q), want 333333333 without an insert for the taken candidate", item.Token, inserted)
	}
}

func TestStoreFatalInsertError(t *testing.T) {
	storeDown := errors.New("connection refused")
	attempts := 0
	repo := &mockRepo{
		InsertFunc: func(ctx context.Context, item *vault.Item) error {
			attempts++
			return storeDown
		},
	}

	svc := vault.NewService(repo, &mockRelay{}, testLogger())
	_, err := svc.Store(context.Background(), storeRequest())
	if !errors.Is(err, storeDown) {
		t.Fatalf("Store() error = %v, want the store error", err)
	}
	if attempts != 1 {
		t.Errorf("insert attempts = %d, non-duplicate errors must not be retried", attempts)
	}
}

func TestStoreGivesUpWhenSpaceExhausted(t *testing.T) {
	repo := &mockRepo{
		FindByTokenFunc: func(ctx context.Context, token string) (*vault.Item, error) {
			return &vault.Item{Token: token}, nil
		},
		InsertFunc: func(ctx context.Context, item *vault.Item) error {
			t.Error("Insert must not be called when every candidate is taken")
			return nil
		},
	}

	svc := vault.NewService(repo, &mockRelay{}, testLogger(),
		vault.WithTokenSource(fixedTokens("111111111")))

	_, err := svc.Store(context.Background(), storeRequest())
	if !errors.Is(err, vault.ErrTokenSpaceExhausted) {
		t.Fatalf("Store() error = %v, want ErrTokenSpaceExhausted", err)
	}
}

func TestConcurrentStoresNeverShareTokens(t *testing.T) {
	// A deliberately tiny candidate pool forces heavy collision traffic;
	// every store must still come back with a distinct token.
	const workers = 20
	pool := make([]string, workers)
	for i := range pool {
		pool[i] = fmt.Sprintf("%d", 100_000_000+i)
	}

	repo := newMemRepo()
	svc := vault.NewService(repo, &mockRelay{}, testLogger(),
		vault.WithTokenSource(fixedTokens(pool...)))

	var wg sync.WaitGroup
	tokens := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := svc.Store(context.Background(), storeRequest())
			if err != nil {
				t.Errorf("Store() error = %v", err)
				return
			}
			tokens <- item.Token
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[string]bool)
	for token := range tokens {
		if seen[token] {
			t.Errorf("two records share token %q", token)
		}
		seen[token] = true
	}
	if len(seen) != workers {
		t.Errorf("got %d distinct tokens, want %d", len(seen), workers)
	}
}

func TestRetrieveHappyPath(t *testing.T) {
	stored := &vault.Item{
		Token:            "123456789",
		ArchiveMessageID: 555,
		MediaKind:        vault.KindPhoto,
	}
	repo := &mockRepo{
		FindByTokenFunc: func(ctx context.Context, token string) (*vault.Item, error) {
			if token == stored.Token {
				return stored, nil
			}
			return nil, nil
		},
	}
	var deliveredTo int64
	var deliveredMsg int
	relay := &mockRelay{
		DeliverFunc: func(ctx context.Context, userID int64, archiveMessageID int) error {
			deliveredTo, deliveredMsg = userID, archiveMessageID
			return nil
		},
	}

	svc := vault.NewService(repo, relay, testLogger())
	item, err := svc.Retrieve(context.Background(), 7, "123456789")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if item.Token != stored.Token {
		t.Errorf("Retrieve() token = %q, want %q", item.Token, stored.Token)
	}
	if deliveredTo != 7 || deliveredMsg != 555 {
		t.Errorf("delivered (%d, %d), want (7, 555) from the stored archive locator", deliveredTo, deliveredMsg)
	}
}

func TestRetrieveUnknownToken(t *testing.T) {
	repo := &mockRepo{}
	relay := &mockRelay{}

	svc := vault.NewService(repo, relay, testLogger())
	for _, token := range []string{"987654321", "000000000", "abc", ""} {
		_, err := svc.Retrieve(context.Background(), 7, token)
		if !errors.Is(err, vault.ErrNotFound) {
			t.Errorf("Retrieve(%q) error = %v, want ErrNotFound", token, err)
		}
	}
	if relay.deliverCalls != 0 {
		t.Errorf("deliver calls = %d, want 0 for unknown tokens", relay.deliverCalls)
	}
}

func TestRetrieveDeliveryFailure(t *testing.T) {
	repo := &mockRepo{
		FindByTokenFunc: func(ctx context.Context, token string) (*vault.Item, error) {
			return &vault.Item{Token: token, ArchiveMessageID: 9}, nil
		},
	}
	relay := &mockRelay{
		DeliverFunc: func(ctx context.Context, userID int64, archiveMessageID int) error {
			return errors.New("bot was blocked by the user")
		},
	}

	svc := vault.NewService(repo, relay, testLogger())
	_, err := svc.Retrieve(context.Background(), 7, "123456789")
	if !errors.Is(err, vault.ErrDeliveryFailed) {
		t.Fatalf("Retrieve() error = %v, want ErrDeliveryFailed", err)
	}
}

func TestStoreThenRetrieve(t *testing.T) {
	repo := newMemRepo()
	relay := &mockRelay{
		RelayFunc: func(ctx context.Context, fromChatID int64, messageID int) (int, error) {
			return 321, nil
		},
	}

	svc := vault.NewService(repo, relay, testLogger())
	stored, err := svc.Store(context.Background(), storeRequest())
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	var deliveredMsg int
	relay.DeliverFunc = func(ctx context.Context, userID int64, archiveMessageID int) error {
		deliveredMsg = archiveMessageID
		return nil
	}

	got, err := svc.Retrieve(context.Background(), 99, stored.Token)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if got.Token != stored.Token || deliveredMsg != 321 {
		t.Errorf("retrieval after store delivered message %d for token %q, want 321 for %q", deliveredMsg, got.Token, stored.Token)
	}
}

func TestSendWelcomeMediaSwallowsFailure(t *testing.T) {
	relay := &mockRelay{
		WelcomeFunc: func(ctx context.Context, userID int64) error {
			return errors.New("message to forward not found")
		},
	}
	svc := vault.NewService(&mockRepo{}, relay, testLogger())
	// Must not panic or propagate.
	svc.SendWelcomeMedia(context.Background(), 7)
}
