package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/redissvc"
)

// ErrRefreshTokenInvalid is returned when a refresh token is unknown,
// expired, or already used.
var ErrRefreshTokenInvalid = errors.New("invalid refresh token")

var (
	refreshStore RefreshTokenStore
	refreshTTL   = 7 * 24 * time.Hour
	mu           sync.Mutex
)

// RefreshTokenStore is the persistence behind refresh tokens. Redis in
// production, an in-memory map in tests.
type RefreshTokenStore interface {
	SetRefreshToken(ctx context.Context, token, userID string, ttl time.Duration) error
	ConsumeRefreshToken(ctx context.Context, token string) (string, error)
}

func SetRefreshTokenStore(s RefreshTokenStore, ttl time.Duration) {
	mu.Lock()
	refreshStore = s
	if ttl > 0 {
		refreshTTL = ttl
	}
	mu.Unlock()
}

// IssueRefreshToken creates and stores an opaque refresh token for a user.
func IssueRefreshToken(ctx context.Context, userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	if err := refreshStore.SetRefreshToken(ctx, token, userID, refreshTTL); err != nil {
		return "", err
	}
	return token, nil
}

// RedeemRefreshToken exchanges a refresh token for its user id, consuming it
// so each token works exactly once.
func RedeemRefreshToken(ctx context.Context, token string) (string, error) {
	userID, err := refreshStore.ConsumeRefreshToken(ctx, token)
	if errors.Is(err, redissvc.ErrCacheMiss) {
		return "", ErrRefreshTokenInvalid
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// InMemoryRefreshTokenStore backs the handler test suite.
type InMemoryRefreshTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func NewInMemoryRefreshTokenStore() *InMemoryRefreshTokenStore {
	return &InMemoryRefreshTokenStore{tokens: map[string]string{}}
}

func (s *InMemoryRefreshTokenStore) SetRefreshToken(_ context.Context, token, userID string, _ time.Duration) error {
	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()
	return nil
}

func (s *InMemoryRefreshTokenStore) ConsumeRefreshToken(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.tokens[token]
	if !ok {
		return "", redissvc.ErrCacheMiss
	}
	delete(s.tokens, token)
	return userID, nil
}
