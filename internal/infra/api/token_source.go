package api

import (
	"sync"
	"time"

	"sabor/internal/domain/entity"
	"sabor/internal/domain/service"
	"sabor/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// refreshLeeway is how long before the access token's exp the client starts
// refreshing proactively instead of waiting for a 401.
const refreshLeeway = 30 * time.Second

// TokenSource holds the session's token pair in memory and mirrors every
// change into the device TokenStore. All methods are safe for concurrent use.
type TokenSource struct {
	mu    sync.RWMutex
	pair  entity.TokenPair
	store service.TokenStore
}

// NewTokenSource creates a token source backed by the given store.
func NewTokenSource(store service.TokenStore) *TokenSource {
	return &TokenSource{store: store}
}

// Restore loads a previously persisted pair from the store, if any.
func (s *TokenSource) Restore() error {
	pair, err := s.store.Load()
	if err != nil {
		return errors.Wrap(err, "load token pair")
	}

	s.mu.Lock()
	s.pair = pair
	s.mu.Unlock()

	return nil
}

// Set replaces the pair and persists it.
func (s *TokenSource) Set(pair entity.TokenPair) error {
	s.mu.Lock()
	s.pair = pair
	s.mu.Unlock()

	return errors.Wrap(s.store.Save(pair), "persist token pair")
}

// Clear drops the pair from memory and from the store.
func (s *TokenSource) Clear() error {
	s.mu.Lock()
	s.pair = entity.TokenPair{}
	s.mu.Unlock()

	return errors.Wrap(s.store.Clear(), "clear token store")
}

// AccessToken returns the current access token, empty when logged out.
func (s *TokenSource) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pair.AccessToken
}

// RefreshToken returns the current refresh token, empty when logged out.
func (s *TokenSource) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pair.RefreshToken
}

// Authenticated reports whether a session is present.
func (s *TokenSource) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.pair.IsZero()
}

// ShouldRefresh reports whether the access token is expired or about to
// expire. The exp claim is read without signature verification: the client
// holds no signing key, so the value is advisory only and the server stays
// authoritative through its 401s.
func (s *TokenSource) ShouldRefresh(now time.Time) bool {
	s.mu.RLock()
	pair := s.pair
	s.mu.RUnlock()

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return false
	}

	expiry, ok := accessTokenExpiry(pair.AccessToken)
	if !ok {
		return false
	}

	return !now.Add(refreshLeeway).Before(expiry)
}

func accessTokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}

	return expiry.Time, true
}
