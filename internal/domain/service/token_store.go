// Package service defines interfaces for infrastructure services consumed by
// the application layer.
package service

import "sabor/internal/domain/entity"

// TokenStore persists the session's token pair in local device storage.
// Implementations must tolerate a missing store and return a zero pair.
type TokenStore interface {
	// Save writes the pair, replacing any previous one.
	Save(pair entity.TokenPair) error

	// Load reads the stored pair. A zero pair means no session is stored.
	Load() (entity.TokenPair, error)

	// Clear removes the stored pair.
	Clear() error
}
