// Package storage implements local device persistence. The only thing the
// client persists between sessions is the auth token pair; it is encrypted at
// rest so a leaked backup does not leak a live session.
package storage

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"os"
	"path/filepath"

	"sabor/config"
	"sabor/internal/domain/entity"
	"sabor/internal/domain/service"
	"sabor/internal/errors"

	"golang.org/x/crypto/chacha20poly1305"
)

const tokenFileName = "session.bin"

type fileTokenStore struct {
	path string
	key  []byte
}

// NewTokenStore creates a file-backed token store rooted at the configured
// storage path, encrypted with a key derived from the device secret.
func NewTokenStore(cfg *config.Config) (service.TokenStore, error) {
	if cfg.Storage == nil || cfg.Storage.Path == "" {
		return nil, errors.New("storage.path must be configured")
	}
	if cfg.Storage.DeviceSecret == "" {
		return nil, errors.New("storage.deviceSecret must be configured")
	}

	if err := os.MkdirAll(cfg.Storage.Path, 0o700); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	key := sha256.Sum256([]byte(cfg.Storage.DeviceSecret))

	return &fileTokenStore{
		path: filepath.Join(cfg.Storage.Path, tokenFileName),
		key:  key[:],
	}, nil
}

type storedPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Save writes the pair, replacing any previous one. The write goes through a
// temp file plus rename so a crash never leaves a torn store.
func (s *fileTokenStore) Save(pair entity.TokenPair) error {
	plaintext, err := json.Marshal(storedPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		return errors.Wrap(err, "marshal token pair")
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return errors.Wrap(err, "create cipher")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return errors.Wrap(err, "generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, plaintext, nil)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return errors.Wrap(err, "write token file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace token file")
	}

	return nil
}

// Load reads the stored pair. A missing file means no session is stored.
func (s *fileTokenStore) Load() (entity.TokenPair, error) {
	sealed, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entity.TokenPair{}, nil
		}

		return entity.TokenPair{}, errors.Wrap(err, "read token file")
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return entity.TokenPair{}, errors.Wrap(err, "create cipher")
	}

	if len(sealed) < aead.NonceSize() {
		return entity.TokenPair{}, errors.New("token file truncated")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return entity.TokenPair{}, errors.Wrap(err, "decrypt token file")
	}

	var stored storedPair
	if err := json.Unmarshal(plaintext, &stored); err != nil {
		return entity.TokenPair{}, errors.Wrap(err, "unmarshal token pair")
	}

	return entity.TokenPair{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
	}, nil
}

// Clear removes the stored pair. Clearing an empty store is not an error.
func (s *fileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove token file")
	}

	return nil
}
