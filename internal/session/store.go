package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/zalando/go-keyring"
)

// ErrNoToken is returned by TokenStore.Load when nothing is stored.
var ErrNoToken = errors.New(config.MsgTokenMissing)

// TokenStore keeps refresh tokens in the OS keyring, one entry per login.
type TokenStore struct {
	Service string
}

// NewTokenStore returns a store under the application's keyring service.
func NewTokenStore() *TokenStore {
	return &TokenStore{Service: config.KeyringService}
}

// Save stores token for login.
func (ts *TokenStore) Save(login, token string) error {
	if login == "" {
		return errors.New(config.ErrLoginEmpty)
	}
	if err := keyring.Set(ts.Service, login, token); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyringStore, err)
	}
	return nil
}

// Load returns the token stored for login, or ErrNoToken.
func (ts *TokenStore) Load(login string) (string, error) {
	if login == "" {
		return "", errors.New(config.ErrLoginEmpty)
	}
	token, err := keyring.Get(ts.Service, login)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrKeyringLoad, err)
	}
	return token, nil
}

// Delete forgets the token for login. Deleting a missing entry is not an error.
func (ts *TokenStore) Delete(login string) error {
	err := keyring.Delete(ts.Service, login)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%s: %w", config.ErrKeyringStore, err)
	}
	return nil
}

// Persist saves the session's refresh token. Failures are only logged.
func (ts *TokenStore) Persist(s *Session) {
	login, token := s.Login(), s.RefreshToken()
	if login == "" || token == "" {
		return
	}
	if err := ts.Save(login, token); err != nil {
		slog.Warn(config.ErrKeyringStore,
			config.LogKeyComponent, config.CompSession,
			config.LogKeyUser, login,
			config.LogKeyError, err,
		)
	}
}
