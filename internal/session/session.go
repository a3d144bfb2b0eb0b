// Package session holds the signed-in user's tokens and profile.
//
// A Session replaces process-wide auth state: it is created at sign-in,
// passed explicitly to the backend client, and cleared on sign-out.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

// ErrNotAuthenticated is returned when a call needs a signed-in session.
var ErrNotAuthenticated = errors.New(config.ErrNotAuthenticated)

// Session is safe for concurrent use.
type Session struct {
	mu           sync.RWMutex
	login        string
	accessToken  string
	refreshToken string
	userID       int
	profile      *records.User
}

// New returns an empty, signed-out session.
func New() *Session {
	return &Session{}
}

// Start stores the tokens returned by a successful sign-in.
func (s *Session) Start(login string, tr records.TokenResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.login = login
	s.accessToken = tr.AccessToken
	s.refreshToken = tr.RefreshToken
	s.userID = tr.UserID
	s.profile = nil
}

// Refresh replaces the tokens after /auth/refresh. The profile is kept.
func (s *Session) Refresh(tr records.TokenResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = tr.AccessToken
	if tr.RefreshToken != "" {
		s.refreshToken = tr.RefreshToken
	}
	if tr.UserID != 0 {
		s.userID = tr.UserID
	}
}

// Clear signs out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.login, s.accessToken, s.refreshToken = "", "", ""
	s.userID = 0
	s.profile = nil
}

// Authenticated reports whether an access token is held.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}

// AccessToken returns the bearer token, "" when signed out.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the refresh token, "" when signed out.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// UserID returns the signed-in user's id.
func (s *Session) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Login returns the login used to sign in.
func (s *Session) Login() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.login
}

// SetProfile caches the signed-in user's record.
func (s *Session) SetProfile(u records.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &u
}

// Profile returns the cached user record, if loaded.
func (s *Session) Profile() (records.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return records.User{}, false
	}
	return *s.profile, true
}

// ExpiresAt reads the exp claim of the access token without verifying the
// signature. A zero time means the token carries no exp.
func (s *Session) ExpiresAt() (time.Time, error) {
	token := s.AccessToken()
	if token == "" {
		return time.Time{}, ErrNotAuthenticated
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", config.ErrTokenParse, err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", config.ErrTokenParse, err)
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// Expired reports whether the access token is missing, unreadable, or
// expires within skew of now. A token without exp never expires.
func (s *Session) Expired(now time.Time, skew time.Duration) bool {
	exp, err := s.ExpiresAt()
	if err != nil {
		return true
	}
	if exp.IsZero() {
		return false
	}
	return !now.Add(skew).Before(exp)
}
