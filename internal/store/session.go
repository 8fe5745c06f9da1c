// Package store holds the process-wide client state: the authenticated
// session and the shopping cart. Both stores persist their durable fields
// through the storage layer and are the terminal consumers of API errors.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/romsper/testing-playground-client/internal/api"
	"github.com/romsper/testing-playground-client/internal/model"
	"github.com/romsper/testing-playground-client/internal/payload"
	"github.com/romsper/testing-playground-client/internal/storage"
)

const sessionNamespace = "session"

// AuthAPI defines the authentication calls the session store depends on.
type AuthAPI interface {
	Login(ctx context.Context, req payload.LoginRequest) (*payload.LoginResponse, *api.Error)
	RefreshToken(ctx context.Context, req payload.RefreshTokenRequest) (*payload.LoginResponse, *api.Error)
}

// SessionStore holds the current session, a loading flag, and the last API
// error. Only the session itself is persisted; loading and error are
// transient and start at their zero values on every process start.
//
// Field access is race-safe, but whole operations deliberately are not:
// two overlapping Login calls race and the last response to resolve wins.
type SessionStore struct {
	authAPI AuthAPI
	storage storage.Storage
	logger  *zerolog.Logger

	mu      sync.Mutex
	session model.Session
	loading bool
	err     *api.Error
}

// NewSessionStore creates a SessionStore and restores any persisted session.
// A missing or unreadable record yields an anonymous session.
func NewSessionStore(authAPI AuthAPI, st storage.Storage, logger *zerolog.Logger) *SessionStore {
	s := &SessionStore{
		authAPI: authAPI,
		storage: st,
		logger:  logger,
	}
	s.restore()

	return s
}

// Login authenticates with the given credentials. On success the session is
// replaced wholesale with the returned token bundle and the previous error is
// left untouched; on failure the session is reset to anonymous and the error
// field is populated. The loading flag is cleared on every outcome.
func (s *SessionStore) Login(ctx context.Context, email, password string) {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, apiErr := s.authAPI.Login(ctx, payload.LoginRequest{
		Email:    email,
		Password: password,
	})
	if apiErr != nil {
		s.logger.Warn().Int("status", apiErr.Status).Str("reason", apiErr.Reason).Msg("login failed")

		s.mu.Lock()
		s.session = model.Session{}
		s.err = apiErr
		s.mu.Unlock()

		s.persist()
		return
	}

	s.mu.Lock()
	s.session = resp.Session()
	s.mu.Unlock()

	s.persist()
}

// Refresh exchanges the given refresh token for a new token bundle. Unlike
// Login, a failure leaves the current session untouched and only populates
// the error field: a rejected refresh must not evict the last known session.
func (s *SessionStore) Refresh(ctx context.Context, refreshToken string) {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, apiErr := s.authAPI.RefreshToken(ctx, payload.RefreshTokenRequest{
		RefreshToken: refreshToken,
	})
	if apiErr != nil {
		s.logger.Warn().Int("status", apiErr.Status).Str("reason", apiErr.Reason).Msg("token refresh failed")

		s.mu.Lock()
		s.err = apiErr
		s.mu.Unlock()

		return
	}

	s.mu.Lock()
	s.session = resp.Session()
	s.mu.Unlock()

	s.persist()
}

// Logout clears the session and its persisted record.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.session = model.Session{}
	s.err = nil
	s.mu.Unlock()

	if err := s.storage.Delete(sessionNamespace); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete persisted session")
	}
}

// Session returns a snapshot of the current session.
func (s *SessionStore) Session() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

// Loading reports whether an authentication call is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Err returns the error recorded by the last failed operation, or nil.
func (s *SessionStore) Err() *api.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// AccessToken implements api.TokenSource.
func (s *SessionStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.AccessToken
}

func (s *SessionStore) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func (s *SessionStore) persist() {
	s.mu.Lock()
	data, err := json.Marshal(s.session)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode session")
		return
	}

	if err := s.storage.Write(sessionNamespace, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
	}
}

func (s *SessionStore) restore() {
	data, err := s.storage.Read(sessionNamespace)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("failed to read persisted session")
		}
		return
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Warn().Err(err).Msg("discarding corrupt persisted session")
		return
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}
