package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romsper/testing-playground-client/internal/api"
	"github.com/romsper/testing-playground-client/internal/payload"
	"github.com/romsper/testing-playground-client/internal/storage"
)

type fakeAuthAPI struct {
	loginResp   *payload.LoginResponse
	loginErr    *api.Error
	refreshResp *payload.LoginResponse
	refreshErr  *api.Error
}

func (f *fakeAuthAPI) Login(ctx context.Context, req payload.LoginRequest) (*payload.LoginResponse, *api.Error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) RefreshToken(ctx context.Context, req payload.RefreshTokenRequest) (*payload.LoginResponse, *api.Error) {
	return f.refreshResp, f.refreshErr
}

func nopLogger() *zerolog.Logger {
	log := zerolog.Nop()
	return &log
}

func tokenBundle(access, refresh string) *payload.LoginResponse {
	return &payload.LoginResponse{
		ID:           7,
		AccessToken:  access,
		RefreshToken: refresh,
		CreatedAt:    1700000000000,
		ExpireInMS:   3600000,
	}
}

func TestSessionStore_LoginSuccess(t *testing.T) {
	st := storage.NewMemoryStorage()
	sessions := NewSessionStore(&fakeAuthAPI{loginResp: tokenBundle("at", "rt")}, st, nopLogger())

	sessions.Login(context.Background(), "user@example.com", "secret")

	session := sessions.Session()
	assert.Equal(t, "at", session.AccessToken)
	assert.Equal(t, "rt", session.RefreshToken)
	assert.Equal(t, int64(7), session.UserID)
	assert.True(t, session.Authenticated())
	assert.False(t, sessions.Loading())
	assert.Nil(t, sessions.Err())
}

func TestSessionStore_LoginFailureEmptiesSession(t *testing.T) {
	st := storage.NewMemoryStorage()

	sessions := NewSessionStore(&fakeAuthAPI{loginResp: tokenBundle("at", "rt")}, st, nopLogger())
	sessions.Login(context.Background(), "user@example.com", "secret")
	require.True(t, sessions.Session().Authenticated())

	rejected := &api.Error{Status: http.StatusUnauthorized, Message: "Unauthorized", Code: 1004, Reason: "invalid credentials"}
	sessions = NewSessionStore(&fakeAuthAPI{loginErr: rejected}, st, nopLogger())
	sessions.Login(context.Background(), "user@example.com", "wrong")

	assert.False(t, sessions.Session().Authenticated())
	assert.False(t, sessions.Loading())
	require.NotNil(t, sessions.Err())
	assert.Equal(t, http.StatusUnauthorized, sessions.Err().Status)

	// The emptied session is what survives a restart.
	reloaded := NewSessionStore(&fakeAuthAPI{}, st, nopLogger())
	assert.False(t, reloaded.Session().Authenticated())
}

func TestSessionStore_RefreshFailurePreservesSession(t *testing.T) {
	st := storage.NewMemoryStorage()

	sessions := NewSessionStore(&fakeAuthAPI{
		loginResp:  tokenBundle("at", "rt"),
		refreshErr: &api.Error{Status: http.StatusUnauthorized, Reason: "refresh token revoked"},
	}, st, nopLogger())
	sessions.Login(context.Background(), "user@example.com", "secret")
	before := sessions.Session()

	sessions.Refresh(context.Background(), before.RefreshToken)

	assert.Equal(t, before, sessions.Session())
	assert.False(t, sessions.Loading())
	require.NotNil(t, sessions.Err())
	assert.Equal(t, "refresh token revoked", sessions.Err().Reason)

	// The persisted record is untouched as well.
	reloaded := NewSessionStore(&fakeAuthAPI{}, st, nopLogger())
	assert.Equal(t, before, reloaded.Session())
}

func TestSessionStore_RefreshSuccessReplacesTokens(t *testing.T) {
	st := storage.NewMemoryStorage()

	sessions := NewSessionStore(&fakeAuthAPI{
		loginResp:   tokenBundle("at", "rt"),
		refreshResp: tokenBundle("at2", "rt2"),
	}, st, nopLogger())
	sessions.Login(context.Background(), "user@example.com", "secret")

	sessions.Refresh(context.Background(), "rt")

	session := sessions.Session()
	assert.Equal(t, "at2", session.AccessToken)
	assert.Equal(t, "rt2", session.RefreshToken)
	assert.Nil(t, sessions.Err())
}

func TestSessionStore_SurvivesRestart(t *testing.T) {
	st := storage.NewMemoryStorage()

	sessions := NewSessionStore(&fakeAuthAPI{loginResp: tokenBundle("at", "rt")}, st, nopLogger())
	sessions.Login(context.Background(), "user@example.com", "secret")
	before := sessions.Session()

	reloaded := NewSessionStore(&fakeAuthAPI{}, st, nopLogger())
	assert.Equal(t, before, reloaded.Session())
	assert.Equal(t, "at", reloaded.AccessToken())

	// loading and error are transient and start at their defaults.
	assert.False(t, reloaded.Loading())
	assert.Nil(t, reloaded.Err())
}

func TestSessionStore_CorruptRecordYieldsAnonymousSession(t *testing.T) {
	st := storage.NewMemoryStorage()
	require.NoError(t, st.Write("session", []byte("{not json")))

	sessions := NewSessionStore(&fakeAuthAPI{}, st, nopLogger())
	assert.False(t, sessions.Session().Authenticated())
}

func TestSessionStore_Logout(t *testing.T) {
	st := storage.NewMemoryStorage()

	sessions := NewSessionStore(&fakeAuthAPI{loginResp: tokenBundle("at", "rt")}, st, nopLogger())
	sessions.Login(context.Background(), "user@example.com", "secret")
	require.True(t, sessions.Session().Authenticated())

	sessions.Logout()
	assert.False(t, sessions.Session().Authenticated())
	assert.Empty(t, sessions.AccessToken())

	reloaded := NewSessionStore(&fakeAuthAPI{}, st, nopLogger())
	assert.False(t, reloaded.Session().Authenticated())
}
