package model

import "time"

// Session represents the client-held record of an authenticated user's tokens.
// A zero-value Session means no user is authenticated; the presence of a
// non-empty access token is the sole authentication signal.
type Session struct {
	UserID       int64  `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	CreatedAt    int64  `json:"created_at"`
	ExpiresInMS  int64  `json:"expires_in_ms"`
}

// Authenticated reports whether the session holds an access token.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

// ExpiresAt returns the access token expiry derived from the creation
// timestamp and lifetime, both in milliseconds since the epoch.
func (s Session) ExpiresAt() time.Time {
	return time.UnixMilli(s.CreatedAt + s.ExpiresInMS)
}
