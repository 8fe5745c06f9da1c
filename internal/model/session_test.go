package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Authenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{RefreshToken: "rt"}.Authenticated())
	assert.True(t, Session{AccessToken: "at"}.Authenticated())
}

func TestSession_ExpiresAt(t *testing.T) {
	s := Session{CreatedAt: 1700000000000, ExpiresInMS: 3600000}
	assert.Equal(t, time.UnixMilli(1700003600000), s.ExpiresAt())
}
