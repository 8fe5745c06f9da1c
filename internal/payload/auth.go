package payload

import "github.com/romsper/testing-playground-client/internal/model"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LoginResponse is the token bundle returned by both login and refresh.
type LoginResponse struct {
	ID           int64  `json:"id"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	CreatedAt    int64  `json:"createdAt"`
	ExpireInMS   int64  `json:"expireInMs"`
}

// Session converts the wire token bundle into the persisted session record.
func (r LoginResponse) Session() model.Session {
	return model.Session{
		UserID:       r.ID,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		CreatedAt:    r.CreatedAt,
		ExpiresInMS:  r.ExpireInMS,
	}
}
