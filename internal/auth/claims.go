// Package auth inspects the bearer tokens issued by the storefront API.
// The client never verifies signatures; the server is the sole authority.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims extracts the unverified claim set from an access token. It is used
// for display only and never gates anything: session presence remains the
// sole authentication signal.
func Claims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	return claims, nil
}
