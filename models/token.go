package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the credential payload returned by the login endpoint.
//
// AccessToken is an opaque bearer credential from the client's point of
// view: it is stored verbatim, attached verbatim, and never validated
// locally. Claims only decodes the JWT payload without verification so the
// UI can display session details (account id, expiry); authorization
// decisions always belong to the backend.
type Token struct {
	// AccessToken is the compact serialized bearer token.
	AccessToken string `json:"access_token"`

	// TokenType is the token scheme reported by the backend ("bearer").
	TokenType string `json:"token_type"`
}

// String returns the bearer credential itself.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.AccessToken
}

// TokenClaims is the subset of JWT claims the client cares to display.
type TokenClaims struct {
	// UserID is the account identifier from the "user_id" claim.
	UserID int64

	// ExpiresAt is the token expiry from the "exp" claim. Zero when the
	// token carries no expiry.
	ExpiresAt time.Time
}

// Claims decodes the token payload WITHOUT signature verification and
// extracts the display claims. Returns an error if the token is not a
// structurally valid JWT.
func (t Token) Claims() (TokenClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("decode access token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	var out TokenClaims

	if raw, found := claims["user_id"]; found {
		if id, isNumber := raw.(float64); isNumber {
			out.UserID = int64(id)
		}
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}
