package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims is the payload of the short-lived bearer token.
type AccessTokenClaims struct {
	UserID   uuid.UUID `json:"uid"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
	jwt.RegisteredClaims
}

// RefreshTokenClaims carries only the subject; role is re-read from the
// account on every refresh so demotions take effect.
type RefreshTokenClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// SessionResult is what a successful login or refresh hands back to the
// transport layer. The refresh token is persisted before this is returned.
type SessionResult struct {
	User         UserProfileResponse
	AccessToken  string
	RefreshToken string
}
