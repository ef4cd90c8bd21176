package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/configs"
	"github.com/okanay/backend-blog-core/types"
)

// Access and refresh tokens are signed with independent secrets so that
// leaking one signing key cannot mint the other token kind.
func accessSecret() []byte  { return []byte(os.Getenv("ACCESS_TOKEN_SECRET")) }
func refreshSecret() []byte { return []byte(os.Getenv("REFRESH_TOKEN_SECRET")) }

// GenerateAccessToken signs a short-lived token carrying id, username and role.
func GenerateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := types.AccessTokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Membership,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configs.JWT_ISSUER,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(configs.ACCESS_TOKEN_DURATION)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessSecret())
}

// GenerateRefreshToken signs a longer-lived token carrying only the subject.
// The caller persists it on the account; the stored copy is the revocation
// mechanism, the signature alone is not enough.
func GenerateRefreshToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := types.RefreshTokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configs.JWT_ISSUER,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(configs.REFRESH_TOKEN_DURATION)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(refreshSecret())
}

// ValidateAccessToken checks signature and expiry against the access secret.
func ValidateAccessToken(tokenString string) (*types.AccessTokenClaims, error) {
	claims := &types.AccessTokenClaims{}
	if err := parseToken(tokenString, claims, accessSecret()); err != nil {
		return nil, err
	}
	return claims, nil
}

// ValidateRefreshToken checks signature and expiry against the refresh secret.
func ValidateRefreshToken(tokenString string) (*types.RefreshTokenClaims, error) {
	claims := &types.RefreshTokenClaims{}
	if err := parseToken(tokenString, claims, refreshSecret()); err != nil {
		return nil, err
	}
	return claims, nil
}

func parseToken(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, types.ErrTokenInvalid
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return types.ErrTokenExpired
		}
		return types.ErrTokenInvalid
	}
	if !token.Valid {
		return types.ErrTokenInvalid
	}

	return nil
}
