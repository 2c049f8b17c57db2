package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// UserClaims are the JWT claims issued for an authenticated user. Subject is
// the user's GUID.
type UserClaims struct {
	CharityUser bool `json:"charityUser"`
	jwt.RegisteredClaims
}

// MakeUserToken signs a bearer token for the given user.
func MakeUserToken(user *domain.User, secret string, expiry time.Duration, issuer string) (string, error) {
	now := time.Now().UTC()
	claims := UserClaims{
		CharityUser: user.CharityUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.GUID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign user token: %w", err)
	}
	return signed, nil
}

// ParseUserToken validates a bearer token and returns its claims.
func ParseUserToken(tokenString string, secret string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
