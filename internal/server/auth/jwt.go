// Package auth verifies access tokens issued by the identity provider and
// extracts the opaque user id they carry. The server never re-verifies the
// identity beyond the token signature.
package auth

import (
	"time"

	"github.com/dmitrijs2005/droply/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered claims with the single custom UserID claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken signs a token carrying userID, valid for validityDuration.
// Used by tests and local tooling; the production issuer is external.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken parses and validates tokenString, returning the user id
// claim. Invalid, expired or forged tokens fail with common.ErrorInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrorInvalidToken
	}

	if !token.Valid {
		return "", common.ErrorInvalidToken
	}

	return claims.UserID, nil
}
