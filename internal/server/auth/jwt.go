// Package auth implements the credential primitives used by the service
// layer: signed session tokens (JWT, HS256) and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/burgerlab/backend/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity bound to a session token. Validity is a pure
// function of the signature and the expiry claim; nothing is stored
// server-side.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"uid"`
	Roles  []string `json:"roles,omitempty"`
}

// GenerateToken issues a signed session token for userID with the given
// roles, valid for validityDuration from now.
func GenerateToken(userID string, roles []string, secretKey []byte, validityDuration time.Duration) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(validityDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			Subject:   userID,
		},
		UserID: userID,
		Roles:  roles,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expires, nil
}

// ParseToken verifies the signature and expiry of a session token and
// returns its claims. Failure kinds are distinguishable:
// common.ErrTokenMalformed (cannot parse), common.ErrTokenExpired
// (signature ok, past expiry), common.ErrInvalidToken (anything else,
// including a bad signature).
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
