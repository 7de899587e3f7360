// Package auth issues and verifies the bearer tokens guarding the admin API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role required by moderation endpoints.
const RoleAdmin = "admin"

// DefaultTTL is the lifetime of tokens issued without an explicit TTL.
const DefaultTTL = 30 * 24 * time.Hour

// ErrInvalidToken is returned when a token cannot be verified.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the verified contents of an admin token.
type Claims struct {
	Subject string
	Role    string
}

// IssueToken creates a signed HS256 JWT for subject with the given role.
func IssueToken(secret, subject, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies raw against secret and returns its claims.
func ParseToken(secret, raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return &Claims{Subject: sub, Role: role}, nil
}
