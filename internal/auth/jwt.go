package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminSubject = "admin"

var (
	ErrTokensDisabled = errors.New("admin tokens are not configured")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidClaims  = errors.New("invalid claims")
)

// GenerateToken signs an admin token valid for SessionTTL.
func (a Admin) GenerateToken() (string, error) {
	if !a.TokensEnabled() {
		return "", ErrTokensDisabled
	}
	claims := jwt.MapClaims{
		"sub": adminSubject,
		"exp": time.Now().Add(a.SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.SessionSecret)
}

// ParseToken validates an admin token.
func (a Admin) ParseToken(tokenStr string) error {
	if !a.TokensEnabled() {
		return ErrTokensDisabled
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return a.SessionSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidClaims
	}
	if sub, _ := claims.GetSubject(); sub != adminSubject {
		return ErrInvalidClaims
	}
	return nil
}
