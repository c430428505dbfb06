package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin holds the configured admin credentials.
type Admin struct {
	Password      string
	PasswordHash  string
	SessionSecret []byte
	SessionTTL    time.Duration
}

// CheckPassword reports whether password matches the configured plaintext
// password or bcrypt hash. Nothing matches when neither is configured.
func (a Admin) CheckPassword(password string) bool {
	if password == "" {
		return false
	}
	if a.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
	}
	if a.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) == 1
}

// TokensEnabled reports whether login issues signed admin tokens.
func (a Admin) TokensEnabled() bool {
	return len(a.SessionSecret) > 0
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NewAccessCode returns a random 16 hex character board access code.
func NewAccessCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
