package domain

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are read from the upstream access token without verifying its signature
type Claims struct {
	UserID string `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Session is built once per request from the auth cookies
type Session struct {
	AccessToken string
	Claims      *Claims
	UserData    json.RawMessage
}

// ExpiresAt returns the token expiry when the token carried one
func (s *Session) ExpiresAt() (time.Time, bool) {
	if s == nil || s.Claims == nil || s.Claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return s.Claims.ExpiresAt.Time, true
}

// SessionTokens is what a successful login turns into cookies
type SessionTokens struct {
	AccessToken      string
	RefreshToken     string
	ExpiresAt        time.Time
	RefreshExpiresAt time.Time
	UserData         []byte
}
