package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/pawarnirmal/portfolio/internal/config"
	"github.com/pawarnirmal/portfolio/internal/domain"
)

// AdminAuth checks the single admin credential and issues a session token that
// lives as long as the process.
type AdminAuth struct {
	username string
	password string
	token    string
}

// NewAdminAuth creates an AdminAuth with a fresh random session token.
func NewAdminAuth(cfg config.AdminConfig) (*AdminAuth, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}
	return &AdminAuth{
		username: cfg.Username,
		password: cfg.Password,
		token:    hex.EncodeToString(b),
	}, nil
}

// Login returns the session token when the credentials match.
func (a *AdminAuth) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK || a.password == "" {
		return "", domain.ErrUnauthorized
	}
	return a.token, nil
}

// Verify reports whether token is the current session token.
func (a *AdminAuth) Verify(token string) bool {
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}
