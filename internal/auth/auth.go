// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth issues and validates the dashboard's bearer tokens.
// There is a single admin identity, configured at startup; tokens are
// opaque random strings held in an in-process TTL registry, so a
// restart logs everyone out.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultTTL is how long an issued token stays valid without a new login.
	DefaultTTL = 24 * time.Hour

	// tokenLength is the byte length of the random token (32 bytes = 64 hex chars).
	tokenLength = 32
)

// ErrInvalidCredentials is returned by Login for a wrong email or
// password. Callers must not distinguish which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service authenticates the admin and manages issued tokens.
type Service struct {
	adminEmail string
	adminHash  []byte
	tokens     *cache.Cache
}

// NewService creates a Service for the given admin identity. The
// password arrives pre-hashed with bcrypt; hashing happens once at
// startup, not per login attempt.
func NewService(adminEmail string, adminHash []byte) *Service {
	return &Service{
		adminEmail: adminEmail,
		adminHash:  adminHash,
		tokens:     cache.New(DefaultTTL, 10*time.Minute),
	}
}

// Login checks the credentials and, on success, issues a fresh token.
func (s *Service) Login(email, password string) (string, error) {
	if !strings.EqualFold(email, s.adminEmail) {
		// Burn comparable time so a wrong email is not distinguishable
		// from a wrong password.
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(password))
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("auth login: %w", err)
	}
	s.tokens.Set(token, s.adminEmail, cache.DefaultExpiration)
	return token, nil
}

// Validate reports whether the token was issued by this service and has
// not expired or been revoked.
func (s *Service) Validate(token string) bool {
	if token == "" {
		return false
	}
	_, found := s.tokens.Get(token)
	return found
}

// Revoke invalidates a token immediately. Revoking an unknown token is
// a no-op.
func (s *Service) Revoke(token string) {
	s.tokens.Delete(token)
}

// generateToken returns a cryptographically random hex token.
func generateToken() (string, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
