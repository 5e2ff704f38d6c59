package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewService("admin@skillforge.dev", hash)
}

func TestLoginIssuesValidToken(t *testing.T) {
	s := newTestService(t)

	token, err := s.Login("admin@skillforge.dev", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if len(token) != tokenLength*2 {
		t.Errorf("token length: got %d, want %d hex chars", len(token), tokenLength*2)
	}
	if !s.Validate(token) {
		t.Error("freshly issued token did not validate")
	}
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	s := newTestService(t)

	if _, err := s.Login("Admin@SkillForge.dev", "correct horse"); err != nil {
		t.Errorf("Login with differently-cased email: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestService(t)

	cases := []struct {
		name            string
		email, password string
	}{
		{"wrong password", "admin@skillforge.dev", "incorrect horse"},
		{"wrong email", "intruder@example.com", "correct horse"},
		{"both wrong", "intruder@example.com", "guess"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Login(tc.email, tc.password); err != ErrInvalidCredentials {
				t.Errorf("Login: got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestValidateRejectsUnknownToken(t *testing.T) {
	s := newTestService(t)

	if s.Validate("") {
		t.Error("empty token validated")
	}
	if s.Validate("deadbeef") {
		t.Error("never-issued token validated")
	}
}

func TestRevokeInvalidatesToken(t *testing.T) {
	s := newTestService(t)

	token, err := s.Login("admin@skillforge.dev", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	s.Revoke(token)
	if s.Validate(token) {
		t.Error("revoked token still validates")
	}

	// Unknown tokens revoke quietly.
	s.Revoke("deadbeef")
}

func TestEachLoginIssuesDistinctToken(t *testing.T) {
	s := newTestService(t)

	t1, err := s.Login("admin@skillforge.dev", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	t2, err := s.Login("admin@skillforge.dev", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if t1 == t2 {
		t.Error("two logins issued the same token")
	}
	// Both sessions remain valid side by side.
	if !s.Validate(t1) || !s.Validate(t2) {
		t.Error("issuing a second token invalidated the first")
	}
}
