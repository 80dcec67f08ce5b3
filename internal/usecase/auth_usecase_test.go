package usecase

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_Login(t *testing.T) {
	creds := AdminCredentials{Username: "admin", Password: "s3cret"}

	t.Run("secret not configured", func(t *testing.T) {
		uc := NewAuthUseCase(creds, "", time.Hour)
		if _, _, err := uc.Login("admin", "s3cret"); !errors.Is(err, ErrSessionNotConfigured) {
			t.Fatalf("expected ErrSessionNotConfigured, got %v", err)
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		uc := NewAuthUseCase(creds, "key", time.Hour)
		for _, pair := range [][2]string{{"admin", "nope"}, {"root", "s3cret"}, {"admin", ""}} {
			if _, _, err := uc.Login(pair[0], pair[1]); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials for %v, got %v", pair, err)
			}
		}
	})

	t.Run("empty configured username rejects everything", func(t *testing.T) {
		uc := NewAuthUseCase(AdminCredentials{}, "key", time.Hour)
		if _, _, err := uc.Login("", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("bcrypt hash takes precedence", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		uc := NewAuthUseCase(AdminCredentials{Username: "admin", Password: "plain", PasswordHash: string(hash)}, "key", time.Hour)

		if _, _, err := uc.Login("admin", "plain"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected plain password to be ignored, got %v", err)
		}
		if _, _, err := uc.Login("admin", "hashed-pass"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("issues a session that validates", func(t *testing.T) {
		uc := NewAuthUseCase(creds, "key", 2*time.Hour)
		token, exp, err := uc.Login(" admin ", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if time.Until(exp) < time.Hour {
			t.Fatalf("unexpected expiry %s", exp)
		}
		claims, err := uc.ValidateSession(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Username != "admin" {
			t.Fatalf("unexpected claims %+v", claims)
		}
	})
}

func TestAuthUseCase_ValidateSession(t *testing.T) {
	creds := AdminCredentials{Username: "admin", Password: "s3cret"}

	t.Run("garbage", func(t *testing.T) {
		uc := NewAuthUseCase(creds, "key", time.Hour)
		if _, err := uc.ValidateSession("not-a-jwt"); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
		if _, err := uc.ValidateSession(""); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("other secret", func(t *testing.T) {
		issuer := NewAuthUseCase(creds, "key-a", time.Hour)
		token, _, err := issuer.Login("admin", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		verifier := NewAuthUseCase(creds, "key-b", time.Hour)
		if _, err := verifier.ValidateSession(token); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		uc := NewAuthUseCase(creds, "key", time.Hour)
		token, _, err := uc.Login("admin", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.now = func() time.Time { return time.Now().Add(3 * time.Hour) }
		if _, err := uc.ValidateSession(token); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})
}
