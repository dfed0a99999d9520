package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	pkgAuth "github.com/f1rstgear/gearflow/internal/pkg/auth"
)

func newTestAuth(t *testing.T, password string) *AuthUseCase {
	t.Helper()
	hasher := pkgAuth.NewBcryptHasher(4)
	var hash string
	if password != "" {
		var err error
		hash, err = hasher.Hash(password)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
	}
	strategy := pkgAuth.NewHMACStrategy("test-secret", pkgAuth.Options{TTL: time.Minute})
	return NewAuthUseCase(hash, hasher, strategy)
}

func TestAuthUseCase_Disabled(t *testing.T) {
	auth := newTestAuth(t, "")
	if auth.Enabled() {
		t.Fatal("expected auth disabled without configured hash")
	}

	token, err := auth.Authenticate(context.Background(), "anything")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	operatorID, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if operatorID != DefaultOperatorID {
		t.Fatalf("unexpected operator id: %d", operatorID)
	}
}

func TestAuthUseCase_Enabled(t *testing.T) {
	auth := newTestAuth(t, "gearflow")
	if !auth.Enabled() {
		t.Fatal("expected auth enabled")
	}

	if _, err := auth.Authenticate(context.Background(), "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := auth.Authenticate(context.Background(), ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}

	token, err := auth.Authenticate(context.Background(), "gearflow")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if operatorID, err := auth.ParseToken(token); err != nil || operatorID != DefaultOperatorID {
		t.Fatalf("parse token: id=%d err=%v", operatorID, err)
	}
}

func TestAuthUseCase_ParseEmptyToken(t *testing.T) {
	auth := newTestAuth(t, "")
	if _, err := auth.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
