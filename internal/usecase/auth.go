package usecase

import (
	"context"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	pkgAuth "github.com/f1rstgear/gearflow/internal/pkg/auth"
)

// DefaultOperatorID identifies the single dashboard operator. The tool is
// single-seat; sessions exist to keep the door closed, not to multiplex users.
const DefaultOperatorID int64 = 1

// AuthUseCase handles operator login and token management.
type AuthUseCase struct {
	passwordHash string
	hasher       pkgAuth.PasswordHasher
	tokens       pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase. An empty passwordHash disables
// authentication entirely.
func NewAuthUseCase(passwordHash string, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{passwordHash: passwordHash, hasher: hasher, tokens: strategy}
}

// Enabled reports whether an operator credential is configured.
func (u *AuthUseCase) Enabled() bool {
	return u.passwordHash != ""
}

// Authenticate validates the operator password and returns a session token.
func (u *AuthUseCase) Authenticate(_ context.Context, password string) (string, error) {
	if !u.Enabled() {
		return u.tokens.IssueToken(DefaultOperatorID)
	}
	if password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}
	if err := u.hasher.Compare(u.passwordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}
	return u.tokens.IssueToken(DefaultOperatorID)
}

// ParseToken extracts the operator ID from a session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
