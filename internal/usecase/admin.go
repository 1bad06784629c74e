package usecase

import (
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/pkg/auth"
)

// AdminSubject is the token subject of back-office sessions.
const AdminSubject = "admin"

// ErrInvalidCredentials signals a wrong admin password.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", domainErrors.ErrUnauthorized)

// AdminUseCase authenticates the single back-office operator.
type AdminUseCase struct {
	hasher       auth.PasswordHasher
	strategy     auth.Strategy
	passwordHash string
}

// NewAdminUseCase constructs AdminUseCase. An empty passwordHash disables
// admin protection.
func NewAdminUseCase(hasher auth.PasswordHasher, strategy auth.Strategy, passwordHash string) *AdminUseCase {
	return &AdminUseCase{hasher: hasher, strategy: strategy, passwordHash: passwordHash}
}

// Enabled reports whether admin routes require a token.
func (u *AdminUseCase) Enabled() bool {
	return u.passwordHash != ""
}

// Login exchanges the admin password for a session token.
func (u *AdminUseCase) Login(password string) (string, error) {
	if !u.Enabled() {
		return "", auth.ErrDisabled
	}
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: password is required", domainErrors.ErrValidation)
	}
	if err := u.hasher.Compare(u.passwordHash, password); err != nil {
		if errors.Is(err, auth.ErrMalformedHash) {
			return "", fmt.Errorf("admin password hash: %w", err)
		}
		return "", ErrInvalidCredentials
	}
	return u.strategy.IssueToken(AdminSubject)
}

// Authorize checks that token belongs to an admin session.
func (u *AdminUseCase) Authorize(token string) error {
	subject, err := u.strategy.ParseToken(token)
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrUnauthorized, err)
	}
	if subject != AdminSubject {
		return fmt.Errorf("%w: unexpected subject", domainErrors.ErrUnauthorized)
	}
	return nil
}
