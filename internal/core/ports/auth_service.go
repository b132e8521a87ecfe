package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, reg domain.Registration) (*domain.RegistrationResult, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// PasswordHasher hashes and checks passwords. Verify returns false with a nil
// error on mismatch and an error only when the stored hash is unusable.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// TokenVerifier returns domain.ErrAuthenticationMissing for an empty token and
// domain.ErrAuthenticationInvalid for anything it cannot trust.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
