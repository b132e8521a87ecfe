package ports

import (
	"context"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// CredentialRepository reads and creates login records.
type CredentialRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no login matches.
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
	// Register creates the persona, cliente and usuario rows atomically.
	Register(ctx context.Context, reg domain.Registration, passwordHash string) (*domain.RegistrationResult, error)
}
