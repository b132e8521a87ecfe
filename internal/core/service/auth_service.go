package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const (
	msgUserNotFound       = "Usuario no encontrado"
	msgWrongPassword      = "Contraseña incorrecta"
	msgInvalidCredentials = "Credenciales inválidas"
	msgUserExists         = "Usuario o cédula ya existen"
)

// AuthOptions tunes login behaviour.
type AuthOptions struct {
	// UniformLoginErrors collapses unknown-user and wrong-password into one
	// 401 so the response does not reveal which usernames exist.
	UniformLoginErrors bool
}

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.CredentialRepository
	passwords ports.PasswordHasher
	tokens    ports.TokenIssuer
	audit     ports.AuditPublisher
	opts      AuthOptions
	log       zerolog.Logger

	// dummyHash is compared against when the username is unknown so both
	// rejection paths cost one bcrypt comparison.
	dummyHash string
}

func NewAuthService(
	repo ports.CredentialRepository,
	passwords ports.PasswordHasher,
	tokens ports.TokenIssuer,
	audit ports.AuditPublisher,
	opts AuthOptions,
	log zerolog.Logger,
) (*AuthService, error) {
	dummy, err := passwords.Hash("dummy-password-for-timing")
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	return &AuthService{
		repo:      repo,
		passwords: passwords,
		tokens:    tokens,
		audit:     audit,
		opts:      opts,
		log:       log,
		dummyHash: dummy,
	}, nil
}

// Register creates a persona, its cliente record and a login with the
// cliente role in one transaction. It does not issue a token.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.RegistrationResult, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	if reg.Username == "" || reg.Password == "" || strings.TrimSpace(reg.Nombre) == "" || strings.TrimSpace(reg.Cedula) == "" {
		return nil, domain.NewError(domain.ErrInvalidInput, "nombre, cedula, usuario y password son obligatorios")
	}

	hash, err := s.passwords.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	res, err := s.repo.Register(ctx, reg, hash)
	if err != nil {
		if errors.Is(err, domain.ErrConflictDuplicate) {
			return nil, domain.NewError(domain.ErrConflictDuplicate, msgUserExists)
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.audit.Publish(domain.AuditEvent{
		Action:   domain.AuditUserRegistered,
		Entity:   "usuario",
		EntityID: strconv.FormatInt(res.PersonaID, 10),
		Details: map[string]string{
			"usuario":    reg.Username,
			"id_cliente": strconv.FormatInt(res.ClienteID, 10),
		},
		OccurredAt: time.Now().UTC(),
	})

	return res, nil
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domain.NewError(domain.ErrInvalidInput, "usuario y password son obligatorios")
	}

	cred, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_, _ = s.passwords.Verify(password, s.dummyHash)
			return "", s.rejectUnknownUser()
		}
		return "", fmt.Errorf("login: %w", err)
	}

	ok, err := s.passwords.Verify(password, cred.PasswordHash)
	if err != nil {
		s.log.Error().Int64("id_usuario", cred.UserID).Msg("stored password hash is unusable")
		return "", fmt.Errorf("login: %w: %w", domain.ErrInternal, err)
	}
	if !ok {
		return "", s.rejectWrongPassword()
	}

	token, err := s.tokens.Issue(domain.Claims{
		UserID:    cred.UserID,
		PersonaID: cred.PersonaID,
		Nombre:    cred.Nombre,
		Role:      cred.Role,
	})
	if err != nil {
		return "", fmt.Errorf("login: %w: %w", domain.ErrInternal, err)
	}
	return token, nil
}

func (s *AuthService) rejectUnknownUser() error {
	if s.opts.UniformLoginErrors {
		return domain.NewError(domain.ErrInvalidCredentials, msgInvalidCredentials)
	}
	return domain.NewError(domain.ErrUserNotFound, msgUserNotFound)
}

func (s *AuthService) rejectWrongPassword() error {
	if s.opts.UniformLoginErrors {
		return domain.NewError(domain.ErrInvalidCredentials, msgInvalidCredentials)
	}
	return domain.NewError(domain.ErrInvalidCredentials, msgWrongPassword)
}
