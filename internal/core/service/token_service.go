package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = 2 * time.Hour

type tokenClaims struct {
	UserID    int64  `json:"id_usuario"`
	PersonaID int64  `json:"id_persona"`
	Nombre    string `json:"nombre"`
	Rol       string `json:"rol"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens. It implements
// ports.TokenIssuer and ports.TokenVerifier.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService panics on an empty secret: an unsigned deployment must not
// start.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if secret == "" {
		panic("token service: empty signing secret")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

func (s *TokenService) Issue(c domain.Claims) (string, error) {
	if !c.Role.Valid() {
		return "", fmt.Errorf("issue token: unknown role %q", c.Role)
	}

	now := s.now()
	claims := tokenClaims{
		UserID:    c.UserID,
		PersonaID: c.PersonaID,
		Nombre:    c.Nombre,
		Rol:       string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrAuthenticationMissing
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, &rejectedError{reason: reason(err)}
	}
	if !parsed.Valid {
		return nil, &rejectedError{reason: "rejected"}
	}

	role, ok := domain.ParseRole(claims.Rol)
	if !ok {
		return nil, &rejectedError{reason: "unknown role"}
	}

	return &domain.Claims{
		UserID:    claims.UserID,
		PersonaID: claims.PersonaID,
		Nombre:    claims.Nombre,
		Role:      role,
	}, nil
}

// rejectedError is a verification failure. It unwraps to
// domain.ErrAuthenticationInvalid.
type rejectedError struct {
	reason string
}

func (e *rejectedError) Error() string { return "token rejected: " + e.reason }

func (e *rejectedError) Unwrap() error { return domain.ErrAuthenticationInvalid }

func reason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "bad signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "unverifiable"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "missing claim"
	default:
		return "rejected"
	}
}

// RejectionReason labels a Verify failure for metrics and logs.
func RejectionReason(err error) string {
	var re *rejectedError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrAuthenticationMissing):
		return "missing"
	case errors.As(err, &re):
		return re.reason
	default:
		return "rejected"
	}
}
