package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/api/metrics"
	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
	"github.com/paqueteria/logistics-api/internal/core/service"
)

// ClaimsKey is the echo.Context key holding the verified *domain.Claims.
const ClaimsKey = "claims"

// Auth verifies the token in the authorization header and injects the claims
// into the echo context and the request context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))

			claims, err := verifier.Verify(raw)
			if err != nil {
				metrics.GateRejectionsTotal.WithLabelValues("token", service.RejectionReason(err)).Inc()
				if errors.Is(err, domain.ErrAuthenticationMissing) {
					return domain.NewError(domain.ErrAuthenticationMissing, "Token requerido")
				}
				return domain.NewError(domain.ErrAuthenticationInvalid, "Token inválido")
			}

			c.Set(ClaimsKey, claims)
			c.SetRequest(c.Request().WithContext(domain.WithClaims(c.Request().Context(), claims)))

			return next(c)
		}
	}
}

// ClaimsFrom returns the claims injected by Auth.
func ClaimsFrom(c echo.Context) (*domain.Claims, bool) {
	claims, ok := c.Get(ClaimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}

// tokenFromHeader accepts the raw token and also tolerates a "Bearer " prefix.
func tokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
