package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/api/metrics"
	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// PermitirRoles lets the request through only when the verified role is one
// of roles. It must be mounted after Auth; a request without claims is denied.
func PermitirRoles(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := append([]domain.Role(nil), roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var role domain.Role
			if claims, ok := ClaimsFrom(c); ok {
				role = claims.Role
			}
			if err := domain.Authorize(role, allowed...); err != nil {
				metrics.GateRejectionsTotal.WithLabelValues("role", "denied").Inc()
				return err
			}
			return next(c)
		}
	}
}

func SoloAdmin() echo.MiddlewareFunc { return PermitirRoles(domain.RoleAdmin) }

func SoloCliente() echo.MiddlewareFunc { return PermitirRoles(domain.RoleCliente) }

func SoloEmpleado() echo.MiddlewareFunc { return PermitirRoles(domain.RoleEmpleado) }
