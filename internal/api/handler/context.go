package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/api/middleware"
	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. Their
// absence means the route was mounted without the token gate.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return nil, domain.NewError(domain.ErrAuthenticationMissing, "Token requerido")
	}
	return claims, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewError(domain.ErrInvalidInput, "ID inválido")
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewError(domain.ErrInvalidInput, "Payload inválido")
	}
	if err := c.Validate(req); err != nil {
		return domain.NewError(domain.ErrInvalidInput, err.Error())
	}
	return nil
}

// messageResponse is the plain {"mensaje": ...} acknowledgement.
type messageResponse struct {
	Mensaje string `json:"mensaje"`
}
