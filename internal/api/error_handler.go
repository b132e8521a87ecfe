package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

const msgInternal = "error interno del servidor"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Renders gate and lookup failures as {"mensaje": ...} and every other
//     failure as {"error": ...}.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, key, msg := resolveError(err, log, c)
		_ = c.JSON(code, map[string]string{key: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (unknown route, method not allowed, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logUnhandled(log, c, err)
			return he.Code, "error", msgInternal
		}
		return he.Code, "error", fmt.Sprintf("%v", he.Message)
	}

	kind, ok := kindOf(err)
	if !ok {
		logUnhandled(log, c, err)
		return http.StatusInternalServerError, "error", msgInternal
	}

	msg, found := domain.MessageOf(err)
	if !found {
		msg = kind.fallback
	}
	return kind.status, kind.key, msg
}

type errorKind struct {
	target   error
	status   int
	key      string
	fallback string
}

// errorKinds is checked in order; the first match wins.
var errorKinds = []errorKind{
	{domain.ErrAuthenticationMissing, http.StatusForbidden, "mensaje", "Token requerido"},
	{domain.ErrAuthenticationInvalid, http.StatusUnauthorized, "mensaje", "Token inválido"},
	{domain.ErrAuthorizationDenied, http.StatusForbidden, "mensaje", "Acceso denegado: rol no autorizado"},
	{domain.ErrUserNotFound, http.StatusNotFound, "error", "Usuario no encontrado"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "error", "Credenciales inválidas"},
	{domain.ErrNotFound, http.StatusNotFound, "mensaje", "Recurso no encontrado"},
	{domain.ErrConflictDuplicate, http.StatusConflict, "error", "El registro ya existe"},
	{domain.ErrDependencyConflict, http.StatusConflict, "error", "No se puede eliminar: el registro tiene dependencias"},
	{domain.ErrMissingReference, http.StatusBadRequest, "error", "El registro referenciado no existe"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "error", "Solicitud inválida"},
}

func kindOf(err error) (errorKind, bool) {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k, true
		}
	}
	return errorKind{}, false
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
