package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/api/metrics"
	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Nombre        string `json:"nombre"        validate:"required"`
	Cedula        string `json:"cedula"        validate:"required"`
	Telefono      string `json:"telefono"`
	Edad          int    `json:"edad"          validate:"gte=0"`
	Sexo          string `json:"sexo"`
	Direccion     string `json:"direccion"`
	NombreUsuario string `json:"nombreusuario" validate:"required"`
	Password      string `json:"password"      validate:"required"`
}

type registerResponse struct {
	Mensaje   string `json:"mensaje"`
	IDPersona int64  `json:"id_persona"`
	IDCliente int64  `json:"id_cliente"`
}

type loginRequest struct {
	NombreUsuario string `json:"nombreusuario" validate:"required"`
	Password      string `json:"password"      validate:"required"`
}

type loginResponse struct {
	Mensaje string `json:"mensaje"`
	Token   string `json:"token"`
}

// Register creates a persona, its cliente record and a login with role cliente.
//
// @Summary      Register a new cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Persona, address and credentials"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid_input").Inc()
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), domain.Registration{
		Nombre:    req.Nombre,
		Cedula:    req.Cedula,
		Telefono:  req.Telefono,
		Edad:      req.Edad,
		Sexo:      req.Sexo,
		Direccion: req.Direccion,
		Username:  req.NombreUsuario,
		Password:  req.Password,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registrationOutcome(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Mensaje:   "Registro exitoso",
		IDPersona: result.PersonaID,
		IDCliente: result.ClienteID,
	})
}

// Login verifies the credentials and returns a signed token valid for 2 hours.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.NombreUsuario, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Mensaje: "Login exitoso", Token: token})
}

// Me echoes the identity asserted by the caller's token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  domain.Claims
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "unknown_user"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "wrong_password"
	default:
		return "error"
	}
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflictDuplicate):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
