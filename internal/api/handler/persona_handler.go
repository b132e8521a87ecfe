package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

// PersonaHandler handles HTTP requests for personas.
type PersonaHandler struct {
	service ports.PersonaService
}

func NewPersonaHandler(service ports.PersonaService) *PersonaHandler {
	return &PersonaHandler{service: service}
}

// List handles GET /api/personas.
//
// @Summary      List personas
// @Tags         personas
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   personaResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  errorResponse
// @Router       /api/personas [get]
func (h *PersonaHandler) List(c echo.Context) error {
	personas, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(personas, toPersonaResponse))
}

// Get handles GET /api/personas/:id.
//
// @Summary      Get a persona
// @Tags         personas
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Persona ID"
// @Success      200  {object}  personaResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/personas/{id} [get]
func (h *PersonaHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPersonaResponse(*p))
}

// Create handles POST /api/personas.
//
// @Summary      Create a persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createPersonaRequest  true  "Persona"
// @Success      201   {object}  personaCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/personas [post]
func (h *PersonaHandler) Create(c echo.Context) error {
	var req createPersonaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), domain.Persona{
		Nombre:   req.Nombre,
		Cedula:   req.Cedula,
		Telefono: req.Telefono,
		Edad:     req.Edad,
		Sexo:     req.Sexo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, personaCreatedResponse{Mensaje: "Persona creada exitosamente", IDPersona: id})
}

// Update handles PUT /api/personas/:id.
//
// @Summary      Update a persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                   true  "Persona ID"
// @Param        body  body      updatePersonaRequest  true  "Mutable fields"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/personas/{id} [put]
func (h *PersonaHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updatePersonaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, domain.PersonaUpdate{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Edad:     req.Edad,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Persona actualizada correctamente"})
}

// Delete handles DELETE /api/personas/:id.
//
// @Summary      Delete a persona
// @Tags         personas
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Persona ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  errorResponse
// @Router       /api/personas/{id} [delete]
func (h *PersonaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Persona eliminada correctamente"})
}
