package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/core/ports"
)

// RutaHandler handles HTTP requests for rutas.
type RutaHandler struct {
	service ports.RutaService
}

func NewRutaHandler(service ports.RutaService) *RutaHandler {
	return &RutaHandler{service: service}
}

// Create handles POST /api/rutas through the crear_ruta procedure.
//
// @Summary      Create a ruta
// @Tags         rutas
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createRutaRequest  true  "Ruta"
// @Success      201   {object}  procedureResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/rutas [post]
func (h *RutaHandler) Create(c echo.Context) error {
	var req createRutaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ruta, err := req.toDomain()
	if err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), ruta)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, procedureResponse{Mensaje: "Ruta creada exitosamente", Salida: procedureLines(result)})
}

// List handles GET /api/rutas.
//
// @Summary      List rutas
// @Tags         rutas
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}  rutaResponse
// @Router       /api/rutas [get]
func (h *RutaHandler) List(c echo.Context) error {
	rutas, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(rutas, toRutaResponse))
}

// Get handles GET /api/rutas/:id.
//
// @Summary      Get a ruta
// @Tags         rutas
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Ruta ID"
// @Success      200  {object}  rutaResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/rutas/{id} [get]
func (h *RutaHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	r, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRutaResponse(*r))
}

// Complete handles PUT /api/rutas/:id/completar through the
// marcar_ruta_completada procedure.
//
// @Summary      Mark a ruta as completed
// @Tags         rutas
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Ruta ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/rutas/{id}/completar [put]
func (h *RutaHandler) Complete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.Complete(c.Request().Context(), id)
	observeWorkflow("ruta_complete", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Ruta marcada como completada"})
}

// Delete handles DELETE /api/rutas/:id through the eliminar_ruta procedure.
//
// @Summary      Delete a ruta
// @Tags         rutas
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Ruta ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  errorResponse
// @Router       /api/rutas/{id} [delete]
func (h *RutaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Ruta eliminada correctamente"})
}
