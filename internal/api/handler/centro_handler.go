package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/core/ports"
)

// CentroHandler handles HTTP requests for distribution centers.
type CentroHandler struct {
	service ports.CentroService
}

func NewCentroHandler(service ports.CentroService) *CentroHandler {
	return &CentroHandler{service: service}
}

// List handles GET /api/centros.
//
// @Summary      List centros
// @Tags         centros
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}  centroResponse
// @Router       /api/centros [get]
func (h *CentroHandler) List(c echo.Context) error {
	centros, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(centros, toCentroResponse))
}

// Get handles GET /api/centros/:id.
//
// @Summary      Get a centro
// @Tags         centros
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Centro ID"
// @Success      200  {object}  centroResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/centros/{id} [get]
func (h *CentroHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	centro, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCentroResponse(*centro))
}

// Create handles POST /api/centros through the crear_centro function.
//
// @Summary      Create a centro
// @Tags         centros
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createCentroRequest  true  "Centro"
// @Success      201   {object}  centroCreatedResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/centros [post]
func (h *CentroHandler) Create(c echo.Context) error {
	var req createCentroRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), req.Ubicacion, req.Capacidad)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, centroCreatedResponse{Mensaje: "Centro creado exitosamente", IDCentro: id})
}

// Update handles PUT /api/centros/:id. Capacity goes through the
// actualizar_capacidad function; ubicacion is applied when present.
//
// @Summary      Update a centro
// @Tags         centros
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                  true  "Centro ID"
// @Param        body  body      updateCentroRequest  true  "Capacity and optional location"
// @Success      200   {object}  centroUpdatedResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/centros/{id} [put]
func (h *CentroHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateCentroRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	detalle, err := h.service.Update(c.Request().Context(), id, req.Capacidad, req.Ubicacion)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, centroUpdatedResponse{Mensaje: "Centro actualizado exitosamente", Detalle: detalle})
}

// Delete handles DELETE /api/centros/:id through the eliminar_centro function.
//
// @Summary      Delete a centro
// @Tags         centros
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Centro ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  errorResponse
// @Router       /api/centros/{id} [delete]
func (h *CentroHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	msg, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: msg})
}
