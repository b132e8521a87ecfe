package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/core/ports"
)

// FacturaHandler handles HTTP requests for facturas.
type FacturaHandler struct {
	service ports.FacturaService
}

func NewFacturaHandler(service ports.FacturaService) *FacturaHandler {
	return &FacturaHandler{service: service}
}

// Create handles POST /api/facturas through the crear_factura procedure.
//
// @Summary      Create a factura
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createFacturaRequest  true  "Factura"
// @Success      201   {object}  procedureResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/facturas [post]
func (h *FacturaHandler) Create(c echo.Context) error {
	var req createFacturaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, procedureResponse{Mensaje: "Factura creada exitosamente", Salida: procedureLines(result)})
}

// Pay handles PUT /api/facturas/:id/pagar through the pagar_factura procedure.
//
// @Summary      Mark a factura as paid
// @Tags         facturas
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Factura ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/facturas/{id}/pagar [put]
func (h *FacturaHandler) Pay(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.Pay(c.Request().Context(), id)
	observeWorkflow("factura_pay", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Factura marcada como pagada"})
}

// List handles GET /api/facturas.
//
// @Summary      List facturas
// @Tags         facturas
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}  facturaResponse
// @Router       /api/facturas [get]
func (h *FacturaHandler) List(c echo.Context) error {
	facturas, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(facturas, toFacturaResponse))
}

// Get handles GET /api/facturas/:id.
//
// @Summary      Get a factura
// @Tags         facturas
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Factura ID"
// @Success      200  {object}  facturaResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	f, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFacturaResponse(*f))
}

// Delete handles DELETE /api/facturas/:id.
//
// @Summary      Delete a factura
// @Tags         facturas
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Factura ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  errorResponse
// @Router       /api/facturas/{id} [delete]
func (h *FacturaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Factura eliminada correctamente"})
}
