package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

// ClienteHandler handles HTTP requests for clientes.
type ClienteHandler struct {
	service ports.ClienteService
}

func NewClienteHandler(service ports.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: service}
}

// List handles GET /api/clientes. Each cliente is joined with its persona.
//
// @Summary      List clientes
// @Tags         clientes
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   clienteDetailResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c echo.Context) error {
	clientes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(clientes, toClienteDetailResponse))
}

// Get handles GET /api/clientes/:id.
//
// @Summary      Get a cliente
// @Tags         clientes
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Cliente ID"
// @Success      200  {object}  clienteResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cl, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClienteResponse(*cl))
}

// Create handles POST /api/clientes.
//
// @Summary      Create a cliente for an existing persona
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createClienteRequest  true  "Cliente"
// @Success      201   {object}  clienteCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c echo.Context) error {
	var req createClienteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), domain.Cliente{
		Direccion: req.Direccion,
		PersonaID: req.PersonaID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, clienteCreatedResponse{Mensaje: "Cliente creado exitosamente", IDCliente: id})
}

// UpdateDireccion handles PUT /api/clientes/:id/direccion.
//
// @Summary      Update a cliente's address
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                     true  "Cliente ID"
// @Param        body  body      updateDireccionRequest  true  "New address"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/clientes/{id}/direccion [put]
func (h *ClienteHandler) UpdateDireccion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateDireccionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.UpdateDireccion(c.Request().Context(), id, req.Direccion); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Dirección actualizada"})
}

// Delete handles DELETE /api/clientes/:id.
//
// @Summary      Delete a cliente
// @Tags         clientes
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Cliente ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  errorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Cliente eliminado correctamente"})
}
