package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/paqueteria/logistics-api/internal/api/metrics"
	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

// PaqueteHandler handles HTTP requests for paquetes.
type PaqueteHandler struct {
	service ports.PaqueteService
}

func NewPaqueteHandler(service ports.PaqueteService) *PaqueteHandler {
	return &PaqueteHandler{service: service}
}

// Create handles POST /api/paquetes through the crear_paquete procedure.
//
// @Summary      Create a paquete
// @Tags         paquetes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        Idempotency-Key  header    string          false  "Replays the first response for a repeated key"
// @Param        body             body      paqueteRequest  true   "Paquete"
// @Success      201              {object}  procedureResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /api/paquetes [post]
func (h *PaqueteHandler) Create(c echo.Context) error {
	var req paqueteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), req.toDomain(0))
	observeWorkflow("paquete_create", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, procedureResponse{Mensaje: "Paquete creado exitosamente", Salida: procedureLines(result)})
}

// UpdateEstado handles PUT /api/paquetes/:id/estado through the
// actualizar_estado_paquete procedure.
//
// @Summary      Change a paquete's state
// @Tags         paquetes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                  true  "Paquete ID"
// @Param        body  body      updateEstadoRequest  true  "New state"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/paquetes/{id}/estado [put]
func (h *PaqueteHandler) UpdateEstado(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateEstadoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.service.UpdateEstado(c.Request().Context(), id, *req.NuevoEstado)
	observeWorkflow("paquete_estado", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Estado actualizado"})
}

// Update handles PUT /api/paquetes/:id.
//
// @Summary      Update a paquete
// @Tags         paquetes
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int             true  "Paquete ID"
// @Param        body  body      paqueteRequest  true  "Paquete"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/paquetes/{id} [put]
func (h *PaqueteHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req paqueteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), req.toDomain(id)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Paquete actualizado correctamente"})
}

// List handles GET /api/paquetes with optional estado, cliente and centro filters.
//
// @Summary      List paquetes
// @Tags         paquetes
// @Produce      json
// @Security     TokenAuth
// @Param        estado   query     int  false  "State code"
// @Param        cliente  query     int  false  "Cliente ID"
// @Param        centro   query     int  false  "Centro ID"
// @Success      200      {object}  paqueteListResponse
// @Failure      400      {object}  errorResponse
// @Router       /api/paquetes [get]
func (h *PaqueteHandler) List(c echo.Context) error {
	filter, err := parsePaqueteFilter(c)
	if err != nil {
		return err
	}

	paquetes, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	items := mapSlice(paquetes, toPaqueteResponse)
	return c.JSON(http.StatusOK, paqueteListResponse{Count: len(items), Paquetes: items})
}

// Get handles GET /api/paquetes/:id.
//
// @Summary      Get a paquete
// @Tags         paquetes
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Paquete ID"
// @Success      200  {object}  paqueteResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/paquetes/{id} [get]
func (h *PaqueteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaqueteResponse(*p))
}

// Delete handles DELETE /api/paquetes/:id through the eliminar_paquete procedure.
//
// @Summary      Delete a paquete
// @Tags         paquetes
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Paquete ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  errorResponse
// @Router       /api/paquetes/{id} [delete]
func (h *PaqueteHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Mensaje: "Paquete eliminado correctamente"})
}

func parsePaqueteFilter(c echo.Context) (domain.PaqueteFilter, error) {
	var f domain.PaqueteFilter

	if v := c.QueryParam("estado"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, domain.NewError(domain.ErrInvalidInput, "estado debe ser numérico")
		}
		f.Estado = &n
	}
	for param, dst := range map[string]**int64{"cliente": &f.ClienteID, "centro": &f.CentroID} {
		v := c.QueryParam(param)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, domain.NewError(domain.ErrInvalidInput, param+" debe ser numérico")
		}
		*dst = &n
	}
	return f, nil
}

// observeWorkflow records the outcome of a workflow operation.
func observeWorkflow(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.WorkflowOperationsTotal.WithLabelValues(operation, result).Inc()
}
