package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GastoHandler struct {
	svc service.GastoService
}

func NewGastoHandler(svc service.GastoService) *GastoHandler {
	return &GastoHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra un gasto operativo
// @Tags gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param body body dto.RegistrarGastoRequest true "Concepto, monto y fecha"
// @Success 201 {object} dto.GastoResponse
// @Router /v1/tiendas/{tiendaId}/gastos [post]
func (h *GastoHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), middleware.GetTiendaID(c), middleware.GetUsuarioID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista los gastos de un mes (el actual por defecto)
// @Tags gastos
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param mes query string false "Mes YYYY-MM"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} map[string]interface{}
// @Router /v1/tiendas/{tiendaId}/gastos [get]
func (h *GastoHandler) Listar(c *gin.Context) {
	mes := time.Now()
	if raw := c.Query("mes"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("mes inválido, formato esperado YYYY-MM"))
			return
		}
		mes = parsed
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	gastos, total, err := h.svc.Listar(c.Request.Context(), middleware.GetTiendaID(c), mes, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  gastos,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Eliminar godoc
// @Summary Elimina un gasto; requiere rol elevado
// @Tags gastos
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID del gasto"
// @Success 204
// @Failure 403 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/gastos/{id} [delete]
func (h *GastoHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.GetTiendaID(c), id, c.GetString(middleware.RolKey)); err != nil {
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
