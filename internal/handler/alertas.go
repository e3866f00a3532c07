package handler

import (
	"net/http"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AlertaHandler struct {
	svc service.AlertaService
}

func NewAlertaHandler(svc service.AlertaService) *AlertaHandler {
	return &AlertaHandler{svc: svc}
}

// Listar godoc
// @Summary Lista las alertas de inventario de la tienda
// @Tags alertas
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param no_leidas query bool false "Solo alertas no leídas"
// @Success 200 {array} dto.AlertaResponse
// @Router /v1/tiendas/{tiendaId}/alertas [get]
func (h *AlertaHandler) Listar(c *gin.Context) {
	soloNoLeidas := c.Query("no_leidas") == "true"
	alertas, err := h.svc.Listar(c.Request.Context(), middleware.GetTiendaID(c), soloNoLeidas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, alertas)
}

// MarcarLeida godoc
// @Summary Marca una alerta como leída
// @Tags alertas
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la alerta"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/alertas/{id}/leida [patch]
func (h *AlertaHandler) MarcarLeida(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.MarcarLeida(c.Request.Context(), middleware.GetTiendaID(c), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

type MetodoPagoHandler struct {
	svc service.MetodoPagoService
}

func NewMetodoPagoHandler(svc service.MetodoPagoService) *MetodoPagoHandler {
	return &MetodoPagoHandler{svc: svc}
}

// Listar godoc
// @Summary Lista los medios de pago activos de la tienda
// @Tags metodos-pago
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Success 200 {array} dto.MetodoPagoResponse
// @Router /v1/tiendas/{tiendaId}/metodos-pago [get]
func (h *MetodoPagoHandler) Listar(c *gin.Context) {
	metodos, err := h.svc.Listar(c.Request.Context(), middleware.GetTiendaID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, metodos)
}
