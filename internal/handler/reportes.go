package handler

import (
	"net/http"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/service"

	"github.com/gin-gonic/gin"
)

type ReporteHandler struct {
	svc service.ReporteService
}

func NewReporteHandler(svc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{svc: svc}
}

// Dashboard godoc
// @Summary Indicadores del día y del mes para la pantalla principal
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Success 200 {object} dto.DashboardResponse
// @Router /v1/tiendas/{tiendaId}/reportes/dashboard [get]
func (h *ReporteHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context(), middleware.GetTiendaID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
