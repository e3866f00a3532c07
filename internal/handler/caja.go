package handler

import (
	"net/http"
	"strconv"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CajaHandler struct {
	svc service.CajaService
}

func NewCajaHandler(svc service.CajaService) *CajaHandler {
	return &CajaHandler{svc: svc}
}

// Abrir godoc
// @Summary Abre la sesión de caja del día
// @Tags caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param body body dto.AbrirSesionRequest true "Monto inicial"
// @Success 201 {object} dto.SesionResponse
// @Failure 409 {object} apierror.APIError "Ya hay una sesión abierta"
// @Router /v1/tiendas/{tiendaId}/caja/abrir [post]
func (h *CajaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirSesionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AbrirSesion(c.Request.Context(), middleware.GetTiendaID(c), middleware.GetUsuarioID(c), req)
	if err != nil {
		status := http.StatusBadRequest
		if err == service.ErrSesionYaAbierta {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Cerrar godoc
// @Summary Cierra una sesión de caja
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la sesión"
// @Success 200 {object} dto.SesionResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/caja/{id}/cerrar [post]
func (h *CajaHandler) Cerrar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.CerrarSesion(c.Request.Context(), middleware.GetTiendaID(c), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Activa godoc
// @Summary Devuelve la sesión abierta de la tienda, si existe
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Success 200 {object} dto.SesionResponse
// @Failure 404 {object} apierror.APIError "Sin sesión abierta"
// @Router /v1/tiendas/{tiendaId}/caja/activa [get]
func (h *CajaHandler) Activa(c *gin.Context) {
	resp, err := h.svc.GetSesionAbierta(c.Request.Context(), middleware.GetTiendaID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("no hay sesión de caja abierta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial godoc
// @Summary Lista sesiones pasadas, más recientes primero
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} map[string]interface{}
// @Router /v1/tiendas/{tiendaId}/caja/historial [get]
func (h *CajaHandler) Historial(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	sesiones, total, err := h.svc.ListSesiones(c.Request.Context(), middleware.GetTiendaID(c), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  sesiones,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Resumen godoc
// @Summary Resumen de ventas de una sesión desglosado por medio de pago
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la sesión"
// @Success 200 {object} dto.ResumenDiarioResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/caja/{id}/resumen [get]
func (h *CajaHandler) Resumen(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ResumenDiario(c.Request.Context(), middleware.GetTiendaID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
