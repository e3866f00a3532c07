package handler

import (
	"net/http"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/service"
	"github.com/ingsebastiansierra/tiendaya/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentaHandler struct {
	svc        service.VentaService
	dispatcher *worker.Dispatcher
}

func NewVentaHandler(svc service.VentaService, dispatcher *worker.Dispatcher) *VentaHandler {
	return &VentaHandler{svc: svc, dispatcher: dispatcher}
}

// Registrar godoc
// @Summary Registra una venta contra la sesión de caja abierta
// @Tags ventas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param body body dto.RegistrarVentaRequest true "Items y método de pago"
// @Success 201 {object} dto.VentaResponse
// @Failure 409 {object} apierror.APIError "Sin sesión abierta o stock insuficiente"
// @Router /v1/tiendas/{tiendaId}/ventas [post]
func (h *VentaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVenta(c.Request.Context(), middleware.GetTiendaID(c), middleware.GetUsuarioID(c), req)
	if err != nil {
		status := http.StatusBadRequest
		if err == service.ErrSinSesionAbierta || err == service.ErrStockInsuficiente {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista las ventas de un día (hoy por defecto)
// @Tags ventas
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param fecha query string false "Fecha YYYY-MM-DD"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} dto.VentaListResponse
// @Router /v1/tiendas/{tiendaId}/ventas [get]
func (h *VentaHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtros inválidos: "+err.Error()))
		return
	}
	resp, err := h.svc.ListVentas(c.Request.Context(), middleware.GetTiendaID(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Obtiene el detalle de una venta
// @Tags ventas
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la venta"
// @Success 200 {object} dto.VentaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/ventas/{id} [get]
func (h *VentaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.GetVenta(c.Request.Context(), middleware.GetTiendaID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

type enviarReciboRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// EnviarRecibo godoc
// @Summary Encola el envío del recibo PDF de una venta por correo
// @Tags ventas
// @Accept json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la venta"
// @Param body body enviarReciboRequest true "Correo destino"
// @Success 202
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/ventas/{id}/recibo [post]
func (h *VentaHandler) EnviarRecibo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req enviarReciboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.GetVenta(c.Request.Context(), middleware.GetTiendaID(c), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	if err := h.dispatcher.EnqueueRecibo(c.Request.Context(), id, req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("no se pudo encolar el recibo"))
		return
	}
	c.Status(http.StatusAccepted)
}
