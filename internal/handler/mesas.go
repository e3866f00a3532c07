package handler

import (
	"net/http"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MesaHandler struct {
	svc service.MesaService
}

func NewMesaHandler(svc service.MesaService) *MesaHandler {
	return &MesaHandler{svc: svc}
}

func mesaErrorStatus(err error) int {
	switch err {
	case service.ErrMesaCerrada, service.ErrCuentaPendiente:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Abrir godoc
// @Summary Abre una mesa (cuenta abierta) con su etiqueta
// @Tags mesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param body body dto.AbrirMesaRequest true "Etiqueta de la mesa"
// @Success 201 {object} dto.MesaResponse
// @Router /v1/tiendas/{tiendaId}/mesas [post]
func (h *MesaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirMesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AbrirMesa(c.Request.Context(), middleware.GetTiendaID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista mesas filtrando por estado ('abierta', 'cerrada' o 'all')
// @Tags mesas
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param estado query string false "Filtro de estado"
// @Success 200 {object} dto.MesaListResponse
// @Router /v1/tiendas/{tiendaId}/mesas [get]
func (h *MesaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListMesas(c.Request.Context(), middleware.GetTiendaID(c), c.Query("estado"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Obtiene una mesa con sus clientes y consumos
// @Tags mesas
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la mesa"
// @Success 200 {object} dto.MesaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/mesas/{id} [get]
func (h *MesaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.GetMesa(c.Request.Context(), middleware.GetTiendaID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarCliente godoc
// @Summary Agrega una persona (cuenta individual) a una mesa abierta
// @Tags mesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la mesa"
// @Param body body dto.AgregarClienteRequest true "Nombre opcional"
// @Success 201 {object} dto.MesaResponse
// @Failure 409 {object} apierror.APIError "Mesa cerrada"
// @Router /v1/tiendas/{tiendaId}/mesas/{id}/clientes [post]
func (h *MesaHandler) AgregarCliente(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AgregarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarCliente(c.Request.Context(), middleware.GetTiendaID(c), id, req)
	if err != nil {
		c.JSON(mesaErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AgregarProducto godoc
// @Summary Suma un consumo a la cuenta de un cliente de mesa
// @Tags mesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param clienteId path string true "ID del cliente de mesa"
// @Param body body dto.AgregarProductoMesaRequest true "Producto y cantidad"
// @Success 200 {object} dto.MesaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/mesas/{id}/clientes/{clienteId}/productos [post]
func (h *MesaHandler) AgregarProducto(c *gin.Context) {
	clienteID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AgregarProductoMesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarProducto(c.Request.Context(), middleware.GetTiendaID(c), clienteID, req)
	if err != nil {
		c.JSON(mesaErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cobrar godoc
// @Summary Cobra la cuenta de un cliente de mesa
// @Tags mesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param clienteId path string true "ID del cliente de mesa"
// @Param body body dto.CobrarClienteRequest true "Medio de pago"
// @Success 200 {object} dto.MesaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/mesas/{id}/clientes/{clienteId}/cobrar [post]
func (h *MesaHandler) Cobrar(c *gin.Context) {
	clienteID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.CobrarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CobrarCliente(c.Request.Context(), middleware.GetTiendaID(c), clienteID, req)
	if err != nil {
		c.JSON(mesaErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reabrir godoc
// @Summary Reabre la cuenta de un cliente ya cobrado (corrección)
// @Tags mesas
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param clienteId path string true "ID del cliente de mesa"
// @Success 200 {object} dto.MesaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/mesas/{id}/clientes/{clienteId}/reabrir [post]
func (h *MesaHandler) Reabrir(c *gin.Context) {
	clienteID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ReabrirCliente(c.Request.Context(), middleware.GetTiendaID(c), clienteID)
	if err != nil {
		c.JSON(mesaErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cerrar godoc
// @Summary Cierra una mesa sin cuentas pendientes
// @Tags mesas
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la mesa"
// @Success 200 {object} dto.MesaResponse
// @Failure 409 {object} apierror.APIError "Cuentas pendientes"
// @Router /v1/tiendas/{tiendaId}/mesas/{id}/cerrar [post]
func (h *MesaHandler) Cerrar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.CerrarMesa(c.Request.Context(), middleware.GetTiendaID(c), id)
	if err != nil {
		c.JSON(mesaErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Elimina una mesa con todo su contenido; requiere rol elevado
// @Tags mesas
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la mesa"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/mesas/{id} [delete]
func (h *MesaHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.EliminarMesa(c.Request.Context(), middleware.GetTiendaID(c), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
