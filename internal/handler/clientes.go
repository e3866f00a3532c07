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

type ClienteHandler struct {
	svc service.ClienteService
}

func NewClienteHandler(svc service.ClienteService) *ClienteHandler {
	return &ClienteHandler{svc: svc}
}

// Crear godoc
// @Summary Registra un cliente frecuente de la tienda
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param body body dto.CrearClienteRequest true "Datos del cliente"
// @Success 201 {object} dto.ClienteResponse
// @Router /v1/tiendas/{tiendaId}/clientes [post]
func (h *ClienteHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.GetTiendaID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista los clientes de la tienda con búsqueda por nombre o teléfono
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param q query string false "Búsqueda"
// @Success 200 {array} dto.ClienteResponse
// @Router /v1/tiendas/{tiendaId}/clientes [get]
func (h *ClienteHandler) Listar(c *gin.Context) {
	clientes, err := h.svc.Listar(c.Request.Context(), middleware.GetTiendaID(c), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// Desactivar godoc
// @Summary Desactiva un cliente (soft delete)
// @Tags clientes
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID del cliente"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/clientes/{id} [delete]
func (h *ClienteHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), middleware.GetTiendaID(c), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
