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

type CategoriaHandler struct{ svc service.CategoriaService }

func NewCategoriaHandler(svc service.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{svc: svc}
}

// Crear godoc
// @Summary Crea una categoría en la tienda
// @Tags categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param body body dto.CrearCategoriaRequest true "Datos de la categoría"
// @Success 201 {object} dto.CategoriaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/categorias [post]
func (h *CategoriaHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
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
// @Summary Lista las categorías activas de la tienda
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Success 200 {array} dto.CategoriaResponse
// @Router /v1/tiendas/{tiendaId}/categorias [get]
func (h *CategoriaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.GetTiendaID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Actualiza una categoría
// @Tags categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la categoría"
// @Param body body dto.ActualizarCategoriaRequest true "Campos a actualizar"
// @Success 200 {object} dto.CategoriaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/categorias/{id} [put]
func (h *CategoriaHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.GetTiendaID(c), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar godoc
// @Summary Desactiva (soft delete) una categoría
// @Tags categorias
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID de la categoría"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/categorias/{id} [delete]
func (h *CategoriaHandler) Desactivar(c *gin.Context) {
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
