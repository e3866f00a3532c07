package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/infra"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImagenBytes = 5 << 20 // 5 MiB

type ProductoHandler struct {
	svc     service.ProductoService
	storage *infra.ImageStorage
}

func NewProductoHandler(svc service.ProductoService, storage *infra.ImageStorage) *ProductoHandler {
	return &ProductoHandler{svc: svc, storage: storage}
}

// Listar godoc
// @Summary Lista el catálogo con búsqueda y filtro por categoría
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param q query string false "Búsqueda por nombre, SKU o código de barras"
// @Param categoria query string false "ID de categoría o 'all'"
// @Param activo query string false "'false' inactivos, 'all' todos, vacío activos"
// @Success 200 {object} dto.ProductoListResponse
// @Router /v1/tiendas/{tiendaId}/productos [get]
func (h *ProductoHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtros inválidos: "+err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.GetTiendaID(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Obtiene un producto por ID
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/productos/{id} [get]
func (h *ProductoHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), middleware.GetTiendaID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Crea un producto en el catálogo
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param body body dto.CrearProductoRequest true "Datos del producto"
// @Success 201 {object} dto.ProductoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/productos [post]
func (h *ProductoHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
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

// Actualizar godoc
// @Summary Actualiza un producto; los cambios de precio requieren rol elevado
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID del producto"
// @Param body body dto.ActualizarProductoRequest true "Campos a actualizar"
// @Success 200 {object} dto.ProductoResponse
// @Failure 403 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.GetTiendaID(c), id, c.GetString(middleware.RolKey), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AjustarStock godoc
// @Summary Suma o resta stock; los deltas negativos requieren rol elevado
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID del producto"
// @Param body body dto.AjustarStockRequest true "Delta y motivo"
// @Success 200 {object} dto.ProductoResponse
// @Failure 403 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/productos/{id}/stock [patch]
func (h *ProductoHandler) AjustarStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarStock(c.Request.Context(), middleware.GetTiendaID(c), id, c.GetString(middleware.RolKey), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Elimina (soft delete) un producto; requiere rol elevado
// @Tags productos
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID del producto"
// @Success 204
// @Failure 403 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/productos/{id} [delete]
func (h *ProductoHandler) Eliminar(c *gin.Context) {
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

// SubirImagen godoc
// @Summary Sube la imagen del producto y guarda su URL pública
// @Tags productos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param tiendaId path string true "ID de la tienda"
// @Param id path string true "ID del producto"
// @Param imagen formData file true "Imagen JPG/PNG/WebP"
// @Success 200 {object} dto.ProductoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/tiendas/{tiendaId}/productos/{id}/imagen [post]
func (h *ProductoHandler) SubirImagen(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("campo 'imagen' requerido"))
		return
	}
	if fileHeader.Size > maxImagenBytes {
		c.JSON(http.StatusBadRequest, apierror.New("la imagen supera el tamaño máximo de 5MB"))
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		c.JSON(http.StatusBadRequest, apierror.New("formato de imagen no soportado"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("no se pudo leer la imagen"))
		return
	}
	defer f.Close()

	url, err := h.storage.Save(middleware.GetTiendaID(c), id, ext, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("no se pudo guardar la imagen"))
		return
	}
	resp, err := h.svc.SetImagen(c.Request.Context(), middleware.GetTiendaID(c), id, url)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
