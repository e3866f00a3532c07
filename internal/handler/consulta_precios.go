package handler

import (
	"net/http"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConsultaPreciosHandler sirve el verificador de precios público, pensado
// para el kiosco de la tienda: no requiere token, solo el ID de la tienda.
type ConsultaPreciosHandler struct {
	svc service.ProductoService
}

func NewConsultaPreciosHandler(svc service.ProductoService) *ConsultaPreciosHandler {
	return &ConsultaPreciosHandler{svc: svc}
}

// Consultar godoc
// @Summary Consulta pública de precio por código de barras
// @Tags public
// @Produce json
// @Param tiendaId path string true "ID de la tienda"
// @Param codigo query string true "Código de barras"
// @Success 200 {object} dto.ConsultaPreciosResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/public/tiendas/{tiendaId}/precios [get]
func (h *ConsultaPreciosHandler) Consultar(c *gin.Context) {
	tiendaID, err := uuid.Parse(c.Param("tiendaId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de tienda inválido"))
		return
	}
	codigo := c.Query("codigo")
	if codigo == "" {
		c.JSON(http.StatusBadRequest, apierror.New("parámetro 'codigo' requerido"))
		return
	}
	resp, err := h.svc.ConsultaPrecios(c.Request.Context(), tiendaID, codigo)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
