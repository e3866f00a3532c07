package handler

import (
	"net/http"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/service"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct{ svc service.OnboardingService }

func NewOnboardingHandler(svc service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// Completar godoc
// @Summary Completa el onboarding: crea la tienda, sus categorías y la membresía
// @Tags onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CompletarOnboardingRequest true "Datos de la tienda"
// @Success 201 {object} dto.OnboardingResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/onboarding [post]
func (h *OnboardingHandler) Completar(c *gin.Context) {
	var req dto.CompletarOnboardingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Completar(c.Request.Context(), middleware.GetUsuarioID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
