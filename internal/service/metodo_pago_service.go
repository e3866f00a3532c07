package service

import (
	"context"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
)

type MetodoPagoService interface {
	Listar(ctx context.Context, tiendaID uuid.UUID) ([]dto.MetodoPagoResponse, error)
}

type metodoPagoService struct {
	repo repository.MetodoPagoRepository
}

func NewMetodoPagoService(repo repository.MetodoPagoRepository) MetodoPagoService {
	return &metodoPagoService{repo: repo}
}

func (s *metodoPagoService) Listar(ctx context.Context, tiendaID uuid.UUID) ([]dto.MetodoPagoResponse, error) {
	metodos, err := s.repo.List(ctx, tiendaID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MetodoPagoResponse, 0, len(metodos))
	for _, m := range metodos {
		data = append(data, *metodoToResponse(&m))
	}
	return data, nil
}

func metodoToResponse(m *model.MetodoPago) *dto.MetodoPagoResponse {
	return &dto.MetodoPagoResponse{
		ID:                 m.ID.String(),
		Nombre:             m.Nombre,
		Codigo:             m.Codigo,
		Icono:              m.Icono,
		Color:              m.Color,
		RequiereReferencia: m.RequiereReferencia,
		EsCredito:          m.EsCredito,
		Orden:              m.Orden,
	}
}
