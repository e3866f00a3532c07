package service

import (
	"context"
	"errors"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
)

type AlertaService interface {
	Listar(ctx context.Context, tiendaID uuid.UUID, soloNoLeidas bool) ([]dto.AlertaResponse, error)
	MarcarLeida(ctx context.Context, tiendaID, id uuid.UUID) error
}

type alertaService struct {
	repo repository.AlertaRepository
}

func NewAlertaService(repo repository.AlertaRepository) AlertaService {
	return &alertaService{repo: repo}
}

func (s *alertaService) Listar(ctx context.Context, tiendaID uuid.UUID, soloNoLeidas bool) ([]dto.AlertaResponse, error) {
	alertas, err := s.repo.List(ctx, tiendaID, soloNoLeidas)
	if err != nil {
		return nil, err
	}
	data := make([]dto.AlertaResponse, 0, len(alertas))
	for _, a := range alertas {
		data = append(data, *alertaToResponse(&a))
	}
	return data, nil
}

func (s *alertaService) MarcarLeida(ctx context.Context, tiendaID, id uuid.UUID) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil || a.TiendaID != tiendaID {
		return errors.New("alerta no encontrada")
	}
	return s.repo.MarcarLeida(ctx, id)
}

func alertaToResponse(a *model.Alerta) *dto.AlertaResponse {
	var productoID *string
	if a.ProductoID != nil {
		s := a.ProductoID.String()
		productoID = &s
	}
	return &dto.AlertaResponse{
		ID:         a.ID.String(),
		Tipo:       a.Tipo,
		Titulo:     a.Titulo,
		Mensaje:    a.Mensaje,
		ProductoID: productoID,
		Prioridad:  a.Prioridad,
		Leida:      a.Leida,
		CreatedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
