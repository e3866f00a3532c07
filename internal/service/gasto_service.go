package service

import (
	"context"
	"errors"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
)

type GastoService interface {
	Registrar(ctx context.Context, tiendaID, usuarioID uuid.UUID, req dto.RegistrarGastoRequest) (*dto.GastoResponse, error)
	Listar(ctx context.Context, tiendaID uuid.UUID, mes time.Time, page, limit int) ([]dto.GastoResponse, int64, error)
	Eliminar(ctx context.Context, tiendaID, id uuid.UUID, rol string) error
}

type gastoService struct {
	repo repository.GastoRepository
}

func NewGastoService(repo repository.GastoRepository) GastoService {
	return &gastoService{repo: repo}
}

func (s *gastoService) Registrar(ctx context.Context, tiendaID, usuarioID uuid.UUID, req dto.RegistrarGastoRequest) (*dto.GastoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, errors.New("el monto debe ser mayor a cero")
	}

	fecha := time.Now()
	if req.FechaGasto != "" {
		parsed, err := time.Parse("2006-01-02", req.FechaGasto)
		if err != nil {
			return nil, errors.New("fecha_gasto inválida, use YYYY-MM-DD")
		}
		fecha = parsed
	}

	g := model.Gasto{
		TiendaID:    tiendaID,
		UsuarioID:   usuarioID,
		Tipo:        req.Tipo,
		Concepto:    req.Concepto,
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		FechaGasto:  fecha,
	}
	if err := s.repo.Create(ctx, &g); err != nil {
		return nil, err
	}
	return gastoToResponse(&g), nil
}

func (s *gastoService) Listar(ctx context.Context, tiendaID uuid.UUID, mes time.Time, page, limit int) ([]dto.GastoResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	inicio := time.Date(mes.Year(), mes.Month(), 1, 0, 0, 0, 0, mes.Location())
	fin := inicio.AddDate(0, 1, 0)

	gastos, total, err := s.repo.List(ctx, tiendaID, inicio, fin, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	data := make([]dto.GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		data = append(data, *gastoToResponse(&g))
	}
	return data, total, nil
}

func (s *gastoService) Eliminar(ctx context.Context, tiendaID, id uuid.UUID, rol string) error {
	if !model.RolElevado(rol) {
		return errors.New("el rol no permite eliminar gastos")
	}
	g, err := s.repo.FindByID(ctx, id)
	if err != nil || g.TiendaID != tiendaID {
		return errors.New("gasto no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func gastoToResponse(g *model.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:          g.ID.String(),
		Tipo:        g.Tipo,
		Concepto:    g.Concepto,
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		FechaGasto:  g.FechaGasto.Format("2006-01-02"),
	}
}
