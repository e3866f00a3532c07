package service

import (
	"context"
	"errors"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClienteService interface {
	Crear(ctx context.Context, tiendaID uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, tiendaID uuid.UUID, busqueda string) ([]dto.ClienteResponse, error)
	Desactivar(ctx context.Context, tiendaID, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, tiendaID uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	limite := decimal.Zero
	if req.LimiteCredito != nil {
		if req.LimiteCredito.IsNegative() {
			return nil, errors.New("el límite de crédito no puede ser negativo")
		}
		limite = *req.LimiteCredito
	}
	c := model.Cliente{
		TiendaID:       tiendaID,
		NombreCompleto: req.NombreCompleto,
		Documento:      req.Documento,
		Telefono:       req.Telefono,
		Email:          req.Email,
		Direccion:      req.Direccion,
		LimiteCredito:  limite,
		SaldoPendiente: decimal.Zero,
		Notas:          req.Notas,
		Activo:         true,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return clienteStoreToResponse(&c), nil
}

func (s *clienteService) Listar(ctx context.Context, tiendaID uuid.UUID, busqueda string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, tiendaID, busqueda)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		data = append(data, *clienteStoreToResponse(&c))
	}
	return data, nil
}

func (s *clienteService) Desactivar(ctx context.Context, tiendaID, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil || c.TiendaID != tiendaID {
		return errors.New("cliente no encontrado")
	}
	return s.repo.Desactivar(ctx, id)
}

func clienteStoreToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:             c.ID.String(),
		NombreCompleto: c.NombreCompleto,
		Documento:      c.Documento,
		Telefono:       c.Telefono,
		Email:          c.Email,
		Direccion:      c.Direccion,
		LimiteCredito:  c.LimiteCredito,
		SaldoPendiente: c.SaldoPendiente,
		Activo:         c.Activo,
	}
}
