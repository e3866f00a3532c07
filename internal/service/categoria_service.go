package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
)

type CategoriaService interface {
	Crear(ctx context.Context, tiendaID uuid.UUID, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context, tiendaID uuid.UUID) ([]dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, tiendaID, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Desactivar(ctx context.Context, tiendaID, id uuid.UUID) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, tiendaID uuid.UUID, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if existente, err := s.repo.ObtenerPorNombre(ctx, tiendaID, req.Nombre); err == nil && existente != nil {
		return nil, fmt.Errorf("ya existe la categoría %s", req.Nombre)
	}
	c := model.Categoria{
		TiendaID:    tiendaID,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Icono:       req.Icono,
		Orden:       req.Orden,
		Activa:      true,
	}
	if err := s.repo.Crear(ctx, &c); err != nil {
		return nil, err
	}
	return categoriaToResponse(&c), nil
}

func (s *categoriaService) Listar(ctx context.Context, tiendaID uuid.UUID) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.Listar(ctx, tiendaID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		data = append(data, *categoriaToResponse(&c))
	}
	return data, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, tiendaID, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil || c.TiendaID != tiendaID {
		return nil, errors.New("categoría no encontrada")
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Icono != nil {
		c.Icono = req.Icono
	}
	if req.Orden != nil {
		c.Orden = *req.Orden
	}
	if req.Activa != nil {
		c.Activa = *req.Activa
	}
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) Desactivar(ctx context.Context, tiendaID, id uuid.UUID) error {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil || c.TiendaID != tiendaID {
		return errors.New("categoría no encontrada")
	}
	return s.repo.Desactivar(ctx, id)
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Icono:       c.Icono,
		Orden:       c.Orden,
		Activa:      c.Activa,
	}
}
