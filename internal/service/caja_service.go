package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrSesionYaAbierta = errors.New("ya existe una sesión de caja abierta")

type CajaService interface {
	AbrirSesion(ctx context.Context, tiendaID, usuarioID uuid.UUID, req dto.AbrirSesionRequest) (*dto.SesionResponse, error)
	CerrarSesion(ctx context.Context, tiendaID, sesionID uuid.UUID) (*dto.SesionResponse, error)
	GetSesionAbierta(ctx context.Context, tiendaID uuid.UUID) (*dto.SesionResponse, error)
	ListSesiones(ctx context.Context, tiendaID uuid.UUID, page, limit int) ([]dto.SesionResponse, int64, error)
	ResumenDiario(ctx context.Context, tiendaID, sesionID uuid.UUID) (*dto.ResumenDiarioResponse, error)
}

type cajaService struct {
	repo      repository.CajaRepository
	ventaRepo repository.VentaRepository
}

func NewCajaService(repo repository.CajaRepository, ventaRepo repository.VentaRepository) CajaService {
	return &cajaService{repo: repo, ventaRepo: ventaRepo}
}

func (s *cajaService) AbrirSesion(ctx context.Context, tiendaID, usuarioID uuid.UUID, req dto.AbrirSesionRequest) (*dto.SesionResponse, error) {
	if req.MontoInicial.IsNegative() {
		return nil, errors.New("el monto inicial no puede ser negativo")
	}
	if _, err := s.repo.FindSesionAbierta(ctx, tiendaID); err == nil {
		return nil, ErrSesionYaAbierta
	}

	sesion := model.SesionCaja{
		TiendaID:     tiendaID,
		UsuarioID:    usuarioID,
		MontoInicial: req.MontoInicial,
		Abierta:      true,
		OpenedAt:     time.Now(),
	}
	if err := s.repo.CreateSesion(ctx, &sesion); err != nil {
		return nil, err
	}
	return sesionToResponse(&sesion), nil
}

func (s *cajaService) CerrarSesion(ctx context.Context, tiendaID, sesionID uuid.UUID) (*dto.SesionResponse, error) {
	sesion, err := s.findSesion(ctx, tiendaID, sesionID)
	if err != nil {
		return nil, err
	}
	if !sesion.Abierta {
		return nil, errors.New("la sesión ya está cerrada")
	}
	now := time.Now()
	if err := s.repo.CerrarSesion(ctx, sesionID, now); err != nil {
		return nil, err
	}
	sesion.Abierta = false
	sesion.ClosedAt = &now
	return sesionToResponse(sesion), nil
}

// findSesion loads a session and hides it when it belongs to another tienda.
func (s *cajaService) findSesion(ctx context.Context, tiendaID, sesionID uuid.UUID) (*model.SesionCaja, error) {
	sesion, err := s.repo.FindSesionByID(ctx, sesionID)
	if err != nil || sesion.TiendaID != tiendaID {
		return nil, errors.New("sesión no encontrada")
	}
	return sesion, nil
}

func (s *cajaService) GetSesionAbierta(ctx context.Context, tiendaID uuid.UUID) (*dto.SesionResponse, error) {
	sesion, err := s.repo.FindSesionAbierta(ctx, tiendaID)
	if err != nil {
		return nil, ErrSinSesionAbierta
	}
	return sesionToResponse(sesion), nil
}

func (s *cajaService) ListSesiones(ctx context.Context, tiendaID uuid.UUID, page, limit int) ([]dto.SesionResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	sesiones, total, err := s.repo.ListSesiones(ctx, tiendaID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	data := make([]dto.SesionResponse, 0, len(sesiones))
	for _, sesion := range sesiones {
		data = append(data, *sesionToResponse(&sesion))
	}
	return data, total, nil
}

// ResumenDiario reduces the session's sales into revenue buckets keyed by
// the payment method's display name: "Efectivo" exact for cash, any name
// containing "Tarjeta" for cards, everything else under otros. New payment
// methods must follow these naming conventions or they land in otros.
func (s *cajaService) ResumenDiario(ctx context.Context, tiendaID, sesionID uuid.UUID) (*dto.ResumenDiarioResponse, error) {
	if _, err := s.findSesion(ctx, tiendaID, sesionID); err != nil {
		return nil, err
	}
	ventas, err := s.ventaRepo.ListBySesion(ctx, sesionID)
	if err != nil {
		return nil, err
	}

	resumen := dto.ResumenDiarioResponse{
		SesionID:    sesionID.String(),
		TotalVentas: decimal.Zero,
		Efectivo:    decimal.Zero,
		Tarjeta:     decimal.Zero,
		Otros:       decimal.Zero,
	}
	for _, v := range ventas {
		resumen.TotalVentas = resumen.TotalVentas.Add(v.Total)
		resumen.CantidadVentas++

		nombre := ""
		if v.MetodoPago != nil {
			nombre = v.MetodoPago.Nombre
		}
		switch {
		case nombre == "Efectivo":
			resumen.Efectivo = resumen.Efectivo.Add(v.Total)
		case strings.Contains(nombre, "Tarjeta"):
			resumen.Tarjeta = resumen.Tarjeta.Add(v.Total)
		default:
			resumen.Otros = resumen.Otros.Add(v.Total)
		}
	}
	return &resumen, nil
}

func sesionToResponse(s *model.SesionCaja) *dto.SesionResponse {
	var closedAt *string
	if s.ClosedAt != nil {
		str := s.ClosedAt.Format("2006-01-02T15:04:05Z")
		closedAt = &str
	}
	return &dto.SesionResponse{
		ID:           s.ID.String(),
		TiendaID:     s.TiendaID.String(),
		UsuarioID:    s.UsuarioID.String(),
		MontoInicial: s.MontoInicial,
		Abierta:      s.Abierta,
		OpenedAt:     s.OpenedAt.Format("2006-01-02T15:04:05Z"),
		ClosedAt:     closedAt,
	}
}
