package service

import (
	"context"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReporteService interface {
	Dashboard(ctx context.Context, tiendaID uuid.UUID) (*dto.DashboardResponse, error)
}

type reporteService struct {
	ventaRepo    repository.VentaRepository
	gastoRepo    repository.GastoRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	now          func() time.Time
}

func NewReporteService(
	ventaRepo repository.VentaRepository,
	gastoRepo repository.GastoRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
) ReporteService {
	return &reporteService{
		ventaRepo:    ventaRepo,
		gastoRepo:    gastoRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		now:          time.Now,
	}
}

// deltaPct returns the percentage change of actual against anterior, or nil
// when there is no prior data to compare against.
func deltaPct(actual, anterior decimal.Decimal) *decimal.Decimal {
	if anterior.IsZero() {
		return nil
	}
	cien := decimal.NewFromInt(100)
	d := actual.Sub(anterior).Div(anterior).Mul(cien).Round(2)
	return &d
}

// Dashboard aggregates today-vs-yesterday sales and current-vs-prior-month
// expenses, plus catalog counters.
func (s *reporteService) Dashboard(ctx context.Context, tiendaID uuid.UUID) (*dto.DashboardResponse, error) {
	now := s.now()
	hoy := now
	ayer := now.AddDate(0, 0, -1)

	ventasHoy, err := s.ventaRepo.SumDia(ctx, tiendaID, hoy)
	if err != nil {
		return nil, err
	}
	ventasAyer, err := s.ventaRepo.SumDia(ctx, tiendaID, ayer)
	if err != nil {
		return nil, err
	}

	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	inicioMesAnterior := inicioMes.AddDate(0, -1, 0)
	inicioMesSiguiente := inicioMes.AddDate(0, 1, 0)

	gastosMes, err := s.gastoRepo.SumRango(ctx, tiendaID, inicioMes, inicioMesSiguiente)
	if err != nil {
		return nil, err
	}
	gastosMesAnterior, err := s.gastoRepo.SumRango(ctx, tiendaID, inicioMesAnterior, inicioMes)
	if err != nil {
		return nil, err
	}

	totalProductos, err := s.productoRepo.CountActivos(ctx, tiendaID)
	if err != nil {
		return nil, err
	}
	stockBajo, err := s.productoRepo.CountStockBajo(ctx, tiendaID)
	if err != nil {
		return nil, err
	}
	totalClientes, err := s.clienteRepo.CountActivos(ctx, tiendaID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		VentasHoy:          ventasHoy,
		VentasAyer:         ventasAyer,
		DeltaVentasPct:     deltaPct(ventasHoy, ventasAyer),
		GastosMes:          gastosMes,
		GastosMesAnterior:  gastosMesAnterior,
		DeltaGastosPct:     deltaPct(gastosMes, gastosMesAnterior),
		TotalProductos:     totalProductos,
		ProductosStockBajo: stockBajo,
		TotalClientes:      totalClientes,
	}, nil
}
