package service

import (
	"context"
	"testing"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaPct(t *testing.T) {
	casos := []struct {
		actual   int64
		anterior int64
		esperado string
	}{
		{120, 100, "20"},
		{80, 100, "-20"},
		{100, 100, "0"},
		{50, 0, ""}, // sin dato previo no hay porcentaje
	}
	for _, c := range casos {
		d := deltaPct(decimal.NewFromInt(c.actual), decimal.NewFromInt(c.anterior))
		if c.esperado == "" {
			assert.Nil(t, d)
			continue
		}
		require.NotNil(t, d)
		assert.True(t, d.Equal(decimal.RequireFromString(c.esperado)), "deltaPct(%d, %d) = %s", c.actual, c.anterior, d)
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	ventaRepo := newStubVentaRepo()
	gastoRepo := newStubGastoRepo()
	productoRepo := newStubProductoRepo()
	clienteRepo := newStubClienteRepo()

	svc := NewReporteService(ventaRepo, gastoRepo, productoRepo, clienteRepo).(*reporteService)
	ahora := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return ahora }

	tiendaID := uuid.New()
	usuarioID := uuid.New()

	ventaRepo.sumDia[tiendaID.String()+"2026-03-15"] = decimal.NewFromInt(120000)
	ventaRepo.sumDia[tiendaID.String()+"2026-03-14"] = decimal.NewFromInt(100000)

	// gastos: dos del mes en curso, uno del anterior, uno de otra tienda
	for _, g := range []model.Gasto{
		{TiendaID: tiendaID, UsuarioID: usuarioID, Tipo: "servicios", Concepto: "Luz", Monto: decimal.NewFromInt(30000), FechaGasto: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
		{TiendaID: tiendaID, UsuarioID: usuarioID, Tipo: "arriendo", Concepto: "Local", Monto: decimal.NewFromInt(50000), FechaGasto: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{TiendaID: tiendaID, UsuarioID: usuarioID, Tipo: "servicios", Concepto: "Agua", Monto: decimal.NewFromInt(40000), FechaGasto: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)},
		{TiendaID: uuid.New(), UsuarioID: usuarioID, Tipo: "otro", Concepto: "Ajena", Monto: decimal.NewFromInt(99999), FechaGasto: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
	} {
		g := g
		require.NoError(t, gastoRepo.Create(ctx, &g))
	}

	productoRepo.add(&model.Producto{TiendaID: tiendaID, Nombre: "Arroz", StockActual: 20, StockMinimo: 5, Activo: true})
	productoRepo.add(&model.Producto{TiendaID: tiendaID, Nombre: "Panela", StockActual: 2, StockMinimo: 5, Activo: true})
	productoRepo.add(&model.Producto{TiendaID: tiendaID, Nombre: "Retirado", StockActual: 0, StockMinimo: 1, Activo: false})

	require.NoError(t, clienteRepo.Create(ctx, &model.Cliente{TiendaID: tiendaID, NombreCompleto: "Ana", Activo: true}))
	require.NoError(t, clienteRepo.Create(ctx, &model.Cliente{TiendaID: tiendaID, NombreCompleto: "Luis", Activo: true}))
	require.NoError(t, clienteRepo.Create(ctx, &model.Cliente{TiendaID: tiendaID, NombreCompleto: "Inactivo", Activo: false}))

	d, err := svc.Dashboard(ctx, tiendaID)
	require.NoError(t, err)

	assert.True(t, d.VentasHoy.Equal(decimal.NewFromInt(120000)))
	assert.True(t, d.VentasAyer.Equal(decimal.NewFromInt(100000)))
	require.NotNil(t, d.DeltaVentasPct)
	assert.True(t, d.DeltaVentasPct.Equal(decimal.NewFromInt(20)))

	assert.True(t, d.GastosMes.Equal(decimal.NewFromInt(80000)))
	assert.True(t, d.GastosMesAnterior.Equal(decimal.NewFromInt(40000)))
	require.NotNil(t, d.DeltaGastosPct)
	assert.True(t, d.DeltaGastosPct.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, int64(2), d.TotalProductos)
	assert.Equal(t, int64(1), d.ProductosStockBajo)
	assert.Equal(t, int64(2), d.TotalClientes)
}

func TestDashboardSinHistorico(t *testing.T) {
	ctx := context.Background()
	svc := NewReporteService(newStubVentaRepo(), newStubGastoRepo(), newStubProductoRepo(), newStubClienteRepo())

	d, err := svc.Dashboard(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, d.VentasHoy.IsZero())
	assert.Nil(t, d.DeltaVentasPct, "sin ayer no hay comparación")
	assert.Nil(t, d.DeltaGastosPct)
	assert.Zero(t, d.TotalProductos)
}
