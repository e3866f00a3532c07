package service

import (
	"context"
	"testing"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbrirSesionExclusiva(t *testing.T) {
	cajaRepo := newStubCajaRepo()
	svc := NewCajaService(cajaRepo, newStubVentaRepo())
	ctx := context.Background()
	tiendaID := uuid.New()
	usuarioID := uuid.New()

	sesion, err := svc.AbrirSesion(ctx, tiendaID, usuarioID, dto.AbrirSesionRequest{
		MontoInicial: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	assert.True(t, sesion.Abierta)

	// Second open on the same tienda is rejected
	_, err = svc.AbrirSesion(ctx, tiendaID, usuarioID, dto.AbrirSesionRequest{MontoInicial: decimal.Zero})
	assert.ErrorIs(t, err, ErrSesionYaAbierta)

	// Another tienda is unaffected
	_, err = svc.AbrirSesion(ctx, uuid.New(), usuarioID, dto.AbrirSesionRequest{MontoInicial: decimal.Zero})
	assert.NoError(t, err)

	// Close, then reopen works
	_, err = svc.CerrarSesion(ctx, tiendaID, uuid.MustParse(sesion.ID))
	require.NoError(t, err)
	_, err = svc.AbrirSesion(ctx, tiendaID, usuarioID, dto.AbrirSesionRequest{MontoInicial: decimal.Zero})
	assert.NoError(t, err)
}

func TestSesionAisladaPorTienda(t *testing.T) {
	cajaRepo := newStubCajaRepo()
	svc := NewCajaService(cajaRepo, newStubVentaRepo())
	ctx := context.Background()
	tiendaID := uuid.New()

	sesion := cajaRepo.abrir(tiendaID)

	_, err := svc.CerrarSesion(ctx, uuid.New(), sesion.ID)
	assert.Error(t, err)
	_, err = svc.ResumenDiario(ctx, uuid.New(), sesion.ID)
	assert.Error(t, err)

	// The session of the owning tienda is still open
	abierta, err := svc.GetSesionAbierta(ctx, tiendaID)
	require.NoError(t, err)
	assert.Equal(t, sesion.ID.String(), abierta.ID)
}

func TestAbrirSesionMontoNegativo(t *testing.T) {
	svc := NewCajaService(newStubCajaRepo(), newStubVentaRepo())

	_, err := svc.AbrirSesion(context.Background(), uuid.New(), uuid.New(), dto.AbrirSesionRequest{
		MontoInicial: decimal.NewFromInt(-100),
	})
	assert.Error(t, err)
}

func TestGetSesionAbierta(t *testing.T) {
	cajaRepo := newStubCajaRepo()
	svc := NewCajaService(cajaRepo, newStubVentaRepo())
	ctx := context.Background()
	tiendaID := uuid.New()

	_, err := svc.GetSesionAbierta(ctx, tiendaID)
	assert.Error(t, err)

	abierta := cajaRepo.abrir(tiendaID)
	sesion, err := svc.GetSesionAbierta(ctx, tiendaID)
	require.NoError(t, err)
	assert.Equal(t, abierta.ID.String(), sesion.ID)
}

func TestResumenDiarioClasificaPorNombre(t *testing.T) {
	cajaRepo := newStubCajaRepo()
	ventaRepo := newStubVentaRepo()
	svc := NewCajaService(cajaRepo, ventaRepo)
	ctx := context.Background()
	tiendaID := uuid.New()

	sesion := cajaRepo.abrir(tiendaID)

	venta := func(total int64, metodo string) {
		ventaRepo.Create(ctx, nil, &model.Venta{
			TiendaID:   tiendaID,
			SesionID:   sesion.ID,
			Total:      decimal.NewFromInt(total),
			MetodoPago: &model.MetodoPago{Nombre: metodo},
		})
	}
	venta(100, "Efectivo")
	venta(50, "Tarjeta Crédito")
	venta(20, "Nequi")

	resumen, err := svc.ResumenDiario(ctx, tiendaID, sesion.ID)
	require.NoError(t, err)

	assert.True(t, resumen.Efectivo.Equal(decimal.NewFromInt(100)))
	assert.True(t, resumen.Tarjeta.Equal(decimal.NewFromInt(50)))
	assert.True(t, resumen.Otros.Equal(decimal.NewFromInt(20)))
	assert.True(t, resumen.TotalVentas.Equal(decimal.NewFromInt(170)))
	assert.Equal(t, 3, resumen.CantidadVentas)
}

func TestResumenDiarioNombreEsLiteral(t *testing.T) {
	cajaRepo := newStubCajaRepo()
	ventaRepo := newStubVentaRepo()
	svc := NewCajaService(cajaRepo, ventaRepo)
	ctx := context.Background()
	tiendaID := uuid.New()

	sesion := cajaRepo.abrir(tiendaID)

	// "efectivo" in lowercase is NOT the cash bucket; the match is exact
	ventaRepo.Create(ctx, nil, &model.Venta{
		SesionID:   sesion.ID,
		Total:      decimal.NewFromInt(80),
		MetodoPago: &model.MetodoPago{Nombre: "efectivo"},
	})

	resumen, err := svc.ResumenDiario(ctx, tiendaID, sesion.ID)
	require.NoError(t, err)
	assert.True(t, resumen.Efectivo.IsZero())
	assert.True(t, resumen.Otros.Equal(decimal.NewFromInt(80)))
}
