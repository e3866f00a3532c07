package service

import (
	"context"
	"testing"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarGasto(t *testing.T) {
	ctx := context.Background()
	repo := newStubGastoRepo()
	svc := NewGastoService(repo)
	tiendaID, usuarioID := uuid.New(), uuid.New()

	resp, err := svc.Registrar(ctx, tiendaID, usuarioID, dto.RegistrarGastoRequest{
		Tipo:       "servicios",
		Concepto:   "Recibo de la luz",
		Monto:      decimal.NewFromInt(85000),
		FechaGasto: "2026-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", resp.FechaGasto)
	assert.True(t, resp.Monto.Equal(decimal.NewFromInt(85000)))

	// sin fecha explícita se registra con la fecha de hoy
	resp, err = svc.Registrar(ctx, tiendaID, usuarioID, dto.RegistrarGastoRequest{
		Tipo:     "otro",
		Concepto: "Bolsas",
		Monto:    decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.FechaGasto)

	_, err = svc.Registrar(ctx, tiendaID, usuarioID, dto.RegistrarGastoRequest{
		Tipo: "otro", Concepto: "Gratis", Monto: decimal.Zero,
	})
	assert.Error(t, err, "el monto debe ser positivo")

	_, err = svc.Registrar(ctx, tiendaID, usuarioID, dto.RegistrarGastoRequest{
		Tipo: "otro", Concepto: "Mal fechado", Monto: decimal.NewFromInt(100), FechaGasto: "10/03/2026",
	})
	assert.Error(t, err)
}

func TestListarGastosPorMes(t *testing.T) {
	ctx := context.Background()
	repo := newStubGastoRepo()
	svc := NewGastoService(repo)
	tiendaID, usuarioID := uuid.New(), uuid.New()

	for _, fecha := range []string{"2026-03-01", "2026-03-31", "2026-04-01"} {
		_, err := svc.Registrar(ctx, tiendaID, usuarioID, dto.RegistrarGastoRequest{
			Tipo: "otro", Concepto: "Gasto " + fecha, Monto: decimal.NewFromInt(1000), FechaGasto: fecha,
		})
		require.NoError(t, err)
	}

	marzo := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	data, total, err := svc.Listar(ctx, tiendaID, marzo, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "abril no entra en el mes de marzo")
	assert.Len(t, data, 2)

	abril := marzo.AddDate(0, 1, 0)
	_, total, err = svc.Listar(ctx, tiendaID, abril, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestEliminarGastoRequiereRolElevado(t *testing.T) {
	ctx := context.Background()
	repo := newStubGastoRepo()
	svc := NewGastoService(repo)

	tiendaID := uuid.New()
	g := &model.Gasto{TiendaID: tiendaID, UsuarioID: uuid.New(), Tipo: "otro", Concepto: "Varios", Monto: decimal.NewFromInt(2000), FechaGasto: time.Now()}
	require.NoError(t, repo.Create(ctx, g))

	err := svc.Eliminar(ctx, tiendaID, g.ID, model.RolAdminAsistente)
	assert.Error(t, err)

	err = svc.Eliminar(ctx, tiendaID, g.ID, model.RolDuenoLocal)
	require.NoError(t, err)

	err = svc.Eliminar(ctx, tiendaID, g.ID, model.RolAdminGeneral)
	assert.Error(t, err, "ya no existe")
}

func TestGastoAisladoPorTienda(t *testing.T) {
	ctx := context.Background()
	repo := newStubGastoRepo()
	svc := NewGastoService(repo)

	g := &model.Gasto{TiendaID: uuid.New(), UsuarioID: uuid.New(), Tipo: "otro", Concepto: "Arriendo", Monto: decimal.NewFromInt(900000), FechaGasto: time.Now()}
	require.NoError(t, repo.Create(ctx, g))

	// An elevated rol of another tienda cannot delete it
	assert.Error(t, svc.Eliminar(ctx, uuid.New(), g.ID, model.RolAdminGeneral))
	assert.Contains(t, repo.gastos, g.ID)
}
