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

func strPtr(s string) *string { return &s }

func TestEstadoStock(t *testing.T) {
	cases := []struct {
		nombre   string
		actual   int
		minimo   int
		maximo   int
		esperado string
	}{
		{"agotado en cero", 0, 5, 100, StockOut},
		{"agotado negativo", -2, 5, 100, StockOut},
		{"bajo en el límite exacto", 5, 5, 100, StockLow},
		{"bajo por debajo", 3, 5, 100, StockLow},
		{"normal", 40, 5, 100, StockNormal},
		{"alto en el 80 por ciento", 80, 5, 100, StockHigh},
		{"alto por encima", 95, 5, 100, StockHigh},
		{"justo debajo del 80 por ciento", 79, 5, 100, StockNormal},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			p := &model.Producto{StockActual: tc.actual, StockMinimo: tc.minimo, StockMaximo: tc.maximo}
			assert.Equal(t, tc.esperado, EstadoStock(p))
		})
	}
}

func TestFiltrarProductos(t *testing.T) {
	catID := uuid.New()
	productos := []model.Producto{
		{Nombre: "Arroz Diana", SKU: strPtr("ARZ-01")},
		{Nombre: "Aceite", CodigoBarras: strPtr("7701234567890"), CategoriaID: &catID},
		{Nombre: "Azúcar", SKU: strPtr("AZU-99")},
	}

	// Case-insensitive substring on nombre
	res := FiltrarProductos(productos, "arroz", "all")
	require.Len(t, res, 1)
	assert.Equal(t, "Arroz Diana", res[0].Nombre)

	// SKU and barcode also match
	assert.Len(t, FiltrarProductos(productos, "azu-99", ""), 1)
	assert.Len(t, FiltrarProductos(productos, "770123", ""), 1)

	// Categoria narrows, "all" and "" do not
	assert.Len(t, FiltrarProductos(productos, "", catID.String()), 1)
	assert.Len(t, FiltrarProductos(productos, "", "all"), 3)
	assert.Len(t, FiltrarProductos(productos, "", ""), 3)

	// Empty query is the identity
	assert.Equal(t, productos, FiltrarProductos(productos, "", "all"))

	// Idempotent: filtering the filtered result changes nothing
	once := FiltrarProductos(productos, "a", "")
	twice := FiltrarProductos(once, "a", "")
	assert.Equal(t, once, twice)

	// Order is preserved
	res = FiltrarProductos(productos, "a", "")
	require.Len(t, res, 3)
	assert.Equal(t, "Arroz Diana", res[0].Nombre)
	assert.Equal(t, "Azúcar", res[2].Nombre)
}

func TestCrearProductoCalculaMargen(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, uuid.New(), dto.CrearProductoRequest{
		Nombre:       "Arroz",
		PrecioCompra: decimal.NewFromInt(1000),
		PrecioVenta:  decimal.NewFromInt(1250),
		StockActual:  10,
	})
	require.NoError(t, err)
	assert.True(t, resp.MargenGanancia.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "unidad", resp.UnidadMedida)

	// Zero purchase price yields zero margin, not a division error
	resp, err = svc.Crear(ctx, uuid.New(), dto.CrearProductoRequest{
		Nombre:      "Regalo",
		PrecioVenta: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.True(t, resp.MargenGanancia.IsZero())
}

func TestCrearProductoValidaciones(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo(), nil)
	ctx := context.Background()

	_, err := svc.Crear(ctx, uuid.New(), dto.CrearProductoRequest{Nombre: "Gratis", PrecioVenta: decimal.Zero})
	assert.Error(t, err)

	_, err = svc.Crear(ctx, uuid.New(), dto.CrearProductoRequest{
		Nombre: "Negativo", PrecioVenta: decimal.NewFromInt(100), StockActual: -1,
	})
	assert.Error(t, err)
}

func TestActualizarPrecioRequiereRolElevado(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)
	ctx := context.Background()

	p := repo.add(&model.Producto{
		TiendaID:     uuid.New(),
		Nombre:       "Arroz",
		PrecioCompra: decimal.NewFromInt(1000),
		PrecioVenta:  decimal.NewFromInt(1200),
		Activo:       true,
	})

	nuevoPrecio := decimal.NewFromInt(1500)
	_, err := svc.Actualizar(ctx, p.TiendaID, p.ID, model.RolAdminAsistente, dto.ActualizarProductoRequest{
		PrecioVenta: &nuevoPrecio,
	})
	assert.Error(t, err)

	resp, err := svc.Actualizar(ctx, p.TiendaID, p.ID, model.RolDuenoLocal, dto.ActualizarProductoRequest{
		PrecioVenta: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.True(t, resp.PrecioVenta.Equal(nuevoPrecio))
	assert.True(t, resp.MargenGanancia.Equal(decimal.NewFromInt(50)))

	// Non-price edits stay open to every rol
	nombre := "Arroz Premium"
	resp, err = svc.Actualizar(ctx, p.TiendaID, p.ID, model.RolAdminAsistente, dto.ActualizarProductoRequest{
		Nombre: &nombre,
	})
	require.NoError(t, err)
	assert.Equal(t, nombre, resp.Nombre)
}

func TestAjustarStock(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)
	ctx := context.Background()

	p := repo.add(&model.Producto{
		TiendaID:    uuid.New(),
		Nombre:      "Aceite",
		PrecioVenta: decimal.NewFromInt(8000),
		StockActual: 10,
		Activo:      true,
	})

	// Positive delta: any rol
	resp, err := svc.AjustarStock(ctx, p.TiendaID, p.ID, model.RolAdminAsistente, dto.AjustarStockRequest{Delta: 5, Motivo: "compra"})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.StockActual)

	// Negative delta requires an elevated rol
	_, err = svc.AjustarStock(ctx, p.TiendaID, p.ID, model.RolAdminAsistente, dto.AjustarStockRequest{Delta: -3, Motivo: "merma"})
	assert.Error(t, err)

	resp, err = svc.AjustarStock(ctx, p.TiendaID, p.ID, model.RolDuenoLocal, dto.AjustarStockRequest{Delta: -3, Motivo: "merma"})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.StockActual)

	// Stock never goes negative
	_, err = svc.AjustarStock(ctx, p.TiendaID, p.ID, model.RolDuenoLocal, dto.AjustarStockRequest{Delta: -99, Motivo: "error"})
	assert.Error(t, err)
}

func TestEliminarProductoEsSoftDelete(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)
	ctx := context.Background()
	tiendaID := uuid.New()

	p := repo.add(&model.Producto{
		TiendaID:    tiendaID,
		Nombre:      "Viejo",
		PrecioVenta: decimal.NewFromInt(100),
		Activo:      true,
	})

	assert.Error(t, svc.Eliminar(ctx, tiendaID, p.ID, model.RolAdminLocal))
	require.NoError(t, svc.Eliminar(ctx, tiendaID, p.ID, model.RolAdminGeneral))

	// The row survives, hidden from the default listing
	assert.False(t, repo.productos[p.ID].Activo)
	lista, err := svc.Listar(ctx, tiendaID, dto.ProductoFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, lista.Total)
}

func TestProductoAisladoPorTienda(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)
	ctx := context.Background()
	tiendaID, otraTienda := uuid.New(), uuid.New()

	p := repo.add(&model.Producto{
		TiendaID:    tiendaID,
		Nombre:      "Arroz",
		PrecioVenta: decimal.NewFromInt(1200),
		StockActual: 10,
		Activo:      true,
	})

	_, err := svc.Get(ctx, otraTienda, p.ID)
	assert.Error(t, err)

	nombre := "Intruso"
	_, err = svc.Actualizar(ctx, otraTienda, p.ID, model.RolDuenoLocal, dto.ActualizarProductoRequest{Nombre: &nombre})
	assert.Error(t, err)
	_, err = svc.AjustarStock(ctx, otraTienda, p.ID, model.RolDuenoLocal, dto.AjustarStockRequest{Delta: 5, Motivo: "compra"})
	assert.Error(t, err)
	assert.Error(t, svc.Eliminar(ctx, otraTienda, p.ID, model.RolAdminGeneral))

	got := repo.productos[p.ID]
	assert.Equal(t, "Arroz", got.Nombre)
	assert.Equal(t, 10, got.StockActual)
	assert.True(t, got.Activo)
}

func TestConsultaPrecios(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)
	ctx := context.Background()
	tiendaID := uuid.New()

	repo.add(&model.Producto{
		TiendaID:     tiendaID,
		Nombre:       "Galletas",
		CodigoBarras: strPtr("750100000001"),
		PrecioVenta:  decimal.NewFromInt(2800),
		StockActual:  7,
		Activo:       true,
	})

	resp, err := svc.ConsultaPrecios(ctx, tiendaID, "750100000001")
	require.NoError(t, err)
	assert.Equal(t, "Galletas", resp.Nombre)
	assert.True(t, resp.PrecioVenta.Equal(decimal.NewFromInt(2800)))
	assert.Equal(t, 7, resp.StockDisponible)

	_, err = svc.ConsultaPrecios(ctx, tiendaID, "no-existe")
	assert.Error(t, err)

	// Another tienda's barcode space is isolated
	_, err = svc.ConsultaPrecios(ctx, uuid.New(), "750100000001")
	assert.Error(t, err)
}
