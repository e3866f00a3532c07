package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock status classifications derived from the product's numeric fields.
const (
	StockOut    = "out"
	StockLow    = "low"
	StockNormal = "normal"
	StockHigh   = "high"
)

const precioCacheTTL = 5 * time.Minute

// PrecioCache is the lookup cache for the public price-check endpoint.
// Implemented by infra's Redis cache; a nil cache disables caching.
type PrecioCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type ProductoService interface {
	Crear(ctx context.Context, tiendaID uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Get(ctx context.Context, tiendaID, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, tiendaID uuid.UUID, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, tiendaID, id uuid.UUID, rol string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	AjustarStock(ctx context.Context, tiendaID, id uuid.UUID, rol string, req dto.AjustarStockRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, tiendaID, id uuid.UUID, rol string) error
	SetImagen(ctx context.Context, tiendaID, id uuid.UUID, url string) (*dto.ProductoResponse, error)
	ConsultaPrecios(ctx context.Context, tiendaID uuid.UUID, codigoBarras string) (*dto.ConsultaPreciosResponse, error)
}

type productoService struct {
	repo  repository.ProductoRepository
	cache PrecioCache
}

func NewProductoService(repo repository.ProductoRepository, cache PrecioCache) ProductoService {
	return &productoService{repo: repo, cache: cache}
}

// calcularMargen derives the margin percentage at write time. A zero
// purchase price yields a zero margin rather than a division error.
func calcularMargen(compra, venta decimal.Decimal) decimal.Decimal {
	if compra.IsZero() {
		return decimal.Zero
	}
	cien := decimal.NewFromInt(100)
	return venta.Sub(compra).Div(compra).Mul(cien).Round(2)
}

// EstadoStock classifies a product's stock level. The checks run in order:
// out, low, high, normal — a product at exactly stock_minimo is low, and one
// at or above 80% of stock_maximo is high.
func EstadoStock(p *model.Producto) string {
	switch {
	case p.StockActual <= 0:
		return StockOut
	case p.StockActual <= p.StockMinimo:
		return StockLow
	case float64(p.StockActual) >= 0.8*float64(p.StockMaximo):
		return StockHigh
	default:
		return StockNormal
	}
}

// FiltrarProductos narrows an already-fetched catalog in memory: a
// case-insensitive substring match against nombre, SKU and código de barras
// (any one suffices), plus a categoria filter unless categoria is "all" or
// empty. Pure and order-preserving; filtering twice with the same arguments
// returns the same slice content.
func FiltrarProductos(productos []model.Producto, query, categoria string) []model.Producto {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Producto, 0, len(productos))
	for _, p := range productos {
		if q != "" {
			match := strings.Contains(strings.ToLower(p.Nombre), q)
			if !match && p.SKU != nil {
				match = strings.Contains(strings.ToLower(*p.SKU), q)
			}
			if !match && p.CodigoBarras != nil {
				match = strings.Contains(strings.ToLower(*p.CodigoBarras), q)
			}
			if !match {
				continue
			}
		}
		if categoria != "" && categoria != "all" {
			if p.CategoriaID == nil || p.CategoriaID.String() != categoria {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func (s *productoService) Crear(ctx context.Context, tiendaID uuid.UUID, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if !req.PrecioVenta.IsPositive() {
		return nil, errors.New("el precio de venta debe ser mayor a cero")
	}
	if req.StockActual < 0 || req.StockMinimo < 0 || req.StockMaximo < 0 {
		return nil, errors.New("los valores de stock no pueden ser negativos")
	}

	p := model.Producto{
		TiendaID:       tiendaID,
		CodigoBarras:   req.CodigoBarras,
		SKU:            req.SKU,
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		PrecioCompra:   req.PrecioCompra,
		PrecioVenta:    req.PrecioVenta,
		MargenGanancia: calcularMargen(req.PrecioCompra, req.PrecioVenta),
		StockActual:    req.StockActual,
		StockMinimo:    req.StockMinimo,
		StockMaximo:    req.StockMaximo,
		UnidadMedida:   req.UnidadMedida,
		Perecedero:     req.Perecedero,
		Activo:         true,
	}
	if p.UnidadMedida == "" {
		p.UnidadMedida = "unidad"
	}
	if req.CategoriaID != nil {
		cid, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, fmt.Errorf("categoria_id inválido: %w", err)
		}
		p.CategoriaID = &cid
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return productoToResponse(&p), nil
}

// findProducto loads a product and hides rows belonging to another tienda.
func (s *productoService) findProducto(ctx context.Context, tiendaID, id uuid.UUID) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil || p.TiendaID != tiendaID {
		return nil, errors.New("producto no encontrado")
	}
	return p, nil
}

func (s *productoService) Get(ctx context.Context, tiendaID, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.findProducto(ctx, tiendaID, id)
	if err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, tiendaID uuid.UUID, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, err := s.repo.List(ctx, tiendaID, filter.Activo)
	if err != nil {
		return nil, err
	}
	filtrados := FiltrarProductos(productos, filter.Busqueda, filter.Categoria)
	data := make([]dto.ProductoResponse, 0, len(filtrados))
	for _, p := range filtrados {
		data = append(data, *productoToResponse(&p))
	}
	return &dto.ProductoListResponse{Data: data, Total: len(data)}, nil
}

func (s *productoService) Actualizar(ctx context.Context, tiendaID, id uuid.UUID, rol string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.findProducto(ctx, tiendaID, id)
	if err != nil {
		return nil, err
	}

	cambiaPrecio := req.PrecioCompra != nil || req.PrecioVenta != nil
	if cambiaPrecio && !model.RolElevado(rol) {
		return nil, errors.New("el rol no permite modificar precios")
	}

	if req.CategoriaID != nil {
		cid, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, fmt.Errorf("categoria_id inválido: %w", err)
		}
		p.CategoriaID = &cid
	}
	if req.CodigoBarras != nil {
		p.CodigoBarras = req.CodigoBarras
	}
	if req.SKU != nil {
		p.SKU = req.SKU
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.PrecioCompra != nil {
		p.PrecioCompra = *req.PrecioCompra
	}
	if req.PrecioVenta != nil {
		if !req.PrecioVenta.IsPositive() {
			return nil, errors.New("el precio de venta debe ser mayor a cero")
		}
		p.PrecioVenta = *req.PrecioVenta
	}
	if cambiaPrecio {
		p.MargenGanancia = calcularMargen(p.PrecioCompra, p.PrecioVenta)
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.StockMaximo != nil {
		p.StockMaximo = *req.StockMaximo
	}
	if req.UnidadMedida != nil {
		p.UnidadMedida = *req.UnidadMedida
	}
	if req.Perecedero != nil {
		p.Perecedero = *req.Perecedero
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarPrecio(ctx, p)
	return productoToResponse(p), nil
}

func (s *productoService) AjustarStock(ctx context.Context, tiendaID, id uuid.UUID, rol string, req dto.AjustarStockRequest) (*dto.ProductoResponse, error) {
	p, err := s.findProducto(ctx, tiendaID, id)
	if err != nil {
		return nil, err
	}
	if req.Delta < 0 && !model.RolElevado(rol) {
		return nil, errors.New("el rol no permite restar stock")
	}
	if p.StockActual+req.Delta < 0 {
		return nil, fmt.Errorf("el ajuste dejaría stock negativo (actual %d, delta %d)", p.StockActual, req.Delta)
	}
	if err := s.repo.AjustarStock(ctx, id, req.Delta); err != nil {
		return nil, err
	}
	p.StockActual += req.Delta
	s.invalidarPrecio(ctx, p)
	return productoToResponse(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, tiendaID, id uuid.UUID, rol string) error {
	if !model.RolElevado(rol) {
		return errors.New("el rol no permite eliminar productos")
	}
	p, err := s.findProducto(ctx, tiendaID, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidarPrecio(ctx, p)
	return nil
}

func (s *productoService) SetImagen(ctx context.Context, tiendaID, id uuid.UUID, url string) (*dto.ProductoResponse, error) {
	p, err := s.findProducto(ctx, tiendaID, id)
	if err != nil {
		return nil, err
	}
	p.ImagenURL = &url
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

// ConsultaPrecios is the public barcode price check, cached briefly so a
// customer-facing kiosk does not hammer the catalog table.
func (s *productoService) ConsultaPrecios(ctx context.Context, tiendaID uuid.UUID, codigoBarras string) (*dto.ConsultaPreciosResponse, error) {
	key := precioCacheKey(tiendaID, codigoBarras)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var resp dto.ConsultaPreciosResponse
			if err := json.Unmarshal([]byte(raw), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.repo.FindByBarcode(ctx, tiendaID, codigoBarras)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	resp := dto.ConsultaPreciosResponse{
		Nombre:          p.Nombre,
		PrecioVenta:     p.PrecioVenta,
		StockDisponible: p.StockActual,
	}
	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			s.cache.Set(ctx, key, string(raw), precioCacheTTL)
		}
	}
	return &resp, nil
}

func (s *productoService) invalidarPrecio(ctx context.Context, p *model.Producto) {
	if s.cache == nil || p.CodigoBarras == nil {
		return
	}
	s.cache.Delete(ctx, precioCacheKey(p.TiendaID, *p.CodigoBarras))
}

func precioCacheKey(tiendaID uuid.UUID, codigoBarras string) string {
	return fmt.Sprintf("precio:%s:%s", tiendaID, codigoBarras)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	var categoriaID *string
	if p.CategoriaID != nil {
		s := p.CategoriaID.String()
		categoriaID = &s
	}
	return &dto.ProductoResponse{
		ID:             p.ID.String(),
		TiendaID:       p.TiendaID.String(),
		CategoriaID:    categoriaID,
		CodigoBarras:   p.CodigoBarras,
		SKU:            p.SKU,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		ImagenURL:      p.ImagenURL,
		PrecioCompra:   p.PrecioCompra,
		PrecioVenta:    p.PrecioVenta,
		MargenGanancia: p.MargenGanancia,
		StockActual:    p.StockActual,
		StockMinimo:    p.StockMinimo,
		StockMaximo:    p.StockMaximo,
		EstadoStock:    EstadoStock(p),
		UnidadMedida:   p.UnidadMedida,
		Perecedero:     p.Perecedero,
		Activo:         p.Activo,
	}
}
