package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProductoFilter is bound from the query string of GET /productos.
// Busqueda and Categoria are applied with the pure in-memory filter after
// fetching the tienda's catalog.
type ProductoFilter struct {
	Busqueda  string `form:"q"`
	Categoria string `form:"categoria,default=all"` // categoria id | "all"
	Activo    string `form:"activo"`                // "", "false", "all"
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int                `json:"total"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	CategoriaID  *string         `json:"categoria_id"  validate:"omitempty,uuid"`
	CodigoBarras *string         `json:"codigo_barras"`
	SKU          *string         `json:"sku"`
	Nombre       string          `json:"nombre"        validate:"required,min=2"`
	Descripcion  *string         `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra" validate:"min=0"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"  validate:"required,gt=0"`
	StockActual  int             `json:"stock_actual"  validate:"min=0"`
	StockMinimo  int             `json:"stock_minimo"  validate:"min=0"`
	StockMaximo  int             `json:"stock_maximo"  validate:"min=0"`
	UnidadMedida string          `json:"unidad_medida"`
	Perecedero   bool            `json:"perecedero"`
}

type ActualizarProductoRequest struct {
	CategoriaID  *string          `json:"categoria_id"  validate:"omitempty,uuid"`
	CodigoBarras *string          `json:"codigo_barras"`
	SKU          *string          `json:"sku"`
	Nombre       *string          `json:"nombre"        validate:"omitempty,min=2"`
	Descripcion  *string          `json:"descripcion"`
	PrecioCompra *decimal.Decimal `json:"precio_compra" validate:"omitempty,min=0"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"  validate:"omitempty,gt=0"`
	StockMinimo  *int             `json:"stock_minimo"  validate:"omitempty,min=0"`
	StockMaximo  *int             `json:"stock_maximo"  validate:"omitempty,min=0"`
	UnidadMedida *string          `json:"unidad_medida"`
	Perecedero   *bool            `json:"perecedero"`
}

type AjustarStockRequest struct {
	// Delta is added to stock_actual; negative deltas require an elevated rol
	Delta  int    `json:"delta"  validate:"required"`
	Motivo string `json:"motivo" validate:"required,min=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID             string          `json:"id"`
	TiendaID       string          `json:"tienda_id"`
	CategoriaID    *string         `json:"categoria_id"`
	CodigoBarras   *string         `json:"codigo_barras"`
	SKU            *string         `json:"sku"`
	Nombre         string          `json:"nombre"`
	Descripcion    *string         `json:"descripcion"`
	ImagenURL      *string         `json:"imagen_url"`
	PrecioCompra   decimal.Decimal `json:"precio_compra"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	MargenGanancia decimal.Decimal `json:"margen_ganancia"`
	StockActual    int             `json:"stock_actual"`
	StockMinimo    int             `json:"stock_minimo"`
	StockMaximo    int             `json:"stock_maximo"`
	// EstadoStock: "out" | "low" | "normal" | "high"
	EstadoStock  string `json:"estado_stock"`
	UnidadMedida string `json:"unidad_medida"`
	Perecedero   bool   `json:"perecedero"`
	Activo       bool   `json:"activo"`
}

// ConsultaPreciosResponse is the public price-check payload.
type ConsultaPreciosResponse struct {
	Nombre          string          `json:"nombre"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	StockDisponible int             `json:"stock_disponible"`
}
