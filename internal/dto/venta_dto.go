package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

type VentaFilter struct {
	Fecha string `form:"fecha"` // YYYY-MM-DD; empty = today
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type RegistrarVentaRequest struct {
	Items        []ItemVentaRequest `json:"items"          validate:"required,min=1,dive"`
	MetodoPagoID string             `json:"metodo_pago_id" validate:"required,uuid"`
	Descuento    decimal.Decimal    `json:"descuento"      validate:"min=0"`
	// Referencia is mandatory when the metodo de pago requires one
	Referencia *string `json:"referencia"`
	Notas      *string `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID          string                 `json:"id"`
	NumeroVenta int                    `json:"numero_venta"`
	SesionID    string                 `json:"sesion_id"`
	Detalles    []DetalleVentaResponse `json:"detalles"`
	Subtotal    decimal.Decimal        `json:"subtotal"`
	Descuento   decimal.Decimal        `json:"descuento"`
	Total       decimal.Decimal        `json:"total"`
	MetodoPago  string                 `json:"metodo_pago"`
	Referencia  *string                `json:"referencia"`
	CreatedAt   string                 `json:"created_at"`
}
