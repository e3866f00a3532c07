package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirSesionRequest struct {
	MontoInicial decimal.Decimal `json:"monto_inicial" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SesionResponse struct {
	ID           string          `json:"id"`
	TiendaID     string          `json:"tienda_id"`
	UsuarioID    string          `json:"usuario_id"`
	MontoInicial decimal.Decimal `json:"monto_inicial"`
	Abierta      bool            `json:"abierta"`
	OpenedAt     string          `json:"opened_at"`
	ClosedAt     *string         `json:"closed_at"`
}

// ResumenDiarioResponse partitions the session's revenue by payment-method
// display name: "Efectivo" exact match, "Tarjeta" substring match, rest in
// Otros.
type ResumenDiarioResponse struct {
	SesionID       string          `json:"sesion_id"`
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	CantidadVentas int             `json:"cantidad_ventas"`
	Efectivo       decimal.Decimal `json:"efectivo"`
	Tarjeta        decimal.Decimal `json:"tarjeta"`
	Otros          decimal.Decimal `json:"otros"`
}
