package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirMesaRequest struct {
	NumeroMesa string `json:"numero_mesa" validate:"required,min=1"`
}

type AgregarClienteRequest struct {
	// Nombre defaults to "Cliente N" when omitted
	Nombre *string `json:"nombre"`
}

type AgregarProductoMesaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type CobrarClienteRequest struct {
	TipoPagoID string `json:"tipo_pago_id" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleMesaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type MesaClienteResponse struct {
	ID            string                `json:"id"`
	NombreCliente string                `json:"nombre_cliente"`
	Estado        string                `json:"estado"` // pendiente | pagado
	Total         decimal.Decimal       `json:"total"`
	TipoPagoID    *string               `json:"tipo_pago_id"`
	PagadoAt      *string               `json:"pagado_at"`
	Productos     []DetalleMesaResponse `json:"productos"`
}

type MesaResponse struct {
	ID             string                `json:"id"`
	NumeroMesa     string                `json:"numero_mesa"`
	Estado         string                `json:"estado"` // abierta | cerrada
	TotalMesa      decimal.Decimal       `json:"total_mesa"`
	TotalPagado    decimal.Decimal       `json:"total_pagado"`
	TotalPendiente decimal.Decimal       `json:"total_pendiente"`
	Clientes       []MesaClienteResponse `json:"clientes"`
	CreatedAt      string                `json:"created_at"`
	ClosedAt       *string               `json:"closed_at"`
}

type MesaListResponse struct {
	Data  []MesaResponse `json:"data"`
	Total int            `json:"total"`
}
