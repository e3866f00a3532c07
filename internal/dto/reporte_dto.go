package dto

import "github.com/shopspring/decimal"

// DashboardResponse carries the aggregates the dashboard screen shows.
// The delta fields are percentages against the prior period; nil means the
// prior period had no data to compare against.
type DashboardResponse struct {
	VentasHoy          decimal.Decimal  `json:"ventas_hoy"`
	VentasAyer         decimal.Decimal  `json:"ventas_ayer"`
	DeltaVentasPct     *decimal.Decimal `json:"delta_ventas_pct"`
	GastosMes          decimal.Decimal  `json:"gastos_mes"`
	GastosMesAnterior  decimal.Decimal  `json:"gastos_mes_anterior"`
	DeltaGastosPct     *decimal.Decimal `json:"delta_gastos_pct"`
	TotalProductos     int64            `json:"total_productos"`
	ProductosStockBajo int64            `json:"productos_stock_bajo"`
	TotalClientes      int64            `json:"total_clientes"`
}
