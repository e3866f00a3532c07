package dto

import "github.com/shopspring/decimal"

type RegistrarGastoRequest struct {
	Tipo        string          `json:"tipo"        validate:"required,oneof=compra_inventario servicios arriendo nomina otro"`
	Concepto    string          `json:"concepto"    validate:"required,min=3"`
	Descripcion *string         `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	// FechaGasto: YYYY-MM-DD; empty = today
	FechaGasto string `json:"fecha_gasto"`
}

type GastoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Concepto    string          `json:"concepto"`
	Descripcion *string         `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	FechaGasto  string          `json:"fecha_gasto"`
}
