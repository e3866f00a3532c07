package dto

import "github.com/shopspring/decimal"

type CrearClienteRequest struct {
	NombreCompleto string           `json:"nombre_completo" validate:"required,min=3"`
	Documento      *string          `json:"documento"`
	Telefono       *string          `json:"telefono"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Direccion      *string          `json:"direccion"`
	LimiteCredito  *decimal.Decimal `json:"limite_credito" validate:"omitempty,min=0"`
	Notas          *string          `json:"notas"`
}

type ClienteResponse struct {
	ID             string          `json:"id"`
	NombreCompleto string          `json:"nombre_completo"`
	Documento      *string         `json:"documento"`
	Telefono       *string         `json:"telefono"`
	Email          *string         `json:"email"`
	Direccion      *string         `json:"direccion"`
	LimiteCredito  decimal.Decimal `json:"limite_credito"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	Activo         bool            `json:"activo"`
}
