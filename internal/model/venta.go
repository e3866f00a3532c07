package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a completed, stock-affecting sale recorded against a register
// session. The sale row, its detalles and the stock decrements are written
// in one transaction.
type Venta struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SesionID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	UsuarioID    uuid.UUID       `gorm:"type:uuid;not null"`
	NumeroVenta  int             `gorm:"not null"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descuento    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPagoID uuid.UUID       `gorm:"type:uuid;not null"`
	// Referencia holds the external payment reference when the metodo
	// requires one (transfers, wallet payments)
	Referencia *string
	Notas      *string
	CreatedAt  time.Time

	Detalles   []VentaDetalle `gorm:"foreignKey:VentaID"`
	MetodoPago *MetodoPago    `gorm:"foreignKey:MetodoPagoID"`
}

func (Venta) TableName() string { return "ventas" }

// VentaDetalle is one line of a sale. PrecioUnitario is snapshotted from
// the product at sale time and never re-read.
type VentaDetalle struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (VentaDetalle) TableName() string { return "venta_detalles" }
