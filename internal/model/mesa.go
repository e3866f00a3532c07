package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mesa states. A closed mesa is terminal.
const (
	MesaAbierta = "abierta"
	MesaCerrada = "cerrada"
)

// MesaCliente states. pendiente → pagado → pendiente is cyclic via reopen.
const (
	CuentaPendiente = "pendiente"
	CuentaPagada    = "pagado"
)

// Mesa is an open tab grouping customer sub-accounts for bar-style deferred
// billing. Invariant after every mutating operation:
// TotalMesa == TotalPagado + TotalPendiente.
type Mesa struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SesionID       *uuid.UUID      `gorm:"type:uuid"`
	NumeroMesa     string          `gorm:"not null"`
	Estado         string          `gorm:"type:varchar(20);not null;default:'abierta'"`
	TotalMesa      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalPagado    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalPendiente decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time
	ClosedAt       *time.Time

	Clientes []MesaCliente `gorm:"foreignKey:MesaID"`
}

func (Mesa) TableName() string { return "mesas" }

// MesaCliente is a sub-account of exactly one mesa, billed and settled
// independently. While pendiente, Total equals the sum of its detalle
// subtotals.
type MesaCliente struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MesaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	NombreCliente string          `gorm:"not null"`
	Estado        string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TipoPagoID    *uuid.UUID      `gorm:"type:uuid"`
	PagadoAt      *time.Time
	CreatedAt     time.Time

	Productos []MesaClienteDetalle `gorm:"foreignKey:MesaClienteID"`
}

func (MesaCliente) TableName() string { return "mesas_clientes" }

// MesaClienteDetalle is one line item on a sub-account. PrecioUnitario is
// the product's sale price at add time; later price changes never touch it.
// ProductoID is a weak reference: deleting the product does not cascade here.
type MesaClienteDetalle struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MesaClienteID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (MesaClienteDetalle) TableName() string { return "mesas_clientes_detalle" }
