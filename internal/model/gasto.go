package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gasto expense types.
const (
	GastoCompraInventario = "compra_inventario"
	GastoServicios        = "servicios"
	GastoArriendo         = "arriendo"
	GastoNomina           = "nomina"
	GastoOtro             = "otro"
)

// Gasto is a store expense; the dashboard compares the current month's sum
// against the prior month's.
type Gasto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UsuarioID   uuid.UUID `gorm:"type:uuid;not null"`
	Tipo        string    `gorm:"type:varchar(30);not null"`
	Concepto    string    `gorm:"not null"`
	Descripcion *string
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaGasto  time.Time       `gorm:"not null;index"`
	CreatedAt   time.Time
}

func (Gasto) TableName() string { return "gastos" }
