package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SesionCaja is one cash-drawer working period for a tienda. At most one
// session per tienda may be open at a time; every venta recorded while it
// is open references it.
type SesionCaja struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	UsuarioID    uuid.UUID       `gorm:"type:uuid;not null"`
	MontoInicial decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Abierta      bool            `gorm:"not null;default:true"`
	OpenedAt     time.Time
	ClosedAt     *time.Time

	Ventas []Venta `gorm:"foreignKey:SesionID"`
}

func (SesionCaja) TableName() string { return "sesiones_caja" }
