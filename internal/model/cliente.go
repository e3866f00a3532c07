package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is a store customer kept for fiado (store credit) bookkeeping.
// LimiteCredito and SaldoPendiente are carried as data; credit flows are
// not automated yet.
type Cliente struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID       uuid.UUID `gorm:"type:uuid;not null;index"`
	NombreCompleto string    `gorm:"not null"`
	Documento      *string
	Telefono       *string
	Email          *string
	Direccion      *string
	LimiteCredito  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SaldoPendiente decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notas          *string
	Activo         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
}

func (Cliente) TableName() string { return "clientes" }
