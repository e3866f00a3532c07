package model

import (
	"github.com/google/uuid"
)

// Codigos of the seeded payment methods.
const (
	PagoEfectivo      = "efectivo"
	PagoNequi         = "nequi"
	PagoDaviplata     = "daviplata"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
	PagoFiado         = "fiado"
)

// MetodoPago is a payment method row. TiendaID nil means the method is a
// global default visible to every tienda. Nombre is the display name the
// daily summary classifies on; Codigo is the stable type code.
type MetodoPago struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID           *uuid.UUID `gorm:"type:uuid;index"`
	Nombre             string     `gorm:"not null"`
	Codigo             string     `gorm:"type:varchar(20);not null"`
	Descripcion        *string
	Icono              *string
	Color              *string
	RequiereReferencia bool `gorm:"not null;default:false"`
	EsCredito          bool `gorm:"not null;default:false"`
	Activo             bool `gorm:"not null;default:true"`
	Orden              int  `gorm:"not null;default:0"`
}

func (MetodoPago) TableName() string { return "metodos_pago" }
