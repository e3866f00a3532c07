package model

import (
	"time"

	"github.com/google/uuid"
)

// Alerta types and priorities.
const (
	AlertaStockBajo     = "stock_bajo"
	AlertaStockAgotado  = "stock_agotado"
	AlertaSesionAbierta = "sesion_abierta"

	PrioridadBaja    = "baja"
	PrioridadMedia   = "media"
	PrioridadAlta    = "alta"
	PrioridadCritica = "critica"
)

// Alerta is a store notification. Low-stock alertas are created inside the
// sale transaction that crosses the threshold; Notificada flips once the
// email worker delivers it.
type Alerta struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Tipo       string     `gorm:"type:varchar(30);not null"`
	Titulo     string     `gorm:"not null"`
	Mensaje    string     `gorm:"not null"`
	ProductoID *uuid.UUID `gorm:"type:uuid"`
	Producto   *Producto  `gorm:"foreignKey:ProductoID"`
	Prioridad  string     `gorm:"type:varchar(10);not null;default:'media'"`
	Leida      bool       `gorm:"not null;default:false"`
	Notificada bool       `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
}

func (Alerta) TableName() string { return "alertas" }
