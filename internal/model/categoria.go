package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies products inside a single tienda.
type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre      string    `gorm:"not null"`
	Descripcion *string
	Icono       *string
	Orden       int  `gorm:"not null;default:0"`
	Activa      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Categoria) TableName() string { return "categorias" }
