package model

import (
	"time"

	"github.com/google/uuid"
)

// Tienda is the tenant boundary: every catalog and transactional row is
// scoped by TiendaID. Created once at onboarding; only profile fields
// change afterwards.
type Tienda struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Slug      string    `gorm:"uniqueIndex;not null"`
	Direccion *string
	Telefono  *string
	Email     *string
	LogoURL   *string
	Activa    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tienda) TableName() string { return "tiendas" }
