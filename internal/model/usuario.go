package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold inside a tienda. Only the first two may edit
// prices, subtract stock, delete products or delete mesas.
const (
	RolAdminGeneral   = "admin_general"
	RolDuenoLocal     = "dueño_local"
	RolAdminLocal     = "admin_local"
	RolAdminAsistente = "admin_asistente"
)

// RolElevado reports whether rol is allowed to perform destructive or
// price-changing operations.
func RolElevado(rol string) bool {
	return rol == RolAdminGeneral || rol == RolDuenoLocal
}

// Usuario is a signed-in identity. Store access is granted through
// UsuarioTienda memberships, never directly.
type Usuario struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `gorm:"uniqueIndex;not null"`
	NombreCompleto string    `gorm:"not null"`
	Telefono       *string
	AvatarURL      *string
	PasswordHash   string `gorm:"not null"`
	Activo         bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Usuario) TableName() string { return "usuarios" }

// UsuarioTienda pairs an identity with a tienda and a role. Memberships are
// never hard-deleted, only deactivated.
type UsuarioTienda struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index:idx_usuario_tienda,unique"`
	TiendaID  uuid.UUID `gorm:"type:uuid;not null;index:idx_usuario_tienda,unique"`
	Rol       string    `gorm:"type:varchar(20);not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time

	Tienda *Tienda `gorm:"foreignKey:TiendaID"`
}

func (UsuarioTienda) TableName() string { return "usuarios_tiendas" }
