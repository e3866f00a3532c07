package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto belongs to one tienda and optionally one categoria.
// MargenGanancia is derived at write time from (PrecioVenta - PrecioCompra)
// / PrecioCompra * 100; it is not re-checked on reads.
type Producto struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TiendaID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoriaID  *uuid.UUID `gorm:"type:uuid;index"`
	CodigoBarras *string    `gorm:"index"`
	SKU          *string    `gorm:"column:sku;index"`
	Nombre       string     `gorm:"index;not null"`
	Descripcion  *string
	ImagenURL    *string
	PrecioCompra decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// MargenGanancia is a percentage, e.g. 25.00 for a 25% margin
	MargenGanancia decimal.Decimal `gorm:"type:decimal(7,2)"`
	StockActual    int             `gorm:"not null;default:0"`
	StockMinimo    int             `gorm:"not null;default:5"`
	StockMaximo    int             `gorm:"not null;default:100"`
	UnidadMedida   string          `gorm:"not null;default:'unidad'"`
	Perecedero     bool            `gorm:"not null;default:false"`
	Activo         bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }
