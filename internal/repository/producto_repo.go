package repository

import (
	"context"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)
	FindByBarcode(ctx context.Context, tiendaID uuid.UUID, barcode string) (*model.Producto, error)
	List(ctx context.Context, tiendaID uuid.UUID, activo string) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// AjustarStock increments or decrements stock_actual without an outer tx.
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) error

	// Dashboard aggregates
	CountActivos(ctx context.Context, tiendaID uuid.UUID) (int64, error)
	CountStockBajo(ctx context.Context, tiendaID uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.First(&p, id).Error
	return &p, err
}

func (r *productoRepo) FindByBarcode(ctx context.Context, tiendaID uuid.UUID, barcode string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Where("tienda_id = ? AND codigo_barras = ? AND activo = true", tiendaID, barcode).
		First(&p).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, tiendaID uuid.UUID, activo string) ([]model.Producto, error) {
	var productos []model.Producto

	q := r.db.WithContext(ctx).Where("tienda_id = ?", tiendaID)

	// Activo filter: "false" = inactivos, "all" = todos, anything else = activos
	switch activo {
	case "false":
		q = q.Where("activo = false")
	case "all":
		// no filter
	default:
		q = q.Where("activo = true")
	}

	err := q.Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *productoRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", true).Error
}

func (r *productoRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock_actual", gorm.Expr("stock_actual + ?", delta)).Error
}

func (r *productoRepo) AjustarStock(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ? AND activo = true", id).
		Update("stock_actual", gorm.Expr("stock_actual + ?", delta)).Error
}

func (r *productoRepo) CountActivos(ctx context.Context, tiendaID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("tienda_id = ? AND activo = true", tiendaID).
		Count(&total).Error
	return total, err
}

func (r *productoRepo) CountStockBajo(ctx context.Context, tiendaID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("tienda_id = ? AND activo = true AND stock_actual <= stock_minimo", tiendaID).
		Count(&total).Error
	return total, err
}
