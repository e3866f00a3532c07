package repository

import (
	"context"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	List(ctx context.Context, tiendaID uuid.UUID, busqueda string) ([]model.Cliente, error)
	CountActivos(ctx context.Context, tiendaID uuid.UUID) (int64, error)
	Update(ctx context.Context, c *model.Cliente) error
	AjustarSaldoTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context, tiendaID uuid.UUID, busqueda string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	q := r.db.WithContext(ctx).Where("tienda_id = ? AND activo = true", tiendaID)
	if busqueda != "" {
		like := "%" + busqueda + "%"
		q = q.Where("nombre_completo ILIKE ? OR telefono ILIKE ?", like, like)
	}
	err := q.Order("nombre_completo ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) CountActivos(ctx context.Context, tiendaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("tienda_id = ? AND activo = true", tiendaID).Count(&count).Error
	return count, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) AjustarSaldoTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	return tx.Model(&model.Cliente{}).Where("id = ?", id).
		Update("saldo_pendiente", gorm.Expr("saldo_pendiente + ?", delta)).Error
}

func (r *clienteRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Update("activo", false).Error
}
