package repository

import (
	"context"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GastoRepository interface {
	Create(ctx context.Context, g *model.Gasto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Gasto, error)
	List(ctx context.Context, tiendaID uuid.UUID, desde, hasta time.Time, limit, offset int) ([]model.Gasto, int64, error)
	SumRango(ctx context.Context, tiendaID uuid.UUID, desde, hasta time.Time) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) Create(ctx context.Context, g *model.Gasto) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Gasto, error) {
	var g model.Gasto
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *gastoRepo) List(ctx context.Context, tiendaID uuid.UUID, desde, hasta time.Time, limit, offset int) ([]model.Gasto, int64, error) {
	var gastos []model.Gasto
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Gasto{}).
		Where("tienda_id = ? AND fecha_gasto >= ? AND fecha_gasto < ?", tiendaID, desde, hasta)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("fecha_gasto DESC").Limit(limit).Offset(offset).Find(&gastos).Error
	return gastos, total, err
}

func (r *gastoRepo) SumRango(ctx context.Context, tiendaID uuid.UUID, desde, hasta time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Gasto{}).
		Where("tienda_id = ? AND fecha_gasto >= ? AND fecha_gasto < ?", tiendaID, desde, hasta).
		Select("COALESCE(SUM(monto), 0)").Scan(&sum).Error
	return sum, err
}

func (r *gastoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Gasto{}, id).Error
}
