package repository

import (
	"context"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	NextNumeroVenta(ctx context.Context, tx *gorm.DB, tiendaID uuid.UUID) (int, error)
	ListBySesion(ctx context.Context, sesionID uuid.UUID) ([]model.Venta, error)
	List(ctx context.Context, tiendaID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, int64, error)
	// SumDia totals completed sales for one calendar day (dashboard deltas).
	SumDia(ctx context.Context, tiendaID uuid.UUID, dia time.Time) (decimal.Decimal, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").Preload("MetodoPago").
		First(&v, id).Error
	return &v, err
}

// NextNumeroVenta issues the next per-tienda consecutive sale number.
// MAX+1 inside the sale transaction is enough at single-register scale.
func (r *ventaRepo) NextNumeroVenta(ctx context.Context, tx *gorm.DB, tiendaID uuid.UUID) (int, error) {
	var num int
	err := tx.WithContext(ctx).Model(&model.Venta{}).
		Where("tienda_id = ?", tiendaID).
		Select("COALESCE(MAX(numero_venta), 0) + 1").
		Scan(&num).Error
	return num, err
}

func (r *ventaRepo) ListBySesion(ctx context.Context, sesionID uuid.UUID) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles").Preload("MetodoPago").
		Where("sesion_id = ?", sesionID).
		Order("created_at ASC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) List(ctx context.Context, tiendaID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Venta{}).Where("tienda_id = ?", tiendaID)

	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	} else {
		q = q.Where("DATE(created_at) = CURRENT_DATE")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Detalles.Producto").Preload("MetodoPago").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error

	return ventas, total, err
}

func (r *ventaRepo) SumDia(ctx context.Context, tiendaID uuid.UUID, dia time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("tienda_id = ? AND DATE(created_at) = ?", tiendaID, dia.Format("2006-01-02")).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}
