package repository

import (
	"context"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CajaRepository interface {
	CreateSesion(ctx context.Context, s *model.SesionCaja) error
	FindSesionByID(ctx context.Context, id uuid.UUID) (*model.SesionCaja, error)
	// FindSesionAbierta returns the tienda's currently open session, if any.
	FindSesionAbierta(ctx context.Context, tiendaID uuid.UUID) (*model.SesionCaja, error)
	CerrarSesion(ctx context.Context, id uuid.UUID, closedAt time.Time) error
	ListSesiones(ctx context.Context, tiendaID uuid.UUID, page, limit int) ([]model.SesionCaja, int64, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) CreateSesion(ctx context.Context, s *model.SesionCaja) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *cajaRepo) FindSesionByID(ctx context.Context, id uuid.UUID) (*model.SesionCaja, error) {
	var s model.SesionCaja
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *cajaRepo) FindSesionAbierta(ctx context.Context, tiendaID uuid.UUID) (*model.SesionCaja, error) {
	var s model.SesionCaja
	err := r.db.WithContext(ctx).
		Where("tienda_id = ? AND abierta = true", tiendaID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *cajaRepo) CerrarSesion(ctx context.Context, id uuid.UUID, closedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.SesionCaja{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"abierta": false, "closed_at": closedAt}).Error
}

func (r *cajaRepo) ListSesiones(ctx context.Context, tiendaID uuid.UUID, page, limit int) ([]model.SesionCaja, int64, error) {
	var sesiones []model.SesionCaja
	var total int64

	q := r.db.WithContext(ctx).Model(&model.SesionCaja{}).Where("tienda_id = ?", tiendaID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Order("opened_at DESC").Offset(offset).Limit(limit).Find(&sesiones).Error
	return sesiones, total, err
}
