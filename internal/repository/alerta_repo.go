package repository

import (
	"context"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertaRepository interface {
	CreateTx(tx *gorm.DB, a *model.Alerta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Alerta, error)
	List(ctx context.Context, tiendaID uuid.UUID, soloNoLeidas bool) ([]model.Alerta, error)
	// ExisteActiva reports whether an unread alert of the given type already
	// covers the product, so a sale touching the same low product does not
	// pile up duplicates.
	ExisteActiva(tx *gorm.DB, tiendaID uuid.UUID, productoID uuid.UUID, tipo string) (bool, error)
	MarcarLeida(ctx context.Context, id uuid.UUID) error
	MarcarNotificada(ctx context.Context, id uuid.UUID) error
	ListNoNotificadas(ctx context.Context, limit int) ([]model.Alerta, error)
}

type alertaRepo struct{ db *gorm.DB }

func NewAlertaRepository(db *gorm.DB) AlertaRepository { return &alertaRepo{db: db} }

func (r *alertaRepo) CreateTx(tx *gorm.DB, a *model.Alerta) error {
	return tx.Create(a).Error
}

func (r *alertaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Alerta, error) {
	var a model.Alerta
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *alertaRepo) List(ctx context.Context, tiendaID uuid.UUID, soloNoLeidas bool) ([]model.Alerta, error) {
	var alertas []model.Alerta
	q := r.db.WithContext(ctx).Where("tienda_id = ?", tiendaID)
	if soloNoLeidas {
		q = q.Where("leida = false")
	}
	err := q.Order("created_at DESC").Find(&alertas).Error
	return alertas, err
}

func (r *alertaRepo) ExisteActiva(tx *gorm.DB, tiendaID uuid.UUID, productoID uuid.UUID, tipo string) (bool, error) {
	var count int64
	err := tx.Model(&model.Alerta{}).
		Where("tienda_id = ? AND producto_id = ? AND tipo = ? AND leida = false", tiendaID, productoID, tipo).
		Count(&count).Error
	return count > 0, err
}

func (r *alertaRepo) MarcarLeida(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Alerta{}).Where("id = ?", id).Update("leida", true).Error
}

func (r *alertaRepo) MarcarNotificada(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Alerta{}).Where("id = ?", id).Update("notificada", true).Error
}

func (r *alertaRepo) ListNoNotificadas(ctx context.Context, limit int) ([]model.Alerta, error) {
	var alertas []model.Alerta
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("notificada = false").
		Order("created_at ASC").Limit(limit).Find(&alertas).Error
	return alertas, err
}
