package repository

import (
	"context"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TiendaRepository interface {
	CreateTx(tx *gorm.DB, t *model.Tienda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tienda, error)
	FindBySlug(ctx context.Context, slug string) (*model.Tienda, error)
	Update(ctx context.Context, t *model.Tienda) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type tiendaRepo struct{ db *gorm.DB }

func NewTiendaRepository(db *gorm.DB) TiendaRepository { return &tiendaRepo{db: db} }

func (r *tiendaRepo) DB() *gorm.DB { return r.db }

func (r *tiendaRepo) CreateTx(tx *gorm.DB, t *model.Tienda) error {
	return tx.Create(t).Error
}

func (r *tiendaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Tienda, error) {
	var t model.Tienda
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tiendaRepo) FindBySlug(ctx context.Context, slug string) (*model.Tienda, error) {
	var t model.Tienda
	err := r.db.WithContext(ctx).Where("slug = ? AND activa = true", slug).First(&t).Error
	return &t, err
}

func (r *tiendaRepo) Update(ctx context.Context, t *model.Tienda) error {
	return r.db.WithContext(ctx).Save(t).Error
}
