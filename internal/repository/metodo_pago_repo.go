package repository

import (
	"context"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MetodoPagoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.MetodoPago, error)
	// List returns global methods plus the tienda's own, ordered for display.
	List(ctx context.Context, tiendaID uuid.UUID) ([]model.MetodoPago, error)
	// SeedDefaults inserts the global method catalog when it is empty.
	SeedDefaults(ctx context.Context) error
}

type metodoPagoRepo struct{ db *gorm.DB }

func NewMetodoPagoRepository(db *gorm.DB) MetodoPagoRepository { return &metodoPagoRepo{db: db} }

func (r *metodoPagoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MetodoPago, error) {
	var m model.MetodoPago
	err := r.db.WithContext(ctx).Where("id = ? AND activo = true", id).First(&m).Error
	return &m, err
}

func (r *metodoPagoRepo) List(ctx context.Context, tiendaID uuid.UUID) ([]model.MetodoPago, error) {
	var metodos []model.MetodoPago
	err := r.db.WithContext(ctx).
		Where("activo = true AND (tienda_id IS NULL OR tienda_id = ?)", tiendaID).
		Order("orden ASC, nombre ASC").
		Find(&metodos).Error
	return metodos, err
}

func (r *metodoPagoRepo) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.MetodoPago{}).
		Where("tienda_id IS NULL").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []model.MetodoPago{
		{Nombre: "Efectivo", Codigo: model.PagoEfectivo, Orden: 1, Activo: true},
		{Nombre: "Nequi", Codigo: model.PagoNequi, RequiereReferencia: true, Orden: 2, Activo: true},
		{Nombre: "Daviplata", Codigo: model.PagoDaviplata, RequiereReferencia: true, Orden: 3, Activo: true},
		{Nombre: "Tarjeta Débito", Codigo: model.PagoTarjeta, Orden: 4, Activo: true},
		{Nombre: "Tarjeta Crédito", Codigo: model.PagoTarjeta, Orden: 5, Activo: true},
		{Nombre: "Transferencia", Codigo: model.PagoTransferencia, RequiereReferencia: true, Orden: 6, Activo: true},
		{Nombre: "Fiado", Codigo: model.PagoFiado, EsCredito: true, Orden: 7, Activo: true},
	}
	return r.db.WithContext(ctx).Create(&defaults).Error
}
