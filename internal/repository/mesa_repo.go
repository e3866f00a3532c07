package repository

import (
	"context"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MesaRepository is the data access contract for the open-tab ledger.
// Every mutating Tx method expects the caller's transaction so that one
// logical operation (add item, settle, reopen, cascade delete) commits
// or rolls back as a unit.
type MesaRepository interface {
	CreateMesa(ctx context.Context, m *model.Mesa) error
	// FindMesaByID preloads the full cliente / detalle tree.
	FindMesaByID(ctx context.Context, id uuid.UUID) (*model.Mesa, error)
	ListMesas(ctx context.Context, tiendaID uuid.UUID, estado string) ([]model.Mesa, error)
	UpdateMesaEstado(ctx context.Context, id uuid.UUID, estado string, closedAt *time.Time) error
	UpdateMesaTotalesTx(tx *gorm.DB, id uuid.UUID, totalMesa, totalPagado, totalPendiente decimal.Decimal) error

	CreateCliente(ctx context.Context, c *model.MesaCliente) error
	FindClienteByID(ctx context.Context, id uuid.UUID) (*model.MesaCliente, error)
	UpdateClienteTx(tx *gorm.DB, c *model.MesaCliente) error

	CreateDetalleTx(tx *gorm.DB, d *model.MesaClienteDetalle) error
	DeleteDetallesByClienteTx(tx *gorm.DB, clienteID uuid.UUID) error

	// Cascade delete, innermost first: detalles → clientes → mesa.
	DeleteDetallesByMesaTx(tx *gorm.DB, mesaID uuid.UUID) error
	DeleteClientesByMesaTx(tx *gorm.DB, mesaID uuid.UUID) error
	DeleteMesaTx(tx *gorm.DB, mesaID uuid.UUID) error

	DB() *gorm.DB
}

type mesaRepo struct{ db *gorm.DB }

func NewMesaRepository(db *gorm.DB) MesaRepository { return &mesaRepo{db: db} }

func (r *mesaRepo) DB() *gorm.DB { return r.db }

func (r *mesaRepo) CreateMesa(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mesaRepo) FindMesaByID(ctx context.Context, id uuid.UUID) (*model.Mesa, error) {
	var m model.Mesa
	err := r.db.WithContext(ctx).
		Preload("Clientes", func(db *gorm.DB) *gorm.DB {
			return db.Order("mesas_clientes.created_at ASC")
		}).
		Preload("Clientes.Productos.Producto").
		First(&m, id).Error
	return &m, err
}

func (r *mesaRepo) ListMesas(ctx context.Context, tiendaID uuid.UUID, estado string) ([]model.Mesa, error) {
	var mesas []model.Mesa
	q := r.db.WithContext(ctx).
		Preload("Clientes.Productos.Producto").
		Where("tienda_id = ?", tiendaID)
	if estado != "" && estado != "all" {
		q = q.Where("estado = ?", estado)
	}
	err := q.Order("created_at DESC").Find(&mesas).Error
	return mesas, err
}

func (r *mesaRepo) UpdateMesaEstado(ctx context.Context, id uuid.UUID, estado string, closedAt *time.Time) error {
	updates := map[string]interface{}{"estado": estado}
	if closedAt != nil {
		updates["closed_at"] = *closedAt
	}
	return r.db.WithContext(ctx).Model(&model.Mesa{}).Where("id = ?", id).Updates(updates).Error
}

func (r *mesaRepo) UpdateMesaTotalesTx(tx *gorm.DB, id uuid.UUID, totalMesa, totalPagado, totalPendiente decimal.Decimal) error {
	return tx.Model(&model.Mesa{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_mesa":      totalMesa,
		"total_pagado":    totalPagado,
		"total_pendiente": totalPendiente,
	}).Error
}

func (r *mesaRepo) CreateCliente(ctx context.Context, c *model.MesaCliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *mesaRepo) FindClienteByID(ctx context.Context, id uuid.UUID) (*model.MesaCliente, error) {
	var c model.MesaCliente
	err := r.db.WithContext(ctx).
		Preload("Productos.Producto").
		First(&c, id).Error
	return &c, err
}

func (r *mesaRepo) UpdateClienteTx(tx *gorm.DB, c *model.MesaCliente) error {
	return tx.Save(c).Error
}

func (r *mesaRepo) CreateDetalleTx(tx *gorm.DB, d *model.MesaClienteDetalle) error {
	return tx.Create(d).Error
}

func (r *mesaRepo) DeleteDetallesByClienteTx(tx *gorm.DB, clienteID uuid.UUID) error {
	return tx.Where("mesa_cliente_id = ?", clienteID).Delete(&model.MesaClienteDetalle{}).Error
}

func (r *mesaRepo) DeleteDetallesByMesaTx(tx *gorm.DB, mesaID uuid.UUID) error {
	return tx.Where("mesa_cliente_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).Model(&model.MesaCliente{}).
			Select("id").Where("mesa_id = ?", mesaID),
	).Delete(&model.MesaClienteDetalle{}).Error
}

func (r *mesaRepo) DeleteClientesByMesaTx(tx *gorm.DB, mesaID uuid.UUID) error {
	return tx.Where("mesa_id = ?", mesaID).Delete(&model.MesaCliente{}).Error
}

func (r *mesaRepo) DeleteMesaTx(tx *gorm.DB, mesaID uuid.UUID) error {
	return tx.Delete(&model.Mesa{}, mesaID).Error
}
