package repository

import (
	"context"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository is the data access contract for identities and their
// tienda memberships. Services depend on this interface, not on the
// concrete GORM implementation, enabling unit testing via in-memory stubs.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error

	// Memberships
	ListMembresias(ctx context.Context, usuarioID uuid.UUID) ([]model.UsuarioTienda, error)
	FindMembresia(ctx context.Context, usuarioID, tiendaID uuid.UUID) (*model.UsuarioTienda, error)
	CreateMembresiaTx(tx *gorm.DB, m *model.UsuarioTienda) error
	DesactivarMembresia(ctx context.Context, id uuid.UUID) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) ListMembresias(ctx context.Context, usuarioID uuid.UUID) ([]model.UsuarioTienda, error) {
	var membresias []model.UsuarioTienda
	err := r.db.WithContext(ctx).
		Preload("Tienda").
		Where("usuario_id = ? AND activo = true", usuarioID).
		Order("created_at ASC").
		Find(&membresias).Error
	return membresias, err
}

func (r *usuarioRepo) FindMembresia(ctx context.Context, usuarioID, tiendaID uuid.UUID) (*model.UsuarioTienda, error) {
	var m model.UsuarioTienda
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND tienda_id = ? AND activo = true", usuarioID, tiendaID).
		First(&m).Error
	return &m, err
}

func (r *usuarioRepo) CreateMembresiaTx(tx *gorm.DB, m *model.UsuarioTienda) error {
	return tx.Create(m).Error
}

func (r *usuarioRepo) DesactivarMembresia(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.UsuarioTienda{}).
		Where("id = ?", id).Update("activo", false).Error
}
