package infra

import (
	"fmt"

	"github.com/ingsebastiansierra/tiendaya/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// schema. gen_random_uuid() defaults need pgcrypto, so the extension is
// created before AutoMigrate runs.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates or updates all tables. Also used by the integration
// tests against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("create pgcrypto extension: %w", err)
	}
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Tienda{},
		&model.UsuarioTienda{},
		&model.Categoria{},
		&model.Producto{},
		&model.MetodoPago{},
		&model.SesionCaja{},
		&model.Venta{},
		&model.VentaDetalle{},
		&model.Mesa{},
		&model.MesaCliente{},
		&model.MesaClienteDetalle{},
		&model.Gasto{},
		&model.Alerta{},
		&model.Cliente{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return nil
}
