package db

import (
	"github.com/KromaEnergia/api-vendas/internal/models"
	"gorm.io/gorm"
)

// AutoMigrate cria ou ajusta as tabelas de todos os modelos.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Cliente{},
		&models.Oportunidade{},
		&models.Interacao{},
		&models.MetaComercial{},
	)
}
