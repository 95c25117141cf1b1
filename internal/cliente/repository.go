package cliente

import (
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/utils"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, c *models.Cliente) error
	BuscarPorID(db *gorm.DB, id uint, escopos ...func(*gorm.DB) *gorm.DB) (*models.Cliente, error)
	Listar(db *gorm.DB, pagina int, escopos ...func(*gorm.DB) *gorm.DB) ([]models.Cliente, int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *models.Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint, escopos ...func(*gorm.DB) *gorm.DB) (*models.Cliente, error) {
	var c models.Cliente
	if err := db.Scopes(escopos...).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, pagina int, escopos ...func(*gorm.DB) *gorm.DB) ([]models.Cliente, int64, error) {
	q := db.Model(&models.Cliente{}).Scopes(escopos...).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Cliente
	err := q.Order("nome ASC, id ASC").Scopes(utils.Paginar(pagina, utils.PorPaginaPadrao)).Find(&list).Error
	return list, total, err
}
