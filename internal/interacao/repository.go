package interacao

import (
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/utils"
	"gorm.io/gorm"
)

// Filtro restringe a listagem de interações.
type Filtro struct {
	Escopos        []func(*gorm.DB) *gorm.DB
	OportunidadeID uint
	Pagina         int
	PorPagina      int
}

type Repository interface {
	Criar(db *gorm.DB, i *models.Interacao) error
	Listar(db *gorm.DB, f Filtro) ([]models.Interacao, int64, error)
	ListarPorOportunidade(db *gorm.DB, oportunidadeID uint) ([]models.Interacao, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, i *models.Interacao) error {
	return db.Create(i).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro) ([]models.Interacao, int64, error) {
	q := db.Model(&models.Interacao{}).Scopes(f.Escopos...)
	if f.OportunidadeID != 0 {
		q = q.Where("oportunidade_id = ?", f.OportunidadeID)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Interacao
	err := q.
		Order("criado_em DESC, id DESC").
		Scopes(utils.Paginar(f.Pagina, f.PorPagina)).
		Find(&list).Error
	return list, total, err
}

func (r *repositoryImpl) ListarPorOportunidade(db *gorm.DB, oportunidadeID uint) ([]models.Interacao, error) {
	var list []models.Interacao
	err := db.Where("oportunidade_id = ?", oportunidadeID).
		Order("criado_em DESC, id DESC").
		Find(&list).Error
	return list, err
}
