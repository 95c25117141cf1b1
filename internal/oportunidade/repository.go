package oportunidade

import (
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/utils"
	"gorm.io/gorm"
)

// Filtro restringe a listagem de oportunidades.
type Filtro struct {
	Escopos   []func(*gorm.DB) *gorm.DB
	Etapa     models.Etapa
	ClienteID uint
	Pagina    int
	PorPagina int
}

type Repository interface {
	Salvar(db *gorm.DB, o *models.Oportunidade) error
	BuscarPorID(db *gorm.DB, id uint, escopos ...func(*gorm.DB) *gorm.DB) (*models.Oportunidade, error)
	Listar(db *gorm.DB, f Filtro) ([]models.Oportunidade, int64, error)
	AtualizarEtapa(db *gorm.DB, o *models.Oportunidade) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, o *models.Oportunidade) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint, escopos ...func(*gorm.DB) *gorm.DB) (*models.Oportunidade, error) {
	var o models.Oportunidade
	err := db.
		Scopes(escopos...).
		Preload("Cliente").
		Preload("Vendedor").
		Preload("Interacoes", func(db *gorm.DB) *gorm.DB {
			return db.Order("criado_em DESC, id DESC")
		}).
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro) ([]models.Oportunidade, int64, error) {
	q := db.Model(&models.Oportunidade{}).Scopes(f.Escopos...)
	if f.Etapa != "" {
		q = q.Where("etapa = ?", f.Etapa)
	}
	if f.ClienteID != 0 {
		q = q.Where("cliente_id = ?", f.ClienteID)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Oportunidade
	err := q.
		Preload("Cliente").
		Order("criado_em DESC, id DESC").
		Scopes(utils.Paginar(f.Pagina, f.PorPagina)).
		Find(&list).Error
	return list, total, err
}

// AtualizarEtapa grava somente etapa e atualizado_em. O gorm preenche
// atualizado_em com o NowFunc da conexão e devolve o valor em o.
func (r *repositoryImpl) AtualizarEtapa(db *gorm.DB, o *models.Oportunidade) error {
	return db.Model(o).Select("Etapa", "AtualizadoEm").Updates(o).Error
}
