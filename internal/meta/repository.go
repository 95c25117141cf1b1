package meta

import (
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsula as consultas de metas e os agregados de oportunidades.
type Repository interface {
	BuscarPorVendedorPeriodo(db *gorm.DB, vendedorID uint, p Periodo) (*models.MetaComercial, error)
	ListarPorPeriodo(db *gorm.DB, p Periodo) ([]models.MetaComercial, error)
	Salvar(db *gorm.DB, m *models.MetaComercial) error
	SomarRealizado(db *gorm.DB, vendedorID uint, inicio, fim time.Time) (decimal.Decimal, error)
	SomarPipeline(db *gorm.DB, vendedorID uint, inicio, fim time.Time) (decimal.Decimal, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// BuscarPorVendedorPeriodo retorna gorm.ErrRecordNotFound quando não há meta.
func (r *repositoryImpl) BuscarPorVendedorPeriodo(db *gorm.DB, vendedorID uint, p Periodo) (*models.MetaComercial, error) {
	var m models.MetaComercial
	err := db.
		Where("vendedor_id = ? AND mes = ? AND ano = ?", vendedorID, p.Mes, p.Ano).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListarPorPeriodo traz as metas do mês com o vendedor carregado, em ordem de vendedor.
func (r *repositoryImpl) ListarPorPeriodo(db *gorm.DB, p Periodo) ([]models.MetaComercial, error) {
	var list []models.MetaComercial
	err := db.
		Preload("Vendedor").
		Where("mes = ? AND ano = ?", p.Mes, p.Ano).
		Order("vendedor_id ASC, id ASC").
		Find(&list).Error
	return list, err
}

// Salvar cria ou substitui o valor da meta do vendedor no período.
func (r *repositoryImpl) Salvar(db *gorm.DB, m *models.MetaComercial) error {
	return db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendedor_id"}, {Name: "mes"}, {Name: "ano"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor_meta", "updated_at"}),
		}).
		Create(m).Error
}

// SomarRealizado soma as oportunidades em FECHAMENTO atualizadas em [inicio, fim).
func (r *repositoryImpl) SomarRealizado(db *gorm.DB, vendedorID uint, inicio, fim time.Time) (decimal.Decimal, error) {
	q := db.
		Model(&models.Oportunidade{}).
		Where("vendedor_id = ?", vendedorID).
		Where("etapa = ?", models.EtapaFechamento).
		Where("atualizado_em >= ? AND atualizado_em < ?", inicio, fim)
	return somarValor(q)
}

// SomarPipeline soma as oportunidades abertas criadas em [inicio, fim).
func (r *repositoryImpl) SomarPipeline(db *gorm.DB, vendedorID uint, inicio, fim time.Time) (decimal.Decimal, error) {
	q := db.
		Model(&models.Oportunidade{}).
		Where("vendedor_id = ?", vendedorID).
		Where("criado_em >= ? AND criado_em < ?", inicio, fim).
		Where("etapa NOT IN ?", []models.Etapa{models.EtapaFechamento, models.EtapaPerdida})
	return somarValor(q)
}

func somarValor(q *gorm.DB) (decimal.Decimal, error) {
	var res struct {
		Total decimal.Decimal
	}
	if err := q.Select("COALESCE(SUM(valor_estimado), 0) AS total").Scan(&res).Error; err != nil {
		return decimal.Zero, err
	}
	return res.Total, nil
}
