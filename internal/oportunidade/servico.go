package oportunidade

import (
	"context"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NovaOportunidade reúne os dados de criação. ValorEstimado zero é aceito.
type NovaOportunidade struct {
	Titulo        string
	ClienteID     uint
	VendedorID    uint
	ValorEstimado decimal.Decimal
	Descricao     string
}

// Servico concentra as regras de ciclo de vida da oportunidade.
// Cada operação grava no máximo um registro.
type Servico struct {
	DB         *gorm.DB
	Repository Repository
}

func NewServico(db *gorm.DB) *Servico {
	return &Servico{DB: db, Repository: NewRepository()}
}

// Criar grava uma nova oportunidade sempre em PROSPECCAO.
func (s *Servico) Criar(ctx context.Context, n NovaOportunidade) (*models.Oportunidade, error) {
	o := &models.Oportunidade{
		Titulo:        n.Titulo,
		ClienteID:     n.ClienteID,
		VendedorID:    n.VendedorID,
		ValorEstimado: n.ValorEstimado,
		Descricao:     n.Descricao,
		Etapa:         models.EtapaProspeccao,
	}
	if err := s.Repository.Salvar(s.DB.WithContext(ctx), o); err != nil {
		return nil, err
	}
	return o, nil
}

// AvancarEtapa move a oportunidade para a próxima etapa do funil.
func (s *Servico) AvancarEtapa(ctx context.Context, o *models.Oportunidade) (*models.Oportunidade, error) {
	switch o.Etapa {
	case models.EtapaPerdida:
		return nil, novaTransicaoError(o.Etapa, msgPerdidaNaoAvanca)
	case models.EtapaFechamento:
		return nil, novaTransicaoError(o.Etapa, msgEtapaFinal)
	}

	proxima, err := ProximaEtapa(o.Etapa)
	if err != nil {
		return nil, err
	}
	return s.gravarEtapa(ctx, o, proxima)
}

// MarcarPerdida encerra a oportunidade como perdida. Marcar de novo uma perdida é permitido.
func (s *Servico) MarcarPerdida(ctx context.Context, o *models.Oportunidade) (*models.Oportunidade, error) {
	if o.Etapa == models.EtapaFechamento {
		return nil, novaTransicaoError(o.Etapa, msgFechadaNaoPerdida)
	}
	return s.gravarEtapa(ctx, o, models.EtapaPerdida)
}

func (s *Servico) gravarEtapa(ctx context.Context, o *models.Oportunidade, nova models.Etapa) (*models.Oportunidade, error) {
	anterior := o.Etapa
	o.Etapa = nova
	if err := s.Repository.AtualizarEtapa(s.DB.WithContext(ctx), o); err != nil {
		o.Etapa = anterior
		return nil, err
	}
	return o, nil
}
