package meta

import (
	"context"
	"errors"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var cem = decimal.NewFromInt(100)

// ResultadoMeta é a visão de desempenho de um vendedor num mês.
// Meta é nil quando o vendedor não tem meta cadastrada no período.
type ResultadoMeta struct {
	Meta       *models.MetaComercial
	VendedorID uint
	Vendedor   *models.Usuario
	ValorMeta  decimal.Decimal
	Realizado  decimal.Decimal
	Pipeline   decimal.Decimal
	Percentual decimal.Decimal
	Status     Status
	Mes        int
	Ano        int
}

// ListaMetas é a visão do gestor: todas as metas do período já calculadas.
type ListaMetas struct {
	Metas []ResultadoMeta
	Mes   int
	Ano   int
}

// Servico calcula realizado, pipeline e status das metas comerciais.
type Servico struct {
	DB         *gorm.DB
	Repository Repository
	// Local é o fuso em que os meses são delimitados.
	Local *time.Location
	// Agora é a fonte da data corrente usada quando mês/ano são omitidos.
	Agora func() time.Time
}

func NewServico(db *gorm.DB, loc *time.Location) *Servico {
	if loc == nil {
		loc = time.UTC
	}
	return &Servico{DB: db, Repository: NewRepository(), Local: loc, Agora: time.Now}
}

// Periodo resolve mês/ano omitidos (zero) com a data corrente no fuso do serviço.
func (s *Servico) Periodo(mes, ano int) Periodo {
	return ResolverPeriodo(s.Agora().In(s.Local), mes, ano)
}

// CalcularRealizado soma as vendas fechadas do vendedor no mês, pela data de atualização.
// Um mês fora de 1..12 não contém nenhuma venda e soma zero.
func (s *Servico) CalcularRealizado(ctx context.Context, vendedorID uint, mes, ano int) (decimal.Decimal, error) {
	p := Periodo{Mes: mes, Ano: ano}
	if !p.Valido() {
		return decimal.Zero, nil
	}
	inicio, fim := p.Intervalo(s.Local)
	return s.Repository.SomarRealizado(s.DB.WithContext(ctx), vendedorID, inicio, fim)
}

// CalcularPipeline soma as oportunidades abertas do vendedor criadas no mês.
// Um mês fora de 1..12 soma zero.
func (s *Servico) CalcularPipeline(ctx context.Context, vendedorID uint, mes, ano int) (decimal.Decimal, error) {
	p := Periodo{Mes: mes, Ano: ano}
	if !p.Valido() {
		return decimal.Zero, nil
	}
	inicio, fim := p.Intervalo(s.Local)
	return s.Repository.SomarPipeline(s.DB.WithContext(ctx), vendedorID, inicio, fim)
}

// ObterMetaVendedor monta meta, realizado, pipeline, percentual e status do vendedor.
// mes ou ano iguais a zero usam o mês corrente. Um período inválido não tem meta
// e resulta em somas zeradas.
func (s *Servico) ObterMetaVendedor(ctx context.Context, vendedorID uint, mes, ano int) (*ResultadoMeta, error) {
	p := s.Periodo(mes, ano)

	valorMeta := decimal.Zero
	var m *models.MetaComercial
	var err error
	if p.Valido() {
		m, err = s.Repository.BuscarPorVendedorPeriodo(s.DB.WithContext(ctx), vendedorID, p)
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = nil
	case err != nil:
		return nil, err
	case m != nil:
		valorMeta = m.ValorMeta
	}

	realizado, err := s.CalcularRealizado(ctx, vendedorID, p.Mes, p.Ano)
	if err != nil {
		return nil, err
	}
	pipeline, err := s.CalcularPipeline(ctx, vendedorID, p.Mes, p.Ano)
	if err != nil {
		return nil, err
	}

	percentual := decimal.Zero
	if valorMeta.IsPositive() {
		percentual = realizado.Div(valorMeta).Mul(cem).RoundBank(1)
	}

	return &ResultadoMeta{
		Meta:       m,
		VendedorID: vendedorID,
		ValorMeta:  valorMeta,
		Realizado:  realizado,
		Pipeline:   pipeline,
		Percentual: percentual,
		Status:     CalcularStatus(valorMeta, pipeline),
		Mes:        p.Mes,
		Ano:        p.Ano,
	}, nil
}

// ListarMetasVendedores calcula o resultado de cada meta cadastrada no período.
func (s *Servico) ListarMetasVendedores(ctx context.Context, mes, ano int) (*ListaMetas, error) {
	p := s.Periodo(mes, ano)
	out := &ListaMetas{Metas: []ResultadoMeta{}, Mes: p.Mes, Ano: p.Ano}
	if !p.Valido() {
		return out, nil
	}

	metas, err := s.Repository.ListarPorPeriodo(s.DB.WithContext(ctx), p)
	if err != nil {
		return nil, err
	}

	out.Metas = make([]ResultadoMeta, 0, len(metas))
	for _, m := range metas {
		res, err := s.ObterMetaVendedor(ctx, m.VendedorID, p.Mes, p.Ano)
		if err != nil {
			return nil, err
		}
		res.Vendedor = m.Vendedor
		out.Metas = append(out.Metas, *res)
	}
	return out, nil
}
