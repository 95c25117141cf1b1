package alertas

import (
	"context"
	"fmt"

	"github.com/KromaEnergia/api-vendas/internal/meta"
	"github.com/KromaEnergia/api-vendas/internal/notificacao"
	"go.uber.org/zap"
)

// Calculadora é a parte do serviço de metas usada pelo job.
type Calculadora interface {
	ListarMetasVendedores(ctx context.Context, mes, ano int) (*meta.ListaMetas, error)
}

// Enviador publica eventos; *notificacao.Notificador satisfaz.
type Enviador interface {
	Enviar(ctx context.Context, ev notificacao.Evento) error
}

// MetasEmRisco avisa, para o mês corrente, cada vendedor cujo pipeline está abaixo da meta.
type MetasEmRisco struct {
	Metas    Calculadora
	Enviador Enviador
	Logger   *zap.Logger
}

func NewMetasEmRisco(metas Calculadora, enviador Enviador, logger *zap.Logger) *MetasEmRisco {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetasEmRisco{Metas: metas, Enviador: enviador, Logger: logger}
}

// Executar devolve quantos alertas foram enviados com sucesso.
func (j *MetasEmRisco) Executar(ctx context.Context) (int, error) {
	lista, err := j.Metas.ListarMetasVendedores(ctx, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("listar metas: %w", err)
	}

	enviados := 0
	for _, res := range lista.Metas {
		if res.Status != meta.StatusRisco {
			continue
		}
		ev := notificacao.Evento{
			Tipo:       notificacao.EventoMetaEmRisco,
			Mensagem:   fmt.Sprintf("Meta de %02d/%d em risco", lista.Mes, lista.Ano),
			VendedorID: res.VendedorID,
			Dados: map[string]any{
				"valorMeta":  res.ValorMeta.StringFixed(2),
				"realizado":  res.Realizado.StringFixed(2),
				"pipeline":   res.Pipeline.StringFixed(2),
				"percentual": res.Percentual.StringFixed(1),
			},
		}
		if res.Vendedor != nil {
			ev.Dados["vendedor"] = res.Vendedor.Nome
		}
		if err := j.Enviador.Enviar(ctx, ev); err != nil {
			continue
		}
		enviados++
	}
	return enviados, nil
}

// Job adapta Executar para o Runner, registrando o resultado.
func (j *MetasEmRisco) Job(ctx context.Context) {
	n, err := j.Executar(ctx)
	if err != nil {
		j.Logger.Error("alerta de metas falhou", zap.Error(err))
		return
	}
	j.Logger.Info("alerta de metas executado", zap.Int("enviados", n))
}
