package alertas

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/meta"
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/notificacao"
	"github.com/KromaEnergia/api-vendas/internal/utils/dbtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type calculadoraFixa struct {
	lista *meta.ListaMetas
	err   error
}

func (c calculadoraFixa) ListarMetasVendedores(context.Context, int, int) (*meta.ListaMetas, error) {
	return c.lista, c.err
}

type enviadorMemoria struct {
	eventos []notificacao.Evento
	falhaEm map[uint]bool
}

func (e *enviadorMemoria) Enviar(_ context.Context, ev notificacao.Evento) error {
	if e.falhaEm[ev.VendedorID] {
		return errors.New("webhook fora do ar")
	}
	e.eventos = append(e.eventos, ev)
	return nil
}

func resultado(vendedorID uint, status meta.Status) meta.ResultadoMeta {
	return meta.ResultadoMeta{
		VendedorID: vendedorID,
		Vendedor:   &models.Usuario{ID: vendedorID, Nome: "v"},
		ValorMeta:  decimal.NewFromInt(1000),
		Status:     status,
		Mes:        6,
		Ano:        2024,
	}
}

func TestExecutarAvisaSoQuemEstaEmRisco(t *testing.T) {
	calc := calculadoraFixa{lista: &meta.ListaMetas{Mes: 6, Ano: 2024, Metas: []meta.ResultadoMeta{
		resultado(1, meta.StatusOK),
		resultado(2, meta.StatusRisco),
		resultado(3, meta.StatusAtencao),
		resultado(4, meta.StatusRisco),
	}}}
	env := &enviadorMemoria{}

	n, err := NewMetasEmRisco(calc, env, zap.NewNop()).Executar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, env.eventos, 2)
	assert.Equal(t, uint(2), env.eventos[0].VendedorID)
	assert.Equal(t, uint(4), env.eventos[1].VendedorID)
	assert.Equal(t, notificacao.EventoMetaEmRisco, env.eventos[0].Tipo)
	assert.Equal(t, "Meta de 06/2024 em risco", env.eventos[0].Mensagem)
	assert.Equal(t, "1000.00", env.eventos[0].Dados["valorMeta"])
}

func TestExecutarContinuaAposFalhaDeEnvio(t *testing.T) {
	calc := calculadoraFixa{lista: &meta.ListaMetas{Mes: 6, Ano: 2024, Metas: []meta.ResultadoMeta{
		resultado(1, meta.StatusRisco),
		resultado(2, meta.StatusRisco),
	}}}
	env := &enviadorMemoria{falhaEm: map[uint]bool{1: true}}

	n, err := NewMetasEmRisco(calc, env, nil).Executar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExecutarPropagaErroDoCalculo(t *testing.T) {
	falha := errors.New("banco fora")
	_, err := NewMetasEmRisco(calculadoraFixa{err: falha}, &enviadorMemoria{}, nil).Executar(context.Background())
	assert.ErrorIs(t, err, falha)
}

func TestExecutarComServicoDeMetas(t *testing.T) {
	relogio := dbtest.NewRelogio(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	db := dbtest.Open(t, relogio)
	ana := dbtest.Usuario(t, db, "ana", models.PapelVendedor)
	bia := dbtest.Usuario(t, db, "bia", models.PapelVendedor)
	cli := dbtest.Cliente(t, db, "Acme", ana.ID)
	dbtest.Meta(t, db, ana.ID, 6, 2024, "1000")
	dbtest.Meta(t, db, bia.ID, 6, 2024, "1000")
	dbtest.Oportunidade(t, db, ana.ID, cli.ID, "2000", models.EtapaProposta, relogio.Agora(), relogio.Agora())

	s := meta.NewServico(db, time.UTC)
	s.Agora = relogio.Agora
	env := &enviadorMemoria{}

	n, err := NewMetasEmRisco(s, env, nil).Executar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, bia.ID, env.eventos[0].VendedorID)
	assert.Equal(t, "bia", env.eventos[0].Dados["vendedor"])
}

func TestRunnerRecusaExpressaoInvalida(t *testing.T) {
	r := NewRunner(context.Background(), time.UTC, nil)
	_, err := r.Add("isso não é cron", func(context.Context) {})
	assert.Error(t, err)

	_, err = r.Add("0 8 * * 1-5", func(context.Context) {})
	assert.NoError(t, err)
	r.Start()
	r.Stop()
}
