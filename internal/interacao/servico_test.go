package interacao

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/utils/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type ambiente struct {
	db           *gorm.DB
	relogio      *dbtest.Relogio
	servico      *Servico
	vendedor     *models.Usuario
	oportunidade *models.Oportunidade
}

func novoAmbiente(t *testing.T) *ambiente {
	t.Helper()
	relogio := dbtest.NewRelogio(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	db := dbtest.Open(t, relogio)
	vendedor := dbtest.Usuario(t, db, "ana", models.PapelVendedor)
	cli := dbtest.Cliente(t, db, "Acme", vendedor.ID)
	criada := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	o := dbtest.Oportunidade(t, db, vendedor.ID, cli.ID, "800.00", models.EtapaProposta, criada, criada)
	return &ambiente{db: db, relogio: relogio, servico: NewServico(db), vendedor: vendedor, oportunidade: o}
}

func TestRegistrarGravaInteracao(t *testing.T) {
	a := novoAmbiente(t)

	i, err := a.servico.Registrar(context.Background(), a.oportunidade, models.InteracaoLigacao, "Retornar na segunda", a.vendedor)
	require.NoError(t, err)
	require.NotZero(t, i.ID)

	var gravada models.Interacao
	require.NoError(t, a.db.First(&gravada, i.ID).Error)
	assert.Equal(t, a.oportunidade.ID, gravada.OportunidadeID)
	assert.Equal(t, a.vendedor.ID, gravada.CriadoPorID)
	assert.Equal(t, models.InteracaoLigacao, gravada.Tipo)
	assert.Equal(t, "Retornar na segunda", gravada.Descricao)
	assert.True(t, a.relogio.Agora().Equal(gravada.CriadoEm), gravada.CriadoEm.String())
}

func TestRegistrarNaoAlteraOportunidade(t *testing.T) {
	a := novoAmbiente(t)

	_, err := a.servico.Registrar(context.Background(), a.oportunidade, models.InteracaoReuniao, "Apresentação", a.vendedor)
	require.NoError(t, err)
	_, err = a.servico.Registrar(context.Background(), a.oportunidade, models.InteracaoEmail, "Proposta enviada", a.vendedor)
	require.NoError(t, err)

	var o models.Oportunidade
	require.NoError(t, a.db.First(&o, a.oportunidade.ID).Error)
	assert.Equal(t, models.EtapaProposta, o.Etapa)
	assert.True(t, a.oportunidade.AtualizadoEm.Equal(o.AtualizadoEm), o.AtualizadoEm.String())
	assert.Equal(t, a.oportunidade.ValorEstimado.StringFixed(2), o.ValorEstimado.StringFixed(2))

	list, err := a.servico.Repository.ListarPorOportunidade(a.db, a.oportunidade.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRegistrarExigeOportunidadeEUsuario(t *testing.T) {
	a := novoAmbiente(t)
	ctx := context.Background()

	i, err := a.servico.Registrar(ctx, nil, models.InteracaoOutro, "x", a.vendedor)
	assert.Nil(t, i)
	assert.ErrorIs(t, err, ErrParametrosObrigatorios)

	i, err = a.servico.Registrar(ctx, a.oportunidade, models.InteracaoOutro, "x", nil)
	assert.Nil(t, i)
	assert.ErrorIs(t, err, ErrParametrosObrigatorios)

	var total int64
	require.NoError(t, a.db.Model(&models.Interacao{}).Count(&total).Error)
	assert.Zero(t, total)
}

// repoFalho simula falha do banco na gravação.
type repoFalho struct {
	Repository
	err error
}

func (r repoFalho) Criar(*gorm.DB, *models.Interacao) error {
	return r.err
}

func TestRegistrarPropagaErroDoBanco(t *testing.T) {
	a := novoAmbiente(t)
	falha := errors.New("disco cheio")
	a.servico.Repository = repoFalho{Repository: NewRepository(), err: falha}

	i, err := a.servico.Registrar(context.Background(), a.oportunidade, models.InteracaoVisita, "Visita técnica", a.vendedor)
	assert.Nil(t, i)
	assert.Same(t, falha, err)
}
