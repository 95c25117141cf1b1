package usuario

import (
	"context"
	"testing"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/auth"
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/utils/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func novoServico(t *testing.T) *Servico {
	t.Helper()
	db := dbtest.Open(t, dbtest.NewRelogio(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	emissor, err := auth.NewEmissor("segredo", time.Hour)
	require.NoError(t, err)
	s := NewServico(db, emissor)
	s.CustoSenha = bcrypt.MinCost
	return s
}

func TestCriarEAutenticar(t *testing.T) {
	s := novoServico(t)
	ctx := context.Background()

	u, err := s.Criar(ctx, NovoUsuario{Nome: "Ana", Email: " Ana@Kroma.com.br ", Senha: "senha-forte", Papel: models.PapelVendedor})
	require.NoError(t, err)
	assert.Equal(t, "ana@kroma.com.br", u.Email)
	assert.True(t, u.Ativo)
	assert.NotEqual(t, "senha-forte", u.Senha)

	token, logado, err := s.Autenticar(ctx, "ana@kroma.com.br", "senha-forte")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logado.ID)

	claims, err := s.Emissor.ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UsuarioID)
	assert.Equal(t, models.PapelVendedor, claims.Papel)
}

func TestAutenticarFalha(t *testing.T) {
	s := novoServico(t)
	ctx := context.Background()
	_, err := s.Criar(ctx, NovoUsuario{Nome: "Ana", Email: "ana@kroma.com.br", Senha: "senha-forte", Papel: models.PapelVendedor})
	require.NoError(t, err)

	_, _, err = s.Autenticar(ctx, "ana@kroma.com.br", "errada")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)

	_, _, err = s.Autenticar(ctx, "ninguem@kroma.com.br", "senha-forte")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)

	require.NoError(t, s.DB.Model(&models.Usuario{}).Where("email = ?", "ana@kroma.com.br").Update("ativo", false).Error)
	_, _, err = s.Autenticar(ctx, "ana@kroma.com.br", "senha-forte")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestCriarValida(t *testing.T) {
	s := novoServico(t)
	ctx := context.Background()

	_, err := s.Criar(ctx, NovoUsuario{Email: "invalido", Senha: "senha-forte", Papel: models.PapelVendedor})
	assert.ErrorIs(t, err, ErrDadosInvalidos)

	_, err = s.Criar(ctx, NovoUsuario{Email: "a@b.com", Senha: "curta", Papel: models.PapelVendedor})
	assert.ErrorIs(t, err, ErrDadosInvalidos)

	_, err = s.Criar(ctx, NovoUsuario{Email: "a@b.com", Senha: "senha-forte", Papel: "ADMIN"})
	assert.ErrorIs(t, err, ErrDadosInvalidos)

	_, err = s.Criar(ctx, NovoUsuario{Email: "a@b.com", Senha: "senha-forte", Papel: models.PapelGestor})
	require.NoError(t, err)
	_, err = s.Criar(ctx, NovoUsuario{Email: "A@B.com", Senha: "senha-forte", Papel: models.PapelVendedor})
	assert.ErrorIs(t, err, ErrEmailEmUso)
}

func TestCriarGestor(t *testing.T) {
	s := novoServico(t)

	u, err := s.CriarGestor(context.Background(), "chefe@kroma.com.br:senha-do-chefe")
	require.NoError(t, err)
	assert.Equal(t, models.PapelGestor, u.Papel)
	assert.Equal(t, "chefe@kroma.com.br", u.Nome)

	_, err = s.CriarGestor(context.Background(), "sem-separador")
	assert.ErrorIs(t, err, ErrDadosInvalidos)
}

func TestListarPorPapel(t *testing.T) {
	s := novoServico(t)
	dbtest.Usuario(t, s.DB, "bia", models.PapelVendedor)
	dbtest.Usuario(t, s.DB, "ana", models.PapelVendedor)
	dbtest.Usuario(t, s.DB, "gil", models.PapelGestor)

	list, err := s.Repository.ListarPorPapel(s.DB, models.PapelVendedor)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ana", list[0].Nome)
	assert.Equal(t, "bia", list[1].Nome)
}

func TestAutenticarRegravaHashComCustoAntigo(t *testing.T) {
	s := novoServico(t)
	ctx := context.Background()
	u, err := s.Criar(ctx, NovoUsuario{Nome: "Ana", Email: "ana@kroma.com.br", Senha: "senha-forte", Papel: models.PapelVendedor})
	require.NoError(t, err)

	s.CustoSenha = bcrypt.MinCost + 1
	_, logado, err := s.Autenticar(ctx, "ana@kroma.com.br", "senha-forte")
	require.NoError(t, err)

	var gravado models.Usuario
	require.NoError(t, s.DB.First(&gravado, u.ID).Error)
	assert.NotEqual(t, u.Senha, gravado.Senha)
	assert.Equal(t, gravado.Senha, logado.Senha)
	custo, err := bcrypt.Cost([]byte(gravado.Senha))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, custo)

	// com o custo já atualizado o hash não muda
	_, _, err = s.Autenticar(ctx, "ana@kroma.com.br", "senha-forte")
	require.NoError(t, err)
	var depois models.Usuario
	require.NoError(t, s.DB.First(&depois, u.ID).Error)
	assert.Equal(t, gravado.Senha, depois.Senha)
}

func TestCarregar(t *testing.T) {
	s := novoServico(t)
	ana := dbtest.Usuario(t, s.DB, "ana", models.PapelVendedor)

	u, err := s.Carregar(context.Background(), ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.ID, u.ID)
	assert.Equal(t, models.PapelVendedor, u.Papel)
	assert.True(t, u.Ativo)

	_, err = s.Carregar(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
