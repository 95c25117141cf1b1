// Package dbtest abre bancos sqlite em memória com o schema da aplicação para testes.
package dbtest

import (
	"sync"
	"testing"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	appdb "github.com/KromaEnergia/api-vendas/internal/utils/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Relogio é um relógio ajustável usado como NowFunc do gorm e como Agora dos serviços.
type Relogio struct {
	mu    sync.Mutex
	agora time.Time
}

func NewRelogio(t time.Time) *Relogio {
	return &Relogio{agora: t.UTC()}
}

func (r *Relogio) Agora() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.agora
}

func (r *Relogio) Definir(t time.Time) {
	r.mu.Lock()
	r.agora = t.UTC()
	r.mu.Unlock()
}

// Open cria um banco sqlite em memória já migrado. Todos os timestamps
// automáticos vêm de relogio.
func Open(t testing.TB, relogio *Relogio) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: relogio.Agora,
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// ":memory:" é por conexão; uma só mantém o mesmo banco durante o teste.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, appdb.AutoMigrate(gdb))
	return gdb
}

// Usuario grava um usuário com o papel informado.
func Usuario(t testing.TB, db *gorm.DB, nome string, papel models.Papel) *models.Usuario {
	t.Helper()
	u := &models.Usuario{Nome: nome, Email: nome + "@exemplo.com.br", Senha: "x", Papel: papel, Ativo: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

// Cliente grava um cliente criado por criadoPor.
func Cliente(t testing.TB, db *gorm.DB, nome string, criadoPor uint) *models.Cliente {
	t.Helper()
	c := &models.Cliente{Nome: nome, CriadoPorID: criadoPor}
	require.NoError(t, db.Create(c).Error)
	return c
}

// Oportunidade grava uma oportunidade com etapa e timestamps explícitos.
func Oportunidade(t testing.TB, db *gorm.DB, vendedorID, clienteID uint, valor string, etapa models.Etapa, criadoEm, atualizadoEm time.Time) *models.Oportunidade {
	t.Helper()
	o := &models.Oportunidade{
		Titulo:        "Oportunidade " + valor,
		ClienteID:     clienteID,
		VendedorID:    vendedorID,
		ValorEstimado: decimal.RequireFromString(valor),
		Etapa:         etapa,
		CriadoEm:      criadoEm.UTC(),
		AtualizadoEm:  atualizadoEm.UTC(),
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

// Meta grava a meta do vendedor no período.
func Meta(t testing.TB, db *gorm.DB, vendedorID uint, mes, ano int, valor string) *models.MetaComercial {
	t.Helper()
	m := &models.MetaComercial{VendedorID: vendedorID, Mes: mes, Ano: ano, ValorMeta: decimal.RequireFromString(valor)}
	require.NoError(t, db.Create(m).Error)
	return m
}
