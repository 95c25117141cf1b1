package auth

import (
	"testing"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/utils/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscopo(t *testing.T) {
	db := dbtest.Open(t, dbtest.NewRelogio(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	ana := dbtest.Usuario(t, db, "ana", models.PapelVendedor)
	bia := dbtest.Usuario(t, db, "bia", models.PapelVendedor)
	gestor := dbtest.Usuario(t, db, "gil", models.PapelGestor)
	dbtest.Cliente(t, db, "A1", ana.ID)
	dbtest.Cliente(t, db, "A2", ana.ID)
	dbtest.Cliente(t, db, "B1", bia.ID)

	contar := func(u *models.Usuario) int64 {
		var n int64
		require.NoError(t, db.Model(&models.Cliente{}).Scopes(Escopo(u, "criado_por_id")).Count(&n).Error)
		return n
	}
	assert.Equal(t, int64(2), contar(ana))
	assert.Equal(t, int64(1), contar(bia))
	assert.Equal(t, int64(3), contar(gestor))
	assert.Equal(t, int64(0), contar(nil))
}

func TestPodeAcessar(t *testing.T) {
	vendedor := &models.Usuario{ID: 1, Papel: models.PapelVendedor}
	gestor := &models.Usuario{ID: 2, Papel: models.PapelGestor}

	assert.True(t, PodeAcessar(vendedor, 1))
	assert.False(t, PodeAcessar(vendedor, 3))
	assert.True(t, PodeAcessar(gestor, 3))
	assert.False(t, PodeAcessar(nil, 1))
}
