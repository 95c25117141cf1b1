package meta

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverPeriodo(t *testing.T) {
	agora := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, Periodo{Mes: 6, Ano: 2024}, ResolverPeriodo(agora, 0, 0))
	assert.Equal(t, Periodo{Mes: 3, Ano: 2024}, ResolverPeriodo(agora, 3, 0))
	assert.Equal(t, Periodo{Mes: 6, Ano: 2023}, ResolverPeriodo(agora, 0, 2023))
	assert.Equal(t, Periodo{Mes: 12, Ano: 2022}, ResolverPeriodo(agora, 12, 2022))
}

func TestPeriodoValido(t *testing.T) {
	assert.True(t, Periodo{Mes: 1, Ano: 2024}.Valido())
	assert.True(t, Periodo{Mes: 12, Ano: 2024}.Valido())
	assert.False(t, Periodo{Mes: 0, Ano: 2024}.Valido())
	assert.False(t, Periodo{Mes: 13, Ano: 2024}.Valido())
	assert.False(t, Periodo{Mes: 5, Ano: 0}.Valido())
}

func TestIntervalo(t *testing.T) {
	inicio, fim := Periodo{Mes: 12, Ano: 2023}.Intervalo(time.UTC)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), inicio)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), fim)

	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	inicio, fim = Periodo{Mes: 6, Ano: 2024}.Intervalo(sp)
	// junho/2024 em São Paulo (UTC-3) começa às 03:00 UTC
	assert.Equal(t, time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC), inicio)
	assert.Equal(t, time.Date(2024, 7, 1, 3, 0, 0, 0, time.UTC), fim)
	assert.Equal(t, time.UTC, inicio.Location())
}
