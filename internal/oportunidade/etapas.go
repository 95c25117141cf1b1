package oportunidade

import (
	"fmt"

	"github.com/KromaEnergia/api-vendas/internal/models"
)

// ordemEtapas é a sequência fixa do funil. PERDIDA não faz parte dela.
var ordemEtapas = [...]models.Etapa{
	models.EtapaProspeccao,
	models.EtapaQualificacao,
	models.EtapaProposta,
	models.EtapaNegociacao,
	models.EtapaFechamento,
}

// OrdemEtapas devolve uma cópia da sequência do funil.
func OrdemEtapas() []models.Etapa {
	out := make([]models.Etapa, len(ordemEtapas))
	copy(out, ordemEtapas[:])
	return out
}

// IndiceEtapa devolve a posição da etapa na ordem do funil.
func IndiceEtapa(e models.Etapa) (int, bool) {
	for i, atual := range ordemEtapas {
		if atual == e {
			return i, true
		}
	}
	return -1, false
}

// ProximaEtapa devolve a etapa seguinte na ordem do funil.
// Etapas fora da tabela resultam em ErrEtapaDesconhecida; a última etapa não tem próxima.
func ProximaEtapa(e models.Etapa) (models.Etapa, error) {
	idx, ok := IndiceEtapa(e)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrEtapaDesconhecida, e)
	}
	if idx == len(ordemEtapas)-1 {
		return "", &TransicaoError{Etapa: e, Motivo: msgEtapaFinal}
	}
	return ordemEtapas[idx+1], nil
}
