package interacao

import (
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
)

type CriarInteracaoRequest struct {
	OportunidadeID uint                 `json:"oportunidadeId"`
	Tipo           models.TipoInteracao `json:"tipo"`
	Descricao      string               `json:"descricao"`
}

type InteracaoDTO struct {
	ID             uint                 `json:"id"`
	OportunidadeID uint                 `json:"oportunidadeId"`
	Tipo           models.TipoInteracao `json:"tipo"`
	Descricao      string               `json:"descricao"`
	CriadoPorID    uint                 `json:"criadoPorId"`
	CriadoEm       time.Time            `json:"criadoEm"`
}

func ToDTO(i *models.Interacao) InteracaoDTO {
	return InteracaoDTO{
		ID:             i.ID,
		OportunidadeID: i.OportunidadeID,
		Tipo:           i.Tipo,
		Descricao:      i.Descricao,
		CriadoPorID:    i.CriadoPorID,
		CriadoEm:       i.CriadoEm,
	}
}
