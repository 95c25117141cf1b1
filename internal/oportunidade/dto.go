package oportunidade

import (
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/shopspring/decimal"
)

type CriarOportunidadeRequest struct {
	Titulo        string          `json:"titulo"`
	ClienteID     uint            `json:"clienteId"`
	ValorEstimado decimal.Decimal `json:"valorEstimado"`
	Descricao     string          `json:"descricao"`
}

type InteracaoItemDTO struct {
	ID          uint      `json:"id"`
	Tipo        string    `json:"tipo"`
	Descricao   string    `json:"descricao"`
	CriadoPorID uint      `json:"criadoPorId"`
	CriadoEm    time.Time `json:"criadoEm"`
}

// OportunidadeDTO é a representação pública; valores monetários com duas casas.
type OportunidadeDTO struct {
	ID            uint               `json:"id"`
	Titulo        string             `json:"titulo"`
	ClienteID     uint               `json:"clienteId"`
	Cliente       string             `json:"cliente,omitempty"`
	VendedorID    uint               `json:"vendedorId"`
	Vendedor      string             `json:"vendedor,omitempty"`
	ValorEstimado string             `json:"valorEstimado"`
	Descricao     string             `json:"descricao"`
	Etapa         models.Etapa       `json:"etapa"`
	CriadoEm      time.Time          `json:"criadoEm"`
	AtualizadoEm  time.Time          `json:"atualizadoEm"`
	Interacoes    []InteracaoItemDTO `json:"interacoes,omitempty"`
}

func ToDTO(o *models.Oportunidade) OportunidadeDTO {
	dto := OportunidadeDTO{
		ID:            o.ID,
		Titulo:        o.Titulo,
		ClienteID:     o.ClienteID,
		VendedorID:    o.VendedorID,
		ValorEstimado: o.ValorEstimado.StringFixed(2),
		Descricao:     o.Descricao,
		Etapa:         o.Etapa,
		CriadoEm:      o.CriadoEm,
		AtualizadoEm:  o.AtualizadoEm,
	}
	if o.Cliente != nil {
		dto.Cliente = o.Cliente.Nome
	}
	if o.Vendedor != nil {
		dto.Vendedor = o.Vendedor.Nome
	}
	for _, i := range o.Interacoes {
		dto.Interacoes = append(dto.Interacoes, InteracaoItemDTO{
			ID:          i.ID,
			Tipo:        string(i.Tipo),
			Descricao:   i.Descricao,
			CriadoPorID: i.CriadoPorID,
			CriadoEm:    i.CriadoEm,
		})
	}
	return dto
}

func ToDTOs(list []models.Oportunidade) []OportunidadeDTO {
	out := make([]OportunidadeDTO, 0, len(list))
	for i := range list {
		out = append(out, ToDTO(&list[i]))
	}
	return out
}
