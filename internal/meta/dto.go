package meta

import (
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/shopspring/decimal"
)

type SalvarMetaRequest struct {
	VendedorID uint            `json:"vendedorId"`
	Mes        int             `json:"mes"`
	Ano        int             `json:"ano"`
	ValorMeta  decimal.Decimal `json:"valorMeta"`
}

// MetaDTO formata valores com duas casas e o percentual com uma.
type MetaDTO struct {
	MetaID     *uint  `json:"metaId"`
	VendedorID uint   `json:"vendedorId"`
	Vendedor   string `json:"vendedor,omitempty"`
	Mes        int    `json:"mes"`
	NomeMes    string `json:"nomeMes"`
	Ano        int    `json:"ano"`
	ValorMeta  string `json:"valorMeta"`
	Realizado  string `json:"realizado"`
	Pipeline   string `json:"pipeline"`
	Percentual string `json:"percentual"`
	Status     Status `json:"status"`
}

type ListaMetasDTO struct {
	Mes     int       `json:"mes"`
	NomeMes string    `json:"nomeMes"`
	Ano     int       `json:"ano"`
	Metas   []MetaDTO `json:"metas"`
}

func ToDTO(r *ResultadoMeta) MetaDTO {
	dto := MetaDTO{
		VendedorID: r.VendedorID,
		Mes:        r.Mes,
		NomeMes:    models.NomeMes(r.Mes),
		Ano:        r.Ano,
		ValorMeta:  r.ValorMeta.StringFixed(2),
		Realizado:  r.Realizado.StringFixed(2),
		Pipeline:   r.Pipeline.StringFixed(2),
		Percentual: r.Percentual.StringFixed(1),
		Status:     r.Status,
	}
	if r.Meta != nil {
		id := r.Meta.ID
		dto.MetaID = &id
	}
	if r.Vendedor != nil {
		dto.Vendedor = r.Vendedor.Nome
	}
	return dto
}

func ToListaDTO(l *ListaMetas) ListaMetasDTO {
	out := ListaMetasDTO{Mes: l.Mes, NomeMes: models.NomeMes(l.Mes), Ano: l.Ano, Metas: make([]MetaDTO, 0, len(l.Metas))}
	for i := range l.Metas {
		out.Metas = append(out.Metas, ToDTO(&l.Metas[i]))
	}
	return out
}
