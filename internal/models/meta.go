package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetaComercial é a meta de faturamento de um vendedor para um mês/ano.
// Existe no máximo uma por (vendedor, mes, ano).
type MetaComercial struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	VendedorID uint            `gorm:"not null;uniqueIndex:idx_meta_vendedor_periodo" json:"vendedorId"`
	Mes        int             `gorm:"not null;uniqueIndex:idx_meta_vendedor_periodo;check:mes BETWEEN 1 AND 12" json:"mes"`
	Ano        int             `gorm:"not null;uniqueIndex:idx_meta_vendedor_periodo" json:"ano"`
	ValorMeta  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorMeta"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`

	Vendedor *Usuario `gorm:"foreignKey:VendedorID;constraint:OnDelete:CASCADE" json:"vendedor,omitempty"`
}

func (MetaComercial) TableName() string { return "metas_comerciais" }

// Meses lista os nomes dos meses na ordem do calendário (índice 0 = janeiro).
var Meses = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// NomeMes devolve o nome do mês ou "" fora do intervalo 1..12.
func NomeMes(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return Meses[mes-1]
}
