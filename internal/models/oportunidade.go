package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapa é a posição da oportunidade no funil de vendas.
type Etapa string

const (
	EtapaProspeccao   Etapa = "PROSPECCAO"
	EtapaQualificacao Etapa = "QUALIFICACAO"
	EtapaProposta     Etapa = "PROPOSTA"
	EtapaNegociacao   Etapa = "NEGOCIACAO"
	EtapaFechamento   Etapa = "FECHAMENTO"
	EtapaPerdida      Etapa = "PERDIDA"
)

// Valida indica se a etapa pertence ao conjunto fechado de etapas.
func (e Etapa) Valida() bool {
	switch e {
	case EtapaProspeccao, EtapaQualificacao, EtapaProposta, EtapaNegociacao, EtapaFechamento, EtapaPerdida:
		return true
	}
	return false
}

// Aberta indica se a oportunidade ainda conta como pipeline.
func (e Etapa) Aberta() bool {
	return e != EtapaFechamento && e != EtapaPerdida
}

// Oportunidade representa uma venda em potencial de um vendedor para um cliente.
type Oportunidade struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Titulo        string          `gorm:"size:200;not null" json:"titulo"`
	ClienteID     uint            `gorm:"not null;index" json:"clienteId"`
	VendedorID    uint            `gorm:"not null;index" json:"vendedorId"`
	ValorEstimado decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorEstimado"`
	Descricao     string          `gorm:"type:text" json:"descricao"`
	Etapa         Etapa           `gorm:"size:20;not null;default:'PROSPECCAO';index" json:"etapa"`
	CriadoEm      time.Time       `gorm:"column:criado_em;autoCreateTime;index" json:"criadoEm"`
	AtualizadoEm  time.Time       `gorm:"column:atualizado_em;autoUpdateTime;index" json:"atualizadoEm"`

	Cliente    *Cliente    `gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT" json:"cliente,omitempty"`
	Vendedor   *Usuario    `gorm:"foreignKey:VendedorID;constraint:OnDelete:RESTRICT" json:"vendedor,omitempty"`
	Interacoes []Interacao `gorm:"foreignKey:OportunidadeID;constraint:OnDelete:CASCADE" json:"interacoes,omitempty"`
}

func (Oportunidade) TableName() string { return "oportunidades" }
