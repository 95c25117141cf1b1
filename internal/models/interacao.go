package models

import "time"

// TipoInteracao classifica o contato registrado.
type TipoInteracao string

const (
	InteracaoLigacao  TipoInteracao = "LIGACAO"
	InteracaoEmail    TipoInteracao = "EMAIL"
	InteracaoReuniao  TipoInteracao = "REUNIAO"
	InteracaoVisita   TipoInteracao = "VISITA"
	InteracaoWhatsApp TipoInteracao = "WHATSAPP"
	InteracaoOutro    TipoInteracao = "OUTRO"
)

func (t TipoInteracao) Valido() bool {
	switch t {
	case InteracaoLigacao, InteracaoEmail, InteracaoReuniao, InteracaoVisita, InteracaoWhatsApp, InteracaoOutro:
		return true
	}
	return false
}

// Interacao é um contato registrado contra uma oportunidade. Não é alterada depois de criada.
type Interacao struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OportunidadeID uint          `gorm:"not null;index" json:"oportunidadeId"`
	Tipo           TipoInteracao `gorm:"size:20;not null" json:"tipo"`
	Descricao      string        `gorm:"type:text;not null" json:"descricao"`
	CriadoPorID    uint          `gorm:"not null;index" json:"criadoPorId"`
	CriadoEm       time.Time     `gorm:"column:criado_em;autoCreateTime" json:"criadoEm"`
}

func (Interacao) TableName() string { return "interacoes" }
