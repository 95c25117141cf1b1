package models

import "time"

// Papel identifica o perfil de acesso do usuário.
type Papel string

const (
	PapelVendedor Papel = "VENDEDOR"
	PapelGestor   Papel = "GESTOR"
)

// Valido indica se o papel é um dos perfis conhecidos.
func (p Papel) Valido() bool {
	return p == PapelVendedor || p == PapelGestor
}

// Usuario é quem opera o CRM: vendedor (dono das próprias oportunidades) ou gestor.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:150;not null" json:"nome"`
	Email     string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"size:255;not null" json:"-"`
	Papel     Papel     `gorm:"size:20;not null;default:'VENDEDOR';index" json:"papel"`
	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) IsVendedor() bool { return u != nil && u.Papel == PapelVendedor }

func (u *Usuario) IsGestor() bool { return u != nil && u.Papel == PapelGestor }
