package models

import "time"

// Cliente é a empresa ou pessoa a quem a oportunidade se refere.
type Cliente struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nome        string    `gorm:"size:200;not null" json:"nome"`
	Documento   string    `gorm:"size:20;index" json:"documento"`
	Email       string    `gorm:"size:150" json:"email"`
	Telefone    string    `gorm:"size:20" json:"telefone"`
	CriadoPorID uint      `gorm:"not null;index" json:"criadoPorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Cliente) TableName() string { return "clientes" }
