package usuario

import "github.com/KromaEnergia/api-vendas/internal/models"

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginResponse struct {
	Token   string     `json:"token"`
	Usuario UsuarioDTO `json:"usuario"`
}

type CriarUsuarioRequest struct {
	Nome  string       `json:"nome"`
	Email string       `json:"email"`
	Senha string       `json:"senha"`
	Papel models.Papel `json:"papel"`
}

type UsuarioDTO struct {
	ID    uint         `json:"id"`
	Nome  string       `json:"nome"`
	Email string       `json:"email"`
	Papel models.Papel `json:"papel"`
	Ativo bool         `json:"ativo"`
}

func ToDTO(u *models.Usuario) UsuarioDTO {
	return UsuarioDTO{ID: u.ID, Nome: u.Nome, Email: u.Email, Papel: u.Papel, Ativo: u.Ativo}
}
