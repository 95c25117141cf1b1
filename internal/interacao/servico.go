package interacao

import (
	"context"
	"errors"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"gorm.io/gorm"
)

var ErrParametrosObrigatorios = errors.New("oportunidade e usuário são obrigatórios")

type Servico struct {
	DB         *gorm.DB
	Repository Repository
}

func NewServico(db *gorm.DB) *Servico {
	return &Servico{DB: db, Repository: NewRepository()}
}

// Registrar grava um contato na oportunidade em nome de usuario. A oportunidade não é alterada.
func (s *Servico) Registrar(ctx context.Context, o *models.Oportunidade, tipo models.TipoInteracao, descricao string, usuario *models.Usuario) (*models.Interacao, error) {
	if o == nil || usuario == nil {
		return nil, ErrParametrosObrigatorios
	}
	i := &models.Interacao{
		OportunidadeID: o.ID,
		Tipo:           tipo,
		Descricao:      descricao,
		CriadoPorID:    usuario.ID,
	}
	if err := s.Repository.Criar(s.DB.WithContext(ctx), i); err != nil {
		return nil, err
	}
	return i, nil
}
