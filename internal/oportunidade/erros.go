package oportunidade

import (
	"errors"

	"github.com/KromaEnergia/api-vendas/internal/models"
)

var (
	// ErrTransicaoInvalida é a causa de toda transição de etapa recusada.
	ErrTransicaoInvalida = errors.New("transição de etapa inválida")

	// ErrEtapaDesconhecida indica uma etapa fora da ordem do funil durante o avanço.
	// Só acontece com uma etapa gravada fora do conjunto conhecido.
	ErrEtapaDesconhecida = errors.New("etapa fora da ordem do funil")
)

const (
	msgPerdidaNaoAvanca  = "oportunidade perdida não pode avançar"
	msgEtapaFinal        = "oportunidade já está na etapa final"
	msgFechadaNaoPerdida = "oportunidade fechada não pode ser marcada como perdida"
)

// TransicaoError descreve a transição recusada. A mensagem é própria para o usuário final.
type TransicaoError struct {
	Etapa  models.Etapa
	Motivo string
}

func (e *TransicaoError) Error() string {
	return e.Motivo
}

func (e *TransicaoError) Unwrap() error {
	return ErrTransicaoInvalida
}

// EhTransicaoInvalida indica se err (ou algo que ele embrulha) é uma transição recusada.
func EhTransicaoInvalida(err error) bool {
	return errors.Is(err, ErrTransicaoInvalida)
}

func novaTransicaoError(e models.Etapa, motivo string) error {
	return &TransicaoError{Etapa: e, Motivo: motivo}
}
