package meta

import "github.com/shopspring/decimal"

// Status classifica a saúde do pipeline frente à meta.
type Status string

const (
	StatusOK      Status = "OK"
	StatusAtencao Status = "ATENCAO"
	StatusRisco   Status = "RISCO"
)

// folgaPipeline é o múltiplo da meta a partir do qual o pipeline é considerado folgado.
var folgaPipeline = decimal.RequireFromString("1.5")

// CalcularStatus: sem meta (valor <= 0) é sempre OK; pipeline >= 1,5×meta é OK;
// pipeline >= meta é ATENCAO; abaixo da meta é RISCO. Empates ficam na faixa melhor.
func CalcularStatus(valorMeta, pipeline decimal.Decimal) Status {
	if !valorMeta.IsPositive() {
		return StatusOK
	}
	if pipeline.GreaterThanOrEqual(valorMeta.Mul(folgaPipeline)) {
		return StatusOK
	}
	if pipeline.GreaterThanOrEqual(valorMeta) {
		return StatusAtencao
	}
	return StatusRisco
}
