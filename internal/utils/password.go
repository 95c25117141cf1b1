package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CustoSenhaPadrao é usado quando a configuração não define auth.bcrypt_cost.
const CustoSenhaPadrao = bcrypt.DefaultCost

// ValidarCustoSenha aceita zero (padrão) ou um custo entre bcrypt.MinCost e bcrypt.MaxCost.
func ValidarCustoSenha(custo int) error {
	if custo == 0 || (custo >= bcrypt.MinCost && custo <= bcrypt.MaxCost) {
		return nil
	}
	return fmt.Errorf("custo bcrypt deve estar entre %d e %d", bcrypt.MinCost, bcrypt.MaxCost)
}

// HashSenha retorna o hash bcrypt da senha com o custo informado (zero usa o padrão).
func HashSenha(senha string, custo int) (string, error) {
	if custo == 0 {
		custo = CustoSenhaPadrao
	}
	if err := ValidarCustoSenha(custo); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), custo)
	return string(hash), err
}

// CheckSenha compara hash bcrypt com a senha em texto e retorna true se bater
func CheckSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}

// PrecisaRehash indica se o hash foi gerado com custo diferente do configurado.
func PrecisaRehash(hash string, custo int) bool {
	if custo == 0 {
		custo = CustoSenhaPadrao
	}
	atual, err := bcrypt.Cost([]byte(hash))
	return err != nil || atual != custo
}
