package auth

import (
	"github.com/KromaEnergia/api-vendas/internal/models"
	"gorm.io/gorm"
)

// Escopo restringe a consulta aos registros do próprio vendedor, comparando
// coluna com o ID do usuário. Para gestores não filtra nada.
// coluna vem sempre do código, nunca da requisição.
func Escopo(u *models.Usuario, coluna string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if u == nil {
			return db.Where("1 = 0")
		}
		if u.IsVendedor() {
			return db.Where(coluna+" = ?", u.ID)
		}
		return db
	}
}

// PodeAcessar indica se u pode ver ou alterar um registro cujo dono é donoID.
func PodeAcessar(u *models.Usuario, donoID uint) bool {
	if u == nil {
		return false
	}
	if u.IsGestor() {
		return true
	}
	return u.ID == donoID
}
