package usuario

import (
	"github.com/KromaEnergia/api-vendas/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, u *models.Usuario) error
	BuscarPorID(db *gorm.DB, id uint) (*models.Usuario, error)
	BuscarPorEmail(db *gorm.DB, email string) (*models.Usuario, error)
	ListarPorPapel(db *gorm.DB, papel models.Papel) ([]models.Usuario, error)
	AtualizarSenha(db *gorm.DB, id uint, hash string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, u *models.Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*models.Usuario, error) {
	var u models.Usuario
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) ListarPorPapel(db *gorm.DB, papel models.Papel) ([]models.Usuario, error) {
	var list []models.Usuario
	err := db.Where("papel = ? AND ativo = ?", papel, true).Order("nome ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) AtualizarSenha(db *gorm.DB, id uint, hash string) error {
	return db.Model(&models.Usuario{}).Where("id = ?", id).Update("senha", hash).Error
}
