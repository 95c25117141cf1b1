package usuario

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/KromaEnergia/api-vendas/internal/auth"
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrEmailEmUso           = errors.New("email já cadastrado")
	ErrDadosInvalidos       = errors.New("dados de usuário inválidos")
)

const tamanhoMinimoSenha = 8

type NovoUsuario struct {
	Nome  string
	Email string
	Senha string
	Papel models.Papel
}

type Servico struct {
	DB         *gorm.DB
	Repository Repository
	Emissor    *auth.Emissor
	// CustoSenha é o custo bcrypt dos hashes novos; zero usa utils.CustoSenhaPadrao.
	CustoSenha int
}

func NewServico(db *gorm.DB, emissor *auth.Emissor) *Servico {
	return &Servico{DB: db, Repository: NewRepository(), Emissor: emissor}
}

// Criar valida os dados, gera o hash da senha e grava o usuário ativo.
func (s *Servico) Criar(ctx context.Context, n NovoUsuario) (*models.Usuario, error) {
	n.Email = strings.ToLower(strings.TrimSpace(n.Email))
	n.Nome = strings.TrimSpace(n.Nome)
	if n.Nome == "" {
		n.Nome = n.Email
	}
	if _, err := mail.ParseAddress(n.Email); err != nil {
		return nil, fmt.Errorf("%w: email", ErrDadosInvalidos)
	}
	if len(n.Senha) < tamanhoMinimoSenha {
		return nil, fmt.Errorf("%w: senha deve ter ao menos %d caracteres", ErrDadosInvalidos, tamanhoMinimoSenha)
	}
	if !n.Papel.Valido() {
		return nil, fmt.Errorf("%w: papel", ErrDadosInvalidos)
	}

	db := s.DB.WithContext(ctx)
	if _, err := s.Repository.BuscarPorEmail(db, n.Email); err == nil {
		return nil, ErrEmailEmUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashSenha(n.Senha, s.CustoSenha)
	if err != nil {
		return nil, err
	}
	u := &models.Usuario{Nome: n.Nome, Email: n.Email, Senha: hash, Papel: n.Papel, Ativo: true}
	if err := s.Repository.Criar(db, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Autenticar confere email e senha e devolve um token de acesso.
// Usuário inexistente, inativo ou senha errada resultam no mesmo erro.
// Hashes com custo diferente do configurado são regravados.
func (s *Servico) Autenticar(ctx context.Context, email, senha string) (string, *models.Usuario, error) {
	db := s.DB.WithContext(ctx)
	u, err := s.Repository.BuscarPorEmail(db, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrCredenciaisInvalidas
	}
	if err != nil {
		return "", nil, err
	}
	if !u.Ativo || !utils.CheckSenha(u.Senha, senha) {
		return "", nil, ErrCredenciaisInvalidas
	}
	if utils.PrecisaRehash(u.Senha, s.CustoSenha) {
		hash, err := utils.HashSenha(senha, s.CustoSenha)
		if err != nil {
			return "", nil, err
		}
		if err := s.Repository.AtualizarSenha(db, u.ID, hash); err != nil {
			return "", nil, err
		}
		u.Senha = hash
	}

	token, err := s.Emissor.GerarToken(u.ID, u.Papel)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Carregar busca o usuário pelo ID para o middleware de autenticação.
func (s *Servico) Carregar(ctx context.Context, id uint) (*models.Usuario, error) {
	return s.Repository.BuscarPorID(s.DB.WithContext(ctx), id)
}

// CriarGestor aceita "email:senha" e cria a conta de gestor inicial.
func (s *Servico) CriarGestor(ctx context.Context, credenciais string) (*models.Usuario, error) {
	email, senha, ok := strings.Cut(credenciais, ":")
	if !ok {
		return nil, fmt.Errorf("%w: use email:senha", ErrDadosInvalidos)
	}
	return s.Criar(ctx, NovoUsuario{Email: email, Senha: senha, Papel: models.PapelGestor})
}
