package usuario

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/KromaEnergia/api-vendas/internal/auth"
	"github.com/KromaEnergia/api-vendas/internal/logger"
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	Servico *Servico
	Logger  *zap.Logger
}

func NewHandler(s *Servico, log *zap.Logger) *Handler {
	return &Handler{Servico: s, Logger: log}
}

// Login trata POST /usuarios/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	token, u, err := h.Servico.Autenticar(r.Context(), req.Email, req.Senha)
	if errors.Is(err, ErrCredenciaisInvalidas) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.erroInterno(w, r, "erro ao autenticar", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, Usuario: ToDTO(u)})
}

// Criar trata POST /usuarios (gestor).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Papel == "" {
		req.Papel = models.PapelVendedor
	}
	req.Papel = models.Papel(strings.ToUpper(string(req.Papel)))

	u, err := h.Servico.Criar(r.Context(), NovoUsuario{Nome: req.Nome, Email: req.Email, Senha: req.Senha, Papel: req.Papel})
	switch {
	case errors.Is(err, ErrDadosInvalidos):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrEmailEmUso):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.erroInterno(w, r, "erro ao salvar usuário", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToDTO(u))
}

// Me trata GET /usuarios/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	atual, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	u, err := h.Servico.Repository.BuscarPorID(h.Servico.DB.WithContext(r.Context()), atual.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		h.erroInterno(w, r, "erro ao buscar usuário", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToDTO(u))
}

// ListarVendedores trata GET /usuarios/vendedores (gestor).
func (h *Handler) ListarVendedores(w http.ResponseWriter, r *http.Request) {
	list, err := h.Servico.Repository.ListarPorPapel(h.Servico.DB.WithContext(r.Context()), models.PapelVendedor)
	if err != nil {
		h.erroInterno(w, r, "erro ao listar vendedores", err)
		return
	}
	out := make([]UsuarioDTO, 0, len(list))
	for i := range list {
		out = append(out, ToDTO(&list[i]))
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) erroInterno(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context(), h.Logger).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
