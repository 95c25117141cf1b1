package cliente

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

type CriarClienteRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Logger     *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Logger: log}
}

// Criar trata POST /clientes. O cliente pertence a quem o cadastrou.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	var req CriarClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	c := models.Cliente{
		Nome:        strings.TrimSpace(req.Nome),
		Documento:   strings.TrimSpace(req.Documento),
		Email:       strings.TrimSpace(req.Email),
		Telefone:    strings.TrimSpace(req.Telefone),
		CriadoPorID: u.ID,
	}
	if err := h.Repository.Criar(h.DB.WithContext(r.Context()), &c); err != nil {
		h.erroInterno(w, r, "erro ao criar cliente", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, c)
}

// Listar trata GET /clientes?pagina=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	pagina := utils.Pagina(r)
	list, total, err := h.Repository.Listar(h.DB.WithContext(r.Context()), pagina, auth.Escopo(u, "criado_por_id"))
	if err != nil {
		h.erroInterno(w, r, "erro ao listar clientes", err)
		return
	}
	if list == nil {
		list = []models.Cliente{}
	}
	utils.WriteJSON(w, http.StatusOK, utils.Paginado[models.Cliente]{
		Itens:     list,
		Total:     total,
		Pagina:    pagina,
		PorPagina: utils.PorPaginaPadrao,
	})
}

// BuscarPorID trata GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := utils.IDDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB.WithContext(r.Context()), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		h.erroInterno(w, r, "erro ao buscar cliente", err)
		return
	}
	if !auth.PodeAcessar(u, c.CriadoPorID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) erroInterno(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context(), h.Logger).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
