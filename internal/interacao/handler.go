package interacao

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
	DB      *gorm.DB
	Servico *Servico
	Logger  *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{DB: db, Servico: NewServico(db), Logger: log}
}

// Listar trata GET /interacoes?pagina=&oportunidade=
// Vendedores veem só as interações que registraram.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	opID, err := utils.QueryInt(r, "oportunidade")
	if err != nil || opID < 0 {
		http.Error(w, "parâmetro 'oportunidade' inválido", http.StatusBadRequest)
		return
	}

	f := Filtro{
		Escopos:        []func(*gorm.DB) *gorm.DB{auth.Escopo(u, "criado_por_id")},
		OportunidadeID: uint(opID),
		Pagina:         utils.Pagina(r),
	}
	list, total, err := h.Servico.Repository.Listar(h.DB.WithContext(r.Context()), f)
	if err != nil {
		h.erroInterno(w, r, "erro ao listar interações", err)
		return
	}

	itens := make([]InteracaoDTO, 0, len(list))
	for i := range list {
		itens = append(itens, ToDTO(&list[i]))
	}
	utils.WriteJSON(w, http.StatusOK, utils.Paginado[InteracaoDTO]{
		Itens:     itens,
		Total:     total,
		Pagina:    f.Pagina,
		PorPagina: utils.PorPaginaPadrao,
	})
}

// Criar trata POST /interacoes. Só o dono da oportunidade registra contatos nela.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var req CriarInteracaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	req.Tipo = models.TipoInteracao(strings.ToUpper(string(req.Tipo)))
	if !req.Tipo.Valido() {
		http.Error(w, "tipo de interação inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Descricao) == "" {
		http.Error(w, "O campo 'descricao' é obrigatório", http.StatusBadRequest)
		return
	}
	if req.OportunidadeID == 0 {
		http.Error(w, "O campo 'oportunidadeId' é obrigatório", http.StatusBadRequest)
		return
	}

	var o models.Oportunidade
	err := h.DB.WithContext(r.Context()).First(&o, req.OportunidadeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "oportunidade não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		h.erroInterno(w, r, "erro ao buscar oportunidade", err)
		return
	}
	if !auth.PodeAcessar(u, o.VendedorID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	i, err := h.Servico.Registrar(r.Context(), &o, req.Tipo, req.Descricao, u)
	if err != nil {
		h.erroInterno(w, r, "erro ao registrar interação", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToDTO(i))
}

func (h *Handler) erroInterno(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context(), h.Logger).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
