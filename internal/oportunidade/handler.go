package oportunidade

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/KromaEnergia/api-vendas/internal/auth"
	"github.com/KromaEnergia/api-vendas/internal/cliente"
	"github.com/KromaEnergia/api-vendas/internal/logger"
	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/KromaEnergia/api-vendas/internal/notificacao"
	"github.com/KromaEnergia/api-vendas/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	DB          *gorm.DB
	Servico     *Servico
	Clientes    cliente.Repository
	Notificador *notificacao.Notificador
	Logger      *zap.Logger
}

func NewHandler(db *gorm.DB, n *notificacao.Notificador, log *zap.Logger) *Handler {
	return &Handler{DB: db, Servico: NewServico(db), Clientes: cliente.NewRepository(), Notificador: n, Logger: log}
}

// Listar trata GET /oportunidades?pagina=&etapa=&cliente=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	f := Filtro{
		Escopos: []func(*gorm.DB) *gorm.DB{auth.Escopo(u, "vendedor_id")},
		Pagina:  utils.Pagina(r),
	}
	if e := strings.ToUpper(r.URL.Query().Get("etapa")); e != "" {
		f.Etapa = models.Etapa(e)
		if !f.Etapa.Valida() {
			http.Error(w, "etapa inválida", http.StatusBadRequest)
			return
		}
	}
	clienteID, err := utils.QueryInt(r, "cliente")
	if err != nil || clienteID < 0 {
		http.Error(w, "parâmetro 'cliente' inválido", http.StatusBadRequest)
		return
	}
	f.ClienteID = uint(clienteID)

	list, total, err := h.Servico.Repository.Listar(h.DB.WithContext(r.Context()), f)
	if err != nil {
		h.erroInterno(w, r, "erro ao listar oportunidades", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.Paginado[OportunidadeDTO]{
		Itens:     ToDTOs(list),
		Total:     total,
		Pagina:    f.Pagina,
		PorPagina: utils.PorPaginaPadrao,
	})
}

// Criar trata POST /oportunidades. O vendedor é sempre o usuário autenticado.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var req CriarOportunidadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	req.Titulo = strings.TrimSpace(req.Titulo)
	if req.Titulo == "" {
		http.Error(w, "O campo 'titulo' é obrigatório", http.StatusBadRequest)
		return
	}
	if req.ValorEstimado.IsNegative() {
		http.Error(w, "valor estimado não pode ser negativo", http.StatusBadRequest)
		return
	}

	if req.ClienteID == 0 {
		http.Error(w, "O campo 'clienteId' é obrigatório", http.StatusBadRequest)
		return
	}

	// vendedor só cria oportunidades para os próprios clientes
	c, err := h.Clientes.BuscarPorID(h.DB.WithContext(r.Context()), req.ClienteID, auth.Escopo(u, "criado_por_id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "cliente inválido", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.erroInterno(w, r, "erro ao buscar cliente", err)
		return
	}

	o, err := h.Servico.Criar(r.Context(), NovaOportunidade{
		Titulo:        req.Titulo,
		ClienteID:     c.ID,
		VendedorID:    u.ID,
		ValorEstimado: req.ValorEstimado,
		Descricao:     req.Descricao,
	})
	if err != nil {
		h.erroInterno(w, r, "erro ao criar oportunidade", err)
		return
	}
	o.Cliente = c
	utils.WriteJSON(w, http.StatusCreated, ToDTO(o))
}

// Detalhar trata GET /oportunidades/{id} e inclui as interações.
func (h *Handler) Detalhar(w http.ResponseWriter, r *http.Request) {
	o, ok := h.carregar(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToDTO(o))
}

// Avancar trata POST /oportunidades/{id}/avancar
func (h *Handler) Avancar(w http.ResponseWriter, r *http.Request) {
	o, ok := h.carregar(w, r)
	if !ok {
		return
	}
	atualizada, err := h.Servico.AvancarEtapa(r.Context(), o)
	if h.responderTransicao(w, r, err) {
		return
	}
	_ = h.Notificador.MudancaDeEtapa(r.Context(), atualizada)
	utils.WriteJSON(w, http.StatusOK, ToDTO(atualizada))
}

// MarcarPerdida trata POST /oportunidades/{id}/perdida
func (h *Handler) MarcarPerdida(w http.ResponseWriter, r *http.Request) {
	o, ok := h.carregar(w, r)
	if !ok {
		return
	}
	jaPerdida := o.Etapa == models.EtapaPerdida
	atualizada, err := h.Servico.MarcarPerdida(r.Context(), o)
	if h.responderTransicao(w, r, err) {
		return
	}
	if !jaPerdida {
		_ = h.Notificador.MudancaDeEtapa(r.Context(), atualizada)
	}
	utils.WriteJSON(w, http.StatusOK, ToDTO(atualizada))
}

// carregar busca a oportunidade da rota e confere se o usuário pode acessá-la.
func (h *Handler) carregar(w http.ResponseWriter, r *http.Request) (*models.Oportunidade, bool) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return nil, false
	}
	id, err := utils.IDDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	o, err := h.Servico.Repository.BuscarPorID(h.DB.WithContext(r.Context()), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "oportunidade não encontrada", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		h.erroInterno(w, r, "erro ao buscar oportunidade", err)
		return nil, false
	}
	if !auth.PodeAcessar(u, o.VendedorID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil, false
	}
	return o, true
}

// responderTransicao escreve a resposta de erro, se houver. Devolve true quando respondeu.
func (h *Handler) responderTransicao(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil {
		return false
	}
	var te *TransicaoError
	if errors.As(err, &te) {
		http.Error(w, te.Error(), http.StatusConflict)
		return true
	}
	h.erroInterno(w, r, "erro ao atualizar oportunidade", err)
	return true
}

func (h *Handler) erroInterno(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context(), h.Logger).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
