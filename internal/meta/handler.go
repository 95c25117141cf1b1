package meta

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

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

func NewHandler(db *gorm.DB, s *Servico, log *zap.Logger) *Handler {
	return &Handler{DB: db, Servico: s, Logger: log}
}

// MinhaMeta trata GET /minha-meta?mes=&ano= para o usuário autenticado.
func (h *Handler) MinhaMeta(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	mes, ano, err := lerPeriodo(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.Servico.ObterMetaVendedor(r.Context(), u.ID, mes, ano)
	if err != nil {
		h.erroInterno(w, r, "erro ao calcular meta", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToDTO(res))
}

// Listar trata GET /metas?mes=&ano= (gestor).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	mes, ano, err := lerPeriodo(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	lista, err := h.Servico.ListarMetasVendedores(r.Context(), mes, ano)
	if err != nil {
		h.erroInterno(w, r, "erro ao listar metas", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToListaDTO(lista))
}

// Salvar trata PUT /metas: cria ou substitui a meta do vendedor no mês.
func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	var req SalvarMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	p := Periodo{Mes: req.Mes, Ano: req.Ano}
	if !p.Valido() {
		http.Error(w, "mês ou ano inválido", http.StatusBadRequest)
		return
	}
	if req.ValorMeta.IsNegative() {
		http.Error(w, "valor da meta não pode ser negativo", http.StatusBadRequest)
		return
	}

	var vendedor models.Usuario
	err := h.DB.WithContext(r.Context()).
		Where("papel = ?", models.PapelVendedor).
		First(&vendedor, req.VendedorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || req.VendedorID == 0 {
		http.Error(w, "vendedor não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		h.erroInterno(w, r, "erro ao buscar vendedor", err)
		return
	}

	m := &models.MetaComercial{VendedorID: vendedor.ID, Mes: p.Mes, Ano: p.Ano, ValorMeta: req.ValorMeta}
	if err := h.Servico.Repository.Salvar(h.DB.WithContext(r.Context()), m); err != nil {
		h.erroInterno(w, r, "erro ao salvar meta", err)
		return
	}

	res, err := h.Servico.ObterMetaVendedor(r.Context(), vendedor.ID, p.Mes, p.Ano)
	if err != nil {
		h.erroInterno(w, r, "erro ao calcular meta", err)
		return
	}
	res.Vendedor = &vendedor
	utils.WriteJSON(w, http.StatusOK, ToDTO(res))
}

// lerPeriodo lê mes e ano opcionais; zero significa mês corrente.
func lerPeriodo(r *http.Request) (int, int, error) {
	mes, err := utils.QueryInt(r, "mes")
	if err != nil {
		return 0, 0, err
	}
	ano, err := utils.QueryInt(r, "ano")
	if err != nil {
		return 0, 0, err
	}
	if mes < 0 || mes > 12 {
		return 0, 0, fmt.Errorf("mês deve estar entre 1 e 12")
	}
	if ano < 0 {
		return 0, 0, fmt.Errorf("parâmetro 'ano' inválido")
	}
	return mes, ano, nil
}

func (h *Handler) erroInterno(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context(), h.Logger).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
