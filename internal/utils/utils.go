package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// PorPaginaPadrao é o tamanho de página das listagens.
const PorPaginaPadrao = 20

// Paginar aplica offset/limit. Página começa em 1; valores inválidos viram a primeira página.
func Paginar(pagina, porPagina int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if porPagina <= 0 {
			porPagina = PorPaginaPadrao
		}
		if pagina < 1 {
			pagina = 1
		}
		return db.Offset((pagina - 1) * porPagina).Limit(porPagina)
	}
}

// WriteJSON serializa v com o status informado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// IDDaRota lê a variável {id} da rota como uint.
func IDDaRota(r *http.Request) (uint, error) {
	return ParseID(mux.Vars(r)["id"])
}

func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id inválido: %q", s)
	}
	return uint(id), nil
}

// QueryInt lê um inteiro opcional da query string. Ausente ou vazio devolve 0.
func QueryInt(r *http.Request, nome string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(nome))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parâmetro '%s' inválido", nome)
	}
	return v, nil
}

// Pagina lê ?pagina= com padrão 1.
func Pagina(r *http.Request) int {
	p, err := QueryInt(r, "pagina")
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// Paginado envelopa uma listagem paginada.
type Paginado[T any] struct {
	Itens     []T   `json:"itens"`
	Total     int64 `json:"total"`
	Pagina    int   `json:"pagina"`
	PorPagina int   `json:"porPagina"`
}
