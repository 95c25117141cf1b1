package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func eco(w http.ResponseWriter, r *http.Request) {
	u, ok := UsuarioDoContexto(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Header().Set("X-Usuario", string(u.Papel))
	w.WriteHeader(http.StatusOK)
}

func TestMiddlewareAutenticacao(t *testing.T) {
	e := novoEmissor(t, time.Now())
	h := e.MiddlewareAutenticacao(nil)(http.HandlerFunc(eco))

	token, err := e.GerarToken(5, models.PapelVendedor)
	require.NoError(t, err)

	casos := []struct {
		nome          string
		metodo        string
		authorization string
		status        int
	}{
		{"sem cabeçalho", http.MethodGet, "", http.StatusUnauthorized},
		{"sem bearer", http.MethodGet, token, http.StatusUnauthorized},
		{"token inválido", http.MethodGet, "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"token válido", http.MethodGet, "Bearer " + token, http.StatusOK},
		{"preflight passa sem token", http.MethodOptions, "", http.StatusTeapot},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			req := httptest.NewRequest(c.metodo, "/oportunidades", nil)
			if c.authorization != "" {
				req.Header.Set("Authorization", c.authorization)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, c.status, rec.Code)
		})
	}
}

func TestMiddlewareAutenticacaoCarregaUsuario(t *testing.T) {
	e := novoEmissor(t, time.Now())
	usuarios := map[uint]*models.Usuario{
		1: {ID: 1, Papel: models.PapelVendedor, Ativo: true},
		2: {ID: 2, Papel: models.PapelVendedor, Ativo: false},
		3: {ID: 3, Papel: models.PapelGestor, Ativo: true},
	}
	carregar := func(_ context.Context, id uint) (*models.Usuario, error) {
		if id == 4 {
			return nil, errors.New("banco fora do ar")
		}
		u, ok := usuarios[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return u, nil
	}
	h := e.MiddlewareAutenticacao(carregar)(http.HandlerFunc(eco))

	casos := []struct {
		nome   string
		id     uint
		status int
		papel  string
	}{
		{"ativo", 1, http.StatusOK, "VENDEDOR"},
		{"inativo", 2, http.StatusUnauthorized, ""},
		// token emitido como vendedor, papel atual é gestor
		{"papel do banco prevalece", 3, http.StatusOK, "GESTOR"},
		{"erro ao carregar", 4, http.StatusInternalServerError, ""},
		{"removido", 9, http.StatusUnauthorized, ""},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			token, err := e.GerarToken(c.id, models.PapelVendedor)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodGet, "/oportunidades", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, c.status, rec.Code)
			assert.Equal(t, c.papel, rec.Header().Get("X-Usuario"))
		})
	}
}

func TestRequirePapel(t *testing.T) {
	casos := []struct {
		nome   string
		mw     func(http.Handler) http.Handler
		papel  models.Papel
		status int
	}{
		{"vendedor lê", VendedorRequired, models.PapelVendedor, http.StatusOK},
		{"gestor lê", VendedorRequired, models.PapelGestor, http.StatusOK},
		{"vendedor escreve", VendedorWrite, models.PapelVendedor, http.StatusOK},
		{"gestor não escreve", VendedorWrite, models.PapelGestor, http.StatusForbidden},
		{"gestor administra", GestorRequired, models.PapelGestor, http.StatusOK},
		{"vendedor não administra", GestorRequired, models.PapelVendedor, http.StatusForbidden},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(ComIdentidade(req.Context(), 9, c.papel))
			rec := httptest.NewRecorder()
			c.mw(http.HandlerFunc(eco)).ServeHTTP(rec, req)
			assert.Equal(t, c.status, rec.Code)
		})
	}

	t.Run("sem identidade", func(t *testing.T) {
		rec := httptest.NewRecorder()
		GestorRequired(http.HandlerFunc(eco)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
