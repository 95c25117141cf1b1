package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"gorm.io/gorm"
)

type ctxKey string

const (
	CtxUsuarioID ctxKey = "usuarioID"
	CtxPapel     ctxKey = "papel"
)

// CarregarUsuario busca o usuário do token a cada requisição.
type CarregarUsuario func(ctx context.Context, id uint) (*models.Usuario, error)

// MiddlewareAutenticacao exige um Bearer token válido e injeta usuário e papel no contexto.
// Com carregar definido, o usuário precisa existir e estar ativo, e o papel vem do
// banco; sem ele, valem as claims até o token expirar.
func (e *Emissor) MiddlewareAutenticacao(carregar CarregarUsuario) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			claims, err := e.ValidarToken(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}

			papel := claims.Papel
			if carregar != nil {
				u, err := carregar(r.Context(), claims.UsuarioID)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					http.Error(w, "usuário não encontrado", http.StatusUnauthorized)
					return
				}
				if err != nil {
					http.Error(w, "erro ao carregar usuário", http.StatusInternalServerError)
					return
				}
				if !u.Ativo {
					http.Error(w, "usuário inativo", http.StatusUnauthorized)
					return
				}
				papel = u.Papel
			}
			next.ServeHTTP(w, r.WithContext(ComIdentidade(r.Context(), claims.UsuarioID, papel)))
		})
	}
}

// ComIdentidade grava usuário e papel no contexto.
func ComIdentidade(ctx context.Context, usuarioID uint, papel models.Papel) context.Context {
	ctx = context.WithValue(ctx, CtxUsuarioID, usuarioID)
	return context.WithValue(ctx, CtxPapel, papel)
}

// UsuarioDoContexto devolve o usuário autenticado (apenas ID e papel preenchidos).
func UsuarioDoContexto(ctx context.Context) (*models.Usuario, bool) {
	id, ok := ctx.Value(CtxUsuarioID).(uint)
	if !ok || id == 0 {
		return nil, false
	}
	papel, _ := ctx.Value(CtxPapel).(models.Papel)
	return &models.Usuario{ID: id, Papel: papel}, true
}

// RequirePapel libera a rota apenas para os papéis informados.
func RequirePapel(papeis ...models.Papel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UsuarioDoContexto(r.Context())
			if !ok {
				http.Error(w, "não autenticado", http.StatusUnauthorized)
				return
			}
			for _, p := range papeis {
				if u.Papel == p {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "acesso negado", http.StatusForbidden)
		})
	}
}

var (
	// VendedorRequired: leitura por vendedores e gestores.
	VendedorRequired = RequirePapel(models.PapelVendedor, models.PapelGestor)
	// VendedorWrite: só vendedores alteram oportunidades e interações.
	VendedorWrite  = RequirePapel(models.PapelVendedor)
	GestorRequired = RequirePapel(models.PapelGestor)
)
