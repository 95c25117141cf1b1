package router

import (
	"net/http"

	"github.com/KromaEnergia/api-vendas/internal/auth"
	"github.com/KromaEnergia/api-vendas/internal/cliente"
	"github.com/KromaEnergia/api-vendas/internal/interacao"
	"github.com/KromaEnergia/api-vendas/internal/logger"
	"github.com/KromaEnergia/api-vendas/internal/meta"
	"github.com/KromaEnergia/api-vendas/internal/notificacao"
	"github.com/KromaEnergia/api-vendas/internal/oportunidade"
	"github.com/KromaEnergia/api-vendas/internal/usuario"
	"github.com/KromaEnergia/api-vendas/internal/utils"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Deps struct {
	DB          *gorm.DB
	Emissor     *auth.Emissor
	Metas       *meta.Servico
	Notificador *notificacao.Notificador
	Logger      *zap.Logger
	CORSOrigins []string
	// CustoSenha é o custo bcrypt de senhas novas; zero usa o padrão.
	CustoSenha int
}

// New monta todas as rotas. Tudo fora de /health e /usuarios/login exige token.
func New(d Deps) http.Handler {
	oportunidadeHandler := oportunidade.NewHandler(d.DB, d.Notificador, d.Logger)
	interacaoHandler := interacao.NewHandler(d.DB, d.Logger)
	metaHandler := meta.NewHandler(d.DB, d.Metas, d.Logger)
	usuarioServico := usuario.NewServico(d.DB, d.Emissor)
	usuarioServico.CustoSenha = d.CustoSenha
	usuarioHandler := usuario.NewHandler(usuarioServico, d.Logger)
	clienteHandler := cliente.NewHandler(d.DB, d.Logger)

	r := mux.NewRouter()
	r.Use(logger.Middleware(d.Logger))

	r.HandleFunc("/health", health(d.DB)).Methods("GET")
	r.HandleFunc("/usuarios/login", usuarioHandler.Login).Methods("POST", "OPTIONS")

	api := r.NewRoute().Subrouter()
	api.Use(d.Emissor.MiddlewareAutenticacao(usuarioServico.Carregar))

	// Usuários
	api.Handle("/usuarios", auth.GestorRequired(http.HandlerFunc(usuarioHandler.Criar))).Methods("POST")
	api.Handle("/usuarios/me", auth.VendedorRequired(http.HandlerFunc(usuarioHandler.Me))).Methods("GET")
	api.Handle("/usuarios/vendedores", auth.GestorRequired(http.HandlerFunc(usuarioHandler.ListarVendedores))).Methods("GET")

	// Clientes
	api.Handle("/clientes", auth.VendedorRequired(http.HandlerFunc(clienteHandler.Listar))).Methods("GET")
	api.Handle("/clientes", auth.VendedorWrite(http.HandlerFunc(clienteHandler.Criar))).Methods("POST")
	api.Handle("/clientes/{id}", auth.VendedorRequired(http.HandlerFunc(clienteHandler.BuscarPorID))).Methods("GET")

	// Oportunidades
	api.Handle("/oportunidades", auth.VendedorRequired(http.HandlerFunc(oportunidadeHandler.Listar))).Methods("GET")
	api.Handle("/oportunidades", auth.VendedorWrite(http.HandlerFunc(oportunidadeHandler.Criar))).Methods("POST")
	api.Handle("/oportunidades/{id}", auth.VendedorRequired(http.HandlerFunc(oportunidadeHandler.Detalhar))).Methods("GET")
	api.Handle("/oportunidades/{id}/avancar", auth.VendedorWrite(http.HandlerFunc(oportunidadeHandler.Avancar))).Methods("POST")
	api.Handle("/oportunidades/{id}/perdida", auth.VendedorWrite(http.HandlerFunc(oportunidadeHandler.MarcarPerdida))).Methods("POST")

	// Interações
	api.Handle("/interacoes", auth.VendedorRequired(http.HandlerFunc(interacaoHandler.Listar))).Methods("GET")
	api.Handle("/interacoes", auth.VendedorWrite(http.HandlerFunc(interacaoHandler.Criar))).Methods("POST")

	// Metas
	api.Handle("/minha-meta", auth.VendedorRequired(http.HandlerFunc(metaHandler.MinhaMeta))).Methods("GET")
	api.Handle("/metas", auth.GestorRequired(http.HandlerFunc(metaHandler.Listar))).Methods("GET")
	api.Handle("/metas", auth.GestorRequired(http.HandlerFunc(metaHandler.Salvar))).Methods("PUT")

	return cors.New(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", logger.HeaderRequestID},
		ExposedHeaders:   []string{logger.HeaderRequestID},
		AllowCredentials: true,
	}).Handler(r)
}

func health(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "indisponivel"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
