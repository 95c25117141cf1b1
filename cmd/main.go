package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/alertas"
	"github.com/KromaEnergia/api-vendas/internal/auth"
	"github.com/KromaEnergia/api-vendas/internal/config"
	"github.com/KromaEnergia/api-vendas/internal/logger"
	"github.com/KromaEnergia/api-vendas/internal/meta"
	"github.com/KromaEnergia/api-vendas/internal/notificacao"
	"github.com/KromaEnergia/api-vendas/internal/router"
	"github.com/KromaEnergia/api-vendas/internal/usuario"
	"github.com/KromaEnergia/api-vendas/internal/utils"
	"github.com/KromaEnergia/api-vendas/internal/utils/db"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "arquivo de configuração opcional")
	criarGestor := flag.String("criar-gestor", "", "cria um gestor (email:senha) e sai")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Erro ao carregar configuração: ", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal("Erro ao iniciar logger: ", err)
	}
	defer func() { _ = zl.Sync() }()

	loc, err := cfg.App.Location()
	if err != nil {
		zl.Fatal("fuso horário inválido", zap.String("timezone", cfg.App.Timezone), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.GetDB(ctx, cfg.DB)
	if err != nil {
		zl.Fatal("erro ao conectar no banco", zap.Error(err))
	}
	if err := db.AutoMigrate(database); err != nil {
		zl.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	emissor, err := auth.NewEmissor(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL)
	if err != nil {
		zl.Fatal("configuração de autenticação inválida", zap.Error(err))
	}

	if err := utils.ValidarCustoSenha(cfg.Auth.BcryptCost); err != nil {
		zl.Fatal("configuração de autenticação inválida", zap.Error(err))
	}

	if *criarGestor != "" {
		us := usuario.NewServico(database, emissor)
		us.CustoSenha = cfg.Auth.BcryptCost
		u, err := us.CriarGestor(ctx, *criarGestor)
		if err != nil {
			zl.Fatal("erro ao criar gestor", zap.Error(err))
		}
		zl.Info("gestor criado", zap.Uint("id", u.ID), zap.String("email", u.Email))
		return
	}

	metas := meta.NewServico(database, loc)
	notificador := notificacao.NewNotificador(cfg.Notificacao.WebhookURL, cfg.Notificacao.Timeout, zl)

	if cfg.Alertas.Enabled {
		runner := alertas.NewRunner(ctx, loc, zl)
		job := alertas.NewMetasEmRisco(metas, notificador, zl)
		if _, err := runner.Add(cfg.Alertas.Cron, job.Job); err != nil {
			zl.Fatal("expressão cron inválida", zap.String("cron", cfg.Alertas.Cron), zap.Error(err))
		}
		runner.Start()
		defer runner.Stop()
	}

	srv := &http.Server{
		Addr: cfg.Server.HTTPAddr,
		Handler: router.New(router.Deps{
			DB:          database,
			Emissor:     emissor,
			Metas:       metas,
			Notificador: notificador,
			Logger:      zl,
			CORSOrigins: cfg.Server.CORSOrigins,
			CustoSenha:  cfg.Auth.BcryptCost,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("servidor rodando", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("servidor encerrado com erro", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("erro ao encerrar servidor", zap.Error(err))
	}
}
