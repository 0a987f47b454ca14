package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hugohenrick/toko-digital/internal/config"
	"github.com/hugohenrick/toko-digital/internal/infrastructure/database"
	"github.com/hugohenrick/toko-digital/pkg/logger"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Carregar variáveis de ambiente
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	if envErr != nil {
		log.Debug("Arquivo .env não encontrado", "error", envErr)
	}

	if cfg.Database.AutoMigrate {
		if err := migrate(cfg, log); err != nil {
			log.Error("Erro ao executar migrações", "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		log.Error("Erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Servidor encerrado com erro", "error", err)
		}
	case <-ctx.Done():
		log.Info("Encerrando servidor")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Error("Erro ao encerrar servidor", "error", err)
		}
	}
}

func migrate(cfg *config.Config, log logger.Logger) error {
	m, err := database.NewMigrator(cfg.Database.ConnectionString(), log)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
