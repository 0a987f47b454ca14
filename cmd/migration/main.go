package main

import (
	"flag"
	"os"

	"github.com/hugohenrick/toko-digital/internal/config"
	"github.com/hugohenrick/toko-digital/internal/infrastructure/database"
	"github.com/hugohenrick/toko-digital/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	down := flag.Int("down", 0, "desfaz N migrações em vez de aplicar as pendentes")
	flag.Parse()

	// Carregar variáveis de ambiente
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)

	m, err := database.NewMigrator(cfg.Database.ConnectionString(), log)
	if err != nil {
		log.Error("Erro ao preparar migrações", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	if *down > 0 {
		err = m.Down(*down)
	} else {
		err = m.Up()
	}
	if err != nil {
		log.Error("Erro ao executar migrações", "error", err)
		os.Exit(1)
	}

	log.Info("Migrações executadas com sucesso!")
}
