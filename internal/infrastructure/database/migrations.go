package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrator aplica as migrações embutidas no binário
type Migrator struct {
	m   *migrate.Migrate
	log logger.Logger
}

// NewMigrator cria o migrator para a URL do banco
func NewMigrator(databaseURL string, log logger.Logger) (*Migrator, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrate: %w", err)
	}

	return &Migrator{m: m, log: log}, nil
}

// Up aplica as migrações pendentes
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Info("Nenhuma migração pendente")
			return nil
		}
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	return mg.logVersion()
}

// Down desfaz n migrações
func (mg *Migrator) Down(n int) error {
	if err := mg.m.Steps(-n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao desfazer migrações: %w", err)
	}
	return mg.logVersion()
}

// Version retorna a versão atual e se o banco ficou em estado sujo
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close libera a origem e a conexão do migrate
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (mg *Migrator) logVersion() error {
	v, dirty, err := mg.Version()
	if err != nil {
		return fmt.Errorf("erro ao ler versão das migrações: %w", err)
	}
	mg.log.Info("Migrações aplicadas", "version", v, "dirty", dirty)
	return nil
}
