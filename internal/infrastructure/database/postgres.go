package database

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/config"
	"github.com/hugohenrick/toko-digital/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDB gerencia a conexão com o PostgreSQL
type PostgresDB struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

// NewPostgresDB cria o pool de conexões e verifica se o banco responde
func NewPostgresDB(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*PostgresDB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar configuração do pool: %w", err)
	}

	if cfg.MaxConnections > 0 {
		poolCfg.MaxConns = cfg.MaxConnections
	}
	if cfg.MinConnections > 0 {
		poolCfg.MinConns = cfg.MinConnections
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao verificar conexão com o banco de dados: %w", err)
	}

	log.Info("Conectado ao PostgreSQL", "host", cfg.Host, "database", cfg.Name, "max_conns", poolCfg.MaxConns)
	return &PostgresDB{pool: pool, log: log}, nil
}

// Pool retorna o pool usado pelos repositórios
func (db *PostgresDB) Pool() *pgxpool.Pool {
	return db.pool
}

// Ping verifica a conexão (usado pelo health check)
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close fecha o pool de conexões
func (db *PostgresDB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Transaction executa uma função dentro de uma transação
func (db *PostgresDB) Transaction(ctx context.Context, txFunc func(tx pgx.Tx) error) error {
	return Transaction(ctx, db.pool, txFunc)
}

// Transaction executa txFunc em uma transação do pool, com rollback em caso de erro
func Transaction(ctx context.Context, pool *pgxpool.Pool, txFunc func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	if err := txFunc(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (erro ao fazer rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}
