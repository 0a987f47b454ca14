package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/toko-digital/internal/config"
	"github.com/redis/go-redis/v9"
)

// Prefixos das chaves
const (
	StatsKeyPrefix       = "stats:"
	RefreshTokenPrefix   = "session:refresh:"
	UserSessionsPrefix   = "session:user:"
	defaultStatsCacheTTL = 5 * time.Minute
)

// NewRedisClient cria o cliente Redis e testa a conexão
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("falha ao conectar ao Redis: %w", err)
	}

	return rdb, nil
}

// StatsKey monta a chave de cache de um relatório, ex.: stats:store:<id>:30d
func StatsKey(parts ...string) string {
	return StatsKeyPrefix + strings.Join(parts, ":")
}

// StatsCache guarda relatórios agregados já calculados
type StatsCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewStatsCache cria uma nova instância de StatsCache
func NewStatsCache(rdb redis.UniversalClient, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsCacheTTL
	}
	return &StatsCache{rdb: rdb, ttl: ttl}
}

// Get lê a chave em dest. Retorna false quando a chave não existe.
func (c *StatsCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("falha ao ler cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("falha ao decodificar cache: %w", err)
	}
	return true, nil
}

// Set grava o valor com o TTL configurado
func (c *StatsCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("falha ao codificar cache: %w", err)
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// Flush remove todos os relatórios em cache e retorna quantas chaves foram apagadas
func (c *StatsCache) Flush(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, StatsKeyPrefix+"*", 100).Result()
		if err != nil {
			return removed, fmt.Errorf("falha ao listar chaves de cache: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("falha ao apagar chaves de cache: %w", err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}

// SessionStore guarda os tokens de renovação ativos no Redis
type SessionStore struct {
	rdb redis.UniversalClient
}

// NewSessionStore cria uma nova instância de SessionStore
func NewSessionStore(rdb redis.UniversalClient) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// Save registra o token e o associa ao usuário
func (s *SessionStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	userKey := UserSessionsPrefix + userID

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, RefreshTokenPrefix+tokenID, userID, ttl)
		pipe.SAdd(ctx, userKey, tokenID)
		pipe.Expire(ctx, userKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("falha ao salvar sessão: %w", err)
	}
	return nil
}

// Exists verifica se o token ainda é válido
func (s *SessionStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, RefreshTokenPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("falha ao consultar sessão: %w", err)
	}
	return n > 0, nil
}

// Delete revoga um token e informa se ele ainda existia. GETDEL garante que
// apenas uma chamada concorrente consome o mesmo token.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) (bool, error) {
	userID, err := s.rdb.GetDel(ctx, RefreshTokenPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("falha ao revogar sessão: %w", err)
	}

	if err := s.rdb.SRem(ctx, UserSessionsPrefix+userID, tokenID).Err(); err != nil {
		return true, fmt.Errorf("falha ao atualizar sessões do usuário: %w", err)
	}
	return true, nil
}

// DeleteAllForUser revoga todos os tokens do usuário
func (s *SessionStore) DeleteAllForUser(ctx context.Context, userID string) error {
	userKey := UserSessionsPrefix + userID

	tokens, err := s.rdb.SMembers(ctx, userKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("falha ao listar sessões do usuário: %w", err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, RefreshTokenPrefix+token)
	}
	keys = append(keys, userKey)

	return s.rdb.Del(ctx, keys...).Err()
}
