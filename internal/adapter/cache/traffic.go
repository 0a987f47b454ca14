package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	viewsKeyPrefix    = "traffic:views:"
	visitorsKeyPrefix = "traffic:visitors:"
	trafficRetention  = 8 * 24 * time.Hour
)

// TrafficCounter conta visualizações e visitantes únicos da vitrine por loja e dia.
// Os visitantes usam HyperLogLog, então a contagem é aproximada.
type TrafficCounter struct {
	rdb redis.UniversalClient
}

// NewTrafficCounter cria uma nova instância de TrafficCounter
func NewTrafficCounter(rdb redis.UniversalClient) *TrafficCounter {
	return &TrafficCounter{rdb: rdb}
}

func trafficDay(t time.Time) string {
	return t.UTC().Format("20060102")
}

// RecordView registra uma visualização da vitrine
func (c *TrafficCounter) RecordView(ctx context.Context, storeID, visitorID string, at time.Time) error {
	day := trafficDay(at)
	viewsKey := viewsKeyPrefix + storeID + ":" + day
	visitorsKey := visitorsKeyPrefix + storeID + ":" + day

	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, viewsKey)
		pipe.Expire(ctx, viewsKey, trafficRetention)
		if visitorID != "" {
			pipe.PFAdd(ctx, visitorsKey, visitorID)
			pipe.Expire(ctx, visitorsKey, trafficRetention)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("falha ao registrar visualização: %w", err)
	}
	return nil
}

// Counts retorna visualizações e visitantes únicos do dia
func (c *TrafficCounter) Counts(ctx context.Context, storeID string, day time.Time) (int, int, error) {
	d := trafficDay(day)

	views, err := c.rdb.Get(ctx, viewsKeyPrefix+storeID+":"+d).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, 0, fmt.Errorf("falha ao ler visualizações: %w", err)
	}

	visitors, err := c.rdb.PFCount(ctx, visitorsKeyPrefix+storeID+":"+d).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("falha ao ler visitantes: %w", err)
	}

	return views, int(visitors), nil
}
