package analytics

import (
	"context"
	"time"
)

// Repository define as operações de persistência dos snapshots
type Repository interface {
	// Upsert grava o snapshot substituindo o existente para (loja, período, início)
	Upsert(ctx context.Context, a *StoreAnalytics) error

	// ListBetween lista snapshots de uma loja no intervalo (storeID vazio = plataforma)
	ListBetween(ctx context.Context, storeID string, period Period, from, to time.Time) ([]*StoreAnalytics, error)
}
