package subscription

import (
	"context"
	"time"
)

// PlanCount é a contagem de assinaturas de um plano e status
type PlanCount struct {
	Plan    Plan    `json:"plan"`
	Status  Status  `json:"status"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Repository define as operações de persistência de assinaturas
type Repository interface {
	// Create cria uma nova assinatura
	Create(ctx context.Context, s *Subscription) error

	// FindByUser busca a assinatura de um usuário
	FindByUser(ctx context.Context, userID string) (*Subscription, error)

	// List lista assinaturas, opcionalmente filtradas por status
	List(ctx context.Context, status Status, limit, offset int) ([]*Subscription, error)

	// Count conta assinaturas, opcionalmente filtradas por status
	Count(ctx context.Context, status Status) (int, error)

	// Update atualiza plano, status e datas
	Update(ctx context.Context, s *Subscription) error

	// ExpireTrials move para EXPIRED os testes vencidos antes de now e retorna quantos mudaram
	ExpireTrials(ctx context.Context, now time.Time) (int, error)

	// CountByPlan agrupa as assinaturas por plano e status
	CountByPlan(ctx context.Context) ([]PlanCount, error)
}
