package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/adapter/events"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// SubscriptionService executa as rotinas de assinatura
type SubscriptionService struct {
	subscriptions subscription.Repository
	events        events.Publisher
	log           logger.Logger
	now           func() time.Time
}

// NewSubscriptionService cria uma nova instância de SubscriptionService
func NewSubscriptionService(repo subscription.Repository, publisher events.Publisher, log logger.Logger) *SubscriptionService {
	if publisher == nil {
		publisher = events.Discard{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SubscriptionService{subscriptions: repo, events: publisher, log: log, now: time.Now}
}

// ExpireTrials move para EXPIRED as avaliações vencidas
func (s *SubscriptionService) ExpireTrials(ctx context.Context) (int, error) {
	now := s.now()
	n, err := s.subscriptions.ExpireTrials(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("erro ao expirar avaliações: %w", err)
	}
	if n > 0 {
		s.events.Publish(ctx, events.SubjectSubscriptionExpired, map[string]interface{}{"count": n, "at": now})
		s.log.Info("Avaliações expiradas", "count", n)
	}
	return n, nil
}
