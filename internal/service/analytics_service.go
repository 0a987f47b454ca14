package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/analytics"
	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// TrafficCounter fornece as visualizações e visitantes de um dia
type TrafficCounter interface {
	Counts(ctx context.Context, storeID string, day time.Time) (views, visitors int, err error)
}

// AnalyticsService consolida os snapshots de análise das lojas
type AnalyticsService struct {
	stores    store.Repository
	orders    order.Repository
	analytics analytics.Repository
	traffic   TrafficCounter
	log       logger.Logger
}

// NewAnalyticsService cria uma nova instância de AnalyticsService.
// traffic pode ser nil; nesse caso visualizações e visitantes ficam zerados.
func NewAnalyticsService(stores store.Repository, orders order.Repository, repo analytics.Repository, traffic TrafficCounter, log logger.Logger) *AnalyticsService {
	if log == nil {
		log = logger.Nop()
	}
	return &AnalyticsService{stores: stores, orders: orders, analytics: repo, traffic: traffic, log: log}
}

// Rollup grava o snapshot diário de cada loja ativa para o dia informado e
// recalcula os snapshots semanal e mensal que contêm esse dia.
// Retorna quantas lojas foram consolidadas; uma loja com erro não interrompe as demais.
func (s *AnalyticsService) Rollup(ctx context.Context, day time.Time) (int, error) {
	day = truncateDay(day)

	ids, err := s.stores.ListActiveIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar lojas ativas: %w", err)
	}

	done := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if err := s.rollupStore(ctx, id, day); err != nil {
			s.log.Error("Erro ao consolidar análise da loja", "store_id", id, "day", day.Format("2006-01-02"), "error", err)
			continue
		}
		done++
	}

	s.log.Info("Consolidação de análises concluída", "day", day.Format("2006-01-02"), "stores", done, "total", len(ids))
	return done, nil
}

func (s *AnalyticsService) rollupStore(ctx context.Context, storeID string, day time.Time) error {
	totals, err := s.orders.TotalsBetween(ctx, storeID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return err
	}

	var views, visitors int
	if s.traffic != nil {
		views, visitors, err = s.traffic.Counts(ctx, storeID, day)
		if err != nil {
			s.log.Warn("Tráfego indisponível, gravando snapshot sem visitas", "store_id", storeID, "error", err)
			views, visitors = 0, 0
		}
	}

	daily, err := analytics.NewSnapshot(storeID, analytics.PeriodDaily, day, views, visitors, totals.Orders, totals.Revenue)
	if err != nil {
		return err
	}
	if err := s.analytics.Upsert(ctx, daily); err != nil {
		return err
	}

	week := weekStart(day)
	if err := s.aggregate(ctx, storeID, analytics.PeriodWeekly, week, week.AddDate(0, 0, 7)); err != nil {
		return err
	}
	month := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return s.aggregate(ctx, storeID, analytics.PeriodMonthly, month, month.AddDate(0, 1, 0))
}

// aggregate soma os snapshots diários de [from, to) em um snapshot do período
func (s *AnalyticsService) aggregate(ctx context.Context, storeID string, period analytics.Period, from, to time.Time) error {
	dailies, err := s.analytics.ListBetween(ctx, storeID, analytics.PeriodDaily, from, to)
	if err != nil {
		return err
	}
	t := analytics.Sum(dailies)

	snap, err := analytics.NewSnapshot(storeID, period, from, t.Views, t.Visitors, t.Orders, t.Revenue)
	if err != nil {
		return err
	}
	return s.analytics.Upsert(ctx, snap)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart retorna a segunda-feira da semana do dia
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
