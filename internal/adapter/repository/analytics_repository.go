package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/analytics"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyticsRepository implementa analytics.Repository
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository cria uma nova instância de AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) analytics.Repository {
	return &AnalyticsRepository{db: db}
}

// Upsert implementa analytics.Repository.Upsert
func (r *AnalyticsRepository) Upsert(ctx context.Context, a *analytics.StoreAnalytics) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO store_analytics
			(id, store_id, period, period_start, views, visitors, orders, revenue, conversion_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (store_id, period, period_start) DO UPDATE SET
			views = EXCLUDED.views,
			visitors = EXCLUDED.visitors,
			orders = EXCLUDED.orders,
			revenue = EXCLUDED.revenue,
			conversion_rate = EXCLUDED.conversion_rate`,
		a.ID, a.StoreID, string(a.Period), a.PeriodStart, a.Views, a.Visitors, a.Orders,
		a.Revenue, a.ConversionRate, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar snapshot de análise: %w", err)
	}
	return nil
}

// ListBetween implementa analytics.Repository.ListBetween
func (r *AnalyticsRepository) ListBetween(ctx context.Context, storeID string, period analytics.Period, from, to time.Time) ([]*analytics.StoreAnalytics, error) {
	w := &whereBuilder{}
	if storeID != "" {
		w.add("store_id = ?", storeID)
	}
	w.add("period = ?", string(period))
	w.add("period_start >= ?", from)
	w.add("period_start < ?", to)

	rows, err := r.db.Query(ctx,
		`SELECT id, store_id, period, period_start, views, visitors, orders, revenue, conversion_rate, created_at
		FROM store_analytics`+w.sql()+` ORDER BY period_start`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar snapshots: %w", err)
	}
	defer rows.Close()

	var out []*analytics.StoreAnalytics
	for rows.Next() {
		a := &analytics.StoreAnalytics{}
		var p string
		if err := rows.Scan(&a.ID, &a.StoreID, &p, &a.PeriodStart, &a.Views, &a.Visitors, &a.Orders,
			&a.Revenue, &a.ConversionRate, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler snapshot: %w", err)
		}
		a.Period = analytics.Period(p)
		out = append(out, a)
	}
	return out, rows.Err()
}
