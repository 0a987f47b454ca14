package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSubscriptionNotFound = errors.New("assinatura não encontrada")
)

const subscriptionColumns = `id, user_id, store_id, plan, status, trial_end_date, current_period_end,
	amount, created_at, updated_at`

// SubscriptionRepository implementa subscription.Repository
type SubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository cria uma nova instância de SubscriptionRepository
func NewSubscriptionRepository(db *pgxpool.Pool) subscription.Repository {
	return &SubscriptionRepository{db: db}
}

// Create implementa subscription.Repository.Create
func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO subscriptions (`+subscriptionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.UserID, s.StoreID, string(s.Plan), string(s.Status), s.TrialEndDate, s.CurrentPeriodEnd,
		s.Amount, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar assinatura: %w", err)
	}
	return nil
}

// FindByUser implementa subscription.Repository.FindByUser
func (r *SubscriptionRepository) FindByUser(ctx context.Context, userID string) (*subscription.Subscription, error) {
	s, err := scanSubscription(r.db.QueryRow(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("erro ao buscar assinatura: %w", err)
	}
	return s, nil
}

func subscriptionFilter(status subscription.Status) *whereBuilder {
	w := &whereBuilder{}
	if status != "" {
		w.add("status = ?", string(status))
	}
	return w
}

// List implementa subscription.Repository.List
func (r *SubscriptionRepository) List(ctx context.Context, status subscription.Status, limit, offset int) ([]*subscription.Subscription, error) {
	w := subscriptionFilter(status)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions`+w.sql()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar assinaturas: %w", err)
	}
	defer rows.Close()

	var out []*subscription.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler assinatura: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count implementa subscription.Repository.Count
func (r *SubscriptionRepository) Count(ctx context.Context, status subscription.Status) (int, error) {
	w := subscriptionFilter(status)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar assinaturas: %w", err)
	}
	return count, nil
}

// Update implementa subscription.Repository.Update
func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	result, err := r.db.Exec(ctx,
		`UPDATE subscriptions SET plan = $1, status = $2, trial_end_date = $3, current_period_end = $4,
			amount = $5, updated_at = $6
		WHERE id = $7`,
		string(s.Plan), string(s.Status), s.TrialEndDate, s.CurrentPeriodEnd, s.Amount, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar assinatura: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// ExpireTrials implementa subscription.Repository.ExpireTrials
func (r *SubscriptionRepository) ExpireTrials(ctx context.Context, now time.Time) (int, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE subscriptions SET status = $1, updated_at = $2
		WHERE status = $3 AND trial_end_date IS NOT NULL AND trial_end_date < $2`,
		string(subscription.StatusExpired), now, string(subscription.StatusTrial))
	if err != nil {
		return 0, fmt.Errorf("erro ao expirar períodos de teste: %w", err)
	}
	return int(result.RowsAffected()), nil
}

// CountByPlan implementa subscription.Repository.CountByPlan
func (r *SubscriptionRepository) CountByPlan(ctx context.Context) ([]subscription.PlanCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT plan, status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM subscriptions GROUP BY plan, status ORDER BY plan, status`)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar assinaturas: %w", err)
	}
	defer rows.Close()

	var out []subscription.PlanCount
	for rows.Next() {
		var plan, status string
		var pc subscription.PlanCount
		if err := rows.Scan(&plan, &status, &pc.Count, &pc.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao ler contagem: %w", err)
		}
		pc.Plan = subscription.Plan(plan)
		pc.Status = subscription.Status(status)
		out = append(out, pc)
	}
	return out, rows.Err()
}

func scanSubscription(row pgx.Row) (*subscription.Subscription, error) {
	s := &subscription.Subscription{}
	var plan, status string
	err := row.Scan(&s.ID, &s.UserID, &s.StoreID, &plan, &status, &s.TrialEndDate,
		&s.CurrentPeriodEnd, &s.Amount, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Plan = subscription.Plan(plan)
	s.Status = subscription.Status(status)
	return s, nil
}
