package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/finance"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = "id, store_id, order_id, type, category, amount, description, date, created_at"

// FinanceRepository implementa finance.Repository. Não há update nem delete: o livro é somente de inclusão.
type FinanceRepository struct {
	db *pgxpool.Pool
}

// NewFinanceRepository cria uma nova instância de FinanceRepository
func NewFinanceRepository(db *pgxpool.Pool) finance.Repository {
	return &FinanceRepository{db: db}
}

// Create implementa finance.Repository.Create
func (r *FinanceRepository) Create(ctx context.Context, t *finance.Transaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO financial_transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.StoreID, t.OrderID, string(t.Type), string(t.Category), t.Amount, t.Description, t.Date, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar transação: %w", err)
	}
	return nil
}

func transactionFilter(f finance.Filter) *whereBuilder {
	w := &whereBuilder{}
	if f.StoreID != "" {
		w.add("store_id = ?", f.StoreID)
	}
	if f.OrderID != "" {
		w.add("order_id = ?", f.OrderID)
	}
	if f.Type != "" {
		w.add("type = ?", string(f.Type))
	}
	if f.Category != "" {
		w.add("category = ?", string(f.Category))
	}
	if f.From != nil {
		w.add("date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("date < ?", *f.To)
	}
	return w
}

// List implementa finance.Repository.List
func (r *FinanceRepository) List(ctx context.Context, filter finance.Filter, limit, offset int) ([]*finance.Transaction, error) {
	w := transactionFilter(filter)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM financial_transactions`+w.sql()+` ORDER BY date DESC`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações: %w", err)
	}
	defer rows.Close()

	var out []*finance.Transaction
	for rows.Next() {
		t := &finance.Transaction{}
		var typ, category string
		if err := rows.Scan(&t.ID, &t.StoreID, &t.OrderID, &typ, &category, &t.Amount,
			&t.Description, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler transação: %w", err)
		}
		t.Type = finance.Type(typ)
		t.Category = finance.Category(category)
		out = append(out, t)
	}
	return out, rows.Err()
}

// Count implementa finance.Repository.Count
func (r *FinanceRepository) Count(ctx context.Context, filter finance.Filter) (int, error) {
	w := transactionFilter(filter)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM financial_transactions`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}
	return count, nil
}

func ledgerScope(storeID string, from, to time.Time) *whereBuilder {
	return transactionFilter(finance.Filter{StoreID: storeID, From: &from, To: &to})
}

// SummaryBetween implementa finance.Repository.SummaryBetween
func (r *FinanceRepository) SummaryBetween(ctx context.Context, storeID string, from, to time.Time) (finance.Summary, error) {
	w := ledgerScope(storeID, from, to)
	var s finance.Summary
	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0),
			COUNT(*)
		FROM financial_transactions`+w.sql(), w.args...).Scan(&s.Income, &s.Expense, &s.Count)
	if err != nil {
		return finance.Summary{}, fmt.Errorf("erro ao resumir transações: %w", err)
	}
	return s, nil
}

// TotalsByCategory implementa finance.Repository.TotalsByCategory
func (r *FinanceRepository) TotalsByCategory(ctx context.Context, storeID string, from, to time.Time) ([]finance.CategoryTotal, error) {
	w := ledgerScope(storeID, from, to)
	rows, err := r.db.Query(ctx,
		`SELECT type, category, SUM(amount) FROM financial_transactions`+w.sql()+`
		GROUP BY type, category ORDER BY type, SUM(amount) DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar transações: %w", err)
	}
	defer rows.Close()

	var out []finance.CategoryTotal
	for rows.Next() {
		var typ, category string
		var total float64
		if err := rows.Scan(&typ, &category, &total); err != nil {
			return nil, fmt.Errorf("erro ao ler total por categoria: %w", err)
		}
		out = append(out, finance.CategoryTotal{Type: finance.Type(typ), Category: finance.Category(category), Total: total})
	}
	return out, rows.Err()
}

// DailyTotals implementa finance.Repository.DailyTotals
func (r *FinanceRepository) DailyTotals(ctx context.Context, storeID string, from, to time.Time) ([]finance.DailyTotal, error) {
	w := ledgerScope(storeID, from, to)
	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', date) AS day,
			COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0)
		FROM financial_transactions`+w.sql()+`
		GROUP BY day ORDER BY day`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar transações por dia: %w", err)
	}
	defer rows.Close()

	var out []finance.DailyTotal
	for rows.Next() {
		var d finance.DailyTotal
		if err := rows.Scan(&d.Day, &d.Income, &d.Expense); err != nil {
			return nil, fmt.Errorf("erro ao ler total diário: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
