package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/toko-digital/internal/domain/activitylog"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityLogRepository implementa activitylog.Repository
type ActivityLogRepository struct {
	db *pgxpool.Pool
}

// NewActivityLogRepository cria uma nova instância de ActivityLogRepository
func NewActivityLogRepository(db *pgxpool.Pool) activitylog.Repository {
	return &ActivityLogRepository{db: db}
}

// Create implementa activitylog.Repository.Create
func (r *ActivityLogRepository) Create(ctx context.Context, l *activitylog.AdminActivityLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admin_activity_logs (id, admin_id, action, target_type, target_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.AdminID, l.Action, l.TargetType, l.TargetID, l.Details, l.IPAddress, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar atividade: %w", err)
	}
	return nil
}

func activityFilter(f activitylog.Filter) *whereBuilder {
	w := &whereBuilder{}
	if f.AdminID != "" {
		w.add("admin_id = ?", f.AdminID)
	}
	if f.TargetType != "" {
		w.add("target_type = ?", f.TargetType)
	}
	if f.Action != "" {
		w.add("action = ?", f.Action)
	}
	return w
}

// List implementa activitylog.Repository.List
func (r *ActivityLogRepository) List(ctx context.Context, filter activitylog.Filter, limit, offset int) ([]*activitylog.AdminActivityLog, error) {
	w := activityFilter(filter)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT id, admin_id, action, target_type, target_id, details, ip_address, created_at
		FROM admin_activity_logs`+w.sql()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar atividades: %w", err)
	}
	defer rows.Close()

	var out []*activitylog.AdminActivityLog
	for rows.Next() {
		l := &activitylog.AdminActivityLog{}
		if err := rows.Scan(&l.ID, &l.AdminID, &l.Action, &l.TargetType, &l.TargetID,
			&l.Details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler atividade: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Count implementa activitylog.Repository.Count
func (r *ActivityLogRepository) Count(ctx context.Context, filter activitylog.Filter) (int, error) {
	w := activityFilter(filter)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_activity_logs`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar atividades: %w", err)
	}
	return count, nil
}
