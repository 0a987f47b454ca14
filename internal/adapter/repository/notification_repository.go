package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/toko-digital/internal/domain/notification"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotificationNotFound = errors.New("notificação não encontrada")

// NotificationRepository implementa notification.Repository
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository cria uma nova instância de NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &NotificationRepository{db: db}
}

// Create implementa notification.Repository.Create
func (r *NotificationRepository) Create(ctx context.Context, n *notification.SystemNotification) error {
	var target *string
	if n.TargetRole != nil {
		role := string(*n.TargetRole)
		target = &role
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO system_notifications (id, title, message, type, target_role, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID, n.Title, n.Message, string(n.Type), target, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar notificação: %w", err)
	}
	return nil
}

func notificationFilter(role user.Role, unreadOnly bool) *whereBuilder {
	w := &whereBuilder{}
	w.add("(target_role IS NULL OR target_role = ?)", string(role))
	if unreadOnly {
		w.addRaw("NOT is_read")
	}
	return w
}

// ListForRole implementa notification.Repository.ListForRole
func (r *NotificationRepository) ListForRole(ctx context.Context, role user.Role, unreadOnly bool, limit, offset int) ([]*notification.SystemNotification, error) {
	w := notificationFilter(role, unreadOnly)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT id, title, message, type, target_role, is_read, created_at
		FROM system_notifications`+w.sql()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notificações: %w", err)
	}
	defer rows.Close()

	var out []*notification.SystemNotification
	for rows.Next() {
		n := &notification.SystemNotification{}
		var typ string
		var target *string
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &typ, &target, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler notificação: %w", err)
		}
		n.Type = notification.Type(typ)
		if target != nil {
			role := user.Role(*target)
			n.TargetRole = &role
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// CountForRole implementa notification.Repository.CountForRole
func (r *NotificationRepository) CountForRole(ctx context.Context, role user.Role, unreadOnly bool) (int, error) {
	w := notificationFilter(role, unreadOnly)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM system_notifications`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar notificações: %w", err)
	}
	return count, nil
}

// MarkRead implementa notification.Repository.MarkRead
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "UPDATE system_notifications SET is_read = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao marcar notificação como lida: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
