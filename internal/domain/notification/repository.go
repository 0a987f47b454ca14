package notification

import (
	"context"

	"github.com/hugohenrick/toko-digital/internal/domain/user"
)

// Repository define as operações de persistência de notificações
type Repository interface {
	Create(ctx context.Context, n *SystemNotification) error

	// ListForRole lista as notificações visíveis ao papel; unreadOnly filtra as não lidas
	ListForRole(ctx context.Context, role user.Role, unreadOnly bool, limit, offset int) ([]*SystemNotification, error)

	CountForRole(ctx context.Context, role user.Role, unreadOnly bool) (int, error)

	// MarkRead marca a notificação como lida
	MarkRead(ctx context.Context, id string) error
}
