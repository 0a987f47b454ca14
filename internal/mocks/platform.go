package mocks

import (
	"context"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/activitylog"
	"github.com/hugohenrick/toko-digital/internal/domain/analytics"
	"github.com/hugohenrick/toko-digital/internal/domain/chat"
	"github.com/hugohenrick/toko-digital/internal/domain/notification"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// AnalyticsRepository é um mock de analytics.Repository
type AnalyticsRepository struct {
	mock.Mock
}

func (m *AnalyticsRepository) Upsert(ctx context.Context, a *analytics.StoreAnalytics) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AnalyticsRepository) ListBetween(ctx context.Context, storeID string, period analytics.Period, from, to time.Time) ([]*analytics.StoreAnalytics, error) {
	args := m.Called(ctx, storeID, period, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*analytics.StoreAnalytics), args.Error(1)
}

// ActivityLogRepository é um mock de activitylog.Repository
type ActivityLogRepository struct {
	mock.Mock
}

func (m *ActivityLogRepository) Create(ctx context.Context, l *activitylog.AdminActivityLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *ActivityLogRepository) List(ctx context.Context, filter activitylog.Filter, limit, offset int) ([]*activitylog.AdminActivityLog, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*activitylog.AdminActivityLog), args.Error(1)
}

func (m *ActivityLogRepository) Count(ctx context.Context, filter activitylog.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

// NotificationRepository é um mock de notification.Repository
type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, n *notification.SystemNotification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NotificationRepository) ListForRole(ctx context.Context, role user.Role, unreadOnly bool, limit, offset int) ([]*notification.SystemNotification, error) {
	args := m.Called(ctx, role, unreadOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.SystemNotification), args.Error(1)
}

func (m *NotificationRepository) CountForRole(ctx context.Context, role user.Role, unreadOnly bool) (int, error) {
	args := m.Called(ctx, role, unreadOnly)
	return args.Int(0), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ChatRepository é um mock de chat.Repository
type ChatRepository struct {
	mock.Mock
}

func (m *ChatRepository) CreateChat(ctx context.Context, c *chat.Chat) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ChatRepository) FindChat(ctx context.Context, storeID, id string) (*chat.Chat, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Chat), args.Error(1)
}

func (m *ChatRepository) ListChats(ctx context.Context, storeID string, limit, offset int) ([]*chat.Chat, error) {
	args := m.Called(ctx, storeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Chat), args.Error(1)
}

func (m *ChatRepository) CountChats(ctx context.Context, storeID string) (int, error) {
	args := m.Called(ctx, storeID)
	return args.Int(0), args.Error(1)
}

func (m *ChatRepository) SaveMessage(ctx context.Context, c *chat.Chat, msg *chat.Message) error {
	return m.Called(ctx, c, msg).Error(0)
}

func (m *ChatRepository) GetHistory(ctx context.Context, chatID string, limit, offset int) ([]chat.Message, error) {
	args := m.Called(ctx, chatID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]chat.Message), args.Error(1)
}

// SessionRevoker é um mock do encerramento de sessões
type SessionRevoker struct {
	mock.Mock
}

func (m *SessionRevoker) RevokeAll(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// StatsCache é um mock do cache de relatórios
type StatsCache struct {
	mock.Mock
}

func (m *StatsCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *StatsCache) Set(ctx context.Context, key string, value interface{}) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *StatsCache) Flush(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var (
	_ analytics.Repository    = (*AnalyticsRepository)(nil)
	_ activitylog.Repository  = (*ActivityLogRepository)(nil)
	_ notification.Repository = (*NotificationRepository)(nil)
	_ chat.Repository         = (*ChatRepository)(nil)
)
