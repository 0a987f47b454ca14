// Package mocks contém implementações testify/mock dos repositórios de domínio.
package mocks

import (
	"context"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// UserRepository é um mock de user.Repository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, filter user.Filter, limit, offset int) ([]*user.User, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *UserRepository) Count(ctx context.Context, filter user.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserRepository) CountByRole(ctx context.Context) (map[user.Role]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[user.Role]int), args.Error(1)
}

// StoreRepository é um mock de store.Repository
type StoreRepository struct {
	mock.Mock
}

func (m *StoreRepository) Create(ctx context.Context, s *store.Store) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StoreRepository) FindByID(ctx context.Context, id string) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *StoreRepository) FindByOwner(ctx context.Context, ownerID string) (*store.Store, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *StoreRepository) FindBySubdomain(ctx context.Context, subdomain string) (*store.Store, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *StoreRepository) List(ctx context.Context, filter store.Filter, limit, offset int) ([]*store.Store, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Store), args.Error(1)
}

func (m *StoreRepository) Count(ctx context.Context, filter store.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *StoreRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *StoreRepository) Update(ctx context.Context, s *store.Store) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StoreRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	args := m.Called(ctx, subdomain)
	return args.Bool(0), args.Error(1)
}

func (m *StoreRepository) GetWhatsAppSettings(ctx context.Context, storeID string) (*store.WhatsAppSettings, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.WhatsAppSettings), args.Error(1)
}

func (m *StoreRepository) SaveWhatsAppSettings(ctx context.Context, settings *store.WhatsAppSettings) error {
	return m.Called(ctx, settings).Error(0)
}

// TemplateRepository é um mock de store.TemplateRepository
type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) List(ctx context.Context) ([]*store.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Template), args.Error(1)
}

func (m *TemplateRepository) FindByID(ctx context.Context, id string) (*store.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Template), args.Error(1)
}

// SubscriptionRepository é um mock de subscription.Repository
type SubscriptionRepository struct {
	mock.Mock
}

func (m *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *SubscriptionRepository) FindByUser(ctx context.Context, userID string) (*subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *SubscriptionRepository) List(ctx context.Context, status subscription.Status, limit, offset int) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *SubscriptionRepository) Count(ctx context.Context, status subscription.Status) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *SubscriptionRepository) ExpireTrials(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *SubscriptionRepository) CountByPlan(ctx context.Context) ([]subscription.PlanCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.PlanCount), args.Error(1)
}

// SettingRepository é um mock de setting.Repository
type SettingRepository struct {
	mock.Mock
}

func (m *SettingRepository) Get(ctx context.Context) (setting.SystemSettings, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(setting.SystemSettings), args.Bool(1), args.Error(2)
}

func (m *SettingRepository) Save(ctx context.Context, s setting.SystemSettings) error {
	return m.Called(ctx, s).Error(0)
}

var (
	_ user.Repository          = (*UserRepository)(nil)
	_ store.Repository         = (*StoreRepository)(nil)
	_ store.TemplateRepository = (*TemplateRepository)(nil)
	_ subscription.Repository  = (*SubscriptionRepository)(nil)
	_ setting.Repository       = (*SettingRepository)(nil)
)
