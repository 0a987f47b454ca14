package service

import (
	"context"
	"testing"

	"github.com/hugohenrick/toko-digital/internal/adapter/events"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/hugohenrick/toko-digital/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	issued []string
}

func (f *fakeSessions) Issue(_ context.Context, u *user.User, storeID string) (*auth.Tokens, error) {
	f.issued = append(f.issued, u.ID+"@"+storeID)
	return &auth.Tokens{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}, nil
}

func (f *fakeSessions) Refresh(context.Context, string) (*auth.Tokens, error) {
	return nil, auth.ErrSessionNotFound
}

func (f *fakeSessions) Revoke(context.Context, string) error { return nil }

type accountFixture struct {
	users    *mocks.UserRepository
	stores   *mocks.StoreRepository
	subs     *mocks.SubscriptionRepository
	settings *mocks.SettingRepository
	sessions *fakeSessions
	events   *events.Recorder
	svc      *AccountService
}

func newAccountFixture() *accountFixture {
	f := &accountFixture{
		users:    new(mocks.UserRepository),
		stores:   new(mocks.StoreRepository),
		subs:     new(mocks.SubscriptionRepository),
		settings: new(mocks.SettingRepository),
		sessions: &fakeSessions{},
		events:   &events.Recorder{},
	}
	f.svc = NewAccountService(AccountDeps{
		Users:         f.users,
		Stores:        f.stores,
		Subscriptions: f.subs,
		Settings:      f.settings,
		Sessions:      f.sessions,
		Events:        f.events,
		Defaults:      setting.Defaults("IDR", 14),
	})
	return f
}

func TestAccountService_Register(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	f.settings.On("Get", ctx).Return(setting.SystemSettings{}, false, nil)
	f.users.On("FindByEmail", ctx, "budi@example.com").Return(nil, repository.ErrUserNotFound)
	f.stores.On("ExistsBySubdomain", ctx, "warung-budi").Return(false, nil)
	f.users.On("Create", ctx, mock.MatchedBy(func(u *user.User) bool {
		return u.Role == user.RoleStoreOwner && u.TrialEndDate != nil
	})).Return(nil)
	f.stores.On("Create", ctx, mock.MatchedBy(func(s *store.Store) bool {
		return s.Currency == "IDR" && !s.IsVerified
	})).Return(nil)
	f.subs.On("Create", ctx, mock.MatchedBy(func(s *subscription.Subscription) bool {
		return s.Plan == subscription.PlanFree && s.Status == subscription.StatusTrial
	})).Return(nil)

	res, err := f.svc.Register(ctx, Registration{
		Name: "Budi", Email: " Budi@Example.com ", Password: "rahasia123", StoreName: "Warung Budi",
	})
	require.NoError(t, err)

	assert.Equal(t, "warung-budi", res.Store.Subdomain)
	assert.Equal(t, "access", res.Tokens.AccessToken)
	assert.Equal(t, []string{res.User.ID + "@" + res.Store.ID}, f.sessions.issued)
	assert.Equal(t, []string{events.SubjectUserRegistered}, f.events.Subjects())
}

func TestAccountService_RegisterConflicts(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	f.settings.On("Get", ctx).Return(setting.SystemSettings{}, false, nil)
	f.users.On("FindByEmail", ctx, "taken@example.com").Return(&user.User{ID: "u1"}, nil)
	f.users.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	f.stores.On("ExistsBySubdomain", ctx, "toko-ada").Return(true, nil)

	_, err := f.svc.Register(ctx, Registration{Name: "A", Email: "taken@example.com", Password: "rahasia123", StoreName: "Toko"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = f.svc.Register(ctx, Registration{Name: "B", Email: "new@example.com", Password: "rahasia123", StoreName: "Toko Ada"})
	assert.ErrorIs(t, err, ErrSubdomainTaken)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_RegisterClosed(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	closed := setting.Defaults("IDR", 14)
	closed.AllowRegistration = false
	f.settings.On("Get", ctx).Return(closed, true, nil)

	_, err := f.svc.Register(ctx, Registration{Name: "A", Email: "a@example.com", Password: "rahasia123"})
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestAccountService_Login(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	owner, err := user.NewUser("Budi", "budi@example.com", "rahasia123", user.RoleStoreOwner)
	require.NoError(t, err)
	suspended, err := user.NewUser("Sari", "sari@example.com", "rahasia123", user.RoleStoreOwner)
	require.NoError(t, err)
	suspended.Suspend()

	f.settings.On("Get", ctx).Return(setting.SystemSettings{}, false, nil)
	f.users.On("FindByEmail", ctx, "budi@example.com").Return(owner, nil)
	f.users.On("FindByEmail", ctx, "sari@example.com").Return(suspended, nil)
	f.users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	f.stores.On("FindByOwner", ctx, owner.ID).Return(&store.Store{ID: "store-1", OwnerID: owner.ID}, nil)
	f.users.On("UpdateLastLogin", ctx, owner.ID).Return(nil)

	res, err := f.svc.Login(ctx, "BUDI@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "store-1", res.Store.ID)
	assert.Equal(t, []string{owner.ID + "@store-1"}, f.sessions.issued)

	_, err = f.svc.Login(ctx, "budi@example.com", "salah-salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, "nobody@example.com", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, "sari@example.com", "rahasia123")
	assert.ErrorIs(t, err, auth.ErrUserSuspended)
}

func TestAccountService_LoginDuringMaintenance(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	owner, err := user.NewUser("Budi", "budi@example.com", "rahasia123", user.RoleStoreOwner)
	require.NoError(t, err)
	prefs := setting.Defaults("IDR", 14)
	prefs.MaintenanceMode = true

	f.settings.On("Get", ctx).Return(prefs, true, nil)
	f.users.On("FindByEmail", ctx, "budi@example.com").Return(owner, nil)

	_, err = f.svc.Login(ctx, "budi@example.com", "rahasia123")
	assert.ErrorIs(t, err, ErrMaintenance)
}

func TestAccountService_ProfileAndPassword(t *testing.T) {
	f := newAccountFixture()
	ctx := context.Background()

	u, err := user.NewUser("Budi", "budi@example.com", "rahasia123", user.RoleStoreOwner)
	require.NoError(t, err)

	f.users.On("FindByID", ctx, u.ID).Return(u, nil)
	f.stores.On("FindByOwner", ctx, u.ID).Return(nil, repository.ErrStoreNotFound)
	f.subs.On("FindByUser", ctx, u.ID).Return(&subscription.Subscription{Status: subscription.StatusActive}, nil)
	f.users.On("Update", ctx, u).Return(nil)

	p, err := f.svc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, p.Store)
	assert.Equal(t, "Subscribed", p.Trial.Text)

	updated, err := f.svc.UpdateProfile(ctx, u.ID, "Budi Santoso", "0812")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name)

	assert.ErrorIs(t, f.svc.ChangePassword(ctx, u.ID, "errado", "novasenha123"), ErrInvalidCredentials)
	require.NoError(t, f.svc.ChangePassword(ctx, u.ID, "rahasia123", "novasenha123"))
	assert.True(t, u.CheckPassword("novasenha123"))
}
