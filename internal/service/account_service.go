package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/toko-digital/internal/adapter/events"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/subscription"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/pkg/auth"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// Sessions emite, renova e encerra sessões
type Sessions interface {
	Issue(ctx context.Context, u *user.User, storeID string) (*auth.Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.Tokens, error)
	Revoke(ctx context.Context, refreshToken string) error
}

// Registration são os dados de cadastro de um novo lojista
type Registration struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	StoreName string
	Subdomain string
}

// AuthResult é o retorno de cadastro e login
type AuthResult struct {
	User   *user.User
	Store  *store.Store
	Tokens *auth.Tokens
}

// Profile é o perfil do usuário com a loja e o estado da assinatura
type Profile struct {
	User         *user.User
	Store        *store.Store
	Subscription *subscription.Subscription
	Trial        subscription.TrialState
}

// AccountDeps agrupa as dependências do AccountService
type AccountDeps struct {
	Users         user.Repository
	Stores        store.Repository
	Subscriptions subscription.Repository
	Settings      setting.Repository
	Sessions      Sessions
	Events        events.Publisher
	Logger        logger.Logger
	Defaults      setting.SystemSettings
}

// AccountService cuida de cadastro, login e perfil
type AccountService struct {
	AccountDeps
	now func() time.Time
}

// NewAccountService cria uma nova instância de AccountService
func NewAccountService(deps AccountDeps) *AccountService {
	if deps.Events == nil {
		deps.Events = events.Discard{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &AccountService{AccountDeps: deps, now: time.Now}
}

// Register cria o lojista, a loja e a assinatura FREE em avaliação e abre a sessão
func (s *AccountService) Register(ctx context.Context, in Registration) (*AuthResult, error) {
	prefs, err := loadSettings(ctx, s.Settings, s.Defaults)
	if err != nil {
		return nil, err
	}
	if !prefs.AllowRegistration {
		return nil, ErrRegistrationClosed
	}

	if _, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email))); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	u, err := user.NewUser(in.Name, in.Email, in.Password, user.RoleStoreOwner)
	if err != nil {
		return nil, err
	}
	u.Phone = strings.TrimSpace(in.Phone)

	storeName := in.StoreName
	if strings.TrimSpace(storeName) == "" {
		storeName = u.Name
	}
	st, err := store.NewStore(u.ID, storeName, in.Subdomain, prefs.DefaultCurrency)
	if err != nil {
		return nil, err
	}
	taken, err := s.Stores.ExistsBySubdomain(ctx, st.Subdomain)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSubdomainTaken
	}

	now := s.now()
	u.StartTrial(prefs.TrialDays, now)

	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if err := s.Stores.Create(ctx, st); err != nil {
		if errors.Is(err, repository.ErrStoreDuplicate) {
			return nil, ErrSubdomainTaken
		}
		return nil, err
	}

	sub, err := subscription.NewTrial(u.ID, &st.ID, subscription.PlanFree, prefs.TrialDays, now)
	if err != nil {
		return nil, err
	}
	if err := s.Subscriptions.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("erro ao criar assinatura: %w", err)
	}

	tokens, err := s.Sessions.Issue(ctx, u, st.ID)
	if err != nil {
		return nil, err
	}

	s.Events.Publish(ctx, events.SubjectUserRegistered, map[string]interface{}{
		"userId": u.ID, "storeId": st.ID, "subdomain": st.Subdomain,
	})
	s.Logger.Info("Novo lojista cadastrado", "user_id", u.ID, "store_id", st.ID)

	return &AuthResult{User: u, Store: st, Tokens: tokens}, nil
}

// Login valida as credenciais e abre uma sessão.
// Em manutenção, apenas administradores entram.
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, auth.ErrUserSuspended
	}

	prefs, err := loadSettings(ctx, s.Settings, s.Defaults)
	if err != nil {
		return nil, err
	}
	if prefs.MaintenanceMode && !u.IsAdmin() {
		return nil, ErrMaintenance
	}

	var st *store.Store
	storeID := ""
	if u.IsStoreOwner() {
		st, err = s.Stores.FindByOwner(ctx, u.ID)
		switch {
		case err == nil:
			storeID = st.ID
		case errors.Is(err, repository.ErrStoreNotFound):
			st = nil
		default:
			return nil, err
		}
	}

	if err := s.Users.UpdateLastLogin(ctx, u.ID); err != nil {
		s.Logger.Warn("Erro ao atualizar último login", "user_id", u.ID, "error", err)
	}

	tokens, err := s.Sessions.Issue(ctx, u, storeID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Store: st, Tokens: tokens}, nil
}

// Refresh troca o token de renovação por um novo par
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (*auth.Tokens, error) {
	return s.Sessions.Refresh(ctx, refreshToken)
}

// Logout encerra a sessão do token de renovação
func (s *AccountService) Logout(ctx context.Context, refreshToken string) error {
	return s.Sessions.Revoke(ctx, refreshToken)
}

// Profile monta o perfil do usuário
func (s *AccountService) Profile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &Profile{User: u}

	if u.IsStoreOwner() {
		st, err := s.Stores.FindByOwner(ctx, u.ID)
		if err != nil && !errors.Is(err, repository.ErrStoreNotFound) {
			return nil, err
		}
		p.Store = st
	}

	sub, err := s.Subscriptions.FindByUser(ctx, u.ID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, err
	}
	p.Subscription = sub
	p.Trial = subscription.TrialStatus(u.TrialEndDate, sub, s.now())
	return p, nil
}

// UpdateProfile altera nome e telefone do usuário
func (s *AccountService) UpdateProfile(ctx context.Context, userID, name, phone string) (*user.User, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.UpdateProfile(name, phone); err != nil {
		return nil, err
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ChangePassword troca a senha após conferir a atual
func (s *AccountService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !u.CheckPassword(current) {
		return ErrInvalidCredentials
	}
	if err := u.SetPassword(next); err != nil {
		return err
	}
	u.UpdatedAt = s.now()
	return s.Users.Update(ctx, u)
}
