package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/toko-digital/internal/adapter/events"
	"github.com/hugohenrick/toko-digital/internal/domain/activitylog"
	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// Ações administrativas aceitas
const (
	ActionActivate = "activate"
	ActionSuspend  = "suspend"
	ActionVerify   = "verify"
)

var ErrSelfAction = errors.New("administrador não pode suspender a própria conta")

// SessionRevoker encerra as sessões de um usuário
type SessionRevoker interface {
	RevokeAll(ctx context.Context, userID string) error
}

// Actor identifica o administrador que executa uma ação
type Actor struct {
	AdminID string
	IP      string
}

// AdminDeps agrupa as dependências do AdminService
type AdminDeps struct {
	Users    user.Repository
	Stores   store.Repository
	Activity activitylog.Repository
	Settings setting.Repository
	Cache    StatsCache
	Sessions SessionRevoker
	Events   events.Publisher
	Logger   logger.Logger
	// Defaults são as preferências usadas antes do primeiro salvamento
	Defaults setting.SystemSettings
}

// AdminService executa as ações administrativas da plataforma.
// Toda ação efetiva gera um registro de atividade e um evento; repetir uma ação não tem efeito.
type AdminService struct {
	AdminDeps
	now func() time.Time
}

// NewAdminService cria uma nova instância de AdminService
func NewAdminService(deps AdminDeps) *AdminService {
	if deps.Events == nil {
		deps.Events = events.Discard{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	return &AdminService{AdminDeps: deps, now: time.Now}
}

// UserAction ativa ou suspende um usuário. changed é false quando o usuário já estava no estado pedido.
func (s *AdminService) UserAction(ctx context.Context, actor Actor, userID, action string) (*user.User, bool, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	var changed bool
	var subject string
	switch action {
	case ActionActivate:
		changed, subject = u.Activate(), events.SubjectUserActivated
	case ActionSuspend:
		if u.ID == actor.AdminID {
			return nil, false, ErrSelfAction
		}
		changed, subject = u.Suspend(), events.SubjectUserSuspended
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}
	if !changed {
		return u, false, nil
	}

	if err := s.Users.SetActive(ctx, u.ID, u.IsActive); err != nil {
		return nil, false, err
	}

	// Usuário suspenso não mantém sessões
	if !u.IsActive && s.Sessions != nil {
		if err := s.Sessions.RevokeAll(ctx, u.ID); err != nil {
			s.Logger.Error("Erro ao revogar sessões do usuário suspenso", "user_id", u.ID, "error", err)
		}
	}

	s.record(ctx, actor, action, activitylog.TargetUser, u.ID, u.Email)
	s.Events.Publish(ctx, subject, map[string]interface{}{"userId": u.ID, "adminId": actor.AdminID})
	return u, true, nil
}

// StoreAction ativa, suspende ou verifica uma loja
func (s *AdminService) StoreAction(ctx context.Context, actor Actor, storeID, action string) (*store.Store, bool, error) {
	st, err := s.Stores.FindByID(ctx, storeID)
	if err != nil {
		return nil, false, err
	}

	var changed bool
	var subject string
	switch action {
	case ActionActivate:
		changed, subject = st.Activate(), events.SubjectStoreActivated
	case ActionSuspend:
		changed, subject = st.Suspend(), events.SubjectStoreSuspended
	case ActionVerify:
		changed, subject = st.Verify(), events.SubjectStoreVerified
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}
	if !changed {
		return st, false, nil
	}

	if err := s.Stores.Update(ctx, st); err != nil {
		return nil, false, err
	}

	s.record(ctx, actor, action, activitylog.TargetStore, st.ID, st.Subdomain)
	s.Events.Publish(ctx, subject, map[string]interface{}{"storeId": st.ID, "adminId": actor.AdminID})
	return st, true, nil
}

// ClearCache descarta os relatórios em cache e retorna quantas chaves foram removidas
func (s *AdminService) ClearCache(ctx context.Context, actor Actor) (int, error) {
	if s.Cache == nil {
		return 0, nil
	}
	n, err := s.Cache.Flush(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar cache: %w", err)
	}

	s.record(ctx, actor, activitylog.ActionClearCache, activitylog.TargetSystem, "", fmt.Sprintf("keys=%d", n))
	s.Events.Publish(ctx, events.SubjectCacheCleared, map[string]interface{}{"keys": n, "adminId": actor.AdminID})
	return n, nil
}

// RequestBackup registra o pedido de backup e retorna a referência do job.
// O backup em si é executado pelo consumidor do evento.
func (s *AdminService) RequestBackup(ctx context.Context, actor Actor) (string, error) {
	jobID := uuid.New().String()

	l := activitylog.New(actor.AdminID, activitylog.ActionBackupDatabase, activitylog.TargetSystem, "", "job="+jobID, actor.IP)
	if err := s.Activity.Create(ctx, l); err != nil {
		return "", fmt.Errorf("erro ao registrar pedido de backup: %w", err)
	}

	s.Events.Publish(ctx, events.SubjectBackupRequested, map[string]interface{}{"jobId": jobID, "adminId": actor.AdminID})
	return jobID, nil
}

// Settings retorna as preferências do sistema
func (s *AdminService) Settings(ctx context.Context) (setting.SystemSettings, error) {
	return loadSettings(ctx, s.AdminDeps.Settings, s.Defaults)
}

// UpdateSettings valida e salva as preferências do sistema
func (s *AdminService) UpdateSettings(ctx context.Context, actor Actor, in setting.SystemSettings) (setting.SystemSettings, error) {
	if err := in.Validate(); err != nil {
		return setting.SystemSettings{}, err
	}
	in.UpdatedBy = actor.AdminID
	in.UpdatedAt = s.now()

	if err := s.AdminDeps.Settings.Save(ctx, in); err != nil {
		return setting.SystemSettings{}, err
	}

	s.record(ctx, actor, activitylog.ActionUpdateSettings, activitylog.TargetSystem, "", "")
	return in, nil
}

// record grava a atividade; a ação já foi aplicada, então falhas só geram log
func (s *AdminService) record(ctx context.Context, actor Actor, action, targetType, targetID, details string) {
	l := activitylog.New(actor.AdminID, action, targetType, targetID, details, actor.IP)
	if err := s.Activity.Create(ctx, l); err != nil {
		s.Logger.Error("Erro ao registrar atividade administrativa", "action", action, "target_id", targetID, "error", err)
	}
}

func loadSettings(ctx context.Context, repo setting.Repository, defaults setting.SystemSettings) (setting.SystemSettings, error) {
	if repo == nil {
		return defaults, nil
	}
	st, found, err := repo.Get(ctx)
	if err != nil {
		return setting.SystemSettings{}, fmt.Errorf("erro ao carregar preferências: %w", err)
	}
	if !found {
		return defaults, nil
	}
	return st, nil
}
