package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrStoreNotFound         = errors.New("loja não encontrada")
	ErrStoreDuplicate        = errors.New("subdomínio ou domínio já está em uso")
	ErrWhatsAppNotConfigured = errors.New("whatsapp não configurado para a loja")
	ErrTemplateNotFound      = errors.New("template não encontrado")
)

const storeColumns = `id, owner_id, name, description, subdomain, custom_domain, logo, phone,
	address, currency, template_id, theme, is_active, is_verified, created_at, updated_at`

// StoreRepository implementa a interface store.Repository usando PostgreSQL
type StoreRepository struct {
	db *pgxpool.Pool
}

// NewStoreRepository cria uma nova instância de StoreRepository
func NewStoreRepository(db *pgxpool.Pool) store.Repository {
	return &StoreRepository{db: db}
}

// Create implementa store.Repository.Create
func (r *StoreRepository) Create(ctx context.Context, s *store.Store) error {
	theme, err := json.Marshal(s.Theme)
	if err != nil {
		return fmt.Errorf("erro ao converter tema para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO stores (`+storeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		s.ID, s.OwnerID, s.Name, s.Description, s.Subdomain, s.CustomDomain, s.Logo, s.Phone,
		s.Address, s.Currency, s.TemplateID, theme, s.IsActive, s.IsVerified, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrStoreDuplicate
		}
		return fmt.Errorf("erro ao criar loja: %w", err)
	}
	return nil
}

// FindByID implementa store.Repository.FindByID
func (r *StoreRepository) FindByID(ctx context.Context, id string) (*store.Store, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindByOwner implementa store.Repository.FindByOwner
func (r *StoreRepository) FindByOwner(ctx context.Context, ownerID string) (*store.Store, error) {
	return r.findOne(ctx, "owner_id = $1", ownerID)
}

// FindBySubdomain implementa store.Repository.FindBySubdomain
func (r *StoreRepository) FindBySubdomain(ctx context.Context, subdomain string) (*store.Store, error) {
	return r.findOne(ctx, "subdomain = $1", subdomain)
}

func (r *StoreRepository) findOne(ctx context.Context, cond string, arg interface{}) (*store.Store, error) {
	s, err := scanStore(r.db.QueryRow(ctx, `SELECT `+storeColumns+` FROM stores WHERE `+cond, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("erro ao buscar loja: %w", err)
	}
	return s, nil
}

func storeFilter(f store.Filter) *whereBuilder {
	w := &whereBuilder{}
	w.search(f.Search, "name", "subdomain")
	if f.Active != nil {
		w.add("is_active = ?", *f.Active)
	}
	if f.Verified != nil {
		w.add("is_verified = ?", *f.Verified)
	}
	if f.CreatedBefore != nil {
		w.add("created_at < ?", *f.CreatedBefore)
	}
	return w
}

// List implementa store.Repository.List
func (r *StoreRepository) List(ctx context.Context, filter store.Filter, limit, offset int) ([]*store.Store, error) {
	w := storeFilter(filter)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT `+storeColumns+` FROM stores`+w.sql()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas: %w", err)
	}
	defer rows.Close()

	var stores []*store.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler loja: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// Count implementa store.Repository.Count
func (r *StoreRepository) Count(ctx context.Context, filter store.Filter) (int, error) {
	w := storeFilter(filter)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM stores`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar lojas: %w", err)
	}
	return count, nil
}

// ListActiveIDs implementa store.Repository.ListActiveIDs
func (r *StoreRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT id FROM stores WHERE is_active ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas ativas: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao ler loja: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update implementa store.Repository.Update
func (r *StoreRepository) Update(ctx context.Context, s *store.Store) error {
	theme, err := json.Marshal(s.Theme)
	if err != nil {
		return fmt.Errorf("erro ao converter tema para JSON: %w", err)
	}

	result, err := r.db.Exec(ctx,
		`UPDATE stores SET name = $1, description = $2, subdomain = $3, custom_domain = $4,
			logo = $5, phone = $6, address = $7, currency = $8, template_id = $9, theme = $10,
			is_active = $11, is_verified = $12, updated_at = $13
		WHERE id = $14`,
		s.Name, s.Description, s.Subdomain, s.CustomDomain, s.Logo, s.Phone, s.Address,
		s.Currency, s.TemplateID, theme, s.IsActive, s.IsVerified, s.UpdatedAt, s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrStoreDuplicate
		}
		return fmt.Errorf("erro ao atualizar loja: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrStoreNotFound
	}
	return nil
}

// ExistsBySubdomain implementa store.Repository.ExistsBySubdomain
func (r *StoreRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM stores WHERE subdomain = $1)", subdomain).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar subdomínio: %w", err)
	}
	return exists, nil
}

// GetWhatsAppSettings implementa store.Repository.GetWhatsAppSettings
func (r *StoreRepository) GetWhatsAppSettings(ctx context.Context, storeID string) (*store.WhatsAppSettings, error) {
	ws := &store.WhatsAppSettings{}
	err := r.db.QueryRow(ctx,
		`SELECT store_id, phone_number, is_enabled, greeting_message, order_template, updated_at
		FROM whatsapp_settings WHERE store_id = $1`, storeID).Scan(
		&ws.StoreID, &ws.PhoneNumber, &ws.IsEnabled, &ws.GreetingMessage, &ws.OrderTemplate, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWhatsAppNotConfigured
		}
		return nil, fmt.Errorf("erro ao buscar configuração de whatsapp: %w", err)
	}
	return ws, nil
}

// SaveWhatsAppSettings implementa store.Repository.SaveWhatsAppSettings
func (r *StoreRepository) SaveWhatsAppSettings(ctx context.Context, ws *store.WhatsAppSettings) error {
	ws.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx,
		`INSERT INTO whatsapp_settings (store_id, phone_number, is_enabled, greeting_message, order_template, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (store_id) DO UPDATE SET
			phone_number = EXCLUDED.phone_number,
			is_enabled = EXCLUDED.is_enabled,
			greeting_message = EXCLUDED.greeting_message,
			order_template = EXCLUDED.order_template,
			updated_at = EXCLUDED.updated_at`,
		ws.StoreID, ws.PhoneNumber, ws.IsEnabled, ws.GreetingMessage, ws.OrderTemplate, ws.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar configuração de whatsapp: %w", err)
	}
	return nil
}

func scanStore(row pgx.Row) (*store.Store, error) {
	s := &store.Store{}
	var theme []byte
	err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Description, &s.Subdomain, &s.CustomDomain,
		&s.Logo, &s.Phone, &s.Address, &s.Currency, &s.TemplateID, &theme, &s.IsActive,
		&s.IsVerified, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(theme) > 0 {
		if err := json.Unmarshal(theme, &s.Theme); err != nil {
			return nil, fmt.Errorf("erro ao converter tema: %w", err)
		}
	}
	return s, nil
}

// TemplateRepository implementa store.TemplateRepository
type TemplateRepository struct {
	db *pgxpool.Pool
}

// NewTemplateRepository cria uma nova instância de TemplateRepository
func NewTemplateRepository(db *pgxpool.Pool) store.TemplateRepository {
	return &TemplateRepository{db: db}
}

const templateColumns = "id, name, description, category, preview_url, is_premium, default_theme"

// List implementa store.TemplateRepository.List
func (r *TemplateRepository) List(ctx context.Context) ([]*store.Template, error) {
	rows, err := r.db.Query(ctx, `SELECT `+templateColumns+` FROM templates ORDER BY is_premium, name`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar templates: %w", err)
	}
	defer rows.Close()

	var templates []*store.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// FindByID implementa store.TemplateRepository.FindByID
func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*store.Template, error) {
	t, err := scanTemplate(r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return t, nil
}

func scanTemplate(row pgx.Row) (*store.Template, error) {
	t := &store.Template{}
	var theme []byte
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.PreviewURL, &t.IsPremium, &theme); err != nil {
		return nil, fmt.Errorf("erro ao ler template: %w", err)
	}
	if err := json.Unmarshal(theme, &t.DefaultTheme); err != nil {
		return nil, fmt.Errorf("erro ao converter tema do template: %w", err)
	}
	return t, nil
}
