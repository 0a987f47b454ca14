package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingRepository implementa setting.Repository sobre uma linha única em JSONB
type SettingRepository struct {
	db *pgxpool.Pool
}

// NewSettingRepository cria uma nova instância de SettingRepository
func NewSettingRepository(db *pgxpool.Pool) setting.Repository {
	return &SettingRepository{db: db}
}

// Get implementa setting.Repository.Get
func (r *SettingRepository) Get(ctx context.Context) (setting.SystemSettings, bool, error) {
	var data []byte
	err := r.db.QueryRow(ctx, "SELECT data FROM system_settings WHERE id = 1").Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return setting.SystemSettings{}, false, nil
	}
	if err != nil {
		return setting.SystemSettings{}, false, fmt.Errorf("erro ao buscar configurações: %w", err)
	}

	var s setting.SystemSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return setting.SystemSettings{}, false, fmt.Errorf("erro ao decodificar configurações: %w", err)
	}
	return s, true, nil
}

// Save implementa setting.Repository.Save
func (r *SettingRepository) Save(ctx context.Context, s setting.SystemSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("erro ao codificar configurações: %w", err)
	}

	var updatedBy *string
	if s.UpdatedBy != "" {
		updatedBy = &s.UpdatedBy
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO system_settings (id, data, updated_by, updated_at) VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at`,
		data, updatedBy, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar configurações: %w", err)
	}
	return nil
}
