package setting

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTrialDays = errors.New("dias de avaliação devem estar entre 0 e 90")
	ErrEmptyPlatform    = errors.New("nome da plataforma não pode ser vazio")
)

// SystemSettings são as preferências globais editadas pelos administradores
type SystemSettings struct {
	PlatformName      string    `json:"platformName"`
	SupportEmail      string    `json:"supportEmail"`
	DefaultCurrency   string    `json:"defaultCurrency"`
	TrialDays         int       `json:"trialDays"`
	AllowRegistration bool      `json:"allowRegistration"`
	MaintenanceMode   bool      `json:"maintenanceMode"`
	UpdatedBy         string    `json:"updatedBy,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Defaults retorna as preferências usadas enquanto nada foi salvo
func Defaults(currency string, trialDays int) SystemSettings {
	return SystemSettings{
		PlatformName:      "Toko Digital",
		DefaultCurrency:   currency,
		TrialDays:         trialDays,
		AllowRegistration: true,
	}
}

// Validate normaliza e valida as preferências
func (s *SystemSettings) Validate() error {
	s.PlatformName = strings.TrimSpace(s.PlatformName)
	s.SupportEmail = strings.ToLower(strings.TrimSpace(s.SupportEmail))
	s.DefaultCurrency = strings.ToUpper(strings.TrimSpace(s.DefaultCurrency))

	if s.PlatformName == "" {
		return ErrEmptyPlatform
	}
	if s.TrialDays < 0 || s.TrialDays > 90 {
		return ErrInvalidTrialDays
	}
	return nil
}

// Repository guarda o registro único de preferências
type Repository interface {
	// Get retorna as preferências salvas; found é false quando nunca foram salvas
	Get(ctx context.Context) (settings SystemSettings, found bool, err error)
	Save(ctx context.Context, s SystemSettings) error
}
