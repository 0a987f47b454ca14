package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var (
	ErrEmptyName        = errors.New("nome da loja não pode ser vazio")
	ErrEmptyOwner       = errors.New("loja precisa de um dono")
	ErrInvalidSubdomain = errors.New("subdomínio inválido")
	ErrReservedName     = errors.New("subdomínio reservado pela plataforma")
	ErrStoreNotVerified = errors.New("loja ainda não foi verificada")
	ErrStoreInactive    = errors.New("loja está suspensa")
)

// reservedSubdomains não podem ser usados por lojas
var reservedSubdomains = map[string]bool{
	"www": true, "api": true, "admin": true, "app": true, "mail": true, "superadmin": true,
}

// ThemeSettings guarda as personalizações visuais da vitrine
type ThemeSettings struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	Layout         string `json:"layout"`
	BannerURL      string `json:"bannerUrl,omitempty"`
	CustomCSS      string `json:"customCss,omitempty"`
}

// Store representa uma loja (tenant) da plataforma
type Store struct {
	ID           string        `json:"id"`
	OwnerID      string        `json:"ownerId"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Subdomain    string        `json:"subdomain"`
	CustomDomain *string       `json:"customDomain,omitempty"`
	Logo         string        `json:"logo"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	Currency     string        `json:"currency"`
	TemplateID   string        `json:"templateId"`
	Theme        ThemeSettings `json:"theme"`
	IsActive     bool          `json:"isActive"`
	IsVerified   bool          `json:"isVerified"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// NewStore cria uma nova loja ativa e não verificada.
// Se o subdomínio não for informado, ele é derivado do nome.
func NewStore(ownerID, name, subdomain, currency string) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if ownerID == "" {
		return nil, ErrEmptyOwner
	}

	if subdomain == "" {
		subdomain = name
	}
	sub, err := NormalizeSubdomain(subdomain)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Store{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		Subdomain: sub,
		Currency:  currency,
		Theme:     DefaultTheme(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizeSubdomain converte um texto livre em um subdomínio válido
func NormalizeSubdomain(raw string) (string, error) {
	sub := slug.Make(raw)
	if len(sub) < 3 || len(sub) > 63 {
		return "", ErrInvalidSubdomain
	}
	if reservedSubdomains[sub] {
		return "", ErrReservedName
	}
	return sub, nil
}

// DefaultTheme retorna o tema aplicado a lojas novas
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#f59e0b",
		FontFamily:     "Inter",
		Layout:         "grid",
	}
}

// Activate ativa a loja. Retorna false se ela já estava ativa.
func (s *Store) Activate() bool {
	if s.IsActive {
		return false
	}
	s.IsActive = true
	s.UpdatedAt = time.Now()
	return true
}

// Suspend suspende a loja. Retorna false se ela já estava suspensa.
func (s *Store) Suspend() bool {
	if !s.IsActive {
		return false
	}
	s.IsActive = false
	s.UpdatedAt = time.Now()
	return true
}

// Verify marca a loja como verificada. Retorna false se ela já estava verificada.
func (s *Store) Verify() bool {
	if s.IsVerified {
		return false
	}
	s.IsVerified = true
	s.UpdatedAt = time.Now()
	return true
}

// CanPublish indica se a loja pode expor produtos na vitrine
func (s *Store) CanPublish() error {
	if !s.IsActive {
		return ErrStoreInactive
	}
	if !s.IsVerified {
		return ErrStoreNotVerified
	}
	return nil
}

// ApplyTemplate troca o template da loja e reinicia o tema para o padrão do template
func (s *Store) ApplyTemplate(t *Template) {
	s.TemplateID = t.ID
	s.Theme = t.DefaultTheme
	s.UpdatedAt = time.Now()
}

// UpdateTheme aplica personalizações sobre o tema atual; campos vazios são mantidos
func (s *Store) UpdateTheme(theme ThemeSettings) {
	if theme.PrimaryColor != "" {
		s.Theme.PrimaryColor = theme.PrimaryColor
	}
	if theme.SecondaryColor != "" {
		s.Theme.SecondaryColor = theme.SecondaryColor
	}
	if theme.FontFamily != "" {
		s.Theme.FontFamily = theme.FontFamily
	}
	if theme.Layout != "" {
		s.Theme.Layout = theme.Layout
	}
	if theme.BannerURL != "" {
		s.Theme.BannerURL = theme.BannerURL
	}
	if theme.CustomCSS != "" {
		s.Theme.CustomCSS = theme.CustomCSS
	}
	s.UpdatedAt = time.Now()
}

// StorefrontURL retorna o endereço público da loja; o domínio próprio tem prioridade
func (s *Store) StorefrontURL(baseDomain string) string {
	if s.CustomDomain != nil && *s.CustomDomain != "" {
		return "https://" + *s.CustomDomain
	}
	return "https://" + s.Subdomain + "." + baseDomain
}

// WhatsAppSettings guarda a integração de WhatsApp de uma loja
type WhatsAppSettings struct {
	StoreID         string    `json:"storeId"`
	PhoneNumber     string    `json:"phoneNumber"`
	IsEnabled       bool      `json:"isEnabled"`
	GreetingMessage string    `json:"greetingMessage"`
	OrderTemplate   string    `json:"orderTemplate"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Template representa um modelo de vitrine disponível no catálogo
type Template struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	PreviewURL   string        `json:"previewUrl"`
	IsPremium    bool          `json:"isPremium"`
	DefaultTheme ThemeSettings `json:"defaultTheme"`
}
