package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var (
	ErrEmptyName         = errors.New("nome do produto não pode ser vazio")
	ErrEmptyStore        = errors.New("produto precisa pertencer a uma loja")
	ErrNegativePrice     = errors.New("preço não pode ser negativo")
	ErrNegativeStock     = errors.New("estoque não pode ser negativo")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrInvalidVisibility = errors.New("visibilidade inválida")
)

// Visibility controla onde o produto aparece
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityHidden  Visibility = "HIDDEN"
)

// Valid verifica se a visibilidade é conhecida
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate || v == VisibilityHidden
}

// Image representa uma imagem do produto
type Image struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	AltText   string `json:"altText,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

// Video representa um vídeo do produto
type Video struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Product representa um produto de uma loja
type Product struct {
	ID           string     `json:"id"`
	StoreID      string     `json:"storeId"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	ComparePrice *float64   `json:"comparePrice,omitempty"`
	SKU          string     `json:"sku"`
	Stock        int        `json:"stock"`
	Category     string     `json:"category"`
	IsActive     bool       `json:"isActive"`
	Visibility   Visibility `json:"visibility"`
	Featured     bool       `json:"featured"`
	Images       []Image    `json:"images"`
	Videos       []Video    `json:"videos"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewProduct cria um novo produto ativo e público
func NewProduct(storeID, name string, price float64, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if storeID == "" {
		return nil, ErrEmptyStore
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	now := time.Now()
	return &Product{
		ID:         uuid.New().String(),
		StoreID:    storeID,
		Name:       name,
		Slug:       slug.Make(name),
		Price:      price,
		Stock:      stock,
		IsActive:   true,
		Visibility: VisibilityPublic,
		Images:     []Image{},
		Videos:     []Video{},
		Tags:       []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update atualiza os dados editáveis do produto
func (p *Product) Update(name, description, sku, category string, price float64, comparePrice *float64, stock int, visibility Visibility, featured bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if price < 0 {
		return ErrNegativePrice
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	if visibility == "" {
		visibility = p.Visibility
	}
	if !visibility.Valid() {
		return ErrInvalidVisibility
	}

	if name != p.Name {
		p.Slug = slug.Make(name)
	}
	p.Name = name
	p.Description = description
	p.SKU = sku
	p.Category = category
	p.Price = price
	p.ComparePrice = comparePrice
	p.Stock = stock
	p.Visibility = visibility
	p.Featured = featured
	p.UpdatedAt = time.Now()
	return nil
}

// SetTags normaliza e substitui as tags do produto
func (p *Product) SetTags(tags []string) {
	seen := map[string]bool{}
	p.Tags = p.Tags[:0]
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		p.Tags = append(p.Tags, tag)
	}
}

// SetMedia substitui imagens e vídeos, gerando IDs para os novos itens
func (p *Product) SetMedia(images []Image, videos []Video) {
	p.Images = make([]Image, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img.URL) == "" {
			continue
		}
		if img.ID == "" {
			img.ID = uuid.New().String()
		}
		img.SortOrder = len(p.Images)
		p.Images = append(p.Images, img)
	}
	p.Videos = make([]Video, 0, len(videos))
	for _, v := range videos {
		if strings.TrimSpace(v.URL) == "" {
			continue
		}
		if v.ID == "" {
			v.ID = uuid.New().String()
		}
		p.Videos = append(p.Videos, v)
	}
}

// AdjustStock soma delta ao estoque sem permitir valor negativo
func (p *Product) AdjustStock(delta int) error {
	if p.Stock+delta < 0 {
		return ErrInsufficientStock
	}
	p.Stock += delta
	p.UpdatedAt = time.Now()
	return nil
}

// Activate ativa o produto. Retorna false se ele já estava ativo.
func (p *Product) Activate() bool {
	if p.IsActive {
		return false
	}
	p.IsActive = true
	p.UpdatedAt = time.Now()
	return true
}

// Deactivate desativa o produto. Retorna false se ele já estava inativo.
func (p *Product) Deactivate() bool {
	if !p.IsActive {
		return false
	}
	p.IsActive = false
	p.UpdatedAt = time.Now()
	return true
}

// Duplicate cria uma cópia inativa do produto com novos IDs
func (p *Product) Duplicate() *Product {
	now := time.Now()
	cp := *p
	cp.ID = uuid.New().String()
	cp.Name = p.Name + " (Copy)"
	cp.Slug = slug.Make(cp.Name)
	if p.SKU != "" {
		cp.SKU = p.SKU + "-COPY"
	}
	cp.IsActive = false
	cp.Featured = false
	cp.CreatedAt = now
	cp.UpdatedAt = now

	cp.Images = make([]Image, len(p.Images))
	for i, img := range p.Images {
		img.ID = uuid.New().String()
		cp.Images[i] = img
	}
	cp.Videos = make([]Video, len(p.Videos))
	for i, v := range p.Videos {
		v.ID = uuid.New().String()
		cp.Videos[i] = v
	}
	cp.Tags = append([]string{}, p.Tags...)
	return &cp
}

// IsVisibleInStorefront indica se o produto aparece na vitrine pública
func (p *Product) IsVisibleInStorefront() bool {
	return p.IsActive && p.Visibility == VisibilityPublic
}

// IsLowStock indica se o estoque está abaixo do limite informado
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock <= threshold
}
