package dto

import (
	"github.com/hugohenrick/toko-digital/internal/domain/product"
)

// ProductRequest representa a criação ou edição de um produto
type ProductRequest struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Price        float64            `json:"price" binding:"gte=0"`
	ComparePrice *float64           `json:"comparePrice"`
	SKU          string             `json:"sku"`
	Stock        int                `json:"stock" binding:"gte=0"`
	Category     string             `json:"category"`
	IsActive     *bool              `json:"isActive"`
	Visibility   product.Visibility `json:"visibility"`
	Featured     bool               `json:"featured"`
	Tags         []string           `json:"tags"`
	Images       []product.Image    `json:"images"`
	Videos       []product.Video    `json:"videos"`
}

// Apply copia a requisição para o produto
func (r ProductRequest) Apply(p *product.Product) error {
	if err := p.Update(r.Name, r.Description, r.SKU, r.Category, r.Price, r.ComparePrice, r.Stock, r.Visibility, r.Featured); err != nil {
		return err
	}
	p.SetTags(r.Tags)
	p.SetMedia(r.Images, r.Videos)
	if r.IsActive != nil {
		if *r.IsActive {
			p.Activate()
		} else {
			p.Deactivate()
		}
	}
	return nil
}

// BulkRequest representa uma ação em lote sobre produtos.
// import recebe o CSV em multipart (campo "file"); export devolve CSV.
type BulkRequest struct {
	Action string   `json:"action" form:"action" binding:"required"`
	IDs    []string `json:"ids" form:"ids"`
}
