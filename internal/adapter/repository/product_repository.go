package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrProductNotFound = errors.New("produto não encontrado")
)

const productColumns = `id, store_id, name, slug, description, price, compare_price, sku, stock,
	category, is_active, visibility, featured, images, videos, tags, created_at, updated_at`

// ProductRepository implementa a interface product.Repository usando PostgreSQL
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	images, videos, err := marshalMedia(p)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		p.ID, p.StoreID, p.Name, p.Slug, p.Description, p.Price, p.ComparePrice, p.SKU, p.Stock,
		p.Category, p.IsActive, string(p.Visibility), p.Featured, images, videos, tagsOrEmpty(p.Tags),
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, storeID, id string) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE store_id = $1 AND id = $2`, storeID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return p, nil
}

// FindByIDs implementa product.Repository.FindByIDs
func (r *ProductRepository) FindByIDs(ctx context.Context, storeID string, ids []string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE store_id = $1 AND id = ANY($2::uuid[])`, storeID, ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func productFilter(storeID string, f product.Filter) *whereBuilder {
	w := &whereBuilder{}
	w.add("store_id = ?", storeID)
	w.search(f.Search, "name", "sku")
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.Active != nil {
		w.add("is_active = ?", *f.Active)
	}
	if f.Featured != nil {
		w.add("featured = ?", *f.Featured)
	}
	if f.Visibility != "" {
		w.add("visibility = ?", string(f.Visibility))
	}
	return w
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, storeID string, filter product.Filter, limit, offset int) ([]*product.Product, error) {
	w := productFilter(storeID, filter)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products`+w.sql()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, storeID string, filter product.Filter) (int, error) {
	w := productFilter(storeID, filter)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	images, videos, err := marshalMedia(p)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx,
		`UPDATE products SET name = $1, slug = $2, description = $3, price = $4, compare_price = $5,
			sku = $6, stock = $7, category = $8, is_active = $9, visibility = $10, featured = $11,
			images = $12, videos = $13, tags = $14, updated_at = $15
		WHERE store_id = $16 AND id = $17`,
		p.Name, p.Slug, p.Description, p.Price, p.ComparePrice, p.SKU, p.Stock, p.Category,
		p.IsActive, string(p.Visibility), p.Featured, images, videos, tagsOrEmpty(p.Tags), p.UpdatedAt,
		p.StoreID, p.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, storeID, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM products WHERE store_id = $1 AND id = $2", storeID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SetActive implementa product.Repository.SetActive.
// Produtos que já estão no estado pedido não são contados.
func (r *ProductRepository) SetActive(ctx context.Context, storeID string, ids []string, active bool) (int, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET is_active = $1, updated_at = $2
		WHERE store_id = $3 AND id = ANY($4::uuid[]) AND is_active <> $1`,
		active, time.Now(), storeID, ids)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar status dos produtos: %w", err)
	}
	return int(result.RowsAffected()), nil
}

// CountLowStock implementa product.Repository.CountLowStock
func (r *ProductRepository) CountLowStock(ctx context.Context, storeID string, threshold int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE store_id = $1 AND is_active AND stock <= $2",
		storeID, threshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos com estoque baixo: %w", err)
	}
	return count, nil
}

// CountAll implementa product.Repository.CountAll
func (r *ProductRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

func marshalMedia(p *product.Product) ([]byte, []byte, error) {
	images, err := json.Marshal(imagesOrEmpty(p.Images))
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao converter imagens para JSON: %w", err)
	}
	videos, err := json.Marshal(videosOrEmpty(p.Videos))
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao converter vídeos para JSON: %w", err)
	}
	return images, videos, nil
}

func imagesOrEmpty(v []product.Image) []product.Image {
	if v == nil {
		return []product.Image{}
	}
	return v
}

func videosOrEmpty(v []product.Video) []product.Video {
	if v == nil {
		return []product.Video{}
	}
	return v
}

func tagsOrEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func collectProducts(rows pgx.Rows) ([]*product.Product, error) {
	var products []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	p := &product.Product{}
	var visibility string
	var images, videos []byte
	err := row.Scan(&p.ID, &p.StoreID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.ComparePrice,
		&p.SKU, &p.Stock, &p.Category, &p.IsActive, &visibility, &p.Featured, &images, &videos,
		&p.Tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Visibility = product.Visibility(visibility)
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("erro ao converter imagens: %w", err)
	}
	if err := json.Unmarshal(videos, &p.Videos); err != nil {
		return nil, fmt.Errorf("erro ao converter vídeos: %w", err)
	}
	return p, nil
}
