package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// Ações em lote de produtos
const (
	BulkActivate   = "activate"
	BulkDeactivate = "deactivate"
	BulkDuplicate  = "duplicate"
	BulkDelete     = "delete"
	BulkImport     = "import"
	BulkExport     = "export"
)

// ProductCSVHeader é a ordem das colunas de importação e exportação
var ProductCSVHeader = []string{"name", "sku", "category", "price", "stock", "active", "visibility", "description"}

const exportPageSize = 100

// BulkResult é o resultado de uma ação em lote
type BulkResult struct {
	Action   string             `json:"action"`
	Affected int                `json:"affected"`
	Items    []*product.Product `json:"items,omitempty"`
}

// ProductService aplica as regras de publicação e as ações em lote do catálogo
type ProductService struct {
	products product.Repository
	stores   store.Repository
	log      logger.Logger
}

// NewProductService cria uma nova instância de ProductService
func NewProductService(products product.Repository, stores store.Repository, log logger.Logger) *ProductService {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductService{products: products, stores: stores, log: log}
}

// canPublish verifica se a loja pode expor produtos na vitrine
func (s *ProductService) canPublish(ctx context.Context, storeID string) error {
	st, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return err
	}
	return st.CanPublish()
}

// Create grava o produto. Lojas que ainda não podem publicar recebem o produto inativo.
func (s *ProductService) Create(ctx context.Context, p *product.Product) error {
	if p.IsActive {
		if err := s.canPublish(ctx, p.StoreID); err != nil {
			if !errors.Is(err, store.ErrStoreNotVerified) && !errors.Is(err, store.ErrStoreInactive) {
				return err
			}
			p.IsActive = false
		}
	}
	return s.products.Create(ctx, p)
}

// Update grava as alterações do produto; ativar exige que a loja possa publicar
func (s *ProductService) Update(ctx context.Context, p *product.Product, wasActive bool) error {
	if p.IsActive && !wasActive {
		if err := s.canPublish(ctx, p.StoreID); err != nil {
			return err
		}
	}
	return s.products.Update(ctx, p)
}

// Bulk executa activate, deactivate, duplicate ou delete sobre os produtos informados
func (s *ProductService) Bulk(ctx context.Context, storeID, action string, ids []string) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}

	res := &BulkResult{Action: action}
	switch action {
	case BulkActivate:
		if err := s.canPublish(ctx, storeID); err != nil {
			return nil, err
		}
		n, err := s.products.SetActive(ctx, storeID, ids, true)
		if err != nil {
			return nil, err
		}
		res.Affected = n

	case BulkDeactivate:
		n, err := s.products.SetActive(ctx, storeID, ids, false)
		if err != nil {
			return nil, err
		}
		res.Affected = n

	case BulkDuplicate:
		found, err := s.products.FindByIDs(ctx, storeID, ids)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			cp := p.Duplicate()
			if err := s.products.Create(ctx, cp); err != nil {
				return nil, fmt.Errorf("erro ao duplicar produto %s: %w", p.ID, err)
			}
			res.Items = append(res.Items, cp)
		}
		res.Affected = len(res.Items)

	case BulkDelete:
		for _, id := range ids {
			err := s.products.Delete(ctx, storeID, id)
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			res.Affected++
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	s.log.Info("Ação em lote de produtos", "store_id", storeID, "action", action, "affected", res.Affected)
	return res, nil
}

// Export escreve o catálogo em CSV. ids vazio exporta todos os produtos da loja.
func (s *ProductService) Export(ctx context.Context, storeID string, ids []string, w io.Writer) (int, error) {
	var items []*product.Product
	if len(ids) > 0 {
		found, err := s.products.FindByIDs(ctx, storeID, ids)
		if err != nil {
			return 0, err
		}
		items = found
	} else {
		for offset := 0; ; offset += exportPageSize {
			page, err := s.products.List(ctx, storeID, product.Filter{}, exportPageSize, offset)
			if err != nil {
				return 0, err
			}
			items = append(items, page...)
			if len(page) < exportPageSize {
				break
			}
		}
	}

	records := make([]map[string]string, 0, len(items))
	for _, p := range items {
		records = append(records, map[string]string{
			"name":        p.Name,
			"sku":         p.SKU,
			"category":    p.Category,
			"price":       strconv.FormatFloat(p.Price, 'f', 2, 64),
			"stock":       strconv.Itoa(p.Stock),
			"active":      strconv.FormatBool(p.IsActive),
			"visibility":  string(p.Visibility),
			"description": p.Description,
		})
	}

	if err := report.WriteCSV(w, ProductCSVHeader, report.Rows(ProductCSVHeader, records)); err != nil {
		return 0, err
	}
	return len(items), nil
}

// ImportError descreve uma linha rejeitada na importação
type ImportError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResult resume uma importação
type ImportResult struct {
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// Import cria produtos a partir de um CSV com as colunas de ProductCSVHeader.
// name e price são obrigatórias; linhas inválidas são reportadas e ignoradas.
func (s *ProductService) Import(ctx context.Context, storeID string, r io.Reader) (*ImportResult, error) {
	header, rows, err := report.ReadCSV(r)
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["name"]; !ok {
		return nil, fmt.Errorf("%w: coluna name ausente", ErrInvalidImportHeader)
	}
	if _, ok := col["price"]; !ok {
		return nil, fmt.Errorf("%w: coluna price ausente", ErrInvalidImportHeader)
	}

	publishErr := s.canPublish(ctx, storeID)
	if publishErr != nil && !errors.Is(publishErr, store.ErrStoreNotVerified) && !errors.Is(publishErr, store.ErrStoreInactive) {
		return nil, publishErr
	}

	res := &ImportResult{}
	for i, row := range rows {
		line := i + 2
		if len(row) != len(header) {
			res.Errors = append(res.Errors, ImportError{Line: line, Message: fmt.Sprintf("linha tem %d colunas, esperado %d", len(row), len(header))})
			continue
		}
		get := func(name string) string {
			if idx, ok := col[name]; ok && idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		p, err := parseProductRow(storeID, get)
		if err != nil {
			res.Errors = append(res.Errors, ImportError{Line: line, Message: err.Error()})
			continue
		}
		if publishErr != nil {
			p.IsActive = false
		}
		if err := s.products.Create(ctx, p); err != nil {
			s.log.Error("Erro ao importar produto", "store_id", storeID, "line", line, "error", err)
			res.Errors = append(res.Errors, ImportError{Line: line, Message: "erro ao salvar produto"})
			continue
		}
		res.Imported++
	}

	s.log.Info("Importação de produtos", "store_id", storeID, "imported", res.Imported, "rejected", len(res.Errors))
	return res, nil
}

func parseProductRow(storeID string, get func(string) string) (*product.Product, error) {
	price, err := strconv.ParseFloat(get("price"), 64)
	if err != nil {
		return nil, fmt.Errorf("preço inválido: %q", get("price"))
	}
	stock := 0
	if raw := get("stock"); raw != "" {
		if stock, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("estoque inválido: %q", raw)
		}
	}

	p, err := product.NewProduct(storeID, get("name"), price, stock)
	if err != nil {
		return nil, err
	}
	p.SKU = get("sku")
	p.Category = get("category")
	p.Description = get("description")

	if raw := get("visibility"); raw != "" {
		v := product.Visibility(strings.ToUpper(raw))
		if !v.Valid() {
			return nil, product.ErrInvalidVisibility
		}
		p.Visibility = v
	}
	if raw := get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("valor de active inválido: %q", raw)
		}
		p.IsActive = active
	}
	return p, nil
}
