package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/report"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(st *store.Store) (*ProductService, *mocks.ProductRepository) {
	products := new(mocks.ProductRepository)
	stores := new(mocks.StoreRepository)
	stores.On("FindByID", mock.Anything, st.ID).Return(st, nil)
	return NewProductService(products, stores, nil), products
}

func TestProductService_BulkActivateRequiresVerifiedStore(t *testing.T) {
	ctx := context.Background()

	svc, _ := newProductService(&store.Store{ID: "s1", IsActive: true, IsVerified: false})
	_, err := svc.Bulk(ctx, "s1", BulkActivate, []string{"p1"})
	assert.ErrorIs(t, err, store.ErrStoreNotVerified)

	svc, products := newProductService(&store.Store{ID: "s2", IsActive: true, IsVerified: true})
	products.On("SetActive", ctx, "s2", []string{"p1", "p2"}, true).Return(1, nil)
	res, err := svc.Bulk(ctx, "s2", BulkActivate, []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Affected)
}

func TestProductService_BulkDuplicateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, products := newProductService(&store.Store{ID: "s1", IsActive: true})

	original := &product.Product{ID: "p1", StoreID: "s1", Name: "Batik", SKU: "BTK", IsActive: true}
	products.On("FindByIDs", ctx, "s1", []string{"p1"}).Return([]*product.Product{original}, nil)
	products.On("Create", ctx, mock.AnythingOfType("*product.Product")).Return(nil)

	res, err := svc.Bulk(ctx, "s1", BulkDuplicate, []string{"p1"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Batik (Copy)", res.Items[0].Name)
	assert.False(t, res.Items[0].IsActive)
	assert.NotEqual(t, "p1", res.Items[0].ID)

	products.On("Delete", ctx, "s1", "p1").Return(nil)
	products.On("Delete", ctx, "s1", "gone").Return(repository.ErrProductNotFound)
	res, err = svc.Bulk(ctx, "s1", BulkDelete, []string{"p1", "gone"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Affected)
}

func TestProductService_BulkValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(&store.Store{ID: "s1"})

	_, err := svc.Bulk(ctx, "s1", BulkDeactivate, nil)
	assert.ErrorIs(t, err, ErrEmptySelection)
	_, err = svc.Bulk(ctx, "s1", "archive", []string{"p1"})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestProductService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, products := newProductService(&store.Store{ID: "s1", IsActive: true, IsVerified: true})

	catalog := []*product.Product{
		{ID: "p1", StoreID: "s1", Name: "Kopi Gayo", SKU: "KG-1", Category: "minuman", Price: 85000, Stock: 12, IsActive: true, Visibility: product.VisibilityPublic},
		{ID: "p2", StoreID: "s1", Name: "Teh Tarik", Price: 15000, Stock: 0, IsActive: false, Visibility: product.VisibilityHidden, Description: "manis, dingin"},
	}
	products.On("List", ctx, "s1", product.Filter{}, exportPageSize, 0).Return(catalog, nil)

	var buf bytes.Buffer
	n, err := svc.Export(ctx, "s1", nil, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	header, rows, err := report.ReadCSV(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, ProductCSVHeader, header)
	assert.Equal(t, "manis, dingin", rows[1][7])

	var imported []*product.Product
	products.On("Create", ctx, mock.AnythingOfType("*product.Product")).Run(func(args mock.Arguments) {
		imported = append(imported, args.Get(1).(*product.Product))
	}).Return(nil)

	res, err := svc.Import(ctx, "s1", &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Empty(t, res.Errors)

	require.Len(t, imported, 2)
	assert.Equal(t, "Kopi Gayo", imported[0].Name)
	assert.Equal(t, 85000.0, imported[0].Price)
	assert.True(t, imported[0].IsActive)
	assert.Equal(t, product.VisibilityHidden, imported[1].Visibility)
	assert.False(t, imported[1].IsActive)
}

func TestProductService_ImportReportsBadRows(t *testing.T) {
	ctx := context.Background()
	svc, products := newProductService(&store.Store{ID: "s1", IsActive: true, IsVerified: false})

	var created []*product.Product
	products.On("Create", ctx, mock.AnythingOfType("*product.Product")).Run(func(args mock.Arguments) {
		created = append(created, args.Get(1).(*product.Product))
	}).Return(nil)

	csv := "name,price,stock\nSambal,20000,5\n,1000,1\nKerupuk,abc,1\n"
	res, err := svc.Import(ctx, "s1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 3, res.Errors[0].Line)
	assert.Equal(t, 4, res.Errors[1].Line)

	// Loja não verificada recebe os produtos inativos
	require.Len(t, created, 1)
	assert.False(t, created[0].IsActive)

	_, err = svc.Import(ctx, "s1", strings.NewReader("sku,stock\nA,1\n"))
	assert.ErrorIs(t, err, ErrInvalidImportHeader)
}

func TestProductService_ImportRaggedRow(t *testing.T) {
	ctx := context.Background()
	svc, products := newProductService(&store.Store{ID: "s1", IsActive: true, IsVerified: true})
	products.On("Create", ctx, mock.AnythingOfType("*product.Product")).Return(nil)

	res, err := svc.Import(ctx, "s1", strings.NewReader("name,price,stock\nKopi,25000,3\nTeh,10000\nSusu,8000,1"))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Line)
	products.AssertNumberOfCalls(t, "Create", 2)
}

func TestProductService_ImportKeepsGoingAfterSaveError(t *testing.T) {
	ctx := context.Background()
	svc, products := newProductService(&store.Store{ID: "s1", IsActive: true, IsVerified: true})

	products.On("Create", ctx, mock.MatchedBy(func(p *product.Product) bool { return p.Name == "Teh" })).
		Return(errors.New("conexão perdida")).Once()
	products.On("Create", ctx, mock.AnythingOfType("*product.Product")).Return(nil)

	res, err := svc.Import(ctx, "s1", strings.NewReader("name,price\nKopi,25000\nTeh,10000\nSusu,8000\n"))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Line)
}
