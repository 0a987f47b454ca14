package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/hugohenrick/toko-digital/internal/service"
	"github.com/hugohenrick/toko-digital/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	router   *gin.Engine
	products *mocks.ProductRepository
	stores   *mocks.StoreRepository
}

func newProductFixture(st *store.Store) *productFixture {
	f := &productFixture{
		products: new(mocks.ProductRepository),
		stores:   new(mocks.StoreRepository),
	}
	f.stores.On("FindByID", mock.Anything, st.ID).Return(st, nil)

	relations := &service.RelationLoader{Stores: f.stores, Products: f.products}
	ctrl := NewProductController(f.products, service.NewProductService(f.products, f.stores, logger.Nop()), relations)

	f.router = newTestRouter(st.ID)
	f.router.GET("/products", ctrl.List)
	f.router.GET("/products/:id", ctrl.Get)
	f.router.POST("/products", ctrl.Create)
	f.router.PUT("/products/:id", ctrl.Update)
	f.router.POST("/products/bulk", ctrl.Bulk)
	return f
}

func TestProductController_ListWithFiltersAndStore(t *testing.T) {
	st := &store.Store{ID: "s1", Name: "Batik Sari", IsActive: true, IsVerified: true}
	f := newProductFixture(st)

	isFilter := mock.MatchedBy(func(fl product.Filter) bool {
		return fl.Search == "batik" && fl.Active != nil && *fl.Active && fl.Featured == nil
	})
	items := []*product.Product{{ID: "p1", StoreID: "s1", Name: "Batik Tulis"}}
	f.products.On("List", mock.Anything, "s1", isFilter, 5, 5).Return(items, nil)
	f.products.On("Count", mock.Anything, "s1", isFilter).Return(6, nil)

	w := performJSON(f.router, http.MethodGet, "/products?search=batik&active=true&page=2&limit=5&include=store", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Items []struct {
			ID    string       `json:"id"`
			Store *store.Store `json:"store"`
		} `json:"items"`
		Pagination map[string]int `json:"pagination"`
	}
	decodeBody(t, w, &body)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "p1", body.Items[0].ID)
	require.NotNil(t, body.Items[0].Store)
	assert.Equal(t, "Batik Sari", body.Items[0].Store.Name)
	assert.Equal(t, 6, body.Pagination["total"])
	assert.Equal(t, 2, body.Pagination["pages"])
}

func TestProductController_GetNotFound(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true})
	f.products.On("FindByID", mock.Anything, "s1", "nope").Return(nil, repository.ErrProductNotFound)

	w := performJSON(f.router, http.MethodGet, "/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductController_CreateInUnverifiedStoreIsInactive(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true, IsVerified: false})
	f.products.On("Create", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil)

	w := performJSON(f.router, http.MethodPost, "/products", map[string]interface{}{
		"name":  "Kopi Gayo",
		"price": 85000,
		"stock": 12,
		"tags":  []string{"kopi", "Kopi"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created product.Product
	decodeBody(t, w, &created)
	assert.Equal(t, "s1", created.StoreID)
	assert.False(t, created.IsActive)
	assert.Equal(t, "kopi-gayo", created.Slug)
}

func TestProductController_CreateValidation(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true})

	w := performJSON(f.router, http.MethodPost, "/products", map[string]interface{}{"price": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(f.router, http.MethodPost, "/products", map[string]interface{}{"name": "X", "price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductController_UpdateActivationRequiresVerifiedStore(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true, IsVerified: false})
	existing := &product.Product{ID: "p1", StoreID: "s1", Name: "Kopi", Visibility: product.VisibilityPublic}
	f.products.On("FindByID", mock.Anything, "s1", "p1").Return(existing, nil)

	w := performJSON(f.router, http.MethodPut, "/products/p1", map[string]interface{}{
		"name":     "Kopi",
		"price":    10,
		"isActive": true,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	f.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductController_BulkRequiresSelection(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true, IsVerified: true})

	w := performJSON(f.router, http.MethodPost, "/products/bulk", map[string]interface{}{"action": "deactivate"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(f.router, http.MethodPost, "/products/bulk", map[string]interface{}{"action": "explode", "ids": []string{"p1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductController_BulkDeactivate(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true, IsVerified: true})
	f.products.On("SetActive", mock.Anything, "s1", []string{"p1", "p2"}, false).Return(2, nil)

	w := performJSON(f.router, http.MethodPost, "/products/bulk", map[string]interface{}{
		"action": "deactivate",
		"ids":    []string{"p1", "p2"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res service.BulkResult
	decodeBody(t, w, &res)
	assert.Equal(t, 2, res.Affected)
}

func TestProductController_BulkExportReturnsCSV(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true})
	f.products.On("FindByIDs", mock.Anything, "s1", []string{"p1"}).Return([]*product.Product{
		{ID: "p1", StoreID: "s1", Name: "Kopi Gayo", SKU: "KG-1", Price: 85000, Stock: 3, IsActive: true, Visibility: product.VisibilityPublic},
	}, nil)

	w := performJSON(f.router, http.MethodPost, "/products/bulk", map[string]interface{}{"action": "export", "ids": []string{"p1"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.csv")
	assert.Contains(t, w.Body.String(), "Kopi Gayo")
}

func TestProductController_BulkImportMultipart(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true, IsVerified: true})
	f.products.On("Create", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("action", "import"))
	fw, err := mw.CreateFormFile("file", "products.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("name,price,stock\nKopi Gayo,85000,3\n,10,1\n"))
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/products/bulk", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res service.ImportResult
	decodeBody(t, w, &res)
	assert.Equal(t, 1, res.Imported)
	assert.Len(t, res.Errors, 1)
}

func TestProductController_BulkImportWithoutFile(t *testing.T) {
	f := newProductFixture(&store.Store{ID: "s1", IsActive: true})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("action", "import"))
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/products/bulk", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), errMissingImportFile.Error())
}
