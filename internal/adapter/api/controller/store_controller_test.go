package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/domain/store"
	"github.com/hugohenrick/toko-digital/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoreRouter(stores *mocks.StoreRepository, templates *mocks.TemplateRepository) *gin.Engine {
	ctrl := NewStoreController(stores, templates, "toko-digital.com")
	router := newTestRouter("s1")
	router.GET("/store/template", ctrl.Template)
	router.POST("/store/template", ctrl.Customize)
	router.GET("/store/templates", ctrl.Templates)
	router.POST("/store/templates", ctrl.ApplyTemplate)
	router.GET("/store/whatsapp", ctrl.WhatsApp)
	router.PUT("/store/whatsapp", ctrl.SaveWhatsApp)
	return router
}

func TestStoreController_ApplyTemplateResetsTheme(t *testing.T) {
	stores := new(mocks.StoreRepository)
	templates := new(mocks.TemplateRepository)
	router := newStoreRouter(stores, templates)

	st := &store.Store{ID: "s1", Subdomain: "batik-sari", Theme: store.ThemeSettings{PrimaryColor: "#000000", CustomCSS: "body{}"}}
	tpl := &store.Template{ID: "t-modern", Name: "Modern", DefaultTheme: store.ThemeSettings{PrimaryColor: "#111111", Layout: "list"}}
	stores.On("FindByID", mock.Anything, "s1").Return(st, nil)
	stores.On("Update", mock.Anything, st).Return(nil)
	templates.On("FindByID", mock.Anything, "t-modern").Return(tpl, nil)
	templates.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrTemplateNotFound)

	w := performJSON(router, http.MethodPost, "/store/templates", map[string]string{"templateId": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(router, http.MethodPost, "/store/templates", map[string]string{"templateId": "t-modern"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.StoreTemplateResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "t-modern", resp.TemplateID)
	assert.Equal(t, "#111111", resp.Theme.PrimaryColor)
	assert.Empty(t, resp.Theme.CustomCSS)
	assert.Equal(t, "https://batik-sari.toko-digital.com", resp.PreviewURL)
}

func TestStoreController_CustomizeKeepsEmptyFields(t *testing.T) {
	stores := new(mocks.StoreRepository)
	templates := new(mocks.TemplateRepository)
	router := newStoreRouter(stores, templates)

	st := &store.Store{ID: "s1", Subdomain: "batik-sari", TemplateID: "t-gone", Theme: store.DefaultTheme()}
	stores.On("FindByID", mock.Anything, "s1").Return(st, nil)
	stores.On("Update", mock.Anything, st).Return(nil)
	templates.On("FindByID", mock.Anything, "t-gone").Return(nil, repository.ErrTemplateNotFound)

	w := performJSON(router, http.MethodPost, "/store/template", map[string]interface{}{
		"theme": map[string]string{"secondaryColor": "#ff0000"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.StoreTemplateResponse
	decodeBody(t, w, &resp)
	assert.Nil(t, resp.Template)
	assert.Equal(t, "#ff0000", resp.Theme.SecondaryColor)
	assert.Equal(t, store.DefaultTheme().PrimaryColor, resp.Theme.PrimaryColor)
}

func TestStoreController_TemplatesEmptyList(t *testing.T) {
	templates := new(mocks.TemplateRepository)
	templates.On("List", mock.Anything).Return(nil, nil)
	router := newStoreRouter(new(mocks.StoreRepository), templates)

	w := performJSON(router, http.MethodGet, "/store/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStoreController_WhatsApp(t *testing.T) {
	stores := new(mocks.StoreRepository)
	router := newStoreRouter(stores, new(mocks.TemplateRepository))

	stores.On("GetWhatsAppSettings", mock.Anything, "s1").Return(nil, repository.ErrWhatsAppNotConfigured).Once()
	w := performJSON(router, http.MethodGet, "/store/whatsapp", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(router, http.MethodPut, "/store/whatsapp", map[string]interface{}{"isEnabled": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stores.On("SaveWhatsAppSettings", mock.Anything, mock.MatchedBy(func(s *store.WhatsAppSettings) bool {
		return s.StoreID == "s1" && s.IsEnabled && s.PhoneNumber == "+62812"
	})).Return(nil).Once()
	w = performJSON(router, http.MethodPut, "/store/whatsapp", map[string]interface{}{
		"isEnabled":       true,
		"phoneNumber":     "+62812",
		"greetingMessage": "Halo!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stores.AssertExpectations(t)
}
