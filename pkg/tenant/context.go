package tenant

import (
	"context"
)

type contextKey string

const (
	tenantKey contextKey = "tenant"

	// GinKey é a chave usada para armazenar o Context no contexto do Gin
	GinKey = "tenant"
)

// Context identifica quem faz a requisição e a qual loja ela está restrita.
// StoreID fica vazio para administradores e clientes.
type Context struct {
	UserID  string `json:"userId"`
	StoreID string `json:"storeId,omitempty"`
	Role    string `json:"role"`
}

// HasStore indica se a requisição está restrita a uma loja
func (t *Context) HasStore() bool {
	return t != nil && t.StoreID != ""
}

// WithContext define o Context da requisição no contexto
func WithContext(ctx context.Context, t *Context) context.Context {
	return context.WithValue(ctx, tenantKey, t)
}

// FromContext obtém o Context da requisição a partir do contexto
func FromContext(ctx context.Context) (*Context, bool) {
	t, ok := ctx.Value(tenantKey).(*Context)
	return t, ok && t != nil
}

// GetStoreID obtém o ID da loja de um contexto do Gin ou de um context.Context
func GetStoreID(c interface{}) string {
	if gc, ok := c.(interface {
		Get(string) (interface{}, bool)
	}); ok {
		if val, exists := gc.Get(GinKey); exists {
			if t, ok := val.(*Context); ok {
				return t.StoreID
			}
		}
		return ""
	}

	if ctx, ok := c.(context.Context); ok {
		if t, ok := FromContext(ctx); ok {
			return t.StoreID
		}
	}

	return ""
}

// Get obtém o Context de um contexto do Gin
func Get(c interface{ Get(string) (interface{}, bool) }) (*Context, bool) {
	val, exists := c.Get(GinKey)
	if !exists {
		return nil, false
	}
	t, ok := val.(*Context)
	return t, ok
}
