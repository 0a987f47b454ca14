package tenant

import "errors"

// Erros retornados pelo Resolver
var (
	ErrNotAuthenticated = errors.New("usuário não autenticado")
	ErrUserSuspended    = errors.New("usuário suspenso")
	ErrStoreNotFound    = errors.New("usuário não possui loja")
	ErrStoreNotActive   = errors.New("loja não está ativa")
)
