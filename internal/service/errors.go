package service

import "errors"

var (
	ErrInvalidAction       = errors.New("ação inválida")
	ErrProductUnavailable  = errors.New("produto indisponível")
	ErrCustomerNotInStore  = errors.New("cliente não pertence à loja")
	ErrInvalidCredentials  = errors.New("email ou senha inválidos")
	ErrEmailTaken          = errors.New("email já cadastrado")
	ErrSubdomainTaken      = errors.New("subdomínio já está em uso")
	ErrRegistrationClosed  = errors.New("novos cadastros estão desativados")
	ErrMaintenance         = errors.New("plataforma em manutenção")
	ErrEmptySelection      = errors.New("nenhum item selecionado")
	ErrInvalidImportHeader = errors.New("cabeçalho do arquivo de importação inválido")
)
