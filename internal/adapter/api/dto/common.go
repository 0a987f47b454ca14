package dto

import "github.com/hugohenrick/toko-digital/internal/domain/report"

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa a estrutura de resposta para operações bem-sucedidas
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse é o envelope de todas as listagens paginadas
type ListResponse struct {
	Items      interface{}       `json:"items"`
	Pagination report.Pagination `json:"pagination" swaggertype:"object"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewListResponse monta a resposta paginada. Uma lista nil vira [] no JSON.
func NewListResponse[T any](items []T, p report.Pagination) ListResponse {
	if items == nil {
		items = []T{}
	}
	return ListResponse{Items: items, Pagination: p}
}

// ActionRequest é o corpo das ações administrativas e em lote
type ActionRequest struct {
	ID     string `json:"id" binding:"required"`
	Action string `json:"action" binding:"required"`
}
