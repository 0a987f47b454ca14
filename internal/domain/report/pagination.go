package report

import (
	"encoding/json"
	"strconv"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination é o contrato único de paginação das listagens
type Pagination struct {
	Page  int
	Limit int
	Total int
}

// NewPagination normaliza page e limit; valores inválidos assumem o padrão
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// ParsePagination lê os parâmetros de query page e limit
func ParsePagination(page, limit string) Pagination {
	p, _ := strconv.Atoi(page)
	l, _ := strconv.Atoi(limit)
	return NewPagination(p, l)
}

// Offset retorna quantos registros pular
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages retorna ceil(total/limit)
func (p Pagination) Pages() int {
	if p.Limit <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// RangeStart retorna a posição (base 1) do primeiro item da página
func (p Pagination) RangeStart() int {
	if p.Total == 0 || p.Offset() >= p.Total {
		return 0
	}
	return p.Offset() + 1
}

// RangeEnd retorna min(page*limit, total)
func (p Pagination) RangeEnd() int {
	end := p.Page * p.Limit
	if end > p.Total {
		return p.Total
	}
	return end
}

// WithTotal retorna uma cópia com o total preenchido
func (p Pagination) WithTotal(total int) Pagination {
	p.Total = total
	return p
}

func (p Pagination) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Total int `json:"total"`
		Pages int `json:"pages"`
	}{p.Page, p.Limit, p.Total, p.Pages()})
}
