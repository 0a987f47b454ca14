package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// isUniqueViolation indica se o erro é de chave única duplicada
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// whereBuilder monta cláusulas WHERE com parâmetros posicionais
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// add acrescenta uma condição; "?" é substituído pelo próximo parâmetro posicional
func (w *whereBuilder) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1))
}

// addRaw acrescenta uma condição sem parâmetros
func (w *whereBuilder) addRaw(cond string) {
	w.conds = append(w.conds, cond)
}

// search acrescenta um ILIKE sobre várias colunas usando um único parâmetro
func (w *whereBuilder) search(term string, columns ...string) {
	if term == "" {
		return
	}
	w.args = append(w.args, "%"+term+"%")
	p := fmt.Sprintf("$%d", len(w.args))
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE " + p
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page retorna o sufixo LIMIT/OFFSET e os argumentos completos
func (w *whereBuilder) page(limit, offset int) (string, []interface{}) {
	args := append(append([]interface{}{}, w.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(w.args)+1, len(w.args)+2), args
}
