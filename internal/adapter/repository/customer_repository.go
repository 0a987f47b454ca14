package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

const customerColumns = `id, store_id, name, email, phone, address, total_orders, total_revenue,
	last_order_at, created_at, updated_at`

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{db: db}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (`+customerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.StoreID, c.Name, c.Email, c.Phone, c.Address, c.TotalOrders, c.TotalRevenue,
		c.LastOrderAt, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, storeID, id string) (*customer.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE store_id = $1 AND id = $2`, storeID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return c, nil
}

func customerFilter(storeID, search string) *whereBuilder {
	w := &whereBuilder{}
	w.add("store_id = ?", storeID)
	w.search(search, "name", "email", "phone")
	return w
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, storeID, search string, limit, offset int) ([]*customer.Customer, error) {
	w := customerFilter(storeID, search)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers`+w.sql()+` ORDER BY name ASC`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context, storeID, search string) (int, error) {
	w := customerFilter(storeID, search)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return count, nil
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET name = $1, email = $2, phone = $3, address = $4, updated_at = $5
		WHERE store_id = $6 AND id = $7`,
		c.Name, c.Email, c.Phone, c.Address, c.UpdatedAt, c.StoreID, c.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// RecordOrder implementa customer.Repository.RecordOrder
func (r *CustomerRepository) RecordOrder(ctx context.Context, storeID, id string, total float64, at time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET
			total_orders = total_orders + 1,
			total_revenue = total_revenue + $1,
			last_order_at = GREATEST(COALESCE(last_order_at, $2), $2),
			updated_at = $3
		WHERE store_id = $4 AND id = $5`,
		total, at, time.Now(), storeID, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar totais do cliente: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// CountNewBetween implementa customer.Repository.CountNewBetween
func (r *CustomerRepository) CountNewBetween(ctx context.Context, storeID string, from, to time.Time) (int, error) {
	w := scope(storeID, from, to)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar novos clientes: %w", err)
	}
	return count, nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	c := &customer.Customer{}
	err := row.Scan(&c.ID, &c.StoreID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.TotalOrders,
		&c.TotalRevenue, &c.LastOrderAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
