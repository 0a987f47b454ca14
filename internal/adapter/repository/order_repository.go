package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/order"
	"github.com/hugohenrick/toko-digital/internal/domain/product"
	"github.com/hugohenrick/toko-digital/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrOrderNotFound = errors.New("pedido não encontrado")
)

const orderColumns = `id, store_id, customer_id, order_number, status, payment_status,
	subtotal, shipping_cost, total, notes, created_at, updated_at`

// OrderRepository implementa a interface order.Repository usando PostgreSQL
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{db: db}
}

// Create implementa order.Repository.Create.
// Pedido, itens e baixa de estoque são gravados na mesma transação.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO orders (`+orderColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			o.ID, o.StoreID, o.CustomerID, o.OrderNumber, string(o.Status), string(o.PaymentStatus),
			o.Subtotal, o.ShippingCost, o.Total, o.Notes, o.CreatedAt, o.UpdatedAt)
		if err != nil {
			return fmt.Errorf("erro ao criar pedido: %w", err)
		}

		for _, it := range o.Items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				it.ID, o.ID, it.ProductID, it.ProductName, it.Quantity, it.Price); err != nil {
				return fmt.Errorf("erro ao criar item do pedido: %w", err)
			}

			result, err := tx.Exec(ctx,
				`UPDATE products SET stock = stock - $1, updated_at = $2
				WHERE store_id = $3 AND id = $4 AND stock >= $1`,
				it.Quantity, o.CreatedAt, o.StoreID, it.ProductID)
			if err != nil {
				return fmt.Errorf("erro ao baixar estoque: %w", err)
			}
			if result.RowsAffected() == 0 {
				return fmt.Errorf("%w: %s", product.ErrInsufficientStock, it.ProductName)
			}
		}
		return nil
	})
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, storeID, id string) (*order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE store_id = $1 AND id = $2`, storeID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	if err := r.loadItems(ctx, []*order.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func orderFilter(storeID string, f order.Filter) *whereBuilder {
	w := &whereBuilder{}
	w.add("store_id = ?", storeID)
	if f.Status != "" {
		w.add("status = ?", string(f.Status))
	}
	if f.CustomerID != "" {
		w.add("customer_id = ?", f.CustomerID)
	}
	if f.From != nil {
		w.add("created_at >= ?", *f.From)
	}
	if f.To != nil {
		w.add("created_at < ?", *f.To)
	}
	return w
}

// List implementa order.Repository.List
func (r *OrderRepository) List(ctx context.Context, storeID string, filter order.Filter, limit, offset int) ([]*order.Order, error) {
	w := orderFilter(storeID, filter)
	suffix, args := w.page(limit, offset)
	return r.query(ctx, `SELECT `+orderColumns+` FROM orders`+w.sql()+` ORDER BY created_at DESC`+suffix, args...)
}

// Count implementa order.Repository.Count
func (r *OrderRepository) Count(ctx context.Context, storeID string, filter order.Filter) (int, error) {
	w := orderFilter(storeID, filter)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}
	return count, nil
}

// UpdateStatus implementa order.Repository.UpdateStatus.
// O estoque dos itens volta apenas na transição para CANCELLED.
func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		var previous string
		err := tx.QueryRow(ctx,
			`SELECT status FROM orders WHERE store_id = $1 AND id = $2 FOR UPDATE`,
			o.StoreID, o.ID).Scan(&previous)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("erro ao buscar pedido: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE orders SET status = $1, payment_status = $2, updated_at = $3
			WHERE store_id = $4 AND id = $5`,
			string(o.Status), string(o.PaymentStatus), o.UpdatedAt, o.StoreID, o.ID)
		if err != nil {
			return fmt.Errorf("erro ao atualizar pedido: %w", err)
		}

		if !restocks(order.Status(previous), o.Status) {
			return nil
		}
		_, err = tx.Exec(ctx,
			`UPDATE products p SET stock = p.stock + i.quantity, updated_at = $1
			FROM order_items i
			WHERE i.order_id = $2 AND p.id = i.product_id AND p.store_id = $3`,
			o.UpdatedAt, o.ID, o.StoreID)
		if err != nil {
			return fmt.Errorf("erro ao devolver estoque: %w", err)
		}
		return nil
	})
}

// restocks indica se a mudança de status devolve os itens ao estoque
func restocks(previous, next order.Status) bool {
	return next == order.StatusCancelled && previous != order.StatusCancelled
}

// RecentByStore implementa order.Repository.RecentByStore
func (r *OrderRepository) RecentByStore(ctx context.Context, storeID string, limit int) ([]*order.Order, error) {
	return r.query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2`,
		storeID, limit)
}

// scope filtra por loja quando storeID não é vazio
func scope(storeID string, from, to time.Time) *whereBuilder {
	w := &whereBuilder{}
	if storeID != "" {
		w.add("store_id = ?", storeID)
	}
	w.add("created_at >= ?", from)
	w.add("created_at < ?", to)
	return w
}

// TotalsBetween implementa order.Repository.TotalsBetween
func (r *OrderRepository) TotalsBetween(ctx context.Context, storeID string, from, to time.Time) (order.Totals, error) {
	w := scope(storeID, from, to)
	w.add("status <> ?", string(order.StatusCancelled))

	var t order.Totals
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0), COUNT(DISTINCT customer_id) FROM orders`+w.sql(),
		w.args...).Scan(&t.Orders, &t.Revenue, &t.Customers)
	if err != nil {
		return order.Totals{}, fmt.Errorf("erro ao agregar pedidos: %w", err)
	}
	return t, nil
}

// DailyTotals implementa order.Repository.DailyTotals
func (r *OrderRepository) DailyTotals(ctx context.Context, storeID string, from, to time.Time) ([]order.DailyTotal, error) {
	w := scope(storeID, from, to)
	w.add("status <> ?", string(order.StatusCancelled))

	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(total), 0)
		FROM orders`+w.sql()+` GROUP BY day ORDER BY day`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar pedidos por dia: %w", err)
	}
	defer rows.Close()

	var out []order.DailyTotal
	for rows.Next() {
		var d order.DailyTotal
		if err := rows.Scan(&d.Day, &d.Orders, &d.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao ler total diário: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CountByStatus implementa order.Repository.CountByStatus
func (r *OrderRepository) CountByStatus(ctx context.Context, storeID string) (order.StatusCount, error) {
	rows, err := r.db.Query(ctx,
		"SELECT status, COUNT(*) FROM orders WHERE store_id = $1 GROUP BY status", storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar pedidos por status: %w", err)
	}
	defer rows.Close()

	counts := order.StatusCount{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("erro ao ler contagem: %w", err)
		}
		counts[order.Status(status)] = n
	}
	return counts, rows.Err()
}

func (r *OrderRepository) query(ctx context.Context, sql string, args ...interface{}) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadItems carrega os itens de vários pedidos com uma única consulta
func (r *OrderRepository) loadItems(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*order.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, product_id, product_name, quantity, price
		FROM order_items WHERE order_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens do pedido: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it order.Item
		var orderID string
		if err := rows.Scan(&it.ID, &orderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return fmt.Errorf("erro ao ler item do pedido: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	o := &order.Order{}
	var status, payment string
	err := row.Scan(&o.ID, &o.StoreID, &o.CustomerID, &o.OrderNumber, &status, &payment,
		&o.Subtotal, &o.ShippingCost, &o.Total, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Status = order.Status(status)
	o.PaymentStatus = order.PaymentStatus(payment)
	return o, nil
}
