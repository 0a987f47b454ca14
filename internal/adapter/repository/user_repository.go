package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/toko-digital/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserDuplicateEmail = errors.New("usuário com mesmo email já existe")
)

const userColumns = `id, name, email, password, phone, role, is_active,
	trial_end_date, last_login_at, created_at, updated_at`

// UserRepository implementa a interface user.Repository usando PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{db: db}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Name, u.Email, u.Password, u.Phone, string(u.Role), u.IsActive,
		u.TrialEndDate, u.LastLoginAt, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserDuplicateEmail
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}
	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "email = LOWER($1)", email)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, arg interface{}) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+cond, arg)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}
	return u, nil
}

func userFilter(f user.Filter) *whereBuilder {
	w := &whereBuilder{}
	w.search(f.Search, "name", "email")
	if f.Role != "" {
		w.add("role = ?", string(f.Role))
	}
	if f.Active != nil {
		w.add("is_active = ?", *f.Active)
	}
	if f.CreatedBefore != nil {
		w.add("created_at < ?", *f.CreatedBefore)
	}
	return w
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, filter user.Filter, limit, offset int) ([]*user.User, error) {
	w := userFilter(filter)
	suffix, args := w.page(limit, offset)

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users`+w.sql()+` ORDER BY created_at DESC`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler usuário: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Count implementa user.Repository.Count
func (r *UserRepository) Count(ctx context.Context, filter user.Filter) (int, error) {
	w := userFilter(filter)
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+w.sql(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar usuários: %w", err)
	}
	return count, nil
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, password = $3, phone = $4, role = $5,
			is_active = $6, trial_end_date = $7, updated_at = $8
		WHERE id = $9`,
		u.Name, u.Email, u.Password, u.Phone, string(u.Role), u.IsActive, u.TrialEndDate, u.UpdatedAt, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserDuplicateEmail
		}
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetActive implementa user.Repository.SetActive
func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.Exec(ctx,
		"UPDATE users SET is_active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do usuário: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	now := time.Now()
	result, err := r.db.Exec(ctx,
		"UPDATE users SET last_login_at = $1, updated_at = $1 WHERE id = $2", now, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar último login: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// CountByRole implementa user.Repository.CountByRole
func (r *UserRepository) CountByRole(ctx context.Context) (map[user.Role]int, error) {
	rows, err := r.db.Query(ctx, "SELECT role, COUNT(*) FROM users GROUP BY role")
	if err != nil {
		return nil, fmt.Errorf("falha ao contar usuários por papel: %w", err)
	}
	defer rows.Close()

	counts := map[user.Role]int{}
	for rows.Next() {
		var role string
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, fmt.Errorf("falha ao ler contagem: %w", err)
		}
		counts[user.Role(role)] = n
	}
	return counts, rows.Err()
}

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &role, &u.IsActive,
		&u.TrialEndDate, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = user.Role(role)
	return u, nil
}
