package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

// UserRepository stores users in the users(id, name) table.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	var id, name string
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	u, err := entity.Reconstruct(id, name)
	if err != nil {
		return nil, fmt.Errorf("reconstruct user %s: %w", id, err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id valueobject.UserID) (*entity.User, error) {
	return r.findOne(ctx, `SELECT id, name FROM users WHERE id = $1`, id.Value())
}

// FindByName returns the oldest user holding name; names are not unique in storage.
func (r *UserRepository) FindByName(ctx context.Context, name valueobject.UserName) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, name FROM users
		WHERE name = $1
		ORDER BY created_at
		LIMIT 1
	`, name.Value())
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u, err := entity.Reconstruct(id, name)
		if err != nil {
			return nil, fmt.Errorf("reconstruct user %s: %w", id, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
	`, u.ID().Value(), u.Name().Value())
	if err != nil {
		return fmt.Errorf("save user %s: %w", u.ID(), err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, u *entity.User) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, u.ID().Value()); err != nil {
		return fmt.Errorf("delete user %s: %w", u.ID(), err)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
