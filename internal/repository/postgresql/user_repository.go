package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
)

type UserRepository struct {
	q querier
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{q: pool}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	const q = `
SELECT id, username, full_name, role, is_active, created_at
FROM users
WHERE id = $1;
`
	var (
		u        entity.User
		roleText string
	)
	if err := r.q.QueryRow(ctx, q, id).Scan(&u.ID, &u.Username, &u.FullName, &roleText, &u.IsActive, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user", id)
		}
		return nil, mapError("users.get", err)
	}
	u.Role = entity.Role(roleText)
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	const q = `
SELECT id, username, full_name, role, is_active, created_at
FROM users
ORDER BY id ASC;
`
	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, mapError("users.list", err)
	}
	defer rows.Close()

	out := []entity.User{}
	for rows.Next() {
		var (
			u        entity.User
			roleText string
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &roleText, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, mapError("users.list", err)
		}
		u.Role = entity.Role(roleText)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("users.list", err)
	}
	return out, nil
}

// Create inserts a user. Only operator tooling writes users.
func (r *UserRepository) Create(ctx context.Context, username, fullName string, role entity.Role) (*entity.User, error) {
	const q = `
INSERT INTO users (username, full_name, role)
VALUES ($1, $2, $3)
RETURNING id, username, full_name, role, is_active, created_at;
`
	var (
		u        entity.User
		roleText string
	)
	if err := r.q.QueryRow(ctx, q, username, fullName, string(role)).Scan(
		&u.ID, &u.Username, &u.FullName, &roleText, &u.IsActive, &u.CreatedAt,
	); err != nil {
		return nil, mapError("users.create", err)
	}
	u.Role = entity.Role(roleText)
	return &u, nil
}
