package repository

import (
	"context"

	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/usecase"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) usecase.UserRepository {
	return &userRepository{pool: pool}
}

const selectUserByEmailSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = $1`

func (r *userRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.pool.QueryRow(ctx, selectUserByEmailSQL, email.Value()).Scan(
		&view.ID, &view.Email, &hash, &view.Role, &view.IsActive,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

const selectUserByIDSQL = `
SELECT id, email, role, is_active
FROM users
WHERE id = $1`

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.pool.QueryRow(ctx, selectUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *userRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
