package postgres

import (
	"context"
	"fmt"

	"clever-bank/internal/core/domain"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// SelectAll fetches every user; used to seed the user cache at startup.
func (r *UserRepo) SelectAll(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, full_name FROM appuser`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FullName); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

// Insert persists a new user and returns it with the store-assigned id.
func (r *UserRepo) Insert(ctx context.Context, u domain.User) (domain.User, error) {
	query := `INSERT INTO appuser (full_name) VALUES ($1) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, u.FullName).Scan(&u.ID); err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// Update rewrites a user's display name.
func (r *UserRepo) Update(ctx context.Context, u domain.User) error {
	query := `UPDATE appuser SET full_name = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, u.FullName, u.ID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %d", u.ID)
	}
	return nil
}

// Delete removes a user row.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM appuser WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
