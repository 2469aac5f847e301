package lattice_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrBoardNotFound      = errors.New("board not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrCardNotFound       = errors.New("card not found")
)

type UserRepo struct {
	DB *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{DB: db}
}

func (r *UserRepo) Create(ctx context.Context, u *lattice_model.UserAccount) error {
	q := `INSERT INTO user_account (name, password_hash, email, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.DB.QueryRowxContext(ctx, q, u.Name, u.PasswordHash, u.Email, u.CreatedAt).Scan(&u.ID); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*lattice_model.UserAccount, error) {
	var u lattice_model.UserAccount
	q := `SELECT id, name, password_hash, email, created_at FROM user_account WHERE id = $1`
	if err := r.DB.GetContext(ctx, &u, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*lattice_model.UserAccount, error) {
	var u lattice_model.UserAccount
	q := `SELECT id, name, password_hash, email, created_at FROM user_account WHERE email = $1`
	if err := r.DB.GetContext(ctx, &u, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM user_account WHERE id = $1)`
	if err := r.DB.GetContext(ctx, &exists, q, id); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) List(ctx context.Context) ([]lattice_model.UserAccount, error) {
	var users []lattice_model.UserAccount
	q := `SELECT id, name, password_hash, email, created_at FROM user_account ORDER BY id`
	if err := r.DB.SelectContext(ctx, &users, q); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, u *lattice_model.UserAccount) (int64, error) {
	q := `UPDATE user_account SET name = $1, password_hash = $2, email = $3 WHERE id = $4`
	result, err := r.DB.ExecContext(ctx, q, u.Name, u.PasswordHash, u.Email, u.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	return result.RowsAffected()
}

// Delete removes the user's membership rows and the account itself in one
// transaction. The returned count covers the account row only.
func (r *UserRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_team WHERE user_id = $1`, id); err != nil {
		return 0, fmt.Errorf("failed to delete user memberships: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM user_account WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("transaction commit failed: %w", err)
	}
	return rows, nil
}
