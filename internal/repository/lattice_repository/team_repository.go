package lattice_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

type TeamRepo struct {
	DB *sqlx.DB
}

func NewTeamRepo(db *sqlx.DB) *TeamRepo {
	return &TeamRepo{DB: db}
}

func (r *TeamRepo) Create(ctx context.Context, t *lattice_model.Team) error {
	q := `INSERT INTO team (owner_id, name, created_at) VALUES ($1, $2, $3) RETURNING id`
	if err := r.DB.QueryRowxContext(ctx, q, t.OwnerID, t.Name, t.CreatedAt).Scan(&t.ID); err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	return nil
}

func (r *TeamRepo) GetByID(ctx context.Context, id uint64) (*lattice_model.Team, error) {
	var t lattice_model.Team
	q := `SELECT id, owner_id, name, created_at FROM team WHERE id = $1`
	if err := r.DB.GetContext(ctx, &t, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM team WHERE id = $1)`
	if err := r.DB.GetContext(ctx, &exists, q, id); err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}

func (r *TeamRepo) List(ctx context.Context) ([]lattice_model.Team, error) {
	var teams []lattice_model.Team
	q := `SELECT id, owner_id, name, created_at FROM team ORDER BY id`
	if err := r.DB.SelectContext(ctx, &teams, q); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *TeamRepo) UpdateName(ctx context.Context, id uint64, name string) (int64, error) {
	q := `UPDATE team SET name = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, q, name, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update team: %w", err)
	}
	return result.RowsAffected()
}

// Delete removes the team's membership rows and the team itself in one
// transaction. The returned count covers the team row only.
func (r *TeamRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_team WHERE team_id = $1`, id); err != nil {
		return 0, fmt.Errorf("failed to delete team memberships: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM team WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete team: %w", err)
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
