package lattice_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

type BoardRepo struct {
	DB *sqlx.DB
}

func NewBoardRepo(db *sqlx.DB) *BoardRepo {
	return &BoardRepo{DB: db}
}

func (r *BoardRepo) Create(ctx context.Context, b *lattice_model.Board) error {
	q := `INSERT INTO board (team_id, created_by, name, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.DB.QueryRowxContext(ctx, q, b.TeamID, b.CreatedBy, b.Name, b.CreatedAt).Scan(&b.ID); err != nil {
		return fmt.Errorf("failed to insert board: %w", err)
	}
	return nil
}

func (r *BoardRepo) GetByID(ctx context.Context, id uint64) (*lattice_model.Board, error) {
	var b lattice_model.Board
	q := `SELECT id, team_id, created_by, name, created_at FROM board WHERE id = $1`
	if err := r.DB.GetContext(ctx, &b, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BoardRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM board WHERE id = $1)`
	if err := r.DB.GetContext(ctx, &exists, q, id); err != nil {
		return false, fmt.Errorf("failed to check board existence: %w", err)
	}
	return exists, nil
}

func (r *BoardRepo) ListByTeam(ctx context.Context, teamID uint64) ([]lattice_model.Board, error) {
	var boards []lattice_model.Board
	q := `SELECT id, team_id, created_by, name, created_at FROM board WHERE team_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &boards, q, teamID); err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *BoardRepo) UpdateName(ctx context.Context, id uint64, name string) (int64, error) {
	q := `UPDATE board SET name = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, q, name, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update board: %w", err)
	}
	return result.RowsAffected()
}

// Delete removes the board row; sections and cards go with it through the
// store's cascade rules.
func (r *BoardRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	q := `DELETE FROM board WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, q, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete board: %w", err)
	}
	return result.RowsAffected()
}
