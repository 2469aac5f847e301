package lattice_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

type SectionRepo struct {
	DB *sqlx.DB
}

func NewSectionRepo(db *sqlx.DB) *SectionRepo {
	return &SectionRepo{DB: db}
}

func (r *SectionRepo) Create(ctx context.Context, s *lattice_model.Section) error {
	q := `INSERT INTO section (board_id, name, created_at) VALUES ($1, $2, $3) RETURNING id`
	if err := r.DB.QueryRowxContext(ctx, q, s.BoardID, s.Name, s.CreatedAt).Scan(&s.ID); err != nil {
		return fmt.Errorf("failed to insert section: %w", err)
	}
	return nil
}

func (r *SectionRepo) GetByID(ctx context.Context, id uint64) (*lattice_model.Section, error) {
	var s lattice_model.Section
	q := `SELECT id, board_id, name, created_at FROM section WHERE id = $1`
	if err := r.DB.GetContext(ctx, &s, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SectionRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM section WHERE id = $1)`
	if err := r.DB.GetContext(ctx, &exists, q, id); err != nil {
		return false, fmt.Errorf("failed to check section existence: %w", err)
	}
	return exists, nil
}

func (r *SectionRepo) ListByBoard(ctx context.Context, boardID uint64) ([]lattice_model.Section, error) {
	var sections []lattice_model.Section
	q := `SELECT id, board_id, name, created_at FROM section WHERE board_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &sections, q, boardID); err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *SectionRepo) UpdateName(ctx context.Context, id uint64, name string) (int64, error) {
	q := `UPDATE section SET name = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, q, name, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update section: %w", err)
	}
	return result.RowsAffected()
}

// Delete removes the section row; its cards go with it through the
// store's cascade rules.
func (r *SectionRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	q := `DELETE FROM section WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, q, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete section: %w", err)
	}
	return result.RowsAffected()
}
