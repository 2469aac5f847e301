package lattice_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

type CardRepo struct {
	DB *sqlx.DB
}

func NewCardRepo(db *sqlx.DB) *CardRepo {
	return &CardRepo{DB: db}
}

func (r *CardRepo) Create(ctx context.Context, c *lattice_model.Card) error {
	q := `
        INSERT INTO card (name, description, assigned_to, section_id, status, created_by, completed_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`
	err := r.DB.QueryRowxContext(ctx, q,
		c.Name, c.Description, c.AssignedTo, c.SectionID, c.Status, c.CreatedBy, c.CompletedAt, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}
	return nil
}

func (r *CardRepo) GetByID(ctx context.Context, id uint64) (*lattice_model.Card, error) {
	var c lattice_model.Card
	q := `
        SELECT id, name, description, assigned_to, section_id, status, created_by, completed_at, created_at
        FROM card WHERE id = $1`
	if err := r.DB.GetContext(ctx, &c, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CardRepo) ListBySection(ctx context.Context, sectionID uint64) ([]lattice_model.Card, error) {
	var cards []lattice_model.Card
	q := `
        SELECT id, name, description, assigned_to, section_id, status, created_by, completed_at, created_at
        FROM card WHERE section_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &cards, q, sectionID); err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *CardRepo) ListByAssignee(ctx context.Context, userID uint64) ([]lattice_model.Card, error) {
	var cards []lattice_model.Card
	q := `
        SELECT id, name, description, assigned_to, section_id, status, created_by, completed_at, created_at
        FROM card WHERE assigned_to = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &cards, q, userID); err != nil {
		return nil, err
	}
	return cards, nil
}

// Update replaces the mutable fields of a card in full.
func (r *CardRepo) Update(ctx context.Context, c *lattice_model.Card) (int64, error) {
	q := `UPDATE card SET name = $1, description = $2, section_id = $3, status = $4 WHERE id = $5`
	result, err := r.DB.ExecContext(ctx, q, c.Name, c.Description, c.SectionID, c.Status, c.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update card: %w", err)
	}
	return result.RowsAffected()
}

func (r *CardRepo) Assign(ctx context.Context, cardID, userID uint64) (int64, error) {
	q := `UPDATE card SET assigned_to = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, q, userID, cardID)
	if err != nil {
		return 0, fmt.Errorf("failed to assign card: %w", err)
	}
	return result.RowsAffected()
}

func (r *CardRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	q := `DELETE FROM card WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, q, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete card: %w", err)
	}
	return result.RowsAffected()
}
