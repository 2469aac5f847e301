package lattice_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

type MembershipRepo struct {
	DB *sqlx.DB
}

func NewMembershipRepo(db *sqlx.DB) *MembershipRepo {
	return &MembershipRepo{DB: db}
}

func (r *MembershipRepo) Create(ctx context.Context, m *lattice_model.UserTeam) error {
	q := `INSERT INTO user_team (team_id, user_id, created_at) VALUES ($1, $2, $3) RETURNING id`
	if err := r.DB.QueryRowxContext(ctx, q, m.TeamID, m.UserID, m.CreatedAt).Scan(&m.ID); err != nil {
		return fmt.Errorf("failed to insert membership: %w", err)
	}
	return nil
}

func (r *MembershipRepo) Find(ctx context.Context, teamID, userID uint64) (*lattice_model.UserTeam, error) {
	var m lattice_model.UserTeam
	q := `SELECT id, team_id, user_id, created_at FROM user_team WHERE team_id = $1 AND user_id = $2`
	if err := r.DB.GetContext(ctx, &m, q, teamID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MembershipRepo) Delete(ctx context.Context, teamID, userID uint64) (int64, error) {
	q := `DELETE FROM user_team WHERE team_id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, q, teamID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete membership: %w", err)
	}
	return result.RowsAffected()
}

// ListByTeam returns the team's membership rows joined with each member's
// account.
func (r *MembershipRepo) ListByTeam(ctx context.Context, teamID uint64) ([]lattice_model.MembershipWithUser, error) {
	var rows []lattice_model.MembershipWithUser
	q := `
        SELECT ut.id, ut.team_id, ut.user_id, ut.created_at, u.name AS user_name
        FROM user_team ut
        JOIN user_account u ON u.id = ut.user_id
        WHERE ut.team_id = $1
        ORDER BY ut.id`
	if err := r.DB.SelectContext(ctx, &rows, q, teamID); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByUser returns the user's membership rows joined with the team and
// the team's owner.
func (r *MembershipRepo) ListByUser(ctx context.Context, userID uint64) ([]lattice_model.MembershipWithTeam, error) {
	var rows []lattice_model.MembershipWithTeam
	q := `
        SELECT ut.id, ut.team_id, ut.user_id, ut.created_at,
               t.name AS team_name, t.owner_id,
               o.name AS owner_name, o.created_at AS owner_created_at
        FROM user_team ut
        JOIN team t ON t.id = ut.team_id
        JOIN user_account o ON o.id = t.owner_id
        WHERE ut.user_id = $1
        ORDER BY ut.id`
	if err := r.DB.SelectContext(ctx, &rows, q, userID); err != nil {
		return nil, err
	}
	return rows, nil
}
