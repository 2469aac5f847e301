package lattice_model

import (
	"time"
)

// CardStatus is the lifecycle state of a Card. Values are stored as
// integers and travel as integers on the wire.
type CardStatus int

const (
	StatusTodo CardStatus = iota
	StatusCommited
	StatusOnHold
	StatusCompleted
	StatusDropped
)

type UserAccount struct {
	ID           uint64    `db:"id"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Email        string    `db:"email"`
	CreatedAt    time.Time `db:"created_at"`
}

type Team struct {
	ID        uint64    `db:"id"`
	OwnerID   uint64    `db:"owner_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// UserTeam is the membership row linking a User to a Team.
type UserTeam struct {
	ID        uint64    `db:"id"`
	TeamID    uint64    `db:"team_id"`
	UserID    uint64    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Board struct {
	ID        uint64    `db:"id"`
	TeamID    uint64    `db:"team_id"`
	CreatedBy *uint64   `db:"created_by"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Section struct {
	ID        uint64    `db:"id"`
	BoardID   uint64    `db:"board_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Card struct {
	ID          uint64     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	AssignedTo  *uint64    `db:"assigned_to"`
	SectionID   uint64     `db:"section_id"`
	Status      CardStatus `db:"status"`
	CreatedBy   *uint64    `db:"created_by"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// MembershipWithUser is a user_team row joined with the member's account,
// as returned by MembershipRepo.ListByTeam.
type MembershipWithUser struct {
	UserTeam
	UserName string `db:"user_name"`
}

// MembershipWithTeam is a user_team row joined with the team and the
// team's owner, as returned by MembershipRepo.ListByUser.
type MembershipWithTeam struct {
	UserTeam
	TeamName       string    `db:"team_name"`
	OwnerID        uint64    `db:"owner_id"`
	OwnerName      string    `db:"owner_name"`
	OwnerCreatedAt time.Time `db:"owner_created_at"`
}
