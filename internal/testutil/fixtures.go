package testutil

import (
	"time"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

func NewTestUser(name, email string) *lattice_model.UserAccount {
	return &lattice_model.UserAccount{
		Name:         name,
		PasswordHash: "not-a-real-hash",
		Email:        email,
		CreatedAt:    time.Now().UTC(),
	}
}

func NewTestTeam(ownerID uint64, name string) *lattice_model.Team {
	return &lattice_model.Team{
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestMembership(teamID, userID uint64) *lattice_model.UserTeam {
	return &lattice_model.UserTeam{
		TeamID:    teamID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestBoard(teamID uint64, name string) *lattice_model.Board {
	return &lattice_model.Board{
		TeamID:    teamID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestSection(boardID uint64, name string) *lattice_model.Section {
	return &lattice_model.Section{
		BoardID:   boardID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestCard(sectionID uint64, name string) *lattice_model.Card {
	return &lattice_model.Card{
		Name:        name,
		Description: "test card",
		SectionID:   sectionID,
		Status:      lattice_model.StatusTodo,
		CreatedAt:   time.Now().UTC(),
	}
}

func Uint64Ptr(v uint64) *uint64 {
	return &v
}
