package lattice_services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/repository/lattice_repository"
	"github.com/leleneme/lattice/internal/testutil"
)

type testEnv struct {
	users       *lattice_repository.UserRepo
	teams       *lattice_repository.TeamRepo
	memberships *lattice_repository.MembershipRepo
	boards      *lattice_repository.BoardRepo
	sections    *lattice_repository.SectionRepo
	cards       *lattice_repository.CardRepo

	userSvc    *UserService
	teamSvc    *TeamService
	boardSvc   *BoardService
	sectionSvc *SectionService
	cardSvc    *CardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	env := &testEnv{
		users:       lattice_repository.NewUserRepo(db),
		teams:       lattice_repository.NewTeamRepo(db),
		memberships: lattice_repository.NewMembershipRepo(db),
		boards:      lattice_repository.NewBoardRepo(db),
		sections:    lattice_repository.NewSectionRepo(db),
		cards:       lattice_repository.NewCardRepo(db),
	}
	env.userSvc = NewUserService(env.users, env.memberships, env.cards)
	env.teamSvc = NewTeamService(env.teams, env.memberships, env.boards, env.sections, env.users, env.userSvc)
	env.boardSvc = NewBoardService(env.boards, env.sections, env.users, env.teamSvc)
	env.sectionSvc = NewSectionService(env.sections, env.cards, env.boardSvc)
	env.cardSvc = NewCardService(env.cards, env.sectionSvc, env.userSvc)
	return env
}

// createUser seeds a user through the service and returns its id.
func (e *testEnv) createUser(t *testing.T, name, email string) uint64 {
	t.Helper()
	id, result := e.userSvc.CreateUser(context.Background(), lattice_model.UserCreateDto{
		Name:     name,
		Password: "hunter2!",
		Email:    email,
	})
	require.Equal(t, Ok, result)
	return id
}

func (e *testEnv) createTeam(t *testing.T, ownerID uint64, name string) uint64 {
	t.Helper()
	id, result := e.teamSvc.CreateTeam(context.Background(), lattice_model.TeamCreateDto{
		OwnerID: ownerID,
		Name:    name,
	})
	require.Equal(t, Ok, result)
	return id
}

func (e *testEnv) createBoard(t *testing.T, teamID, createdBy uint64, name string) uint64 {
	t.Helper()
	id, result := e.boardSvc.CreateBoard(context.Background(), lattice_model.BoardCreateDto{
		TeamID:    teamID,
		Name:      name,
		CreatedBy: createdBy,
	})
	require.Equal(t, Ok, result)
	return id
}

func (e *testEnv) createSection(t *testing.T, boardID uint64, name string) uint64 {
	t.Helper()
	id, result := e.sectionSvc.CreateSection(context.Background(), lattice_model.SectionCreateDto{
		BoardID: boardID,
		Name:    name,
	})
	require.Equal(t, Ok, result)
	return id
}

func (e *testEnv) createCard(t *testing.T, sectionID, createdBy uint64, name string) uint64 {
	t.Helper()
	id, result := e.cardSvc.CreateCard(context.Background(), lattice_model.CardCreateDto{
		SectionID:   sectionID,
		Name:        name,
		Description: "test card",
		Status:      lattice_model.StatusTodo,
		CreatedBy:   createdBy,
	})
	require.Equal(t, Ok, result)
	return id
}
