package lattice_repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leleneme/lattice/internal/testutil"
)

func TestCascade_BoardDeleteRemovesSectionsAndCards(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	users := NewUserRepo(db)
	teams := NewTeamRepo(db)
	boards := NewBoardRepo(db)
	sections := NewSectionRepo(db)
	cards := NewCardRepo(db)

	owner := testutil.NewTestUser("Owner", "owner@example.com")
	require.NoError(t, users.Create(ctx, owner))
	team := testutil.NewTestTeam(owner.ID, "Core")
	require.NoError(t, teams.Create(ctx, team))
	board := testutil.NewTestBoard(team.ID, "Sprint")
	require.NoError(t, boards.Create(ctx, board))
	section := testutil.NewTestSection(board.ID, "Todo")
	require.NoError(t, sections.Create(ctx, section))
	card := testutil.NewTestCard(section.ID, "Fix bug")
	require.NoError(t, cards.Create(ctx, card))

	rows, err := boards.Delete(ctx, board.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = sections.GetByID(ctx, section.ID)
	assert.ErrorIs(t, err, ErrSectionNotFound)
	_, err = cards.GetByID(ctx, card.ID)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCascade_SectionDeleteRemovesCards(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	users := NewUserRepo(db)
	teams := NewTeamRepo(db)
	boards := NewBoardRepo(db)
	sections := NewSectionRepo(db)
	cards := NewCardRepo(db)

	owner := testutil.NewTestUser("Owner", "owner@example.com")
	require.NoError(t, users.Create(ctx, owner))
	team := testutil.NewTestTeam(owner.ID, "Core")
	require.NoError(t, teams.Create(ctx, team))
	board := testutil.NewTestBoard(team.ID, "Sprint")
	require.NoError(t, boards.Create(ctx, board))
	section := testutil.NewTestSection(board.ID, "Todo")
	require.NoError(t, sections.Create(ctx, section))
	card := testutil.NewTestCard(section.ID, "Fix bug")
	require.NoError(t, cards.Create(ctx, card))

	rows, err := sections.Delete(ctx, section.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = cards.GetByID(ctx, card.ID)
	assert.ErrorIs(t, err, ErrCardNotFound)

	got, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)
}

func TestCascade_TeamDeleteRemovesMemberships(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	users := NewUserRepo(db)
	teams := NewTeamRepo(db)
	memberships := NewMembershipRepo(db)

	owner := testutil.NewTestUser("Owner", "owner@example.com")
	require.NoError(t, users.Create(ctx, owner))
	team := testutil.NewTestTeam(owner.ID, "Core")
	require.NoError(t, teams.Create(ctx, team))
	require.NoError(t, memberships.Create(ctx, testutil.NewTestMembership(team.ID, owner.ID)))

	rows, err := teams.Delete(ctx, team.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = memberships.Find(ctx, team.ID, owner.ID)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestCascade_UserDeleteNullsReferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	users := NewUserRepo(db)
	teams := NewTeamRepo(db)
	boards := NewBoardRepo(db)
	sections := NewSectionRepo(db)
	cards := NewCardRepo(db)

	owner := testutil.NewTestUser("Owner", "owner@example.com")
	require.NoError(t, users.Create(ctx, owner))
	creator := testutil.NewTestUser("Creator", "creator@example.com")
	require.NoError(t, users.Create(ctx, creator))

	team := testutil.NewTestTeam(owner.ID, "Core")
	require.NoError(t, teams.Create(ctx, team))
	board := testutil.NewTestBoard(team.ID, "Sprint")
	board.CreatedBy = &creator.ID
	require.NoError(t, boards.Create(ctx, board))
	section := testutil.NewTestSection(board.ID, "Todo")
	require.NoError(t, sections.Create(ctx, section))
	card := testutil.NewTestCard(section.ID, "Fix bug")
	card.AssignedTo = &creator.ID
	card.CreatedBy = &creator.ID
	require.NoError(t, cards.Create(ctx, card))

	rows, err := users.Delete(ctx, creator.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	gotBoard, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Nil(t, gotBoard.CreatedBy)

	gotCard, err := cards.GetByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Nil(t, gotCard.AssignedTo)
	assert.Nil(t, gotCard.CreatedBy)
}
