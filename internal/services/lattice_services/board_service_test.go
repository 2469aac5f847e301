package lattice_services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

func TestBoardService_CreateMissingTeam(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := env.createUser(t, "Owner", "owner@example.com")

	_, result := env.boardSvc.CreateBoard(ctx, lattice_model.BoardCreateDto{
		TeamID:    42,
		Name:      "Sprint",
		CreatedBy: ownerID,
	})
	assert.Equal(t, NotFound, result)
}

func TestBoardService_GetInfoEagerLoadsSections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := env.createUser(t, "Owner", "owner@example.com")
	teamID := env.createTeam(t, ownerID, "Core")
	boardID := env.createBoard(t, teamID, ownerID, "Sprint")
	env.createSection(t, boardID, "Todo")
	env.createSection(t, boardID, "Done")

	info, result := env.boardSvc.GetBoardInfo(ctx, boardID)
	require.Equal(t, Ok, result)
	assert.Equal(t, "Sprint", info.Name)
	assert.Equal(t, teamID, info.TeamID)
	require.NotNil(t, info.Creator)
	assert.Equal(t, "Owner", info.Creator.Name)
	require.Len(t, info.Sections, 2)
	assert.Equal(t, "Todo", info.Sections[0].Name)
	assert.Equal(t, "Done", info.Sections[1].Name)
	assert.Nil(t, info.Sections[0].Cards)
}

func TestBoardService_GetInfoMissing(t *testing.T) {
	env := newTestEnv(t)
	_, result := env.boardSvc.GetBoardInfo(context.Background(), 42)
	assert.Equal(t, NotFound, result)
}

func TestBoardService_UpdateSameNameShortCircuits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := env.createUser(t, "Owner", "owner@example.com")
	teamID := env.createTeam(t, ownerID, "Core")
	boardID := env.createBoard(t, teamID, ownerID, "Sprint")

	assert.Equal(t, Ok, env.boardSvc.UpdateBoard(ctx, boardID, lattice_model.BoardUpdateDto{Name: "Sprint"}))
}

func TestBoardService_DeleteMissing(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, NotFound, env.boardSvc.DeleteBoard(context.Background(), 42))
}
