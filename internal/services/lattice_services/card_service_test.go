package lattice_services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leleneme/lattice/internal/model/lattice_model"
)

func TestCardService_CreateMissingSection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := env.createUser(t, "Owner", "owner@example.com")

	_, result := env.cardSvc.CreateCard(ctx, lattice_model.CardCreateDto{
		SectionID: 42,
		Name:      "Fix bug",
		CreatedBy: ownerID,
	})
	assert.Equal(t, NotFound, result)
}

func TestCardService_CreateAndGetInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := env.createUser(t, "Owner", "owner@example.com")
	teamID := env.createTeam(t, ownerID, "Core")
	boardID := env.createBoard(t, teamID, ownerID, "Sprint")
	sectionID := env.createSection(t, boardID, "Todo")

	before := time.Now().UTC()
	id, result := env.cardSvc.CreateCard(ctx, lattice_model.CardCreateDto{
		SectionID:   sectionID,
		Name:        "Fix bug",
		Description: "crash on startup",
		Status:      lattice_model.StatusCommited,
		CreatedBy:   ownerID,
	})
	require.Equal(t, Ok, result)
	require.NotZero(t, id)

	info, result := env.cardSvc.GetCardInfo(ctx, id)
	require.Equal(t, Ok, result)
	assert.Equal(t, "Fix bug", info.Name)
	assert.Equal(t, "crash on startup", info.Description)
	assert.Equal(t, lattice_model.StatusCommited, info.Status)
	assert.Equal(t, sectionID, info.SectionID)
	assert.Nil(t, info.AssignedTo)
	assert.False(t, info.CreatedAt.Before(before.Truncate(time.Second)))
}

func TestCardService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := env.createUser(t, "Owner", "owner@example.com")
	teamID := env.createTeam(t, ownerID, "Core")
	boardID := env.createBoard(t, teamID, ownerID, "Sprint")
	sectionID := env.createSection(t, boardID, "Todo")
	cardID := env.createCard(t, sectionID, ownerID, "Fix bug")

	result := env.cardSvc.UpdateCard(ctx, cardID, lattice_model.CardUpdateDto{
		SectionID:   sectionID,
		Name:        "Fix crash",
		Description: "narrowed down",
		Status:      lattice_model.StatusCompleted,
	})
	require.Equal(t, Ok, result)

	info, result := env.cardSvc.GetCardInfo(ctx, cardID)
	require.Equal(t, Ok, result)
	assert.Equal(t, "Fix crash", info.Name)
	assert.Equal(t, lattice_model.StatusCompleted, info.Status)
}

func TestCardService_UpdateMissing(t *testing.T) {
	env := newTestEnv(t)

	result := env.cardSvc.UpdateCard(context.Background(), 42, lattice_model.CardUpdateDto{Name: "Ghost"})
	assert.Equal(t, NotFound, result)
}

func TestCardService_AssignMissingCard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "Ana", "ana@example.com")
	assert.Equal(t, NotFound, env.cardSvc.AssignTo(ctx, 42, userID))
}

func TestCardService_AssignMissingUserLeavesAssignee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := env.createUser(t, "Owner", "owner@example.com")
	teamID := env.createTeam(t, ownerID, "Core")
	boardID := env.createBoard(t, teamID, ownerID, "Sprint")
	sectionID := env.createSection(t, boardID, "Todo")
	cardID := env.createCard(t, sectionID, ownerID, "Fix bug")

	assert.Equal(t, UserNotFound, env.cardSvc.AssignTo(ctx, cardID, 42))

	info, result := env.cardSvc.GetCardInfo(ctx, cardID)
	require.Equal(t, Ok, result)
	assert.Nil(t, info.AssignedTo)
}

func TestCardService_Assign(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ownerID := env.createUser(t, "Owner", "owner@example.com")
	anaID := env.createUser(t, "Ana", "ana@example.com")
	teamID := env.createTeam(t, ownerID, "Core")
	boardID := env.createBoard(t, teamID, ownerID, "Sprint")
	sectionID := env.createSection(t, boardID, "Todo")
	cardID := env.createCard(t, sectionID, ownerID, "Fix bug")

	require.Equal(t, Ok, env.cardSvc.AssignTo(ctx, cardID, anaID))

	info, result := env.cardSvc.GetCardInfo(ctx, cardID)
	require.Equal(t, Ok, result)
	require.NotNil(t, info.AssignedTo)
	assert.Equal(t, anaID, *info.AssignedTo)
}

func TestCardService_DeleteMissing(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, NotFound, env.cardSvc.DeleteCard(context.Background(), 42))
}
