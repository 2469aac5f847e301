package lattice_repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leleneme/lattice/internal/testutil"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	before := time.Now().UTC()
	user := testutil.NewTestUser("Ana", "ana@example.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.False(t, got.CreatedAt.Before(before.Truncate(time.Second)))

	byEmail, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepo_EmailUnique(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	require.NoError(t, repo.Create(ctx, testutil.NewTestUser("Ana", "ana@example.com")))

	dup := testutil.NewTestUser("Other", "ana@example.com")
	assert.Error(t, repo.Create(ctx, dup))
}

func TestUserRepo_Exists(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	exists, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	user := testutil.NewTestUser("Ana", "ana@example.com")
	require.NoError(t, repo.Create(ctx, user))

	exists, err = repo.Exists(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	user := testutil.NewTestUser("Ana", "ana@example.com")
	require.NoError(t, repo.Create(ctx, user))

	user.Name = "Ana Maria"
	user.Email = "ana.maria@example.com"
	rows, err := repo.Update(ctx, user)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "ana.maria@example.com", got.Email)
}

func TestUserRepo_DeleteRemovesMemberships(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	users := NewUserRepo(db)
	teams := NewTeamRepo(db)
	memberships := NewMembershipRepo(db)

	owner := testutil.NewTestUser("Owner", "owner@example.com")
	require.NoError(t, users.Create(ctx, owner))
	member := testutil.NewTestUser("Member", "member@example.com")
	require.NoError(t, users.Create(ctx, member))

	team := testutil.NewTestTeam(owner.ID, "Core")
	require.NoError(t, teams.Create(ctx, team))

	require.NoError(t, memberships.Create(ctx, testutil.NewTestMembership(team.ID, member.ID)))

	rows, err := users.Delete(ctx, member.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = memberships.Find(ctx, team.ID, member.ID)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestUserRepo_DeleteMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	rows, err := repo.Delete(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
