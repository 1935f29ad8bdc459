package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteScenarioRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	tpl := testutil.NewTestTemplate("Alfa", testutil.WithDay("Salı"), testutil.WithRepeat(3))
	require.NoError(t, repo.Create(ctx, tpl))

	got, err := repo.GetByID(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alfa", got.Name)
	assert.Equal(t, "Salı", got.Day)
	assert.Equal(t, 3, got.RepeatCount)
	assert.Equal(t, 0, got.Position)
}

func TestScenarioRepo_CreateAllowsDuplicateRows(t *testing.T) {
	repo := NewSQLiteScenarioRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("Alfa")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("Alfa")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 0, list[0].Position)
	assert.Equal(t, 1, list[1].Position)
}

func TestScenarioRepo_CreateAssignsID(t *testing.T) {
	repo := NewSQLiteScenarioRepo(testutil.NewTestDB(t))
	tpl, err := domain.NewScenarioTemplate("Bravo", "Cuma", "13:00-16:00", 1)
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tpl))
	assert.NotEmpty(t, tpl.ID)
}

func TestScenarioRepo_CreateRejectsInvalid(t *testing.T) {
	repo := NewSQLiteScenarioRepo(testutil.NewTestDB(t))
	tpl := testutil.NewTestTemplate("Alfa", testutil.WithRepeat(0))

	err := repo.Create(context.Background(), tpl)
	assert.ErrorIs(t, err, domain.ErrInvalidRepeatCount)
}

func TestScenarioRepo_Update(t *testing.T) {
	repo := NewSQLiteScenarioRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	tpl := testutil.NewTestTemplate("Alfa")
	require.NoError(t, repo.Create(ctx, tpl))

	tpl.Name = "Charlie"
	tpl.RepeatCount = 5
	require.NoError(t, repo.Update(ctx, tpl))

	got, err := repo.GetByID(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Charlie", got.Name)
	assert.Equal(t, 5, got.RepeatCount)

	missing := testutil.NewTestTemplate("Ghost")
	assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrNotFound)
}

func TestScenarioRepo_DeleteCompactsPositions(t *testing.T) {
	repo := NewSQLiteScenarioRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	a := testutil.NewTestTemplate("A")
	b := testutil.NewTestTemplate("B")
	c := testutil.NewTestTemplate("C")
	for _, tpl := range []*domain.ScenarioTemplate{a, b, c} {
		require.NoError(t, repo.Create(ctx, tpl))
	}

	require.NoError(t, repo.Delete(ctx, b.ID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "C", list[1].Name)
	assert.Equal(t, 1, list[1].Position)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), domain.ErrNotFound)
}

func TestScenarioRepo_DeleteAll(t *testing.T) {
	repo := NewSQLiteScenarioRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("A")))
	require.NoError(t, repo.DeleteAll(ctx))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestScenarioRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteScenarioRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}
