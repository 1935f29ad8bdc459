package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRepo_AppendKeepsOrder(t *testing.T) {
	repo := NewSQLiteRegistryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, b := range []string{"SWN", "SWS", "SWF"} {
		require.NoError(t, repo.Append(ctx, domain.RegistryBoards, b))
	}

	got, err := repo.List(ctx, domain.RegistryBoards)
	require.NoError(t, err)
	assert.Equal(t, []string{"SWN", "SWS", "SWF"}, got)
}

func TestRegistryRepo_KindsAreIndependent(t *testing.T) {
	repo := NewSQLiteRegistryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, domain.RegistryBoards, "X"))
	require.NoError(t, repo.Append(ctx, domain.RegistryStandardScenarios, "X"))

	days, err := repo.List(ctx, domain.RegistryDays)
	require.NoError(t, err)
	assert.Empty(t, days)

	ok, err := repo.Contains(ctx, domain.RegistryStandardScenarios, "X")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistryRepo_AppendDuplicate(t *testing.T) {
	repo := NewSQLiteRegistryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, domain.RegistryParticipants, "ATC1"))
	err := repo.Append(ctx, domain.RegistryParticipants, "ATC1")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	got, err := repo.List(ctx, domain.RegistryParticipants)
	require.NoError(t, err)
	assert.Equal(t, []string{"ATC1"}, got)
}

func TestRegistryRepo_RenameKeepsPosition(t *testing.T) {
	repo := NewSQLiteRegistryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.ReplaceAll(ctx, domain.RegistryParticipants, []string{"A", "B", "C"}))

	require.NoError(t, repo.Rename(ctx, domain.RegistryParticipants, "B", "Z"))

	got, err := repo.List(ctx, domain.RegistryParticipants)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z", "C"}, got)
}

func TestRegistryRepo_RenameErrors(t *testing.T) {
	repo := NewSQLiteRegistryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.ReplaceAll(ctx, domain.RegistryDays, []string{"Pazartesi", "Salı"}))

	assert.ErrorIs(t, repo.Rename(ctx, domain.RegistryDays, "Pazar", "Cuma"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Rename(ctx, domain.RegistryDays, "Pazartesi", "Salı"), domain.ErrDuplicateName)
}

func TestRegistryRepo_RemoveCompactsPositions(t *testing.T) {
	repo := NewSQLiteRegistryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.ReplaceAll(ctx, domain.RegistryBoards, []string{"A", "B", "C"}))

	require.NoError(t, repo.Remove(ctx, domain.RegistryBoards, "A"))
	require.NoError(t, repo.Append(ctx, domain.RegistryBoards, "D"))

	got, err := repo.List(ctx, domain.RegistryBoards)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, got)

	assert.ErrorIs(t, repo.Remove(ctx, domain.RegistryBoards, "A"), domain.ErrNotFound)
}

func TestRegistryRepo_ReplaceAll(t *testing.T) {
	repo := NewSQLiteRegistryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.ReplaceAll(ctx, domain.RegistryTimeslots, []string{"a", "b"}))
	require.NoError(t, repo.ReplaceAll(ctx, domain.RegistryTimeslots, []string{"c"}))

	got, err := repo.List(ctx, domain.RegistryTimeslots)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)
}
