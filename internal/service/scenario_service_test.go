package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioService_AddDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	row, err := env.rows.Add(ctx, RowInput{})
	require.NoError(t, err)
	assert.Equal(t, "Kuzey Doğu Peak", row.Name)
	assert.Equal(t, "Pazartesi", row.Day)
	assert.Equal(t, "09:00-10:00", row.Timeslot)
	assert.Equal(t, 1, row.RepeatCount)

	rows, err := env.rows.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestScenarioService_AddPlaceholdersWhenRegistriesEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.registries.ReplaceAll(ctx, domain.RegistryStandardScenarios, nil))
	require.NoError(t, env.registries.ReplaceAll(ctx, domain.RegistryDays, nil))
	require.NoError(t, env.registries.ReplaceAll(ctx, domain.RegistryTimeslots, nil))

	row, err := env.rows.Add(ctx, RowInput{Repeat: 2})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderScenario, row.Name)
	assert.Equal(t, PlaceholderDay, row.Day)
	assert.Equal(t, PlaceholderTimeslot, row.Timeslot)
	assert.Equal(t, 2, row.RepeatCount)
}

func TestScenarioService_AddExplicit(t *testing.T) {
	env := newTestEnv(t)
	row, err := env.rows.Add(context.Background(), RowInput{Name: "Ters Kuzey", Day: "Cuma", Timeslot: "13:00-14:00", Repeat: 3})
	require.NoError(t, err)
	assert.Equal(t, "Ters Kuzey", row.Name)
	assert.Equal(t, "Cuma", row.Day)
	assert.Equal(t, 3, row.RepeatCount)
}

func TestScenarioService_RepeatBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.rows.Add(ctx, RowInput{Repeat: domain.MaxRepeatCount + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidRepeatCount)
	_, err = env.rows.Update(ctx, 1, RowInput{Repeat: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidRepeatCount)

	rows, err := env.rows.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, 1, rows[0].RepeatCount)
}

func TestScenarioService_UpdateKeepsBlankFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	row, err := env.rows.Update(ctx, 2, RowInput{Day: "Salı", Repeat: 4})
	require.NoError(t, err)
	assert.Equal(t, "Kuzey Batı Peak", row.Name)
	assert.Equal(t, "Salı", row.Day)
	assert.Equal(t, "10:30-11:30", row.Timeslot)
	assert.Equal(t, 4, row.RepeatCount)

	rows, err := env.rows.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Salı", rows[1].Day)
}

func TestScenarioService_RemoveByPosition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	removed, err := env.rows.Remove(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Kuzey Doğu Peak", removed.Name)

	rows, err := env.rows.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Kuzey Batı Peak", rows[0].Name)
}

func TestScenarioService_PositionOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, pos := range []int{0, -1, 5} {
		_, err := env.rows.Remove(ctx, pos)
		assert.ErrorIs(t, err, domain.ErrNotFound, "remove %d", pos)
		_, err = env.rows.Update(ctx, pos, RowInput{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound, "update %d", pos)
	}
}
