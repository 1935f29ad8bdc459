package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/roster/internal/config"
	"github.com/alexanderramin/roster/internal/contract"
	"github.com/alexanderramin/roster/internal/export"
	"github.com/alexanderramin/roster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportService(env *testEnv, path string) ExportService {
	cfg := config.Default().Export
	cfg.Path = path
	return NewExportService(env.planner, env.registries, cfg)
}

func TestExportService_NoPlan(t *testing.T) {
	env := newTestEnv(t, "A")
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	_, err := newExportService(env, path).Export(context.Background(), ExportRequest{})
	assert.True(t, contract.IsPlanError(err, contract.ErrNoPlan))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportService_DefaultPathXLSX(t *testing.T) {
	env := newTestEnv(t, testutil.Names("ATC", 9)...)
	ctx := context.Background()
	_, err := env.planner.Generate(ctx, contract.GenerateRequest{})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "roster_plan.xlsx")

	res, err := newExportService(env, path).Export(ctx, ExportRequest{})
	require.NoError(t, err)
	assert.Equal(t, export.FormatXLSX, res.Format)
	assert.Equal(t, 4, res.Rows)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Roster Plan", "Summary"}, f.GetSheetList())
	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Len(t, rows, 10)
}

func TestExportService_ExplicitFormat(t *testing.T) {
	env := newTestEnv(t, testutil.Names("ATC", 9)...)
	ctx := context.Background()
	_, err := env.planner.Generate(ctx, contract.GenerateRequest{})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "plan.out")

	res, err := newExportService(env, "unused.xlsx").Export(ctx, ExportRequest{Path: path, Format: export.FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, path, res.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Day,Timeslot,Scenario,SWN")
}

func TestExportService_UndetectableFormat(t *testing.T) {
	env := newTestEnv(t, "A")
	_, err := newExportService(env, "plan").Export(context.Background(), ExportRequest{})
	assert.ErrorContains(t, err, "cannot detect export format")
}
