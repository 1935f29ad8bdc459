package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec(t *testing.T) *CommandSpec {
	t.Helper()
	return BuildCommandSpec(NewRootCmd(&App{}))
}

func TestBuildCommandSpec_WalksTree(t *testing.T) {
	spec := testSpec(t)

	for _, path := range []string{
		"participant", "participant add", "board rename", "day remove",
		"timeslot list", "scenario add",
		"row add", "row update", "strategy set", "plan generate", "plan show",
		"summary", "export", "generate", "shell",
	} {
		assert.NotNil(t, spec.FindCommand(path), path)
	}
	assert.Nil(t, spec.FindCommand("help"))
	assert.Nil(t, spec.FindCommand("roster"))
}

func TestBuildCommandSpec_RecordsFlagsAndSubcommands(t *testing.T) {
	spec := testSpec(t)

	rowAdd := spec.FindCommand("row add")
	require.NotNil(t, rowAdd)
	names := map[string]string{}
	for _, f := range rowAdd.Flags {
		names[f.Name] = f.Type
	}
	assert.Equal(t, map[string]string{"name": "string", "day": "string", "timeslot": "string", "repeat": "int"}, names)

	remove := spec.FindCommand("board remove")
	require.NotNil(t, remove)
	require.Len(t, remove.Flags, 1, "hidden --force is skipped")
	assert.Equal(t, "yes", remove.Flags[0].Name)
	assert.Equal(t, "y", remove.Flags[0].Shorthand)

	row := spec.FindCommand("row")
	require.NotNil(t, row)
	assert.ElementsMatch(t, []string{"list", "add", "update", "remove"}, row.Subcommands)
}

func TestCommandSpec_TopLevel(t *testing.T) {
	top := testSpec(t).TopLevel()
	assert.Contains(t, top, "participant")
	assert.Contains(t, top, "export")
	assert.NotContains(t, top, "row add")
}

func TestCommandSpec_FuzzyMatch(t *testing.T) {
	spec := testSpec(t)

	matches := spec.FuzzyMatch("partcipant", 3)
	require.NotEmpty(t, matches)
	assert.LessOrEqual(t, len(matches), 3)
	for _, m := range matches {
		assert.Contains(t, m.FullPath, "participant")
	}
}

func TestCommandSpec_FuzzyMatch_FallsBackToKeywords(t *testing.T) {
	spec := testSpec(t)

	// Neither query is a subsequence of any path; only "staffed" appears
	// in a description.
	assert.Empty(t, spec.FuzzyMatch("spreadsheet", 3))

	matches := spec.FuzzyMatch("staffed", 3)
	require.Len(t, matches, 1)
	assert.Equal(t, "summary", matches[0].FullPath)
}

func TestCommandSpec_FuzzyMatch_EmptyQuery(t *testing.T) {
	spec := testSpec(t)
	assert.Nil(t, spec.FuzzyMatch("", 3))
	assert.Nil(t, spec.FuzzyMatch("   ", 3))
}
