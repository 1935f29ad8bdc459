package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"SWN", "SWS", "SWF", "SCF", "SEF", "SEN", "SEC", "SES", "SAG"}, cfg.Session.Boards)
	assert.Len(t, cfg.Session.Days, 7)
	assert.Equal(t, "Pazartesi", cfg.Session.Days[0])
	assert.Len(t, cfg.Session.Timeslots, 4)
	assert.Len(t, cfg.Session.StandardScenarios, 6)
	assert.Len(t, cfg.Session.Scenarios, 4)
	assert.Empty(t, cfg.Session.Participants)
	assert.Equal(t, "round_robin", cfg.Session.Strategy)
	assert.Equal(t, "ATC", cfg.Session.ParticipantPrefix)
	assert.Equal(t, "roster_plan.xlsx", cfg.Export.Path)
	assert.Len(t, cfg.Export.Palette, 12)
	assert.Equal(t, "Roster Plan", cfg.Export.PlanSheet)
	assert.Equal(t, "Summary", cfg.Export.SummarySheet)
	assert.False(t, cfg.Logging.Enabled)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "roster.yaml", `session:
  participants: [Ayşe, Mehmet, Zeynep]
  boards: [N, S]
  days: [Cuma]
  timeslots: ["08:00-09:00"]
  standard_scenarios: [Alfa]
  scenarios:
    - name: Alfa
      day: Cuma
      timeslot: "08:00-09:00"
      repeat: 3
    - name: Bravo
      day: Cuma
      timeslot: "08:00-09:00"
  strategy: balanced
export:
  palette: ["#ff0000"]
logging:
  enabled: true
  level: debug
random:
  seed: 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"participants", len(cfg.Session.Participants), 3},
		{"boards", len(cfg.Session.Boards), 2},
		{"days", cfg.Session.Days[0], "Cuma"},
		{"scenario repeat", cfg.Session.Scenarios[0].Repeat, 3},
		{"scenario default repeat", cfg.Session.Scenarios[1].Repeat, 1},
		{"strategy", cfg.Session.Strategy, "balanced"},
		{"palette", cfg.Export.Palette[0], "FF0000"},
		{"export path default", cfg.Export.Path, "roster_plan.xlsx"},
		{"logging", cfg.Logging.Enabled, true},
		{"level", cfg.Logging.Level, "debug"},
		{"seed", cfg.Random.Seed, uint64(42)},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "roster.json", `{"session": {"boards": ["X", "Y", "Z"]}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, cfg.Session.Boards)
	assert.Len(t, cfg.Session.Days, 7)
}

func TestLoadExplicitEmptyListStaysEmpty(t *testing.T) {
	path := writeFile(t, "roster.yaml", "session:\n  boards: []\n  scenarios: []\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Session.Boards)
	assert.Empty(t, cfg.Session.Scenarios)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ROSTER_SESSION__STRATEGY", "latin_square")
	t.Setenv("ROSTER_SESSION__BOARDS", "A, B ,C")
	t.Setenv("ROSTER_LOGGING__LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "latin_square", cfg.Session.Strategy)
	assert.Equal(t, []string{"A", "B", "C"}, cfg.Session.Boards)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown strategy", "session:\n  strategy: magic\n"},
		{"zero repeat", "session:\n  scenarios:\n    - {name: A, day: D, timeslot: T, repeat: -1}\n"},
		{"duplicate board", "session:\n  boards: [A, A]\n"},
		{"blank day", "session:\n  days: [\" \"]\n"},
		{"bad palette", "export:\n  palette: [red]\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"unknown export extension", "export:\n  path: plan.pdf\n"},
		{"same sheets", "export:\n  plan_sheet: X\n  summary_sheet: X\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "roster.yaml", tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadUnknownStrategyIsTyped(t *testing.T) {
	_, err := Load(writeFile(t, "roster.yaml", "session:\n  strategy: magic\n"))
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(writeFile(t, "roster.toml", "x = 1"))
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestTemplates(t *testing.T) {
	cfg := Default()
	tpls, err := cfg.Session.Templates()
	require.NoError(t, err)
	require.Len(t, tpls, 4)
	assert.Equal(t, "Kuzey Doğu Peak", tpls[0].Name)
	assert.Equal(t, "09:00-10:00", tpls[0].Timeslot)
}
