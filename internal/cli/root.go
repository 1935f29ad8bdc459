package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/export"
	"github.com/alexanderramin/roster/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Registry service.RegistryService
	Rows     service.ScenarioService
	Plans    service.PlanService
	Export   service.ExportService

	// Palette colors participant tags in the terminal; it matches the
	// export palette so both views agree.
	Palette export.Palette

	// HistoryPath is where the shell persists its command history. Empty
	// disables persistence.
	HistoryPath string

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command starts the shell when it does.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "roster" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roster",
		Short: "Plan who staffs which board in each training scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}
	// Read by main before the command tree is built; declared here so cobra
	// accepts it.
	root.PersistentFlags().String("config", "", "config file (yaml or json)")

	for _, kind := range domain.AllRegistryKinds {
		root.AddCommand(newRegistryCmd(app, kind))
	}
	root.AddCommand(
		newRowCmd(app),
		newStrategyCmd(app),
		newPlanCmd(app),
		newSummaryCmd(app),
		newExportCmd(app),
		newGenerateCmd(app),
		newShellCmd(app),
	)

	return root
}

// participantColors tags participants by their current registry position.
func participantColors(ctx context.Context, app *App) (formatter.ParticipantColors, error) {
	participants, err := app.Registry.List(ctx, domain.RegistryParticipants)
	if err != nil {
		return formatter.ParticipantColors{}, err
	}
	return formatter.NewParticipantColors(participants, app.Palette), nil
}

func writeLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}
