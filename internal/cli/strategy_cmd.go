package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/spf13/cobra"
)

func newStrategyCmd(app *App) *cobra.Command {
	show := newStrategyShowCmd(app)

	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Show or select the assignment strategy",
		Args:  cobra.NoArgs,
		RunE:  show.RunE,
	}

	cmd.AddCommand(
		show,
		newStrategySetCmd(app),
		newStrategyListCmd(app),
	)

	return cmd
}

func newStrategyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Plans.Strategy(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Strategy: %s %s\n", formatter.Bold(s.Label()), formatter.Dim("("+string(s)+")"))
			return nil
		},
	}
}

func newStrategyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available strategies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Plans.Strategy(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStrategies(s))
			return nil
		},
	}
}

func newStrategySetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <strategy>",
		Short: "Select the strategy (random, round_robin, balanced, latin_square)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := domain.ParseStrategy(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := app.Plans.SetStrategy(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Strategy set to %s\n", formatter.StyleGreen.Render("✓"), s.Label())
			return nil
		},
	}
}
