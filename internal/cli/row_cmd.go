package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Edit the scenario rows a plan is generated from",
	}

	cmd.AddCommand(
		newRowListCmd(app),
		newRowAddCmd(app),
		newRowUpdateCmd(app),
		newRowRemoveCmd(app),
	)

	return cmd
}

// parsePosition parses a 1-based row position.
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid row number %q: use the # shown by 'row list'", s)
	}
	return n, nil
}

func newRowListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List scenario rows",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Rows.List(cmd.Context())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatTemplates(rows))
			return nil
		},
	}
}

func newRowAddCmd(app *App) *cobra.Command {
	var f rowFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a scenario row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.input(cmd.Flags())
			if err != nil {
				return err
			}
			row, err := app.Rows.Add(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added row: %s · %s · %s ×%d\n",
				formatter.StyleGreen.Render("✓"), row.Name, row.Day, row.Timeslot, row.RepeatCount)
			return nil
		},
	}

	f.register(cmd.Flags())
	return cmd
}

func newRowUpdateCmd(app *App) *cobra.Command {
	var f rowFlags

	cmd := &cobra.Command{
		Use:   "update <n>",
		Short: "Change fields of row n; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			in, err := f.input(cmd.Flags())
			if err != nil {
				return err
			}
			row, err := app.Rows.Update(cmd.Context(), pos, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated row %d: %s · %s · %s ×%d\n",
				formatter.StyleGreen.Render("✓"), pos, row.Name, row.Day, row.Timeslot, row.RepeatCount)
			return nil
		},
	}

	f.register(cmd.Flags())
	return cmd
}

func newRowRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <n>",
		Aliases: []string{"rm"},
		Short:   "Remove row n",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			row, err := app.Rows.Remove(cmd.Context(), pos)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed row %d: %s · %s · %s\n",
				formatter.StyleGreen.Render("✓"), pos, row.Name, row.Day, row.Timeslot)
			return nil
		},
	}

	addYesFlag(cmd.Flags(), &yes)
	return cmd
}
