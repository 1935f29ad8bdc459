package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/spf13/cobra"
)

// newRegistryCmd builds the list/add/rename/remove group of one registry.
func newRegistryCmd(app *App, kind domain.RegistryKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: "Manage " + kind.Plural(),
	}

	cmd.AddCommand(
		newRegistryListCmd(app, kind),
		newRegistryAddCmd(app, kind),
		newRegistryRenameCmd(app, kind),
		newRegistryRemoveCmd(app, kind),
	)

	return cmd
}

func newRegistryListCmd(app *App, kind domain.RegistryKind) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List " + kind.Plural() + " in order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			names, err := app.Registry.List(ctx, kind)
			if err != nil {
				return err
			}
			colors, err := participantColors(ctx, app)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatRegistry(kind, names, colors))
			return nil
		},
	}
}

func newRegistryAddCmd(app *App, kind domain.RegistryKind) *cobra.Command {
	use, args := "add <name>", cobra.MinimumNArgs(1)
	short := fmt.Sprintf("Append a %s", kind)
	if kind == domain.RegistryParticipants {
		use, args = "add [name]", cobra.ArbitraryArgs
		short = "Append a participant (auto-named when no name is given)"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  "Words are joined with single spaces, so multi-word names need no quoting.",
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.Join(args, " ")

			var res domain.MutationResult
			var err error
			if kind == domain.RegistryParticipants {
				res, err = app.Registry.AddParticipant(ctx, name)
			} else {
				res, err = app.Registry.Add(ctx, kind, name)
			}
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatMutation("Added", res))
			return nil
		},
	}
}

func newRegistryRenameCmd(app *App, kind domain.RegistryKind) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: fmt.Sprintf("Rename a %s in place", kind),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Registry.Rename(cmd.Context(), kind, args[0], args[1])
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatMutation("Renamed", res))
			return nil
		},
	}
}

func newRegistryRemoveCmd(app *App, kind domain.RegistryKind) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Remove a %s", kind),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Registry.Remove(cmd.Context(), kind, strings.Join(args, " "))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatMutation("Removed", res))
			return nil
		},
	}

	addYesFlag(cmd.Flags(), &yes)
	return cmd
}
