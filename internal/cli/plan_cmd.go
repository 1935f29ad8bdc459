package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/contract"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/export"
	"github.com/alexanderramin/roster/internal/scheduler"
	"github.com/alexanderramin/roster/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect the plan",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new plan, replacing the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := generatePlan(cmd.Context(), app, cmd.OutOrStdout(), strategy)
			return err
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Strategy for this run only (default: selected strategy)")
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := app.Plans.Current(ctx)
			if err != nil {
				return err
			}
			colors, err := participantColors(ctx, app)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatPlan(plan, colors))
			return nil
		},
	}
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show how often each participant staffed each board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			view, err := app.Plans.Summary(ctx)
			if err != nil {
				return err
			}
			colors, err := participantColors(ctx, app)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatSummary(view.Tally, view.Fairness, colors))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current plan and summary to a file",
		Long: `Write the current plan and summary to a file. The format follows the
file extension unless --format is given: xlsx (plan and summary sheets with
participant colors), csv (plan only), json or yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportPlan(cmd.Context(), app, cmd.OutOrStdout(), out, format)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: export.path from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "xlsx, csv, json or yaml (default: from extension)")
	return cmd
}

func newGenerateCmd(app *App) *cobra.Command {
	var strategy, exportPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan from the configured session and optionally export it",
		Long: `One-shot batch run: the session loaded from configuration is planned,
printed with its summary and, with --export, written to a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			resp, err := generatePlan(ctx, app, w, strategy)
			if err != nil {
				return err
			}
			colors, err := participantColors(ctx, app)
			if err != nil {
				return err
			}
			writeLine(w, formatter.FormatSummary(resp.Tally, scheduler.ComputeFairness(resp.Tally), colors))
			if exportPath == "" {
				return nil
			}
			return exportPlan(ctx, app, w, exportPath, "")
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Strategy for this run (default: session.strategy)")
	cmd.Flags().StringVarP(&exportPath, "export", "e", "", "Also export to this file")
	return cmd
}

// generatePlan runs one generation and prints warnings and the plan table.
func generatePlan(ctx context.Context, app *App, w io.Writer, strategy string) (*contract.GenerateResponse, error) {
	var req contract.GenerateRequest
	if strategy != "" {
		s, err := domain.ParseStrategy(strategy)
		if err != nil {
			return nil, err
		}
		req = contract.NewGenerateRequest(s)
	}

	resp, err := app.Plans.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	colors, err := participantColors(ctx, app)
	if err != nil {
		return nil, err
	}

	fmt.Fprint(w, formatter.FormatWarnings(resp.Warnings))
	writeLine(w, formatter.FormatPlan(resp.Plan, colors))
	return resp, nil
}

func exportPlan(ctx context.Context, app *App, w io.Writer, path, format string) error {
	req := service.ExportRequest{Path: path}
	if format != "" {
		f, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		req.Format = f
	}

	res, err := app.Export.Export(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Exported %d rows to %s (%s)\n", formatter.StyleGreen.Render("✓"), res.Rows, res.Path, res.Format)
	return nil
}
