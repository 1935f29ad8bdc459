package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alexanderramin/roster/internal/cli"
	"github.com/alexanderramin/roster/internal/config"
	"github.com/alexanderramin/roster/internal/db"
	"github.com/alexanderramin/roster/internal/repository"
	"github.com/alexanderramin/roster/internal/scheduler"
	"github.com/alexanderramin/roster/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env may carry ROSTER_* overrides; it is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load(configPath(os.Args[1:]))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The session lives in memory for the lifetime of the process.
	database, err := db.OpenSession()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer database.Close()

	// Wire repositories
	registries := repository.NewSQLiteRegistryRepo(database)
	scenarios := repository.NewSQLiteScenarioRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	plans := repository.NewSQLitePlanRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Logging.Enabled {
		observer = service.NewLogUseCaseObserver(os.Stderr, service.LogOptions{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	}

	if err := service.NewSessionSeeder(uow, observer).Seed(context.Background(), cfg.Session); err != nil {
		return fmt.Errorf("seeding session: %w", err)
	}

	// Wire services
	planner := service.NewPlanService(registries, scenarios, settings, plans, uow, scheduler.NewRand(cfg.Random.Seed), observer)
	app := &cli.App{
		Registry:    service.NewRegistryService(registries, cfg.Session.ParticipantPrefix, observer),
		Rows:        service.NewScenarioService(scenarios, registries, observer),
		Plans:       planner,
		Export:      service.NewExportService(planner, registries, cfg.Export, observer),
		Palette:     cfg.Export.Palette,
		HistoryPath: cli.DefaultHistoryPath(),
	}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// configPath finds --config ahead of cobra, since the session must be seeded
// before the command tree runs. ROSTER_CONFIG is the fallback.
func configPath(args []string) string {
	flags := pflag.NewFlagSet("roster", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	path := flags.String("config", "", "")
	_ = flags.Parse(args)
	if *path != "" {
		return *path
	}
	return os.Getenv("ROSTER_CONFIG")
}
