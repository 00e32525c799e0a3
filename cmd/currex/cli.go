package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/greenrows/currex/internal/config"
	"github.com/greenrows/currex/internal/db"
	"github.com/greenrows/currex/internal/ops"
)

// newCLIApp creates the CLI application. Running with no arguments performs
// the export unconditionally; `export` and `stats` are the named commands.
func newCLIApp(cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "currex",
		Usage:   "Export curriculum content to search-ready JSON chunks",
		Version: Version,
		Action: func(c *cli.Context) error {
			return runExport(c, cfg)
		},
		Commands: []*cli.Command{
			exportCmd(cfg),
			statsCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// exportCmd creates the export command. Same action as the bare invocation.
func exportCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all curriculum activities to the output file",
		Action: func(c *cli.Context) error {
			return runExport(c, cfg)
		},
	}
}

// statsCmd creates the stats command.
func statsCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print per-module source statistics without exporting",
		Action: func(c *cli.Context) error {
			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()

			out, err := ops.Stats(c.Context, database, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "Source: %s\n", cfg.DBPath)
			for _, m := range out.Modules {
				fmt.Fprintf(c.App.Writer, "  %s: %d days, %d activities, %d homework assignments\n",
					m.Module, m.Days, m.Activities, m.Assignments)
			}
			fmt.Fprintf(c.App.Writer, "Activities excluded by missing day/module: %d\n", out.ExcludedActivities)
			return nil
		},
	}
}

// runExport performs the export and prints the completion summary.
func runExport(c *cli.Context, cfg *config.Config) error {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	out, err := ops.Export(c.Context, database, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Exported %d curriculum activities to %s\n", out.Count, out.Path)
	fmt.Fprintf(c.App.Writer, "\nBreakdown:\n")
	for _, m := range cfg.Modules {
		fmt.Fprintf(c.App.Writer, "  %s: %d activities\n", m, out.PerModule[m])
	}
	return nil
}
