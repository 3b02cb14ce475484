// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// catalogCommand handles catalog operations against the metadata backend
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"cat"},
		Usage:   "Catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "Fetch the catalog document from the backend",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.CatalogFetch,
			},
			{
				Name:   "show",
				Usage:  "List catalog songs with tempo metadata",
				Action: r.CatalogShow,
			},
			{
				Name:  "recommend",
				Usage: "Rank catalog songs by tempo closeness to a song",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "file_path",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"k"},
						Usage:   "Number of recommendations (clamped to 1-10)",
						Value:   5,
					},
				},
				Action: r.CatalogRecommend,
			},
			{
				Name:  "upload",
				Usage: "Upload a replacement catalog .json to the backend",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Action: r.CatalogUpload,
			},
		},
	}
}

// serveCommand runs the metadata backend
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the metadata backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for interactive set building.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive session",
		Action:  r.TUI,
	}
}
