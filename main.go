package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/og-preview/internal/inspect"
	"github.com/dtnitsch/og-preview/internal/serve"
	"github.com/dtnitsch/og-preview/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "og-preview",
		Usage: "inspect Open Graph and Twitter Card tags the way crawlers see them",
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "Inspect a page and report its social preview tags",
				ArgsUsage: "URL",
				Flags:     inspect.Flags(),
				Action:    inspect.InspectAction,
			},
			{
				Name:   "serve",
				Usage:  "Run a local web UI for inspecting pages",
				Flags:  serve.Flags(),
				Action: serve.ServeAction,
			},
			{
				Name:  "quickstart",
				Usage: "Print usage examples as YAML",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(inspect.ExitFailure)
	}
}
