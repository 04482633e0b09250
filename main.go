package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/domlens/domlens/internal/analyze"
	"github.com/domlens/domlens/internal/history"
)

func main() {
	app := &cli.App{
		Name:  "domlens",
		Usage: "inspect how machine-readable a web page's DOM is",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "fetch a URL repeatedly and report structural and semantic findings",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "URL to analyze"},
					&cli.IntFlag{Name: "fetches", Value: 3, Usage: "number of repeated fetches for determinism detection"},
					&cli.StringFlag{Name: "timeout", Value: "15s", Usage: "per-request timeout"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
					&cli.StringFlag{Name: "config", Value: "domlens.yaml", Usage: "path to YAML config file"},
					&cli.BoolFlag{Name: "no-save", Usage: "skip writing the result to history"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
			{
				Name:  "history",
				Usage: "inspect past analyses",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list recent analyses",
						Action: history.ListAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum analyses to show"},
							&cli.StringFlag{Name: "db", Usage: "path to history database"},
						},
					},
					{
						Name:      "show",
						Usage:     "show one analysis in detail",
						ArgsUsage: "[analysis-id]",
						Action:    history.ShowAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "path to history database"},
						},
					},
					{
						Name:      "delete",
						Usage:     "delete one analysis",
						ArgsUsage: "<analysis-id>",
						Action:    history.DeleteAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "path to history database"},
						},
					},
				},
			},
			{
				Name:   "export",
				Usage:  "export analyses as CSV or JSON",
				Action: history.ExportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "json", Usage: "export format: csv or json"},
					&cli.StringFlag{Name: "out", Usage: "output file (defaults to stdout)"},
					&cli.Int64Flag{Name: "id", Usage: "export a single analysis by ID"},
					&cli.IntFlag{Name: "limit", Value: 100, Usage: "maximum analyses to export"},
					&cli.StringFlag{Name: "db", Usage: "path to history database"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
