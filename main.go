package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/dtnitsch/html-link-parser/internal/history"
	"github.com/dtnitsch/html-link-parser/internal/scan"
	"github.com/dtnitsch/html-link-parser/pkg/help"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.RunContext(ctx, scan.NormalizeArgs(args))
	scan.PrintError(stderr, err)
	return scan.ExitCode(err)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                      help.ProgramName,
		Usage:                     "Extracts links from an HTML page",
		Writer:                    stdout,
		ErrWriter:                 stderr,
		HideHelp:                  true,
		HideHelpCommand:           true,
		DisableSliceFlagSeparator: true,
		Flags:                     scan.Flags(),
		Action:                    scan.ScanAction,
		OnUsageError:              scan.OnUsageError,
		// errors are mapped to exit codes by run
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:         "history",
				Usage:        "List recorded scans",
				OnUsageError: scan.OnUsageError,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", EnvVars: []string{"HTMLPARSE_DB"}, Usage: "Scan history database path"},
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "Number of scans to list (0 for all)"},
				},
				Action: history.ListAction,
				Subcommands: []*cli.Command{
					{
						Name:         "show",
						Usage:        "Print the links of a recorded scan",
						ArgsUsage:    "ID",
						OnUsageError: scan.OnUsageError,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", EnvVars: []string{"HTMLPARSE_DB"}, Usage: "Scan history database path"},
							&cli.StringFlag{Name: "format", Value: "text", Usage: "Output format: text, yaml or json"},
						},
						Action: history.ShowAction,
					},
				},
			},
		},
	}
}
