package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/benjaminschreck/docxjson/pkg/docxjson"
)

// Version information (set during build)
var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "docxjson: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "docxjson",
		Usage: "Extract text and formatting from .docx files into JSON",
		Description: "Run in a directory to convert every .docx file found there. Each document\n" +
			"is written next to its source with the extension replaced (report.docx -> report.json).\n" +
			"A document that cannot be read is reported and skipped.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a config file (yaml, json or toml)",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Directory to scan for documents",
			},
			&cli.StringFlag{
				Name:  "ext",
				Usage: "File extension of input documents (matched case-insensitively)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: json or yaml",
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "Spaces per indentation level in the output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error or off",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured progress output",
			},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Show version information",
				Action: func(c *cli.Context) error {
					fmt.Fprintf(c.App.Writer, "docxjson version %s (%s)\n", Version, Commit)
					return nil
				},
			},
		},
	}
}

func run(c *cli.Context) error {
	cfg, err := docxjson.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	zerolog.TimeFieldFormat = time.RFC3339
	docxjson.SetLogger(docxjson.NewLogger(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
		cfg.LogLevel,
	))

	colored := !cfg.NoColor && !color.NoColor
	reporter := docxjson.NewReporter(c.App.Writer, colored)

	batch, err := docxjson.NewBatch(cfg, reporter)
	if err != nil {
		return err
	}
	summary, err := batch.Run()
	if err != nil {
		return err
	}
	if summary.Found > 0 {
		reporter.Summary(summary)
	}
	// Per-document failures are reported above and do not change the exit status
	return nil
}

// applyFlags overrides configuration values with flags given on the command line
func applyFlags(c *cli.Context, cfg *docxjson.Config) {
	if c.IsSet("dir") {
		cfg.Dir = c.String("dir")
	}
	if c.IsSet("ext") {
		cfg.Extension = c.String("ext")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("indent") {
		cfg.Indent = c.Int("indent")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("no-color") {
		cfg.NoColor = c.Bool("no-color")
	}
}
