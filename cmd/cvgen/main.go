// Command cvgen converts a LaTeX résumé into the TypeScript data module
// consumed by the portfolio site.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// CLI holds the global flags and the subcommands. Flags override values from
// the configuration file and the environment.
type CLI struct {
	Config       string   `short:"c" help:"Configuration file path." default:"cvgen.yaml" type:"path"`
	EnvFile      []string `name:"env-file" help:"Dotenv files to load before reading CVGEN_* variables." default:".env"`
	DataDir      string   `short:"d" name:"data-dir" help:"Directory holding cv.txt or *_cv.txt."`
	Output       string   `short:"o" help:"Output file (default <data-dir>/cv.ts)."`
	Renderer     string   `short:"r" help:"Output format: typescript or json."`
	Augmentation string   `short:"a" help:"Augmentation YAML overriding the built-in site content."`
	Sanitize     bool     `help:"Strip HTML-like markup from extracted text."`
	Interactive  bool     `short:"i" help:"Ask which document to use when several are found."`
	Verbose      bool     `short:"v" help:"Enable debug logging."`
	LogFormat    string   `name:"log-format" help:"Log format: pretty or json."`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate the data module (default command)."`
	Extract  ExtractCmd  `cmd:"" help:"Print the parsed record as JSON."`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever the résumé document changes."`
	Init     InitCmd     `cmd:"" help:"Write a starter configuration and augmentation file."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("cvgen"),
		kong.Description("Turn a LaTeX résumé into a TypeScript data module."),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	parser, err := newParser(&cli, kong.BindTo(ctx, (*context.Context)(nil)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	app, err := newApp(&cli, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cvgen: %v\n", err)
		os.Exit(1)
	}

	if err := kctx.Run(app); err != nil {
		app.logger.Error().Err(err).Msg("cvgen failed")
		cancel()
		os.Exit(1)
	}
}
