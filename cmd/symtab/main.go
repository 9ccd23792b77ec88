package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "symtab",
		Usage:   "run symbol table commands read from a script or stdin",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "path of command script, or - for stdin",
			Value:   "-",
			EnvVars: []string{"SYMTAB_INPUT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "info",
			EnvVars: []string{"SYMTAB_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Action = runInterpreter
	return app.Run(args)
}

func runInterpreter(cctx *cli.Context) error {
	logger := configLogger(cctx, os.Stderr)

	var in io.Reader = os.Stdin
	if path := cctx.String("input"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "opening command script")
		}
		defer f.Close()
		in = f
	}

	return newInterpreter(os.Stdout, logger).Run(in)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
