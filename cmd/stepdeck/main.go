package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jask/stepdeck/internal/config"
	"github.com/jask/stepdeck/internal/logging"
	"github.com/jask/stepdeck/internal/present"
	"github.com/jask/stepdeck/internal/state"
)

const appName = "stepdeck"

// initializeAppContext loads configuration and prepares the log after the
// command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		return ctx, nil
	}
	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	env.Cfg = &cfg

	if env.Log, err = logging.Prepare(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File, Debug: cmd.Bool("debug")}); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if configFile == "" {
		env.Log.Info("Using configuration", zap.String("file", config.Path()))
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	if er := env.Close(); er != nil {
		err = multierr.Append(err, er)
	}
	return
}

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Cfg != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "presents markdown decks in the terminal one step at a time",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (TOML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log at debug level"},
		},
		Commands: []*cli.Command{
			{
				Name:         "present",
				Usage:        "Presents a deck",
				OnUsageError: usageErrorHandler,
				Action:       present.Run,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "resume", Aliases: []string{"r"}, Usage: "open at the slide shown when the deck was last closed"},
					&cli.IntFlag{Name: "slide", Aliases: []string{"s"}, Usage: "open at slide `N` (1-based)"},
				},
				ArgsUsage: "NAME|FILE",
			},
			{
				Name:         "outline",
				Usage:        "Lists slide titles and step counts",
				OnUsageError: usageErrorHandler,
				Action:       present.Outline,
				ArgsUsage:    "NAME|FILE",
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps actual configuration (TOML)",
				OnUsageError: usageErrorHandler,
				Action:       present.DumpConfig,
				ArgsUsage:    "DESTINATION",
			},
		},
	}

	var err error
	// os.Exit runs last, no other deferred functions may follow it
	defer func() {
		stop()
		if err != nil {
			// logs go to a file, errors still reach the terminal
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
