package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin"
	"go.uber.org/zap"

	"github.com/telia-oss/ghtoken"
	"github.com/telia-oss/ghtoken/config"
	"github.com/telia-oss/ghtoken/internal/cli"
)

var version string

func main() {
	var (
		app        = kingpin.New("ghtoken", "Issue and revoke Github App installation tokens.").Version(version).UsageWriter(os.Stdout).ErrorWriter(os.Stdout).DefaultEnvars()
		configPath = app.Flag("config", "Path to the config file describing the tokens").ExistingFile()
		statePath  = app.Flag("state", "Path to use for storing state in a file backend").Default("state.json").String()
		globals    = cli.AddGlobalFlags(app)
	)
	cli.AddTokenCommands(app, globals, os.Stdout, nil, nil)
	cli.AddRunCommand(app, "apply", "Issue the tokens in the config and revoke tokens that are replaced or removed.", globals, applyFunc(configPath, statePath), nil, nil, nil)
	cli.AddRunCommand(app, "cleanup", "Revoke and delete every token tracked in state.", globals, cleanupFunc(statePath), nil, nil, nil)

	validate := app.Command("validate", "Validate a ghtoken config.")
	validate.Action(func(_ *kingpin.ParseContext) error {
		cfg, err := readConfig(*configPath)
		if err != nil {
			app.Fatalf("%s", err)
		}
		if err := cfg.Validate(); err != nil {
			app.Fatalf("validate: %s", err)
		}
		return nil
	})

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func readConfig(path string) (*ghtoken.Config, error) {
	if path == "" {
		return nil, fmt.Errorf("%q must be defined", "config")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %s", err)
	}
	cfg, err := config.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %s", err)
	}
	return cfg, nil
}

func applyFunc(configPath, statePath *string) func(*ghtoken.Manager, ghtoken.StateBackend, cli.RunConfig) error {
	return func(m *ghtoken.Manager, backend ghtoken.StateBackend, runConfig cli.RunConfig) error {
		ctx := cli.NewContext(context.Background(), runConfig.Logger)

		cfg, err := readConfig(*configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("failed to validate config: %s", err)
		}
		state, err := backend.Load(ctx, *statePath)
		if err != nil {
			return fmt.Errorf("failed to load state: %s", err)
		}
		defer func() {
			if err := backend.Save(ctx, *statePath, state); err != nil {
				runConfig.Logger.Error("failed to save state", zap.String("path", *statePath), zap.Error(err))
			}
		}()
		return m.Apply(ctx, cfg, state)
	}
}

func cleanupFunc(statePath *string) func(*ghtoken.Manager, ghtoken.StateBackend, cli.RunConfig) error {
	return func(m *ghtoken.Manager, backend ghtoken.StateBackend, runConfig cli.RunConfig) error {
		ctx := cli.NewContext(context.Background(), runConfig.Logger)

		state, err := backend.Load(ctx, *statePath)
		if err != nil {
			return fmt.Errorf("failed to load state: %s", err)
		}
		if err := m.Cleanup(ctx, state); err != nil {
			return err
		}
		if err := backend.Save(ctx, *statePath, state); err != nil {
			return fmt.Errorf("failed to save state: %s", err)
		}
		return nil
	}
}
