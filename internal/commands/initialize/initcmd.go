// Package initialize implements the "vbump init" command, which writes a
// .vbump.yaml configuration file seeded from discovered version sources.
package initialize

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lcrosetto/vbump/internal/config"
	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/discovery"
	"github.com/lcrosetto/vbump/internal/printer"
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a .vbump.yaml configuration file from discovered sources",
		UsageText: "vbump init [--force]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	if _, err := os.Stat(config.DefaultConfigFile); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.DefaultConfigFile)
	}

	cfg, err := buildConfig(ctx)
	if err != nil {
		return err
	}

	if err := config.SaveConfigFn(cfg); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s with %d source(s)", config.DefaultConfigFile, len(cfg.Sources)))
	for _, s := range cfg.Sources {
		printer.PrintFaint(fmt.Sprintf("  - %s", s.Path))
	}
	return nil
}

// buildConfig scans the working directory for version sources and falls back
// to the default configuration when nothing is found.
func buildConfig(ctx context.Context) (*config.Config, error) {
	svc := discovery.NewService(core.NewOSFileSystem())
	candidates, err := svc.Discover(ctx, ".")
	if err != nil {
		return nil, fmt.Errorf("source discovery failed: %w", err)
	}

	if len(candidates) == 0 {
		return config.Default(), nil
	}

	cfg := &config.Config{Sources: make([]config.SourceConfig, len(candidates))}
	for i, c := range candidates {
		cfg.Sources[i] = config.SourceConfig{
			Path:   c.Path,
			Format: c.Format.String(),
			Field:  c.Field,
		}
	}
	return cfg, nil
}
