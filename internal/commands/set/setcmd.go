// Package set implements the "vbump set" command: write an explicit version
// to every configured source.
package set

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lcrosetto/vbump/internal/config"
	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/operations"
	"github.com/lcrosetto/vbump/internal/printer"
	"github.com/lcrosetto/vbump/internal/version"
)

// Run returns the "set" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set an explicit version in every source file",
		UsageText: "vbump set <version>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSetCmd(ctx, cmd, cfg)
		},
	}
}

func runSetCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	arg := cmd.Args().First()
	if arg == "" {
		return fmt.Errorf("version argument is required")
	}

	v, err := version.Parse(arg)
	if err != nil {
		return err
	}

	svc := operations.NewService(core.NewOSFileSystem(), cfg.FileConfigs())
	if missing := svc.MissingSources(ctx); len(missing) > 0 {
		return fmt.Errorf("missing source file(s): %s", strings.Join(missing, ", "))
	}
	if err := svc.SetAll(ctx, v.String()); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Set version to %s in %d source(s)", v.String(), len(cfg.Sources)))
	return nil
}
