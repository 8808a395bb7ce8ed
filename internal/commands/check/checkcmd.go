// Package check implements the "vbump check" command: a reconciliation
// report over the configured sources.
package check

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lcrosetto/vbump/internal/config"
	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/operations"
	"github.com/lcrosetto/vbump/internal/printer"
)

// Run returns the "check" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report whether all source versions agree",
		UsageText: "vbump check",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCheckCmd(ctx, cfg)
		},
	}
}

func runCheckCmd(ctx context.Context, cfg *config.Config) error {
	svc := operations.NewService(core.NewOSFileSystem(), cfg.FileConfigs())

	entries, err := svc.ReadAll(ctx)
	if err != nil {
		return err
	}

	if !operations.Divergent(entries) {
		printer.PrintSuccess("All versions are the same")
		return nil
	}

	printer.PrintWarning("Versions are different:")
	for _, e := range entries {
		fmt.Printf("  %s: %s\n", e.Config.Path, e.Version)
	}
	return fmt.Errorf("version mismatch across %d source(s)", len(entries))
}
