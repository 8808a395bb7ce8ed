// Package show implements the "vbump show" command: print the version found
// in each configured source and the latest among them.
package show

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lcrosetto/vbump/internal/config"
	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/operations"
	"github.com/lcrosetto/vbump/internal/printer"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the version embedded in each source file",
		UsageText: "vbump show",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cfg)
		},
	}
}

func runShowCmd(ctx context.Context, cfg *config.Config) error {
	svc := operations.NewService(core.NewOSFileSystem(), cfg.FileConfigs())

	entries, err := svc.ReadAll(ctx)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%s: %s\n", e.Config.Path, printer.Bold(e.Version))
	}

	latest, err := operations.Latest(entries)
	if err != nil {
		return err
	}
	printer.PrintInfo(fmt.Sprintf("Latest version: %s", latest))
	return nil
}
