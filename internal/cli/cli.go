// Package cli builds the root vbump command.
package cli

import (
	"context"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/lcrosetto/vbump/internal/commands/bump"
	"github.com/lcrosetto/vbump/internal/commands/check"
	"github.com/lcrosetto/vbump/internal/commands/initialize"
	"github.com/lcrosetto/vbump/internal/commands/set"
	"github.com/lcrosetto/vbump/internal/commands/show"
	"github.com/lcrosetto/vbump/internal/config"
	"github.com/lcrosetto/vbump/internal/printer"
)

// appVersion is the version of the vbump binary itself.
const appVersion = "0.1.0"

var noColorFlag bool

// New builds and returns the root CLI command, configuring all subcommands
// and flags for the vbump cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "vbump",
		Version:               "v" + appVersion,
		Usage:                 "Reconcile and bump version strings embedded in project files",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(),
			show.Run(cfg),
			check.Run(cfg),
			bump.Run(cfg),
			set.Run(cfg),
		},
	}
}
