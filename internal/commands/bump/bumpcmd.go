// Package bump implements the "vbump bump" command: reconcile the versions
// found in the configured sources, apply the increment directives to the
// latest one, and write the result back everywhere.
package bump

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lcrosetto/vbump/internal/config"
	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/operations"
	"github.com/lcrosetto/vbump/internal/printer"
	"github.com/lcrosetto/vbump/internal/tui"
	"github.com/lcrosetto/vbump/internal/version"
)

// promptDirectivesFn collects directives interactively. It is a variable so
// tests can substitute canned answers.
var promptDirectivesFn = promptDirectives

// Run returns the "bump" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Reconcile source versions and write back an incremented one",
		UsageText: "vbump bump [--major|--minor|--patch] [--commit]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "major",
				Usage: "Increment the major version (resets minor and patch)",
			},
			&cli.BoolFlag{
				Name:  "minor",
				Usage: "Increment the minor version (resets patch)",
			},
			&cli.BoolFlag{
				Name:  "patch",
				Usage: "Increment the patch version",
			},
			&cli.BoolFlag{
				Name:  "commit",
				Usage: "Increment the build suffix",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBumpCmd(ctx, cmd, cfg)
		},
	}
}

func runBumpCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	d := version.Directives{
		Major:  cmd.Bool("major"),
		Minor:  cmd.Bool("minor"),
		Patch:  cmd.Bool("patch"),
		Commit: cmd.Bool("commit"),
	}

	// Fall back to interactive collection only when no flag was given at
	// all; any explicit flag bypasses the prompts.
	if d.None() && tui.IsInteractive() {
		var err error
		d, err = promptDirectivesFn()
		if err != nil {
			return fmt.Errorf("failed to collect directives: %w", err)
		}
	}

	svc := operations.NewService(core.NewOSFileSystem(), cfg.FileConfigs())

	entries, err := svc.ReadAll(ctx)
	if err != nil {
		return err
	}

	reportReconciliation(entries)

	latest, err := operations.Latest(entries)
	if err != nil {
		return err
	}
	printer.PrintInfo(fmt.Sprintf("Latest version: %s", latest))

	current, err := version.Parse(latest)
	if err != nil {
		return err
	}

	next, err := version.Bump(current, d)
	if err != nil {
		return err
	}

	if err := svc.ReplaceAll(ctx, latest, next.String()); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Updated version from %s to %s", latest, next.String()))
	return nil
}

// reportReconciliation prints whether the extracted versions agree.
func reportReconciliation(entries []operations.SourceVersion) {
	if !operations.Divergent(entries) {
		printer.PrintFaint("All versions are the same")
		return
	}
	printer.PrintWarning("Versions are different:")
	for _, e := range entries {
		fmt.Printf("  %s: %s\n", e.Config.Path, e.Version)
	}
}

// promptDirectives mirrors the four questions of the interactive flow, one
// confirm per directive.
func promptDirectives() (version.Directives, error) {
	var d version.Directives
	prompts := []struct {
		title       string
		description string
		target      *bool
	}{
		{
			title:       "Increment major version?",
			description: "Use when the release is not compatible with the previous version.",
			target:      &d.Major,
		},
		{
			title:       "Increment minor version?",
			description: "Use when you add functionality in a backwards-compatible manner.",
			target:      &d.Minor,
		},
		{
			title:       "Increment patch version?",
			description: "Use when you make backwards-compatible bug fixes.",
			target:      &d.Patch,
		},
		{
			title:       "Increment commit suffix?",
			description: "Use when you commit changes without changing functionality.",
			target:      &d.Commit,
		},
	}

	for _, p := range prompts {
		answer, err := tui.Confirm(p.title, p.description)
		if err != nil {
			return version.Directives{}, err
		}
		*p.target = answer
	}
	return d, nil
}
