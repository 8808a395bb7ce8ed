package main

import (
	"context"
	"os"

	"github.com/lcrosetto/vbump/internal/cli"
	"github.com/lcrosetto/vbump/internal/config"
	"github.com/lcrosetto/vbump/internal/printer"
)

func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	return cli.New(cfg).Run(context.Background(), args)
}

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}
