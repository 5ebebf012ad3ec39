// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/config"
	"github.com/tfctl/fieldmask/internal/log"
	"github.com/tfctl/fieldmask/internal/meta"
	"github.com/tfctl/fieldmask/internal/version"
)

// InitApp builds the fieldmask application for args, writing through streams.
func InitApp(ctx context.Context, args []string, streams meta.Streams) (*cli.Command, error) {
	// The arg[1] immediately following the binary is the subcommand and also
	// the namespace used for config lookups. It could be -h/--help, so ignore
	// it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is not an error.
	cfg, err := config.Load(ns)
	if err != nil {
		log.Debugf("config not loaded: err=%v", err)
	}
	cfgFile := cfg.Source

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Streams: streams,
	}

	app := &cli.Command{
		Name:      version.Name,
		Usage:     "select fields from JSON and YAML documents",
		Version:   version.Version,
		Reader:    streams.In,
		Writer:    streams.Out,
		ErrWriter: streams.Err,
		// --version is handled before the app runs.
		HideVersion: true,
		Commands: []*cli.Command{
			applyCommandBuilder(m, cfgFile),
			parseCommandBuilder(m, cfgFile),
			checkCommandBuilder(m, cfgFile),
			completionCommandBuilder(m),
		},
	}

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
