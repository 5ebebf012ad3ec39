// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/meta"
)

// CommandBuilder constructs a cli.Command for the fieldmask subcommands using a
// consistent pattern. It wires metadata, appends the shared flags and sets up
// the flag combination validator.
type CommandBuilder struct {
	Name      string
	Aliases   []string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      cb.Name,
		Aliases:   cb.Aliases,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: cb.Flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: cb.Action,
	}
}
