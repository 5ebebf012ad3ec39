// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/meta"
	"github.com/tfctl/fieldmask/internal/output"
	"github.com/tfctl/fieldmask/mask"
)

func parseCommandBuilder(m meta.Meta, cfgFile string) *cli.Command {
	const ns = "parse"

	flags := []cli.Flag{
		NewFilterFlag(ns, cfgFile),
		&cli.BoolFlag{
			Name:  "titles",
			Usage: "show column titles in text output",
		},
	}
	flags = append(flags, NewOutputFlags(ns, cfgFile, output.FormatText, output.FormatJSON, output.FormatYAML, output.FormatRaw)...)

	return (&CommandBuilder{
		Name:      ns,
		Aliases:   []string{"p"},
		Usage:     "show how a filter string is understood",
		UsageText: "fieldmask parse 'a,b(c,d)'",
		Flags:     flags,
		Action:    parseCommandAction,
		Meta:      m,
	}).Build()
}

func parseCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	filter := cmd.Args().First()
	if filter == "" {
		filter = cmd.String("filter")
	}
	spec := mask.Parse(filter)

	opts := outputOptions(cmd, m)
	switch opts.Format {
	case output.FormatText:
		output.SpecTable(m.Out, spec, cmd.Bool("titles"), opts.Color)
		return nil
	case output.FormatRaw:
		_, err := fmt.Fprintln(m.Out, spec.String())
		return err
	default:
		return output.Encode(m.Out, output.SpecTree(spec), opts)
	}
}
