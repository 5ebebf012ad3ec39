// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/cacheutil"
	"github.com/tfctl/fieldmask/internal/input"
	"github.com/tfctl/fieldmask/internal/log"
	"github.com/tfctl/fieldmask/internal/meta"
	"github.com/tfctl/fieldmask/internal/output"
	"github.com/tfctl/fieldmask/mask"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// BuildMask compiles --filter and --require.
func BuildMask(cmd *cli.Command) *mask.Mask {
	return mask.Compile(cmd.String("filter"), cmd.String("require"))
}

// location returns the input named by the first positional argument, or stdin.
func location(cmd *cli.Command) string {
	if loc := cmd.Args().First(); loc != "" {
		return loc
	}
	return input.Stdin
}

// readInput reads the raw bytes named by the command's positional argument.
func readInput(ctx context.Context, cmd *cli.Command, m meta.Meta) ([]byte, error) {
	var opts []input.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, input.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, input.WithRegion(r))
	}

	reader := input.Reader{
		Stdin:      m.In,
		Cache:      cacheutil.New(),
		AWSOptions: opts,
	}

	return reader.Read(ctx, location(cmd))
}

// readDocuments reads and decodes the input as one document, or as one per
// line when --lines is set.
func readDocuments(ctx context.Context, cmd *cli.Command, m meta.Meta) (docs []any, size int, err error) {
	data, err := readInput(ctx, cmd, m)
	if err != nil {
		return nil, 0, err
	}

	root := cmd.String("root")
	if cmd.Bool("lines") {
		docs, err = input.Lines(data, root)
		return docs, len(data), err
	}

	doc, err := input.Decode(data, cmd.String("input-format"), root)
	if err != nil {
		return nil, 0, err
	}
	return []any{doc}, len(data), nil
}

// outputOptions resolves --output, --pretty and --color against w.
func outputOptions(cmd *cli.Command, m meta.Meta) output.Options {
	opts := output.Options{
		Format: cmd.String("output"),
		Pretty: cmd.Bool("pretty"),
		Color:  output.ColorEnabled(cmd.String("color"), m.Out),
	}
	log.Debugf("output options: format=%s, pretty=%t, color=%t", opts.Format, opts.Pretty, opts.Color)
	return opts
}
