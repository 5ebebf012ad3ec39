// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/log"
	"github.com/tfctl/fieldmask/internal/meta"
	"github.com/tfctl/fieldmask/internal/output"
	"github.com/tfctl/fieldmask/mask"
)

func applyCommandBuilder(m meta.Meta, cfgFile string) *cli.Command {
	const ns = "apply"

	flags := []cli.Flag{
		NewFilterFlag(ns, cfgFile),
		NewRequireFlag(ns, cfgFile),
		&cli.BoolFlag{
			Name:  "diff",
			Usage: "show what the mask removed instead of the result",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "write input and output sizes to stderr",
		},
	}
	flags = append(flags, NewInputFlags(ns, cfgFile)...)
	flags = append(flags, NewOutputFlags(ns, cfgFile, output.FormatJSON, output.FormatYAML, output.FormatRaw)...)

	return (&CommandBuilder{
		Name:      ns,
		Aliases:   []string{"a"},
		Usage:     "keep only the selected fields of a document",
		UsageText: "fieldmask apply [input] --filter 'a,b(c,d)' [--require 'id']",
		Flags:     flags,
		Action:    applyCommandAction,
		Meta:      m,
	}).Build()
}

func applyCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	mk := BuildMask(cmd)

	docs, inBytes, err := readDocuments(ctx, cmd, m)
	if err != nil {
		return err
	}

	var results []any
	for i, doc := range docs {
		result, ok := mk.Apply(doc)
		if !ok {
			log.Debugf("document %d failed required fields", i)
			continue
		}
		results = append(results, result)
	}

	lines := cmd.Bool("lines")
	if !lines && len(results) == 0 {
		return fmt.Errorf("%w: %s", mask.ErrNotFound, cmd.String("require"))
	}

	opts := outputOptions(cmd, m)

	if cmd.Bool("diff") {
		return output.Diff(m.Out, docs[0], results[0], opts.Color)
	}

	// Line mode keeps one compact JSON document per line.
	if lines && opts.Format != output.FormatYAML {
		opts.Pretty = false
	}

	var buf bytes.Buffer
	for i, result := range results {
		if lines && opts.Format == output.FormatYAML && i > 0 {
			buf.WriteString("---\n")
		}
		if err := output.Encode(&buf, result, opts); err != nil {
			return err
		}
	}

	if _, err := m.Out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cmd.Bool("stats") {
		stats := output.Stats{InBytes: inBytes, OutBytes: buf.Len()}
		if lines {
			stats.InDocs = len(docs)
			stats.OutDocs = len(results)
		}
		return stats.Write(m.Err)
	}

	return nil
}
