// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/meta"
	"github.com/tfctl/fieldmask/mask"
)

func checkCommandBuilder(m meta.Meta, cfgFile string) *cli.Command {
	const ns = "check"

	flags := []cli.Flag{
		NewRequireFlag(ns, cfgFile),
	}
	flags = append(flags, NewInputFlags(ns, cfgFile)...)

	return (&CommandBuilder{
		Name:      ns,
		Aliases:   []string{"c"},
		Usage:     "test whether a document has the required fields",
		UsageText: "fieldmask check [input] --require 'id,meta/owner'",
		Flags:     flags,
		Action:    checkCommandAction,
		Meta:      m,
	}).Build()
}

// checkCommandAction prints one verdict per document. Any failure makes the
// command fail with mask.ErrNotFound.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	required := mask.Parse(cmd.String("require"))

	docs, _, err := readDocuments(ctx, cmd, m)
	if err != nil {
		return err
	}

	failed := 0
	for _, doc := range docs {
		verdict := "satisfied"
		if !mask.Satisfied(required, doc) {
			verdict = "not satisfied"
			failed++
		}
		if _, err := fmt.Fprintln(m.Out, verdict); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d documents", mask.ErrNotFound, failed, len(docs))
	}
	return nil
}
