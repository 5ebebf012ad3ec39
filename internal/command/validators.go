// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/input"
	"github.com/tfctl/fieldmask/internal/output"
)

// FlagValidatorType checks a single flag value.
type FlagValidatorType func(any) error

// FlagValidators runs each validator against value and returns the first
// failure.
func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// OneOf returns a validator accepting only the listed values.
func OneOf(valid ...string) FlagValidatorType {
	return func(value any) error {
		s, ok := value.(string)
		if !ok || !slices.Contains(valid, s) {
			return fmt.Errorf("must be one of %v", valid)
		}
		return nil
	}
}

var (
	// ColorValidator accepts the --color modes.
	ColorValidator = OneOf(output.ColorAuto, output.ColorAlways, output.ColorNever)

	// InputFormatValidator accepts the --input-format values.
	InputFormatValidator = OneOf(input.Formats...)
)

// GlobalFlagsValidator checks flag combinations that single flag validators
// cannot see.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Bool("lines") && c.String("input-format") == input.FormatYAML {
		return fmt.Errorf("--lines requires JSON input")
	}
	if c.Bool("lines") && c.Bool("diff") {
		return fmt.Errorf("--lines and --diff cannot be combined")
	}
	return nil
}
