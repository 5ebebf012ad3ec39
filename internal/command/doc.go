// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the fieldmask subcommands (apply, parse, check) and
// their flags into a urfave/cli application.
package command
