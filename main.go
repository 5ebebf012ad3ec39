// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/fieldmask/internal/cacheutil"
	"github.com/tfctl/fieldmask/internal/command"
	"github.com/tfctl/fieldmask/internal/config"
	"github.com/tfctl/fieldmask/internal/log"
	"github.com/tfctl/fieldmask/internal/meta"
	"github.com/tfctl/fieldmask/internal/version"
	"github.com/tfctl/fieldmask/mask"
)

// Exit codes.
const (
	exitOK       = 0
	exitInit     = 1
	exitRun      = 2
	exitNotFound = 3
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, meta.StdStreams()))
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, streams meta.Streams) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(streams.Out, version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// expandPreset replaces the first @name argument after the subcommand with
// the --filter and --require flags of the named preset. Later flags on the
// command line still override the preset.
func expandPreset(args []string) ([]string, error) {
	for i := 2; i < len(args); i++ {
		if !strings.HasPrefix(args[i], "@") || len(args[i]) == 1 {
			continue
		}

		preset, err := config.GetPreset(args[i][1:])
		if err != nil {
			return nil, err
		}

		var flags []string
		if preset.Filter != "" {
			flags = append(flags, "--filter", preset.Filter)
		}
		if preset.Require != "" {
			flags = append(flags, "--require", preset.Require)
		}

		expanded := append([]string{}, args[:i]...)
		expanded = append(expanded, flags...)
		return append(expanded, args[i+1:]...), nil
	}
	return args, nil
}

// deduplicateFlags keeps only the last occurrence of each flag, treating a
// short alias and its long name as one flag, so presets can be overridden. A flag is assumed to take the following
// argument as its value unless that argument is itself a flag or the flag
// uses --name=value.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type occurrence struct {
		name  string
		start int
		end   int
	}

	var occs []occurrence
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") || a == "-" {
			continue
		}
		name, _, hasValue := strings.Cut(a, "=")
		name = canonicalFlag(name)
		end := i + 1
		if !hasValue && end < len(args) && !strings.HasPrefix(args[end], "-") && isValueFlag(name) {
			end++
		}
		occs = append(occs, occurrence{name: name, start: i, end: end})
		i = end - 1
	}

	last := map[string]int{}
	for i, o := range occs {
		last[o.name] = i
	}

	drop := map[int]bool{}
	for i, o := range occs {
		if last[o.name] != i {
			for j := o.start; j < o.end; j++ {
				drop[j] = true
			}
		}
	}

	result := make([]string, 0, len(args))
	for i, a := range args {
		if !drop[i] {
			result = append(result, a)
		}
	}
	return result
}

// flagAliases maps short flags to their long names.
var flagAliases = map[string]string{
	"f": "filter",
	"r": "require",
	"o": "output",
	"p": "pretty",
}

// canonicalFlag returns the long name of a flag without dashes.
func canonicalFlag(flag string) string {
	name := strings.TrimLeft(flag, "-")
	if long, ok := flagAliases[name]; ok {
		return long
	}
	return name
}

// isValueFlag reports whether the flag consumes the next argument.
func isValueFlag(name string) bool {
	switch name {
	case "filter", "require", "output", "root", "input-format", "color", "profile", "region":
		return true
	}
	return false
}

// purgeCache drops cached remote inputs older than cache.hours.
func purgeCache() {
	hours, _ := config.GetInt("cache.hours", 0)
	if err := cacheutil.New().Purge(hours); err != nil {
		log.WithError(err).Warnf("cache purge failed")
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, streams meta.Streams) int {
	app, err := command.InitApp(ctx, args, streams)
	if err != nil {
		fmt.Fprintln(streams.Err, err)
		log.Debugf("app init err: err=%v", err)
		return exitInit
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(streams.Err, err)
		log.Debugf("app run err: err=%v", err)
		if errors.Is(err, mask.ErrNotFound) {
			return exitNotFound
		}
		return exitRun
	}

	return exitOK
}

func realMain(args []string, streams meta.Streams) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, streams) {
		return exitOK
	}

	args = handleNakedCommand(args)

	args, err := expandPreset(args)
	if err != nil {
		fmt.Fprintln(streams.Err, err)
		return exitInit
	}
	args = deduplicateFlags(args)
	log.Debugf("args after preset processing: args=%v", args)

	purgeCache()

	return initAndRunApp(args, streams)
}
