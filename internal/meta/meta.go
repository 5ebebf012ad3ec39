// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"
	"os"

	"github.com/tfctl/fieldmask/internal/config"
)

// Streams are the standard streams commands read and write. Tests swap them
// for buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context and the streams to use.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Streams
}
