// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Stats summarizes one run of a mask.
type Stats struct {
	InBytes  int
	OutBytes int
	// Documents read and kept. Only set for line-delimited input.
	InDocs  int
	OutDocs int
}

// Write renders s as a single line, e.g.
// "in 4.5 kB, out 1.2 kB (26.7%), kept 9 of 10 documents".
func (s Stats) Write(w io.Writer) error {
	ratio := 0.0
	if s.InBytes > 0 {
		ratio = float64(s.OutBytes) / float64(s.InBytes) * 100 //nolint:mnd
	}

	line := fmt.Sprintf("in %s, out %s (%s%%)",
		humanize.Bytes(uint64(s.InBytes)),
		humanize.Bytes(uint64(s.OutBytes)),
		humanize.FormatFloat("#.#", ratio))

	if s.InDocs > 0 {
		line += fmt.Sprintf(", kept %s of %s documents",
			humanize.Comma(int64(s.OutDocs)),
			humanize.Comma(int64(s.InDocs)))
	}

	_, err := fmt.Fprintln(w, line)
	return err
}
