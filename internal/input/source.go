// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tfctl/fieldmask/internal/cacheutil"
	"github.com/tfctl/fieldmask/internal/log"
)

// Stdin is the location that reads from the provided stdin reader.
const Stdin = "-"

// Reader fetches raw document bytes from a location.
type Reader struct {
	// Stdin backs the "-" location.
	Stdin io.Reader
	// S3 serves s3:// locations. A nil value is built on first use from the
	// default AWS config chain.
	S3 ObjectAPI
	// Cache holds S3 objects keyed by location and ETag. Nil disables it.
	Cache *cacheutil.Cache
	// AWS options applied when S3 must be built.
	AWSOptions []Option
}

// Read returns the bytes at location: "-" or "" for stdin, s3://bucket/key
// for S3, anything else is a local path.
func (r *Reader) Read(ctx context.Context, location string) ([]byte, error) {
	switch {
	case location == "" || location == Stdin:
		if r.Stdin == nil {
			return nil, fmt.Errorf("no stdin available")
		}
		b, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		log.Debugf("stdin read: bytes=%d", len(b))
		return b, nil

	case strings.HasPrefix(location, s3Scheme):
		bucket, key, err := ParseS3URI(location)
		if err != nil {
			return nil, err
		}
		if r.S3 == nil {
			cfg, err := LoadAWSConfig(ctx, r.AWSOptions...)
			if err != nil {
				return nil, fmt.Errorf("failed to load AWS config: %w", err)
			}
			r.S3 = NewS3(cfg)
		}
		return fetchS3(ctx, r.S3, r.Cache, bucket, key)

	default:
		b, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", location, err)
		}
		log.Debugf("file read: path=%s, bytes=%d", location, len(b))
		return b, nil
	}
}
