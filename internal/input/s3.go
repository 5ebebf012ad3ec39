// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/fieldmask/internal/cacheutil"
	"github.com/tfctl/fieldmask/internal/log"
)

const s3Scheme = "s3://"

// ObjectAPI is the subset of the S3 client used to fetch documents.
type ObjectAPI interface {
	HeadObject(ctx context.Context, params *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
}

// Option customizes how AWS config is loaded. With no options the shell's
// AWS setup is inherited (AWS_PROFILE, shared config, env, IMDS).
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// LoadAWSConfig loads AWS SDK v2 config with the given overrides.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	log.Debugf("aws config: profile=%s, region=%s", o.profile, o.region)

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// NewS3 constructs an S3 client from cfg.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

// ParseS3URI splits s3://bucket/key into its parts.
func ParseS3URI(uri string) (bucket string, key string, err error) {
	rest, ok := strings.CutPrefix(uri, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %s", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri needs a bucket and a key: %s", uri)
	}
	return bucket, key, nil
}

// fetchS3 returns the object body, serving it from cache when the object's
// ETag has been seen before.
func fetchS3(ctx context.Context, api ObjectAPI, cache *cacheutil.Cache, bucket string, key string) ([]byte, error) {
	head, err := api.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stat s3://%s/%s: %w", bucket, key, err)
	}

	cacheKey := fmt.Sprintf("%s%s/%s@%s", s3Scheme, bucket, key, awsv2.ToString(head.ETag))
	if b, ok := cache.Get(cacheKey); ok {
		return b, nil
	}

	obj, err := api.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer obj.Body.Close()

	b, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	log.Debugf("s3 object read: bucket=%s, key=%s, bytes=%d", bucket, key, len(b))

	if err := cache.Put(cacheKey, b); err != nil {
		log.WithError(err).Warnf("cache write failed for %s", cacheKey)
	}
	return b, nil
}
