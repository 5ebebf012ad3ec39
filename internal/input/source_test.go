// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package input

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/fieldmask/internal/cacheutil"
)

// fakeS3 serves objects from memory and counts GetObject calls.
type fakeS3 struct {
	objects map[string]string
	etag    string
	gets    int
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3v2.HeadObjectInput, _ ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error) {
	if _, ok := f.objects[*in.Bucket+"/"+*in.Key]; !ok {
		return nil, errors.New("NotFound")
	}
	return &s3v2.HeadObjectOutput{ETag: awsv2.String(f.etag)}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.gets++
	body, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{uri: "s3://bucket/key.json", wantBucket: "bucket", wantKey: "key.json"},
		{uri: "s3://bucket/deep/path/doc.yaml", wantBucket: "bucket", wantKey: "deep/path/doc.yaml"},
		{uri: "s3://bucket", wantErr: true},
		{uri: "s3://bucket/", wantErr: true},
		{uri: "s3:///key", wantErr: true},
		{uri: "file:///tmp/x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := ParseS3URI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestOptions(t *testing.T) {
	var o options
	WithProfile("dev")(&o)
	WithRegion("eu-west-1")(&o)

	assert.Equal(t, "dev", o.profile)
	assert.Equal(t, "eu-west-1", o.region)
}

func TestReader_Stdin(t *testing.T) {
	r := &Reader{Stdin: strings.NewReader(`{"a":1}`)}

	got, err := r.Read(context.Background(), Stdin)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	_, err = (&Reader{}).Read(context.Background(), "")
	assert.Error(t, err)
}

func TestReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))

	got, err := (&Reader{}).Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	_, err = (&Reader{}).Read(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReader_S3Cached(t *testing.T) {
	api := &fakeS3{objects: map[string]string{"bucket/doc.json": `{"a":1}`}, etag: `"v1"`}
	r := &Reader{S3: api, Cache: &cacheutil.Cache{Base: t.TempDir()}}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := r.Read(ctx, "s3://bucket/doc.json")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(got))
	}
	assert.Equal(t, 1, api.gets, "second read is served from cache")

	api.etag = `"v2"`
	api.objects["bucket/doc.json"] = `{"a":2}`
	got, err := r.Read(ctx, "s3://bucket/doc.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got), "a new etag misses the cache")
	assert.Equal(t, 2, api.gets)
}

func TestReader_S3Errors(t *testing.T) {
	r := &Reader{S3: &fakeS3{objects: map[string]string{}}}

	_, err := r.Read(context.Background(), "s3://bucket/missing.json")
	assert.ErrorContains(t, err, "failed to stat")

	_, err = r.Read(context.Background(), "s3://bucket")
	assert.Error(t, err)
}
