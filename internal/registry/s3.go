package registry

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/vango-dev/termkit/internal/errors"
)

// S3API is the subset of the S3 client used by S3Source.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a registry stored in an S3 bucket under a key prefix.
type S3Source struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Source returns a Source reading <prefix>manifest.json and
// <prefix>components/<name>/<file> from bucket.
func NewS3Source(client S3API, bucket, prefix string) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// NewS3Client returns an anonymous S3 client for public registries. A
// non-empty endpoint selects an S3-compatible service with path-style
// addressing.
func NewS3Client(region, endpoint string) *s3.Client {
	opts := s3.Options{
		Region:      region,
		Credentials: aws.AnonymousCredentials{},
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// ReadManifest implements Source.
func (s *S3Source) ReadManifest(ctx context.Context) ([]byte, error) {
	data, err := s.get(ctx, s.prefix+"manifest.json")
	if err != nil {
		return nil, errors.New("E111").
			WithDetailf("Could not read manifest from s3://%s/%s", s.bucket, s.prefix).
			WithSuggestion("Check registry.bucket, registry.prefix and registry.region in termkit.json").
			Wrap(err)
	}
	return data, nil
}

// ReadFile implements Source.
func (s *S3Source) ReadFile(ctx context.Context, component, file string) ([]byte, error) {
	return s.get(ctx, s.prefix+path.Join("components", component, file))
}

func (s *S3Source) get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if stderrors.As(err, &noKey) {
			return nil, fmt.Errorf("s3://%s/%s: no such key", s.bucket, key)
		}
		var apiErr smithy.APIError
		if stderrors.As(err, &apiErr) {
			return nil, fmt.Errorf("s3://%s/%s: %s: %w", s.bucket, key, apiErr.ErrorCode(), err)
		}
		return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("s3://%s/%s: object exceeds %d bytes", s.bucket, key, maxFileSize)
	}
	return data, nil
}
