// Package s3 implements the shared-folder contract on an S3-compatible
// bucket (AWS S3 or MinIO). The bucket stands in for a synced directory when
// the machines involved have no common filesystem.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"towerinv/internal/sharefolder/core"
)

const defaultSignedURLExpiry = 15 * time.Minute

// Config holds explicit construction parameters. The caller resolves them
// from its own configuration; this package never reads the environment.
type Config struct {
	Region          string
	Bucket          string
	Prefix          string // optional; prepended to every name so deployments can share a bucket
	Endpoint        string // optional; if set enables custom endpoint (e.g. MinIO)
	AccessKeyID     string // optional (falls back to default credentials chain)
	SecretAccessKey string // optional
	SessionToken    string // optional
	PathStyle       bool
}

// Store implements core.Store against a single bucket. Names map to object
// keys under the optional prefix.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	prefix  string
}

// New creates a bucket-backed store from cfg. Static credentials are wired
// when provided; otherwise the default AWS credentials chain applies.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
	}, nil
}

func (s *Store) Driver() core.Driver { return core.DriverS3 }

func (s *Store) keyFor(name string) (string, error) {
	clean, err := core.CleanName(name)
	if err != nil {
		return "", err
	}
	if s.prefix == "" {
		return clean, nil
	}
	return s.prefix + "/" + clean, nil
}

func (s *Store) Put(ctx context.Context, name string, r io.Reader, size int64) (core.Info, error) {
	key, err := s.keyFor(name)
	if err != nil {
		return core.Info{}, err
	}
	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key, Body: r}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return core.Info{}, fmt.Errorf("put object: %w", err)
	}
	return s.Stat(ctx, name)
}

func (s *Store) Get(ctx context.Context, name string) (io.ReadCloser, core.Info, error) {
	key, err := s.keyFor(name)
	if err != nil {
		return nil, core.Info{}, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		return nil, core.Info{}, mapNotFound(err)
	}
	info := core.Info{
		Name:     name,
		Size:     aws.ToInt64(out.ContentLength),
		ETag:     cleanETag(out.ETag),
		Modified: aws.ToTime(out.LastModified).UTC(),
	}
	return out.Body, info, nil
}

func (s *Store) Stat(ctx context.Context, name string) (core.Info, error) {
	key, err := s.keyFor(name)
	if err != nil {
		return core.Info{}, err
	}
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		return core.Info{}, mapNotFound(err)
	}
	return core.Info{
		Name:     name,
		Size:     aws.ToInt64(out.ContentLength),
		ETag:     cleanETag(out.ETag),
		Modified: aws.ToTime(out.LastModified).UTC(),
	}, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	key, err := s.keyFor(name)
	if err != nil {
		return err
	}
	// DeleteObject succeeds for absent keys, matching the contract.
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *Store) SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	key, err := s.keyFor(name)
	if err != nil {
		return "", err
	}
	if expiry <= 0 {
		expiry = defaultSignedURLExpiry
	}
	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key},
		func(po *s3.PresignOptions) { po.Expires = expiry })
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return out.URL, nil
}

func mapNotFound(err error) error {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return core.ErrNotExist
	}
	return err
}

func cleanETag(etag *string) string {
	return strings.Trim(aws.ToString(etag), `"`)
}
