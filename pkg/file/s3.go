package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// deleteBatch is the DeleteObjects limit.
const deleteBatch = 1000

// S3Config is the S3_* environment block of the export command.
type S3Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_ACCESS_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"` // MinIO, R2 and friends
	BaseURL        string `env:"S3_BASE_URL"` // public origin, usually a CDN
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// S3API is the part of *s3.Client the storage calls.
type S3API interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// S3Storage publishes to a bucket. Safe for concurrent use.
type S3Storage struct {
	client       S3API
	bucket       string
	baseURL      string
	cacheControl string
}

type S3Option func(*S3Storage)

// WithS3Client replaces the SDK client, mostly for tests.
func WithS3Client(client S3API) S3Option {
	return func(s *S3Storage) { s.client = client }
}

// WithS3CacheControl stores value as the Cache-Control of every upload.
func WithS3CacheControl(value string) S3Option {
	return func(s *S3Storage) { s.cacheControl = value }
}

// NewS3Storage loads the default AWS config for cfg.Region unless a client
// is supplied. Static credentials are used when both key fields are set.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", ErrInvalidConfig)
	}

	s := &S3Storage{bucket: cfg.Bucket, baseURL: s3BaseURL(cfg)}
	for _, opt := range opts {
		opt(s)
	}
	if s.client != nil {
		return s, nil
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadConfig, err)
	}

	s.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})
	return s, nil
}

func s3BaseURL(cfg S3Config) string {
	base := cfg.BaseURL
	switch {
	case base != "":
	case cfg.Endpoint != "":
		base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return strings.TrimSuffix(base, "/") + "/"
}

// Put uploads body under path. The body is read fully first so the request
// carries a content length.
func (s *S3Storage) Put(ctx context.Context, path string, body io.Reader, contentType string) (*Object, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	key, err := CleanKey(path)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if contentType == "" {
		contentType = ContentType(key)
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	}
	if s.cacheControl != "" {
		in.CacheControl = aws.String(s.cacheControl)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return nil, s3Error("upload "+key, err)
	}

	return &Object{Path: key, Size: int64(len(data)), ContentType: contentType}, nil
}

// DeleteDir removes every object under dir. An empty prefix is reported as
// ErrDirectoryNotFound.
func (s *S3Storage) DeleteDir(ctx context.Context, dir string) error {
	prefix, err := s3Prefix(dir)
	if err != nil {
		return err
	}

	var ids []types.ObjectIdentifier
	pages := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return s3Error("list "+prefix, err)
		}
		for _, obj := range page.Contents {
			ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	for batch := range slices.Chunk(ids, deleteBatch) {
		if _, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: batch, Quiet: aws.Bool(true)},
		}); err != nil {
			return s3Error("delete "+prefix, err)
		}
	}
	return nil
}

// Exists reports whether an object is stored at path.
func (s *S3Storage) Exists(ctx context.Context, path string) bool {
	key, err := CleanKey(path)
	if err != nil || key == "" {
		return false
	}
	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// List returns the objects and sub-prefixes directly under dir.
func (s *S3Storage) List(ctx context.Context, dir string) ([]Entry, error) {
	prefix, err := s3Prefix(dir)
	if err != nil {
		return nil, err
	}

	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})
	if err != nil {
		return nil, s3Error("list "+prefix, err)
	}

	entries := make([]Entry, 0, len(out.CommonPrefixes)+len(out.Contents))
	for _, p := range out.CommonPrefixes {
		sub := aws.ToString(p.Prefix)
		entries = append(entries, Entry{
			Name:  strings.TrimSuffix(strings.TrimPrefix(sub, prefix), "/"),
			Path:  sub,
			IsDir: true,
		})
	}
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		name := strings.TrimPrefix(key, prefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		entries = append(entries, Entry{Name: name, Path: key, Size: aws.ToInt64(obj.Size)})
	}
	return entries, nil
}

// URL joins the public origin and the object key.
func (s *S3Storage) URL(path string) string {
	key, err := CleanKey(path)
	if err != nil {
		return ""
	}
	return s.baseURL + key
}

func s3Prefix(dir string) (string, error) {
	key, err := CleanKey(dir)
	if err != nil || key == "" {
		return key, err
	}
	return key + "/", nil
}

var s3ErrorCodes = map[string]error{
	"AccessDenied":       ErrAccessDenied,
	"NoSuchBucket":       ErrBucketNotFound,
	"NoSuchKey":          ErrFileNotFound,
	"NotFound":           ErrFileNotFound,
	"RequestTimeout":     ErrRequestTimeout,
	"SlowDown":           ErrServiceUnavailable,
	"ServiceUnavailable": ErrServiceUnavailable,
}

// s3Error maps SDK failures onto the package sentinels, keeping the cause.
func s3Error(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("s3 %s: %w", op, errors.Join(ErrOperationTimeout, err))
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("s3 %s: %w", op, errors.Join(ErrOperationCanceled, err))
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if sentinel, ok := s3ErrorCodes[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("s3 %s: %w", op, errors.Join(sentinel, err))
		}
		return fmt.Errorf("s3 %s: code %s: %w", op, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("s3 %s: %w", op, err)
}
