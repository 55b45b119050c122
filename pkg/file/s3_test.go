package file_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vibecoders/site/pkg/file"
)

// MockS3Client stands in for *s3.Client.
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func (m *MockS3Client) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListObjectsV2Output), args.Error(1)
}

func (m *MockS3Client) DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectsOutput), args.Error(1)
}

var testS3Config = file.S3Config{Bucket: "site-bucket", Region: "ap-northeast-2"}

func newS3(t *testing.T, client *MockS3Client, opts ...file.S3Option) *file.S3Storage {
	t.Helper()
	s, err := file.NewS3Storage(context.Background(), testS3Config, append([]file.S3Option{file.WithS3Client(client)}, opts...)...)
	require.NoError(t, err)
	return s
}

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewS3Storage(context.Background(), file.S3Config{Region: "us-east-1"})
		require.ErrorIs(t, err, file.ErrInvalidConfig)
	})

	t.Run("missing region", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewS3Storage(context.Background(), file.S3Config{Bucket: "b"})
		require.ErrorIs(t, err, file.ErrInvalidConfig)
	})

	t.Run("static credentials and endpoint", func(t *testing.T) {
		t.Parallel()
		s, err := file.NewS3Storage(context.Background(), file.S3Config{
			Bucket:         "site",
			Region:         "us-east-1",
			AccessKeyID:    "key",
			SecretKey:      "secret",
			Endpoint:       "http://localhost:9000/",
			ForcePathStyle: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/site/en/index.html", s.URL("en/index.html"))
	})
}

func TestS3Storage_Put(t *testing.T) {
	t.Parallel()

	t.Run("uploads with content type and length", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		var body []byte
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "site-bucket" &&
				aws.ToString(in.Key) == "ko/courses/index.html" &&
				aws.ToString(in.ContentType) == "text/html; charset=utf-8" &&
				aws.ToString(in.CacheControl) == "public, max-age=300" &&
				aws.ToInt64(in.ContentLength) == 9
		}), mock.Anything).Run(func(args mock.Arguments) {
			body, _ = io.ReadAll(args.Get(1).(*s3.PutObjectInput).Body)
		}).Return(&s3.PutObjectOutput{}, nil).Once()

		s := newS3(t, client, file.WithS3CacheControl("public, max-age=300"))
		obj, err := s.Put(context.Background(), "/ko/courses/index.html", strings.NewReader("<p>Hi</p>"), "")
		require.NoError(t, err)
		assert.Equal(t, "ko/courses/index.html", obj.Path)
		assert.EqualValues(t, 9, obj.Size)
		assert.Equal(t, "<p>Hi</p>", string(body))
		client.AssertExpectations(t)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		s := newS3(t, client)

		_, err := s.Put(context.Background(), "../x.html", strings.NewReader("x"), "")
		require.ErrorIs(t, err, file.ErrInvalidPath)
		_, err = s.Put(context.Background(), "/", strings.NewReader("x"), "")
		require.ErrorIs(t, err, file.ErrIsDirectory)
		_, err = s.Put(context.Background(), "a.html", nil, "")
		require.ErrorIs(t, err, file.ErrNilBody)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestS3Storage_ErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, file.ErrAccessDenied},
		{"throttled", &smithy.GenericAPIError{Code: "SlowDown"}, file.ErrServiceUnavailable},
		{"request timeout", &smithy.GenericAPIError{Code: "RequestTimeout"}, file.ErrRequestTimeout},
		{"no bucket", &types.NoSuchBucket{}, file.ErrBucketNotFound},
		{"deadline", context.DeadlineExceeded, file.ErrOperationTimeout},
		{"canceled", context.Canceled, file.ErrOperationCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := new(MockS3Client)
			client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := newS3(t, client).Put(context.Background(), "index.html", strings.NewReader("x"), "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("unknown code kept", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "Weird"})

		_, err := newS3(t, client).Put(context.Background(), "index.html", strings.NewReader("x"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code Weird")
	})
}

func TestS3Storage_Exists(t *testing.T) {
	t.Parallel()

	client := new(MockS3Client)
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return aws.ToString(in.Key) == "en/index.html"
	}), mock.Anything).Return(&s3.HeadObjectOutput{}, nil)
	client.On("HeadObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, &types.NotFound{})

	s := newS3(t, client)
	assert.True(t, s.Exists(context.Background(), "/en/index.html"))
	assert.False(t, s.Exists(context.Background(), "ko/index.html"))
	assert.False(t, s.Exists(context.Background(), "../secret"))
	assert.False(t, s.Exists(context.Background(), ""))
}

func TestS3Storage_List(t *testing.T) {
	t.Parallel()

	client := new(MockS3Client)
	client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return aws.ToString(in.Prefix) == "en/" && aws.ToString(in.Delimiter) == "/"
	}), mock.Anything).Return(&s3.ListObjectsV2Output{
		CommonPrefixes: []types.CommonPrefix{{Prefix: aws.String("en/courses/")}},
		Contents: []types.Object{
			{Key: aws.String("en/"), Size: aws.Int64(0)},
			{Key: aws.String("en/index.html"), Size: aws.Int64(42)},
		},
	}, nil)

	entries, err := newS3(t, client).List(context.Background(), "/en")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, file.Entry{Name: "courses", Path: "en/courses/", IsDir: true}, entries[0])
	assert.Equal(t, file.Entry{Name: "index.html", Path: "en/index.html", Size: 42}, entries[1])

	_, err = newS3(t, new(MockS3Client)).List(context.Background(), "../")
	require.ErrorIs(t, err, file.ErrInvalidPath)
}

func TestS3Storage_DeleteDir(t *testing.T) {
	t.Parallel()

	t.Run("deletes every page under prefix", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
			return aws.ToString(in.Prefix) == "ko/" && in.ContinuationToken == nil
		}), mock.Anything).Return(&s3.ListObjectsV2Output{
			Contents:              []types.Object{{Key: aws.String("ko/index.html")}},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("page-2"),
		}, nil).Once()
		client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
			return aws.ToString(in.ContinuationToken) == "page-2"
		}), mock.Anything).Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{{Key: aws.String("ko/courses/index.html")}},
		}, nil).Once()
		client.On("DeleteObjects", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectsInput) bool {
			return aws.ToString(in.Bucket) == "site-bucket" && len(in.Delete.Objects) == 2
		}), mock.Anything).Return(&s3.DeleteObjectsOutput{}, nil).Once()

		require.NoError(t, newS3(t, client).DeleteDir(context.Background(), "ko"))
		client.AssertExpectations(t)
	})

	t.Run("empty prefix is not found", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("ListObjectsV2", mock.Anything, mock.Anything, mock.Anything).Return(&s3.ListObjectsV2Output{}, nil)

		err := newS3(t, client).DeleteDir(context.Background(), "en")
		require.ErrorIs(t, err, file.ErrDirectoryNotFound)
		client.AssertNotCalled(t, "DeleteObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("list failure classified", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("ListObjectsV2", mock.Anything, mock.Anything, mock.Anything).Return(nil, &types.NoSuchBucket{})

		err := newS3(t, client).DeleteDir(context.Background(), "en")
		require.ErrorIs(t, err, file.ErrBucketNotFound)
	})
}

func TestS3Storage_URL(t *testing.T) {
	t.Parallel()

	s := newS3(t, new(MockS3Client))
	assert.Equal(t, "https://site-bucket.s3.ap-northeast-2.amazonaws.com/en/index.html", s.URL("/en/index.html"))

	cdn, err := file.NewS3Storage(context.Background(), file.S3Config{
		Bucket:  "site",
		Region:  "us-east-1",
		BaseURL: "https://cdn.vibecoders.dev",
	}, file.WithS3Client(new(MockS3Client)))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.vibecoders.dev/ko/index.html", cdn.URL("ko/index.html"))
}
