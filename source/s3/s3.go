package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	apperrors "github.com/charkit/charkit/errors"
	"github.com/charkit/charkit/logger"
	"github.com/charkit/charkit/source"
	"github.com/charkit/charkit/util"
)

// GetObjectAPIClient is the subset of the S3 API the object source
// uses. *s3.Client satisfies it; tests substitute a fake.
type GetObjectAPIClient interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
}

// ObjectOption customizes an object source.
type ObjectOption func(*objectSource)

// WithContext attaches a context to every fetch.
func WithContext(ctx context.Context) ObjectOption {
	return func(s *objectSource) { s.ctx = ctx }
}

// WithVersionID pins the source to a specific object version.
func WithVersionID(id string) ObjectOption {
	return func(s *objectSource) { s.versionID = id }
}

// Object returns a source reading the object at bucket/key. Each Open
// issues a GetObject and hands back the response body, so closing the
// stream releases the connection.
func Object(client GetObjectAPIClient, bucket, key string, opts ...ObjectOption) source.Source {
	s := &objectSource{
		client: client,
		bucket: bucket,
		key:    key,
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig builds a client from cfg and returns a source for key in
// the configured bucket.
func FromConfig(ctx context.Context, cfg *Config, key string, opts ...ObjectOption) (source.Source, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Object(client, cfg.Bucket, key, opts...), nil
}

type objectSource struct {
	client    GetObjectAPIClient
	bucket    string
	key       string
	versionID string
	ctx       context.Context
}

func (s *objectSource) Origin() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

func (s *objectSource) Open() (io.ReadCloser, error) {
	input := &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	}
	if s.versionID != "" {
		input.VersionId = aws.String(s.versionID)
	}

	out, err := s.client.GetObject(s.ctx, input)
	if err != nil {
		return nil, classifyGetError(s.Origin(), err)
	}
	return out.Body, nil
}

// NewClient creates an S3 client from the given config, suitable for
// passing to Object.
func NewClient(ctx context.Context, cfg *Config) (*awss3.Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	var s3Opts []func(*awss3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else if cfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.UsePathStyle = true
		})
	}

	logger.Get("s3").Debug("s3 client configured", logger.Fields(
		"region", cfg.Region,
		"endpoint", cfg.Endpoint,
		"access_key", util.MaskSecret(cfg.AccessKey, 4),
	))

	return awss3.NewFromConfig(awsCfg, s3Opts...), nil
}

// classifyGetError maps modeled S3 API failures onto the shared
// failure taxonomy. Transport-level errors pass through raw.
func classifyGetError(origin string, err error) error {
	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	if errors.As(err, &noKey) || errors.As(err, &noBucket) {
		return apperrors.SourceNotFound(origin).WithCause(err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return apperrors.PermissionDenied(origin).WithCause(err)
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return apperrors.SourceNotFound(origin).WithCause(err)
		case "SlowDown", "RequestTimeout":
			return apperrors.SourceUnavailable(origin).WithCause(err)
		}
		return apperrors.SourceUnavailable(origin).WithDetail("api_error", apiErr.ErrorCode()).WithCause(err)
	}

	return err
}
