package content

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/beatvault/beatvault/internal/config"
	"github.com/beatvault/beatvault/internal/logger"
)

// Indirections over the AWS SDK so tests can stub the network edge.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Store implements [Store] against any S3-compatible backend. A custom
// Endpoint in the configuration points it at MinIO.
type S3Store struct {
	cfg    config.Content
	logger *logger.Logger
}

// NewS3Store constructs an [S3Store] from the content-storage configuration.
func NewS3Store(cfg config.Content, logger *logger.Logger) *S3Store {
	return &S3Store{cfg: cfg, logger: logger}
}

// newObjectKey generates a date-partitioned object key for a fresh upload.
func newObjectKey() string {
	d := time.Now()
	return fmt.Sprintf("tracks/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *S3Store) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading object store config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
	})

	return newS3PresignClient(client), nil
}

// PresignUpload implements [Store].
func (s *S3Store) PresignUpload(ctx context.Context) (string, string, error) {
	pc, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.cfg.Bucket
	key := newObjectKey()

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.cfg.PresignTTL))
	if err != nil {
		s.logger.Err(err).Str("func", "*S3Store.PresignUpload").Msg("error: presigning upload URL failed")
		return "", "", fmt.Errorf("presigning upload URL: %w", err)
	}

	return key, req.URL, nil
}

// PresignDownload implements [Store].
func (s *S3Store) PresignDownload(ctx context.Context, key string) (string, error) {
	pc, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.cfg.Bucket

	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.cfg.PresignTTL))
	if err != nil {
		s.logger.Err(err).Str("func", "*S3Store.PresignDownload").Msg("error: presigning download URL failed")
		return "", fmt.Errorf("presigning download URL: %w", err)
	}

	return req.URL, nil
}
