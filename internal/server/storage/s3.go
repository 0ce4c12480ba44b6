package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for tests, mirroring the AWS SDK entry points actually used.
var (
	loadDefaultAWSConfig = awscfg.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}
)

// S3Config holds settings for the S3-compatible backend (MinIO in dev).
type S3Config struct {
	RootUser      string
	RootPassword  string
	Bucket        string
	Region        string
	BaseEndpoint  string
	PublicBaseURL string
}

// S3BlobStore stores blobs in a single bucket. The client is created once
// per process and shared across requests.
type S3BlobStore struct {
	client *s3.Client
	cfg    S3Config
}

var _ BlobStore = (*S3BlobStore)(nil)

// NewS3BlobStore builds the S3 client from static credentials and a custom
// base endpoint.
func NewS3BlobStore(ctx context.Context, cfg S3Config) (*S3BlobStore, error) {
	awsConfig, err := loadDefaultAWSConfig(ctx,
		awscfg.WithRegion(cfg.Region),
		awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.RootUser,
			cfg.RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3BlobStore{client: client, cfg: cfg}, nil
}

// objectKey joins the destination folder and physical name into the bucket
// key. Folders arrive slash-prefixed ("/droply/{user}/..."), keys are not.
func objectKey(folder, name string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// Put uploads data in a single attempt and returns the locator and public URL.
func (s *S3BlobStore) Put(ctx context.Context, data []byte, folder, name, contentType string) (*Object, error) {
	key := objectKey(folder, name)

	_, err := putObject(s.client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &Object{
		Key: key,
		URL: s.publicURL(key),
	}, nil
}

// Delete removes the object by key in a single attempt.
func (s *S3BlobStore) Delete(ctx context.Context, key string) error {
	_, err := deleteObject(s.client, ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3BlobStore) publicURL(key string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		base = strings.TrimRight(s.cfg.BaseEndpoint, "/") + "/" + s.cfg.Bucket
	}
	return strings.TrimRight(base, "/") + "/" + key
}
