package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func testConfig() S3Config {
	return S3Config{
		RootUser:     "admin",
		RootPassword: "secret",
		Bucket:       "droply",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000/",
	}
}

func newTestStore(t *testing.T) *S3BlobStore {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awscfg.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}

	store, err := NewS3BlobStore(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("NewS3BlobStore error: %v", err)
	}
	return store
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		folder string
		name   string
		want   string
	}{
		{"/droply/u1/", "a.jpg", "droply/u1/a.jpg"},
		{"/droply/u1/folder/p1/", "b.pdf", "droply/u1/folder/p1/b.pdf"},
		{"", "c.png", "c.png"},
	}
	for _, tt := range tests {
		if got := objectKey(tt.folder, tt.name); got != tt.want {
			t.Fatalf("objectKey(%q, %q) = %q, want %q", tt.folder, tt.name, got, tt.want)
		}
	}
}

func TestPut_Success(t *testing.T) {
	store := newTestStore(t)

	origPut := putObject
	t.Cleanup(func() { putObject = origPut })

	var gotKey, gotContentType string
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotKey = aws.ToString(in.Key)
		gotContentType = aws.ToString(in.ContentType)
		return &s3.PutObjectOutput{}, nil
	}

	obj, err := store.Put(context.Background(), []byte("img"), "/droply/u1/", "x.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.Key != "droply/u1/x.jpg" || gotKey != obj.Key {
		t.Fatalf("unexpected key: %q / %q", obj.Key, gotKey)
	}
	if gotContentType != "image/jpeg" {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if obj.URL != "http://127.0.0.1:9000/droply/droply/u1/x.jpg" {
		t.Fatalf("unexpected URL: %q", obj.URL)
	}
}

func TestPut_Error(t *testing.T) {
	store := newTestStore(t)

	origPut := putObject
	t.Cleanup(func() { putObject = origPut })
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("access denied")
	}

	_, err := store.Put(context.Background(), []byte("img"), "/droply/u1/", "x.jpg", "image/jpeg")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestDelete_Error(t *testing.T) {
	store := newTestStore(t)

	origDelete := deleteObject
	t.Cleanup(func() { deleteObject = origDelete })
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return nil, errors.New("access denied")
	}

	if err := store.Delete(context.Background(), "droply/u1/x.jpg"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestDelete_Success(t *testing.T) {
	store := newTestStore(t)

	origDelete := deleteObject
	t.Cleanup(func() { deleteObject = origDelete })

	var gotKey string
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		gotKey = aws.ToString(in.Key)
		return &s3.DeleteObjectOutput{}, nil
	}

	if err := store.Delete(context.Background(), "droply/u1/x.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "droply/u1/x.jpg" {
		t.Fatalf("unexpected key: %q", gotKey)
	}
}

func TestPublicURL_CustomBase(t *testing.T) {
	store := newTestStore(t)
	store.cfg.PublicBaseURL = "https://cdn.example.com"

	if got := store.publicURL("droply/u1/x.jpg"); got != "https://cdn.example.com/droply/u1/x.jpg" {
		t.Fatalf("unexpected URL: %q", got)
	}
}
