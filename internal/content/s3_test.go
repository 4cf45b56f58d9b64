package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/beatvault/beatvault/internal/config"
	"github.com/beatvault/beatvault/internal/logger"
)

func testContentConfig() config.Content {
	return config.Content{
		Region:     "us-east-1",
		Endpoint:   "http://127.0.0.1:9000",
		Bucket:     "beatvault",
		AccessKey:  "minio",
		SecretKey:  "minio123",
		PresignTTL: 15 * time.Minute,
	}
}

func stubPresign(t *testing.T, putURL, getURL string, presignErr error) {
	t.Helper()

	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		presignPutObject = origPut
		presignGetObject = origGet
	})

	presignPutObject = func(_ *s3.PresignClient, _ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if presignErr != nil {
			return nil, presignErr
		}
		if aws.ToString(in.Bucket) == "" || aws.ToString(in.Key) == "" {
			t.Error("expected bucket and key to be set on PutObjectInput")
		}
		return &v4.PresignedHTTPRequest{URL: putURL, Method: "PUT"}, nil
	}
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if presignErr != nil {
			return nil, presignErr
		}
		if aws.ToString(in.Key) == "" {
			t.Error("expected key to be set on GetObjectInput")
		}
		return &v4.PresignedHTTPRequest{URL: getURL, Method: "GET"}, nil
	}
}

func TestPresignUpload_ReturnsKeyAndURL(t *testing.T) {
	stubPresign(t, "http://127.0.0.1:9000/beatvault/upload", "", nil)

	store := NewS3Store(testContentConfig(), logger.Nop())

	key, url, err := store.PresignUpload(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://127.0.0.1:9000/beatvault/upload" {
		t.Errorf("unexpected URL: %q", url)
	}
	if !strings.HasPrefix(key, "tracks/") {
		t.Errorf("expected date-partitioned key under tracks/, got %q", key)
	}
}

func TestPresignUpload_KeysAreUnique(t *testing.T) {
	stubPresign(t, "http://example/upload", "", nil)

	store := NewS3Store(testContentConfig(), logger.Nop())

	k1, _, err := store.PresignUpload(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k2, _, err := store.PresignUpload(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k1 == k2 {
		t.Errorf("expected distinct keys, got %q twice", k1)
	}
}

func TestPresignDownload_ReturnsURL(t *testing.T) {
	stubPresign(t, "", "http://127.0.0.1:9000/beatvault/download", nil)

	store := NewS3Store(testContentConfig(), logger.Nop())

	url, err := store.PresignDownload(context.Background(), "tracks/2026/8/28/abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://127.0.0.1:9000/beatvault/download" {
		t.Errorf("unexpected URL: %q", url)
	}
}

func TestPresignDownload_PropagatesError(t *testing.T) {
	stubPresign(t, "", "", errors.New("signing failed"))

	store := NewS3Store(testContentConfig(), logger.Nop())

	_, err := store.PresignDownload(context.Background(), "tracks/2026/8/28/abc")
	if err == nil || !strings.Contains(err.Error(), "presigning download URL") {
		t.Fatalf("expected wrapped presign error, got %v", err)
	}
}
