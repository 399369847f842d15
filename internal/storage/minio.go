package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client wraps the object store that holds ticket images. Uploads happen
// client-side; the API only checks that image URLs point into the bucket.
type Client struct {
	sdk      *minioSDK.Client
	endpoint string
	bucket   string
}

func New(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Client, error) {
	sdk, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &Client{
		sdk:      sdk,
		endpoint: strings.ToLower(endpoint),
		bucket:   bucket,
	}, nil
}

// EnsureBucket creates the image bucket on first start.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.sdk.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", c.bucket, err)
	}
	if exists {
		return nil
	}
	if err := c.sdk.MakeBucket(ctx, c.bucket, minioSDK.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", c.bucket, err)
	}
	slog.InfoContext(ctx, "bucket created", "bucket", c.bucket)
	return nil
}

func (c *Client) ProbeBucket(ctx context.Context) error {
	exists, err := c.sdk.BucketExists(ctx, c.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", c.bucket)
	}
	return nil
}

// Owns reports whether rawURL names an object in the image bucket, in
// either path-style or virtual-host style.
func (c *Client) Owns(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.ToLower(u.Host)
	switch host {
	case c.endpoint:
		rest, ok := strings.CutPrefix(u.Path, "/"+c.bucket+"/")
		return ok && rest != ""
	case c.bucket + "." + c.endpoint:
		return len(strings.TrimPrefix(u.Path, "/")) > 0
	}
	return false
}
