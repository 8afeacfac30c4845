package infra

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tnqbao/gau-dam-service/config"
)

type MinioClient struct {
	Admin    *madmin.AdminClient
	Client   *minio.Client
	Endpoint string

	bucket        string
	publicBaseURL string
	useSSL        bool
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	rootUser := cfg.Minio.RootUser
	if rootUser == "" {
		panic("MinIO root user is not configured")
	}

	rootPassword := cfg.Minio.RootPassword
	if rootPassword == "" {
		panic("MinIO root password is not configured")
	}

	madminClient, err := madmin.New(endpoint, rootUser, rootPassword, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	client := &MinioClient{
		Admin:         madminClient,
		Client:        minioClient,
		Endpoint:      endpoint,
		bucket:        cfg.Minio.AssetsBucket,
		publicBaseURL: strings.TrimRight(cfg.Minio.PublicBaseURL, "/"),
		useSSL:        cfg.Minio.UseSSL,
	}

	if err := client.ensureBucket(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to ensure assets bucket: %v", err))
	}

	return client
}

func (m *MinioClient) ensureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", m.bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.Client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", m.bucket, err)
	}
	return nil
}

// Upload stores raw bytes under key. Existing keys are rejected: storage
// keys are timestamp-prefixed and a collision means a derivation bug, not a
// legitimate overwrite.
func (m *MinioClient) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if _, err := m.Client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err == nil {
		return fmt.Errorf("object %q already exists in bucket %q", key, m.bucket)
	}

	_, err := m.Client.PutObject(ctx, m.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the stable HTTPS URL for a stored object.
func (m *MinioClient) PublicURL(key string) string {
	if m.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", m.publicBaseURL, m.bucket, key)
	}
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.Endpoint, m.bucket, key)
}

func (m *MinioClient) Remove(ctx context.Context, key string) error {
	if err := m.Client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %q: %w", key, err)
	}
	return nil
}

// RemoveAll deletes a set of objects, collecting per-key failures into a
// single error.
func (m *MinioClient) RemoveAll(ctx context.Context, keys []string) error {
	var failed []string
	for _, key := range keys {
		if err := m.Remove(ctx, key); err != nil {
			failed = append(failed, key)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to remove %d object(s): %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

// ServerInfo reports object-store health via the admin API.
func (m *MinioClient) ServerInfo(ctx context.Context) (madmin.InfoMessage, error) {
	return m.Admin.ServerInfo(ctx)
}
