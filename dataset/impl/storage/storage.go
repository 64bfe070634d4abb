package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
)

// Client persists generated images. dir is the per-font directory and name the image file name.
type Client interface {
	EnsureDir(ctx context.Context, dir string) error
	SaveBytes(ctx context.Context, dir string, name string, data []byte) error
}

type localClient struct {
	root string
}

// NewLocal stores images under root/<dir>/<name> on the local filesystem.
func NewLocal(root string) Client {
	return &localClient{root: root}
}

func (l *localClient) EnsureDir(ctx context.Context, dir string) error {
	if err := os.MkdirAll(filepath.Join(l.root, dir), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (l *localClient) SaveBytes(ctx context.Context, dir string, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(l.root, dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

type gcsClient struct {
	storageClient *storage.Client
	bucketName    string
	prefix        string
	// Attached to every object, e.g. the run id.
	metadata map[string]string
}

// NewGCS stores images as gs://bucketName/prefix/<dir>/<name>.
func NewGCS(storageClient *storage.Client, bucketName string, prefix string, metadata map[string]string) Client {
	return &gcsClient{
		storageClient: storageClient,
		bucketName:    bucketName,
		prefix:        prefix,
		metadata:      metadata,
	}
}

// Object storage has no directories.
func (s *gcsClient) EnsureDir(ctx context.Context, dir string) error {
	return nil
}

func (s *gcsClient) SaveBytes(ctx context.Context, dir string, name string, data []byte) error {
	bucket := s.storageClient.Bucket(s.bucketName)
	writer := bucket.Object(ObjectName(s.prefix, dir, name)).NewWriter(ctx)
	writer.ContentType = "image/png"
	writer.Metadata = s.metadata

	_, err := writer.Write(data)
	if err != nil {
		writer.Close()
		return fmt.Errorf("failed to write to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return nil
}

// ObjectName joins the object path with forward slashes regardless of the host OS.
func ObjectName(prefix string, dir string, name string) string {
	return path.Join(prefix, dir, name)
}
