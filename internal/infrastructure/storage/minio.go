package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/RogutKuba/assemblyai-hackathon/internal/domain/repositories"
	"github.com/RogutKuba/assemblyai-hackathon/pkg/config"
)

// MinIOStore keeps one markdown object per room id in a bucket
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore creates a new MinIO-backed lesson store
func NewMinIOStore(cfg *config.StorageConfig) (*MinIOStore, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &MinIOStore{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx := context.Background()
	if err := store.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return store, nil
}

// ensureBucket ensures the lesson bucket exists
func (m *MinIOStore) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Load reads the full document for the room
func (m *MinIOStore) Load(ctx context.Context, roomID string) (string, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, objectName(roomID), minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get lesson object: %w", err)
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		// GetObject is lazy; a missing key surfaces on first read
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", repositories.ErrLessonNotFound
		}
		return "", fmt.Errorf("failed to read lesson object: %w", err)
	}
	return string(b), nil
}

// Save overwrites the document for the room with a single PUT
func (m *MinIOStore) Save(ctx context.Context, roomID string, content string) error {
	reader := bytes.NewReader([]byte(content))
	_, err := m.client.PutObject(ctx, m.bucket, objectName(roomID), reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to upload lesson object: %w", err)
	}
	return nil
}

func objectName(roomID string) string {
	return roomID + ".md"
}
