package storage

import (
	"bytes"
	"context"
	"fmt"

	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client       *minio.Client
	driverConfig *config.DriverConfig
}

func NewMinioStorage(client *minio.Client, driverConfig *config.DriverConfig) contracts.Storage {
	return &minioStorage{
		client:       client,
		driverConfig: driverConfig,
	}
}

func (s *minioStorage) UploadObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	bucketName := s.driverConfig.Minio.BucketName

	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, bucketName, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return fmt.Sprintf("%s/%s", bucketName, objectName), nil
}
