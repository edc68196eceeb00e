package contracts

import "context"

type Storage interface {
	UploadObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}
