package contracts

import (
	"context"
	"io"
)

type ObjectStorage interface {
	UploadObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error
	GetObject(ctx context.Context, objectName string) (io.ReadCloser, error)
}
