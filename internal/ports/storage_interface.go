package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStorage : объектное хранилище (Supabase Storage через S3 API)
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
	// PublicURL : пустая строка, если публичный адрес бакета не настроен
	PublicURL(key string) string
}
