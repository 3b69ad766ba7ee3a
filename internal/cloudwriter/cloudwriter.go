package cloudwriter

import (
	"context"
	"io"
)

// Uploader stores a finished export object in a remote bucket. The body
// is streamed; callers own the reader's lifetime.
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader) error
}
