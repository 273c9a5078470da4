package storage

import (
	"context"
	"time"
)

// Client stores and serves PDF artifacts. Uploads overwrite whatever
// is already at the path, which makes re-publishing idempotent.
type Client interface {
	Upload(ctx context.Context, path string, content []byte, contentType string) error
	SignedURL(ctx context.Context, path string, expires time.Duration) (string, error)
	PublicURL(path string) string
	Close()
}

// Signed URLs default to an hour. Long enough to actually download
// the file, short enough that shared links go stale.
const DefaultURLExpiry = 1 * time.Hour

// ResolveURL picks the public URL when the bucket is world-readable,
// otherwise a time-limited signed URL.
func ResolveURL(ctx context.Context, client Client, path string, public bool) (string, error) {
	if public {
		return client.PublicURL(path), nil
	}
	return client.SignedURL(ctx, path, DefaultURLExpiry)
}
