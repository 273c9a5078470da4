package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryClient keeps objects in a map. It stands in for real object
// storage in tests and local development.
type MemoryClient struct {
	mu      sync.Mutex
	objects map[string]memoryObject
}

type memoryObject struct {
	content     []byte
	contentType string
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		objects: make(map[string]memoryObject),
	}
}

func (c *MemoryClient) Upload(ctx context.Context, path string, content []byte, contentType string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]byte, len(content))
	copy(stored, content)
	c.objects[path] = memoryObject{content: stored, contentType: contentType}
	return nil
}

func (c *MemoryClient) SignedURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	return fmt.Sprintf("memory://%s?expires=%d", path, int(expires.Seconds())), nil
}

func (c *MemoryClient) PublicURL(path string) string {
	return "memory://" + path
}

func (c *MemoryClient) Close() {}

// Object returns the stored bytes for a path, if any.
func (c *MemoryClient) Object(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	obj, ok := c.objects[path]
	return obj.content, ok
}

func (c *MemoryClient) NumObjects() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.objects)
}
