package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClient(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	require.NoError(t, client.Upload(ctx, "easy/algebra/quiz-1.pdf", []byte("v1"), "application/pdf"))
	content, ok := client.Object("easy/algebra/quiz-1.pdf")
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), content)

	// Re-uploading the same path overwrites instead of piling up.
	require.NoError(t, client.Upload(ctx, "easy/algebra/quiz-1.pdf", []byte("v2"), "application/pdf"))
	content, _ = client.Object("easy/algebra/quiz-1.pdf")
	assert.Equal(t, []byte("v2"), content)
	assert.Equal(t, 1, client.NumObjects())

	_, ok = client.Object("missing.pdf")
	assert.False(t, ok)
}

func TestMemoryClientURLs(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	assert.Equal(t, "memory://a/b.pdf", client.PublicURL("a/b.pdf"))

	url, err := client.SignedURL(ctx, "a/b.pdf", DefaultURLExpiry)
	require.NoError(t, err)
	assert.Equal(t, "memory://a/b.pdf?expires=3600", url)
}

func TestResolveURL(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	url, err := ResolveURL(ctx, client, "a/b.pdf", true)
	require.NoError(t, err)
	assert.Equal(t, "memory://a/b.pdf", url)

	url, err = ResolveURL(ctx, client, "a/b.pdf", false)
	require.NoError(t, err)
	assert.Contains(t, url, "expires=")
}
