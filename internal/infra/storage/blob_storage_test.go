package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storeradar/config"
	"storeradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T, prefix string) service.FileStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewWithBucket(bucket, prefix, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobStorage_PutAndOpen(t *testing.T) {
	store := newTestStorage(t, "")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "visits/a.png", []byte("png-bytes"), "image/png"))

	obj, err := store.Open(ctx, "visits/a.png")
	require.NoError(t, err)
	defer obj.Body.Close()

	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len("png-bytes")), obj.Size)
}

func TestBlobStorage_OpenMissing(t *testing.T) {
	store := newTestStorage(t, "")

	_, err := store.Open(context.Background(), "comments/missing.jpg")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestBlobStorage_URL(t *testing.T) {
	assert.Equal(t, "/uploads/stores/x.jpg", newTestStorage(t, "").URL("stores/x.jpg"))
	assert.Equal(t, "https://cdn.example.com/files/stores/x.jpg",
		newTestStorage(t, "https://cdn.example.com/files/").URL("/stores/x.jpg"))
}

func TestNew_RequiresBucketURL(t *testing.T) {
	_, err := New(Params{Config: &config.Config{}, Logger: slog.Default()})
	assert.Error(t, err)
}

func TestNew_OpensMemBucket(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://"}}

	store, err := New(Params{Config: cfg, Logger: slog.Default()})
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "k", []byte("v"), "text/plain"))
}
