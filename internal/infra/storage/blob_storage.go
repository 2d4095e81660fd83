// Package storage keeps uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"storeradar/config"
	"storeradar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local runs
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

const defaultPublicPrefix = "/uploads"

// Params defines the dependencies of the blob storage.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

type blobStorage struct {
	bucket       *blob.Bucket
	publicPrefix string
	logger       *slog.Logger
}

// New opens the bucket named by storage.bucketUrl. The bucket is closed on fx stop.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.StopHook(bucket.Close))
	}

	return NewWithBucket(bucket, cfg.PublicPrefix, params.Logger), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket, publicPrefix string, logger *slog.Logger) service.FileStorage {
	prefix := strings.TrimRight(publicPrefix, "/")
	if prefix == "" {
		prefix = defaultPublicPrefix
	}

	return &blobStorage{bucket: bucket, publicPrefix: prefix, logger: logger}
}

func (s *blobStorage) Put(ctx context.Context, key string, content []byte, contentType string) error {
	if err := s.bucket.WriteAll(ctx, key, content, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write object %s", key)
	}

	s.logger.DebugContext(ctx, "Stored object", slog.String("key", key), slog.Int("size", len(content)))

	return nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}

	return &service.StoredObject{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func (s *blobStorage) URL(key string) string {
	return s.publicPrefix + "/" + strings.TrimLeft(key, "/")
}
