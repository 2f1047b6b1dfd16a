// Package storage keeps uploaded file content in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/IbrahimMurad/alx-files-manager/config"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/constants"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob" // registers the s3:// URL scheme
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket *blob.Bucket
}

var _ service.BlobStorage = (*blobStorage)(nil)

// New opens the bucket named by the storage configuration.
func New(params Params) (service.BlobStorage, error) {
	bucket, err := openBucket(context.Background(), params.Config.Storage)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Blob storage opened", slog.String("driver", params.Config.Storage.Driver))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket) service.BlobStorage {
	return &blobStorage{bucket: bucket}
}

func openBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, error) {
	switch cfg.Driver {
	case constants.StorageDriverFile, "":
		bucket, err := fileblob.OpenBucket(cfg.FolderPath, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open folder %s", cfg.FolderPath)
		}

		return bucket, nil

	case constants.StorageDriverMem:
		return memblob.OpenBucket(nil), nil

	case constants.StorageDriverS3:
		bucket, err := blob.OpenBucket(ctx, s3URL(cfg))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open s3 bucket %s", cfg.Bucket)
		}

		return bucket, nil

	default:
		return nil, errors.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

func s3URL(cfg *config.StorageConfig) string {
	query := url.Values{}
	if cfg.Region != "" {
		query.Set("region", cfg.Region)
	}
	if cfg.Endpoint != "" {
		query.Set("endpoint", cfg.Endpoint)
		query.Set("use_path_style", "true")
	}

	u := url.URL{Scheme: "s3", Host: cfg.Bucket, RawQuery: query.Encode()}

	return u.String()
}

func (s *blobStorage) Put(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write blob %s", key)
	}

	return nil
}

func (s *blobStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrBlobNotFound
		}

		return nil, errors.Wrapf(err, "failed to read blob %s", key)
	}

	return data, nil
}

func (s *blobStorage) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat blob %s", key)
	}

	return exists, nil
}

func (s *blobStorage) Ping(ctx context.Context) error {
	accessible, err := s.bucket.IsAccessible(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check bucket")
	}
	if !accessible {
		return errors.New("bucket is not accessible")
	}

	return nil
}

