// Package storage implements the image store on top of a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"adboard/config"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/service"
	"adboard/internal/errors"
	"adboard/internal/infra/metrics"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	// Register the mem:// and s3:// URL openers used by image.bucketUrl.
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const maxNameAttempts = 3

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

type blobImageStorage struct {
	bucket  *blob.Bucket
	logger  *slog.Logger
	metrics *metrics.Metrics
	newName func() string
}

// New opens the configured bucket and returns the image store. The bucket is
// closed when the application stops.
func New(params Params) (service.ImageStorage, error) {
	bucket, err := openBucket(params.Ctx, params.Config.Image)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Image store ready",
		slog.String("directory", params.Config.Image.UploadDirectory),
		slog.String("bucket_url", params.Config.Image.BucketURL),
	)

	return NewBlobImageStorage(bucket, params.Logger, params.Metrics), nil
}

// NewBlobImageStorage wraps an already opened bucket.
func NewBlobImageStorage(bucket *blob.Bucket, logger *slog.Logger, m *metrics.Metrics) service.ImageStorage {
	return &blobImageStorage{
		bucket:  bucket,
		logger:  logger,
		metrics: m,
		newName: uuid.NewString,
	}
}

func openBucket(ctx context.Context, cfg *config.ImageConfig) (*blob.Bucket, error) {
	if cfg == nil {
		return nil, errors.New("image configuration is missing")
	}

	if cfg.BucketURL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}

		return bucket, nil
	}

	// CreateDir provisions the root; fileblob creates namespace directories on write.
	bucket, err := fileblob.OpenBucket(cfg.UploadDirectory, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload directory %s", cfg.UploadDirectory)
	}

	return bucket, nil
}

// Save stores data under a fresh random name and returns its relative path.
func (s *blobImageStorage) Save(ctx context.Context, data []byte, originalFilename string, namespace service.ImageNamespace) (string, error) {
	if len(data) == 0 {
		return "", errors.WithStack(domainerrors.ErrEmptyImage)
	}
	if !namespace.IsValid() {
		return "", domainerrors.ErrInvalidImageNamespace.WrapMessage(string(namespace))
	}

	key, err := s.writeNew(ctx, namespace, extensionOf(originalFilename), data)
	if err != nil {
		s.metrics.ObserveImageOperation("save", string(namespace), 0, err)

		return "", err
	}

	s.metrics.ObserveImageOperation("save", string(namespace), len(data), nil)
	s.logger.DebugContext(ctx, "Image saved", slog.String("path", key), slog.Int("size", len(data)))

	return key, nil
}

// writeNew writes data under a fresh name. The write is conditional on the key
// not existing, so an existing object is never replaced; a taken name is retried.
func (s *blobImageStorage) writeNew(ctx context.Context, namespace service.ImageNamespace, ext string, data []byte) (string, error) {
	opts := &blob.WriterOptions{
		ContentType: http.DetectContentType(data),
		IfNotExist:  true,
	}

	for range maxNameAttempts {
		key := string(namespace) + "/" + s.newName() + ext

		err := s.bucket.WriteAll(ctx, key, data, opts)
		if err == nil {
			return key, nil
		}
		if gcerrors.Code(err) != gcerrors.FailedPrecondition {
			return "", errors.Wrap(domainerrors.ErrImageStorageFailed.WithDetails(err.Error()), "write image")
		}

		s.logger.WarnContext(ctx, "Image name already taken", slog.String("path", key))
	}

	return "", errors.Wrap(domainerrors.ErrImageStorageFailed, "could not allocate a unique image name")
}

// Load returns the bytes stored at imagePath.
func (s *blobImageStorage) Load(ctx context.Context, imagePath string) ([]byte, error) {
	namespace, ok := parseKey(imagePath)
	if !ok {
		return nil, domainerrors.ErrImageNotFound.WrapMessage("invalid image path")
	}

	data, err := s.bucket.ReadAll(ctx, imagePath)
	if err != nil {
		s.metrics.ObserveImageOperation("load", namespace, 0, err)
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrImageNotFound.WrapMessage(imagePath)
		}

		return nil, errors.Wrap(domainerrors.ErrImageStorageFailed.WithDetails(err.Error()), "read image")
	}

	s.metrics.ObserveImageOperation("load", namespace, len(data), nil)

	return data, nil
}

// Delete removes the object at imagePath; missing objects are ignored.
func (s *blobImageStorage) Delete(ctx context.Context, imagePath string) error {
	namespace, ok := parseKey(imagePath)
	if !ok {
		// Nothing this store could have written lives there.
		return nil
	}

	err := s.bucket.Delete(ctx, imagePath)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		s.metrics.ObserveImageOperation("delete", namespace, 0, err)

		return errors.Wrap(domainerrors.ErrImageStorageFailed.WithDetails(err.Error()), "delete image")
	}

	s.metrics.ObserveImageOperation("delete", namespace, 0, nil)

	return nil
}

// extensionOf returns the lower-cased extension after the final dot of the base
// name, including the dot, or an empty string when there is none or it is unsafe.
func extensionOf(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return ""
	}

	ext := strings.ToLower(base[idx+1:])
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return "." + ext
}

// parseKey validates a relative image path and returns its namespace.
func parseKey(imagePath string) (string, bool) {
	if imagePath == "" || path.Clean(imagePath) != imagePath {
		return "", false
	}

	namespace, name, found := strings.Cut(imagePath, "/")
	if !found || name == "" || strings.Contains(name, "/") || name == "." || name == ".." {
		return "", false
	}

	if !service.ImageNamespace(namespace).IsValid() {
		return "", false
	}

	return namespace, true
}
