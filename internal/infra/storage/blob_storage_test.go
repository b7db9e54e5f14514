package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adboard/config"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/service"
	"adboard/internal/errors"
	"adboard/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStorage(t *testing.T) (service.ImageStorage, *blob.Bucket) {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobImageStorage(bucket, newDiscardLogger(), metrics.New()), bucket
}

func TestBlobImageStorage_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newMemStorage(t)
	ctx := context.Background()

	imagePath, err := store.Save(ctx, pngHeader, "photo.PNG", service.ImageNamespaceAds)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(imagePath, "ads/"))
	assert.True(t, strings.HasSuffix(imagePath, ".png"))

	data, err := store.Load(ctx, imagePath)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}

func TestBlobImageStorage_SaveNeverReusesNames(t *testing.T) {
	store, _ := newMemStorage(t)
	ctx := context.Background()

	first, err := store.Save(ctx, pngHeader, "avatar.jpg", service.ImageNamespaceUsers)
	require.NoError(t, err)
	second, err := store.Save(ctx, pngHeader, "avatar.jpg", service.ImageNamespaceUsers)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobImageStorage_SaveDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	require.NoError(t, bucket.WriteAll(ctx, "ads/taken.png", []byte("existing"), nil))

	names := []string{"taken", "taken", "fresh"}
	store := &blobImageStorage{bucket: bucket, logger: newDiscardLogger(), newName: func() string {
		name := names[0]
		names = names[1:]

		return name
	}}

	imagePath, err := store.Save(ctx, pngHeader, "photo.png", service.ImageNamespaceAds)
	require.NoError(t, err)
	assert.Equal(t, "ads/fresh.png", imagePath)

	existing, err := bucket.ReadAll(ctx, "ads/taken.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("existing"), existing)
}

func TestBlobImageStorage_SaveGivesUpOnTakenNames(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	require.NoError(t, bucket.WriteAll(ctx, "users/taken.jpg", []byte("existing"), nil))

	store := &blobImageStorage{bucket: bucket, logger: newDiscardLogger(), newName: func() string { return "taken" }}

	_, err := store.Save(ctx, pngHeader, "avatar.jpg", service.ImageNamespaceUsers)
	assert.ErrorIs(t, err, domainerrors.ErrImageStorageFailed)

	existing, err := bucket.ReadAll(ctx, "users/taken.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("existing"), existing)
}

func TestBlobImageStorage_SaveEmpty(t *testing.T) {
	store, _ := newMemStorage(t)

	_, err := store.Save(context.Background(), nil, "photo.png", service.ImageNamespaceAds)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyImage))
}

func TestBlobImageStorage_SaveUnknownNamespace(t *testing.T) {
	store, _ := newMemStorage(t)

	_, err := store.Save(context.Background(), pngHeader, "photo.png", service.ImageNamespace("tmp"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidImageNamespace))
}

func TestBlobImageStorage_LoadMissing(t *testing.T) {
	store, _ := newMemStorage(t)

	_, err := store.Load(context.Background(), "ads/does-not-exist.png")
	assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
}

func TestBlobImageStorage_LoadRejectsForeignPaths(t *testing.T) {
	store, bucket := newMemStorage(t)
	ctx := context.Background()
	require.NoError(t, bucket.WriteAll(ctx, "secrets/key.pem", []byte("x"), nil))

	for _, p := range []string{"", "secrets/key.pem", "ads/../secrets/key.pem", "../etc/passwd", "ads/", "ads/a/b.png", "/ads/a.png"} {
		_, err := store.Load(ctx, p)
		assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound), "path %q", p)
	}
}

func TestBlobImageStorage_DeleteIsIdempotent(t *testing.T) {
	store, _ := newMemStorage(t)
	ctx := context.Background()

	imagePath, err := store.Save(ctx, pngHeader, "photo.png", service.ImageNamespaceAds)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, imagePath))
	require.NoError(t, store.Delete(ctx, imagePath))
	require.NoError(t, store.Delete(ctx, "ads/never-existed.png"))

	_, err = store.Load(ctx, imagePath)
	assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
}

func TestBlobImageStorage_FileBucketLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "images")
	bucket, err := fileblob.OpenBucket(root, &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobImageStorage(bucket, newDiscardLogger(), nil)
	ctx := context.Background()

	imagePath, err := store.Save(ctx, pngHeader, "photo.jpeg", service.ImageNamespaceUsers)
	require.NoError(t, err)

	onDisk, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(imagePath)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, onDisk)
	assert.Equal(t, ".jpeg", filepath.Ext(imagePath))
}

func TestNew_OpensConfiguredBucket(t *testing.T) {
	cfg := &config.Config{Image: &config.ImageConfig{BucketURL: "mem://"}}

	bucket, err := openBucket(context.Background(), cfg.Image)
	require.NoError(t, err)
	assert.NoError(t, bucket.Close())

	_, err = openBucket(context.Background(), nil)
	assert.Error(t, err)
}

func TestExtensionOf(t *testing.T) {
	cases := map[string]string{
		"photo.png":          ".png",
		"PHOTO.JPG":          ".jpg",
		"archive.tar.gz":     ".gz",
		"no-extension":       "",
		"trailing.":          "",
		"dir.name/file":      "",
		`C:\Users\me\a.webp`: ".webp",
		"evil.p/ng":          "",
		"weird.p%g":          "",
		"":                   "",
	}
	for input, want := range cases {
		assert.Equal(t, want, extensionOf(input), "input %q", input)
	}
}
