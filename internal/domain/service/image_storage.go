package service

import "context"

// ImageNamespace segregates stored assets by resource kind.
type ImageNamespace string

const (
	// ImageNamespaceAds holds ad pictures.
	ImageNamespaceAds ImageNamespace = "ads"
	// ImageNamespaceUsers holds user avatars.
	ImageNamespaceUsers ImageNamespace = "users"
)

// IsValid reports whether the namespace is one of the known ones.
func (n ImageNamespace) IsValid() bool {
	return n == ImageNamespaceAds || n == ImageNamespaceUsers
}

// ImageStorage persists uploaded binary assets and addresses them by relative path.
type ImageStorage interface {
	// Save writes data under the namespace using a fresh random name that keeps the
	// extension of originalFilename, and returns "namespace/name.ext".
	Save(ctx context.Context, data []byte, originalFilename string, namespace ImageNamespace) (string, error)

	// Load returns the bytes stored at path.
	Load(ctx context.Context, path string) ([]byte, error)

	// Delete removes the object at path. Missing objects are not an error.
	Delete(ctx context.Context, path string) error
}
