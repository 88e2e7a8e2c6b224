package media

import (
	"context"
	"path"
	"strings"
)

// Storage is the boundary to the external object-storage service. Upload
// accepts raw image data and returns a durable public URL; Delete removes an
// asset by its extracted identifier.
// The interface allows for easy mocking in tests.
type Storage interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, assetID string) error
}

// AssetIDFromURL extracts the asset identifier from a stored media URL: the
// final path segment with its extension stripped.
func AssetIDFromURL(url string) string {
	segment := path.Base(url)
	if i := strings.LastIndex(segment, "."); i > 0 {
		segment = segment[:i]
	}
	return segment
}
