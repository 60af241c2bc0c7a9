package media

import (
	"context"
	"io"
)

// Asset is a stored media object on the external host.
type Asset struct {
	URL      string
	PublicID string
}

// Uploader stores binary blobs on the media host and returns their URLs.
// Audio and images land in separate folders.
type Uploader interface {
	UploadImage(ctx context.Context, r io.Reader) (*Asset, error)
	UploadAudio(ctx context.Context, r io.Reader) (*Asset, error)
}
