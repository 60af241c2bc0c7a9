package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/spec-kit/soundwave/internal/config"
)

// CloudinaryUploader stores assets on Cloudinary. Covers go to the images
// folder; tracks are uploaded as the "video" resource type, which is how the
// host handles audio.
type CloudinaryUploader struct {
	client     *cloudinary.Cloudinary
	baseFolder string
}

// NewCloudinaryUploader builds a client from config. Missing credentials are
// a startup error: the upload endpoints cannot function without the host.
func NewCloudinaryUploader(cfg config.MediaConfig) (*CloudinaryUploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are required")
	}
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{client: client, baseFolder: cfg.BaseFolder}, nil
}

// UploadImage stores a cover image.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, r io.Reader) (*Asset, error) {
	return u.upload(ctx, r, "covers", "image")
}

// UploadAudio stores a track.
func (u *CloudinaryUploader) UploadAudio(ctx context.Context, r io.Reader) (*Asset, error) {
	return u.upload(ctx, r, "tracks", "video")
}

func (u *CloudinaryUploader) upload(ctx context.Context, r io.Reader, folder, resourceType string) (*Asset, error) {
	resp, err := u.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       fmt.Sprintf("%s/%s", u.baseFolder, folder),
		PublicID:     uuid.NewString(),
		ResourceType: resourceType,
	})
	if err != nil {
		return nil, err
	}
	return &Asset{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}
