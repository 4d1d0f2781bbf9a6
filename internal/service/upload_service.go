package service

import (
	"context"
	"fmt"
	"io"

	"github.com/SHAMIKH-ANWAR/Articulate-form/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

// UploadService stores an uploaded image with the media host and returns
// its public URL.
type UploadService interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (string, error)
}

type cloudinaryUploadService struct {
	cld *cloudinary.Cloudinary
}

// NewUploadService builds a Cloudinary-backed uploader from explicit
// credentials; nothing reads the ambient CLOUDINARY_URL.
func NewUploadService(cfg *config.Config) (UploadService, error) {
	cld, err := cloudinary.NewFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &cloudinaryUploadService{cld: cld}, nil
}

func (s *cloudinaryUploadService) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: "form-builder",
	})
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("UploadImage: cloudinary upload failed")
		return "", fmt.Errorf("uploading %s: %w", filename, err)
	}
	if resp.Error.Message != "" {
		log.Error().Str("filename", filename).Str("cloudinary_error", resp.Error.Message).Msg("UploadImage: cloudinary rejected upload")
		return "", fmt.Errorf("uploading %s: %s", filename, resp.Error.Message)
	}
	return resp.SecureURL, nil
}
