package usecase

import (
	"context"

	"storeradar/internal/domain/service"
)

// UploadOutput describes a stored upload.
type UploadOutput struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadUsecase stores and serves user uploaded images.
type UploadUsecase interface {
	UploadImage(ctx context.Context, kind, filename string, content []byte) (*UploadOutput, error)
	Open(ctx context.Context, kind, name string) (*service.StoredObject, error)
}
