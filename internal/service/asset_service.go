package service

import (
	"context"
	"fmt"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
)

// AssetService stores uploaded media files: persona avatars and seed images
// for image-to-video renders.
type AssetService interface {
	Upload(ctx context.Context, file []byte) (*models.MediaAsset, error)
	UploadAvatar(ctx context.Context, personaID int64, file []byte) (string, error)
}

type assetService struct {
	mar     repository.MediaAssetRepository
	ps      PersonaService
	storage *StorageService
}

func NewAssetService(mar repository.MediaAssetRepository, ps PersonaService, storage *StorageService) AssetService {
	return &assetService{mar: mar, ps: ps, storage: storage}
}

var allowedUploadTypes = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "webp": {}, "mp4": {}, "mov": {},
}

func (s *assetService) Upload(ctx context.Context, file []byte) (*models.MediaAsset, error) {
	kind, err := filetype.Match(file)
	if err != nil || kind == types.Unknown {
		return nil, fmt.Errorf("unsupported file type")
	}
	if _, ok := allowedUploadTypes[kind.Extension]; !ok {
		return nil, fmt.Errorf("file type %s is not allowed", kind.Extension)
	}

	key, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	if err := s.storage.Upload(ctx, key, file, kind.MIME.Value); err != nil {
		return nil, fmt.Errorf("error uploading file: %w", err)
	}

	asset := &models.MediaAsset{
		FileName: key,
		FileType: kind.MIME.Value,
		FileSize: int64(len(file)),
		FileURL:  s.storage.PublicURL(key),
	}
	id, err := s.mar.Create(ctx, asset)
	if err != nil {
		return nil, err
	}
	asset.ID = id
	return asset, nil
}

// UploadAvatar stores the image and registers it on the persona, which makes
// subsequent video renders request persona continuity.
func (s *assetService) UploadAvatar(ctx context.Context, personaID int64, file []byte) (string, error) {
	asset, err := s.Upload(ctx, file)
	if err != nil {
		return "", err
	}
	if err := s.ps.SetAvatar(ctx, personaID, asset.FileURL); err != nil {
		return "", err
	}
	return asset.FileURL, nil
}
