package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

type MediaAssetRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.MediaAsset, error)
}

type mediaAssetRepository struct {
	db *sql.DB
}

func NewMediaAssetRepository(db *sql.DB) MediaAssetRepository {
	return &mediaAssetRepository{db: db}
}

func (r *mediaAssetRepository) Create(ctx context.Context, asset *models.MediaAsset) (int64, error) {
	query := `
		INSERT INTO media_assets (file_name, file_type, file_size, file_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, asset.FileName, asset.FileType, asset.FileSize, asset.FileURL).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *mediaAssetRepository) GetByID(ctx context.Context, id int64) (*models.MediaAsset, error) {
	query := `SELECT id, file_name, file_type, file_size, file_url, created_at FROM media_assets WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var asset models.MediaAsset
	err := row.Scan(&asset.ID, &asset.FileName, &asset.FileType, &asset.FileSize, &asset.FileURL, &asset.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &asset, nil
}
