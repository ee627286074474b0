package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

type ContentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.GeneratedContent, error)
	ListByItemID(ctx context.Context, itemID int64) ([]*models.GeneratedContent, error)
	Create(ctx context.Context, content *models.GeneratedContent) (int64, error)
	UpdateStatus(ctx context.Context, status string, id int64) error
	UpdateScript(ctx context.Context, script, metrics string, id int64) error
	UpdateURL(ctx context.Context, url string, id int64) error
	UpdateMetrics(ctx context.Context, metrics string, id int64) error
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

const contentColumns = `id, item_id, type, url, platform, script, status, performance_metrics, created_at, updated_at`

func scanContent(row interface{ Scan(...any) error }) (*models.GeneratedContent, error) {
	var c models.GeneratedContent
	err := row.Scan(&c.ID, &c.ItemID, &c.Type, &c.URL, &c.Platform, &c.Script,
		&c.Status, &c.Metrics, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id int64) (*models.GeneratedContent, error) {
	query := `SELECT ` + contentColumns + ` FROM generated_contents WHERE id = $1`
	content, err := scanContent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return content, nil
}

func (r *contentRepository) ListByItemID(ctx context.Context, itemID int64) ([]*models.GeneratedContent, error) {
	query := `SELECT ` + contentColumns + ` FROM generated_contents WHERE item_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var contents []*models.GeneratedContent
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, nil
}

func (r *contentRepository) Create(ctx context.Context, content *models.GeneratedContent) (int64, error) {
	query := `
		INSERT INTO generated_contents (item_id, type, url, platform, script, status, performance_metrics)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, content.ItemID, content.Type, content.URL,
		content.Platform, content.Script, content.Status, content.Metrics).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *contentRepository) UpdateStatus(ctx context.Context, status string, id int64) error {
	query := `UPDATE generated_contents SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) UpdateScript(ctx context.Context, script, metrics string, id int64) error {
	query := `UPDATE generated_contents SET script = $1, performance_metrics = $2, updated_at = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, script, metrics, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) UpdateURL(ctx context.Context, url string, id int64) error {
	query := `UPDATE generated_contents SET url = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, url, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) UpdateMetrics(ctx context.Context, metrics string, id int64) error {
	query := `UPDATE generated_contents SET performance_metrics = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, metrics, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
