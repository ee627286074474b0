package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

type PostingHistoryRepository interface {
	Create(ctx context.Context, history *models.PostingHistory) (int64, error)
	ListDelivered(ctx context.Context) ([]*models.PostingHistory, error)
}

type postingHistoryRepository struct {
	db *sql.DB
}

func NewPostingHistoryRepository(db *sql.DB) PostingHistoryRepository {
	return &postingHistoryRepository{db: db}
}

func (r *postingHistoryRepository) Create(ctx context.Context, history *models.PostingHistory) (int64, error) {
	query := `
		INSERT INTO posting_history (post_id, content_id, platform, platform_post_id, error_message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, history.PostID, history.ContentID, history.Platform,
		history.PlatformPostID, history.ErrorMessage).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

// ListDelivered returns attempts that reached the platform (no error and a
// platform post id to fetch metrics for).
func (r *postingHistoryRepository) ListDelivered(ctx context.Context) ([]*models.PostingHistory, error) {
	query := `
		SELECT id, post_id, content_id, platform, platform_post_id, error_message, created_at
		FROM posting_history
		WHERE error_message = '' AND platform_post_id != ''
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var histories []*models.PostingHistory
	for rows.Next() {
		var h models.PostingHistory
		err := rows.Scan(&h.ID, &h.PostID, &h.ContentID, &h.Platform, &h.PlatformPostID, &h.ErrorMessage, &h.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		histories = append(histories, &h)
	}
	return histories, nil
}
