package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

// ScheduledPostRow is the calendar/queue projection: a scheduled post joined
// to its content, item, and project.
type ScheduledPostRow struct {
	PostID        int64     `json:"post_id"`
	ContentID     int64     `json:"content_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Platform      string    `json:"platform"`
	MediaType     string    `json:"media_type"`
	URL           string    `json:"url"`
	Script        string    `json:"script"`
	Metrics       string    `json:"-"`
	ItemName      string    `json:"item_name"`
	ProjectEmoji  string    `json:"project_emoji"`
}

type PostRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (int64, error)
	Remove(ctx context.Context, id int64) error
	ListScheduled(ctx context.Context, from, to time.Time) ([]*ScheduledPostRow, error)
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT id, content_id, scheduled_time, status, created_at, updated_at FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.Post
	err := row.Scan(&post.ID, &post.ContentID, &post.ScheduledTime, &post.Status, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (content_id, scheduled_time, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, post.ContentID, post.ScheduledTime, post.Status).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *postRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) ListScheduled(ctx context.Context, from, to time.Time) ([]*ScheduledPostRow, error) {
	query := `
		SELECT p.id, p.content_id, p.scheduled_time, c.platform, c.type, c.url, c.script, c.performance_metrics, i.name, pr.emoji
		FROM posts p
		JOIN generated_contents c ON c.id = p.content_id
		JOIN items i ON i.id = c.item_id
		JOIN projects pr ON pr.id = i.project_id
		WHERE p.status = $1 AND p.scheduled_time >= $2 AND p.scheduled_time < $3
		ORDER BY p.scheduled_time ASC
	`
	rows, err := r.db.QueryContext(ctx, query, models.PostStatusScheduled, from, to)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var entries []*ScheduledPostRow
	for rows.Next() {
		var e ScheduledPostRow
		err := rows.Scan(&e.PostID, &e.ContentID, &e.ScheduledTime, &e.Platform, &e.MediaType,
			&e.URL, &e.Script, &e.Metrics, &e.ItemName, &e.ProjectEmoji)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, nil
}
