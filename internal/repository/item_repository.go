package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	ListByProjectID(ctx context.Context, projectID int64) ([]*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)
	Create(ctx context.Context, item *models.Item) (int64, error)
	Update(ctx context.Context, item *models.Item) error
	Remove(ctx context.Context, id int64) error
}

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, project_id, kind, name, description, features, steps, story, images, source, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*models.Item, error) {
	var i models.Item
	err := row.Scan(&i.ID, &i.ProjectID, &i.Kind, &i.Name, &i.Description, &i.Features,
		&i.Steps, &i.Story, &i.Images, &i.Source, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) ListByProjectID(ctx context.Context, projectID int64) ([]*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE project_id = $1 ORDER BY created_at DESC`
	return r.queryItems(ctx, query, projectID)
}

func (r *itemRepository) List(ctx context.Context) ([]*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`
	return r.queryItems(ctx, query)
}

func (r *itemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) (int64, error) {
	query := `
		INSERT INTO items (project_id, kind, name, description, features, steps, story, images, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, item.ProjectID, item.Kind, item.Name, item.Description,
		item.Features, item.Steps, item.Story, item.Images, item.Source).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET name = $1,
			description = $2,
			features = $3,
			steps = $4,
			story = $5,
			updated_at = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.Features,
		item.Steps, item.Story, time.Now(), item.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *itemRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
