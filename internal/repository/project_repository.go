package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Create(ctx context.Context, project *models.Project) (int64, error)
	Update(ctx context.Context, project *models.Project) error
	Remove(ctx context.Context, id int64) error
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, title, description, emoji, persona_id, autopilot_enabled, posts_per_day, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Emoji, &p.PersonaID,
		&p.AutopilotEnabled, &p.PostsPerDay, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) (int64, error) {
	query := `
		INSERT INTO projects (title, description, emoji, persona_id, autopilot_enabled, posts_per_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, project.Title, project.Description, project.Emoji,
		project.PersonaID, project.AutopilotEnabled, project.PostsPerDay).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1,
			description = $2,
			persona_id = $3,
			autopilot_enabled = $4,
			posts_per_day = $5,
			updated_at = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query, project.Title, project.Description, project.PersonaID,
		project.AutopilotEnabled, project.PostsPerDay, time.Now(), project.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// Remove relies on the store's cascade to delete the project's items.
func (r *projectRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
