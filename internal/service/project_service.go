package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type ProjectService interface {
	Create(ctx context.Context, pc *transfer.ProjectCreation) (int64, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, id int64, pc *transfer.ProjectCreation) error
	Remove(ctx context.Context, id int64) error
}

type projectService struct {
	pjr repository.ProjectRepository
}

func NewProjectService(pjr repository.ProjectRepository) ProjectService {
	return &projectService{pjr: pjr}
}

// emojiKeywords maps title keywords to the project's cover emoji, first
// match wins in declaration order.
var emojiKeywords = []struct {
	keyword string
	emoji   string
}{
	{"pasta", "🍝"},
	{"gravy", "🍝"},
	{"pizza", "🍕"},
	{"bread", "🍞"},
	{"cake", "🍰"},
	{"dessert", "🍰"},
	{"cookie", "🍪"},
	{"grill", "🍖"},
	{"bbq", "🍖"},
	{"soup", "🍲"},
	{"salad", "🥗"},
	{"fish", "🐟"},
	{"seafood", "🐟"},
	{"drink", "🍹"},
	{"cocktail", "🍹"},
	{"breakfast", "🥞"},
	{"cookbook", "📖"},
	{"book", "📖"},
}

const defaultProjectEmoji = "🍳"

func emojiForTitle(title string) string {
	lowered := strings.ToLower(title)
	for _, entry := range emojiKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.emoji
		}
	}
	return defaultProjectEmoji
}

func (s *projectService) Create(ctx context.Context, pc *transfer.ProjectCreation) (int64, error) {
	if pc.Title == "" {
		err := errors.New("title is required")
		slog.Info(err.Error())
		return 0, err
	}

	project := &models.Project{
		Title:            pc.Title,
		Description:      pc.Description,
		Emoji:            emojiForTitle(pc.Title),
		AutopilotEnabled: pc.AutopilotEnabled,
		PostsPerDay:      pc.PostsPerDay,
	}
	if pc.PersonaID != 0 {
		project.PersonaID = sql.NullInt64{Int64: pc.PersonaID, Valid: true}
	}

	return s.pjr.Create(ctx, project)
}

func (s *projectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.pjr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.pjr.List(ctx)
}

func (s *projectService) Update(ctx context.Context, id int64, pc *transfer.ProjectCreation) error {
	project, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	project.Title = pc.Title
	project.Description = pc.Description
	project.AutopilotEnabled = pc.AutopilotEnabled
	project.PostsPerDay = pc.PostsPerDay
	project.PersonaID = sql.NullInt64{}
	if pc.PersonaID != 0 {
		project.PersonaID = sql.NullInt64{Int64: pc.PersonaID, Valid: true}
	}

	return s.pjr.Update(ctx, project)
}

func (s *projectService) Remove(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.pjr.Remove(ctx, id)
}
