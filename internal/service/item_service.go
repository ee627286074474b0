package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type ItemService interface {
	Create(ctx context.Context, ic *transfer.ItemCreation) (int64, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context, projectID int64) ([]*models.Item, error)
	Update(ctx context.Context, id int64, ic *transfer.ItemCreation) error
	Remove(ctx context.Context, id int64) error
}

type itemService struct {
	ir  repository.ItemRepository
	pjr repository.ProjectRepository
}

func NewItemService(ir repository.ItemRepository, pjr repository.ProjectRepository) ItemService {
	return &itemService{ir: ir, pjr: pjr}
}

func (s *itemService) Create(ctx context.Context, ic *transfer.ItemCreation) (int64, error) {
	if ic.Name == "" || ic.ProjectID == 0 {
		err := errors.New("name and project are required")
		slog.Info(err.Error())
		return 0, err
	}

	project, err := s.pjr.GetByID(ctx, ic.ProjectID)
	if err != nil {
		return 0, err
	}
	if project == nil {
		return 0, fmt.Errorf("%w: project %d", ErrNotFound, ic.ProjectID)
	}

	kind := ic.Kind
	if kind != models.ItemKindRecipe && kind != models.ItemKindProduct {
		kind = models.ItemKindRecipe
	}

	item := &models.Item{
		ProjectID:   ic.ProjectID,
		Kind:        kind,
		Name:        ic.Name,
		Description: ic.Description,
		Features:    encodeLines(ic.Features),
		Steps:       encodeLines(ic.Steps),
		Story:       ic.Story,
		Images:      "[]",
		Source:      "Manual Entry",
	}
	return s.ir.Create(ctx, item)
}

func (s *itemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.ir.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, projectID int64) ([]*models.Item, error) {
	if projectID != 0 {
		return s.ir.ListByProjectID(ctx, projectID)
	}
	return s.ir.List(ctx)
}

func (s *itemService) Update(ctx context.Context, id int64, ic *transfer.ItemCreation) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	item.Name = ic.Name
	item.Description = ic.Description
	item.Features = encodeLines(ic.Features)
	item.Steps = encodeLines(ic.Steps)
	item.Story = ic.Story

	return s.ir.Update(ctx, item)
}

func (s *itemService) Remove(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.ir.Remove(ctx, id)
}

// encodeLines turns newline-separated form text into the serialized list the
// store carries. Blank lines are dropped.
func encodeLines(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if lines == nil {
		return "[]"
	}
	encoded, err := json.Marshal(lines)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}
