package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

// GenerationService runs the compile -> complete flow for an item and hands
// video renders to the orchestrator with the persona's avatar as seed.
type GenerationService interface {
	GenerateScript(ctx context.Context, itemID int64, platforms []string) (string, error)
	GenerateMediaPrompt(ctx context.Context, itemID int64, mediaType string, platforms []string) (*transfer.MediaPrompt, error)
	SubmitItemVideo(ctx context.Context, itemID int64, prompt string) (string, error)
}

type generationService struct {
	ir       repository.ItemRepository
	pjr      repository.ProjectRepository
	per      repository.PersonaRepository
	cs       CompletionService
	rs       RenderService
	compiler *PromptCompiler
}

func NewGenerationService(
	ir repository.ItemRepository,
	pjr repository.ProjectRepository,
	per repository.PersonaRepository,
	cs CompletionService,
	rs RenderService) GenerationService {
	return &generationService{
		ir:       ir,
		pjr:      pjr,
		per:      per,
		cs:       cs,
		rs:       rs,
		compiler: NewPromptCompiler(),
	}
}

// GenerateScript is the legacy slider-driven script path. A persona without
// traits is treated as carrying neutral mid-range sliders.
func (s *generationService) GenerateScript(ctx context.Context, itemID int64, platforms []string) (string, error) {
	item, persona, err := s.loadContext(ctx, itemID)
	if err != nil {
		return "", err
	}

	if persona == nil {
		persona = &models.Persona{Name: "Dom"}
	}
	if _, ok := persona.Traits(); !ok {
		sliderPersona := *persona
		sliderPersona.PersonalityTraits = models.DefaultPersonalityTraits
		persona = &sliderPersona
	}

	pair := s.compiler.Compile(item, persona, platforms, "")
	script, err := s.cs.Complete(ctx, pair.System, pair.User, transfer.CompletionOptions{})
	if err != nil {
		slog.Error("script generation failed", "item_id", itemID, "error", err)
		return "", err
	}
	return script, nil
}

// GenerateMediaPrompt compiles the render prompt (and caption for images)
// for the requested media type. Image mode requests structured JSON and
// parses it defensively: a malformed response yields empty fields, not an
// error.
func (s *generationService) GenerateMediaPrompt(ctx context.Context, itemID int64, mediaType string, platforms []string) (*transfer.MediaPrompt, error) {
	item, persona, err := s.loadContext(ctx, itemID)
	if err != nil {
		return nil, err
	}

	pair := s.compiler.Compile(item, persona, platforms, mediaType)
	opts := transfer.CompletionOptions{JSONMode: mediaType == models.MediaTypeImage}

	raw, err := s.cs.Complete(ctx, pair.System, pair.User, opts)
	if err != nil {
		slog.Error("media prompt generation failed", "item_id", itemID, "error", err)
		return nil, err
	}

	if mediaType == models.MediaTypeImage {
		mp := ParseMediaPrompt(raw)
		return &mp, nil
	}
	return &transfer.MediaPrompt{Prompt: strings.TrimSpace(raw)}, nil
}

// SubmitItemVideo resolves the item's persona and submits the render with
// the avatar as seed image, requesting persona continuity when one exists.
func (s *generationService) SubmitItemVideo(ctx context.Context, itemID int64, prompt string) (string, error) {
	_, persona, err := s.loadContext(ctx, itemID)
	if err != nil {
		return "", err
	}
	return s.rs.SubmitVideo(ctx, prompt, SeedImageForPersona(persona))
}

func (s *generationService) loadContext(ctx context.Context, itemID int64) (*models.Item, *models.Persona, error) {
	item, err := s.ir.GetByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}

	persona, err := s.resolvePersona(ctx, item.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return item, persona, nil
}

// resolvePersona walks the assignment chain: project persona, then the
// global default, then none (the compiler falls back to a generic identity).
func (s *generationService) resolvePersona(ctx context.Context, projectID int64) (*models.Persona, error) {
	project, err := s.pjr.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project != nil && project.PersonaID.Valid {
		persona, err := s.per.GetByID(ctx, project.PersonaID.Int64)
		if err != nil {
			return nil, err
		}
		if persona != nil {
			return persona, nil
		}
	}

	return s.per.GetDefault(ctx)
}
