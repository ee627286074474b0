package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type PersonaService interface {
	Get(ctx context.Context, id int64) (*models.Persona, error)
	List(ctx context.Context) ([]*models.Persona, error)
	Manage(ctx context.Context, id int64, update *transfer.PersonaUpdate) (int64, error)
	UpdateSettings(ctx context.Context, update *transfer.SettingsUpdate) error
	Optimize(ctx context.Context) (*models.PersonaTraits, error)
	SetAvatar(ctx context.Context, id int64, avatarURL string) error
}

type personaService struct {
	per repository.PersonaRepository
}

func NewPersonaService(per repository.PersonaRepository) PersonaService {
	return &personaService{per: per}
}

func (s *personaService) Get(ctx context.Context, id int64) (*models.Persona, error) {
	persona, err := s.per.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, fmt.Errorf("%w: persona %d", ErrNotFound, id)
	}
	return persona, nil
}

func (s *personaService) List(ctx context.Context) ([]*models.Persona, error) {
	return s.per.List(ctx)
}

// Manage creates a persona when id is zero, updates the narrative fields
// otherwise. The first persona ever created becomes the global default.
func (s *personaService) Manage(ctx context.Context, id int64, update *transfer.PersonaUpdate) (int64, error) {
	if update.Name == "" {
		err := errors.New("persona name is required")
		slog.Info(err.Error())
		return 0, err
	}

	if id != 0 {
		persona, err := s.per.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if persona == nil {
			return 0, fmt.Errorf("%w: persona %d", ErrNotFound, id)
		}
		persona.Name = update.Name
		persona.Description = update.Description
		persona.VisualDescription = update.VisualDescription
		if err := s.per.Update(ctx, persona); err != nil {
			return 0, err
		}
		return id, nil
	}

	existing, err := s.per.List(ctx)
	if err != nil {
		return 0, err
	}

	persona := &models.Persona{
		Name:              update.Name,
		Description:       update.Description,
		VisualDescription: update.VisualDescription,
		IsDefault:         len(existing) == 0,
	}
	return s.per.Create(ctx, persona)
}

// UpdateSettings writes the legacy slider settings onto the default persona,
// creating it when none exists yet.
func (s *personaService) UpdateSettings(ctx context.Context, update *transfer.SettingsUpdate) error {
	voiceSettings, _ := json.Marshal(models.VoiceSettings{Voice: update.Voice})
	traits, _ := json.Marshal(models.PersonaTraits{
		SassLevel:      update.SassLevel,
		EnergyLevel:    update.EnergyLevel,
		NostalgiaLevel: update.NostalgiaLevel,
	})
	autopilot, _ := json.Marshal(models.AutopilotSettings{
		Enabled:         update.AutopilotEnabled,
		PostsPerDay:     update.PostsPerDay,
		RequireApproval: update.RequireApproval,
	})

	existing, err := s.per.GetDefault(ctx)
	if err != nil {
		return err
	}

	if existing != nil {
		return s.per.UpdateTraits(ctx, existing.ID, string(voiceSettings), string(traits), string(autopilot))
	}

	name := update.Name
	if name == "" {
		name = "Dom"
	}
	_, err = s.per.Create(ctx, &models.Persona{
		Name:              name,
		VoiceSettings:     string(voiceSettings),
		PersonalityTraits: string(traits),
		AutopilotSettings: string(autopilot),
		IsDefault:         true,
	})
	return err
}

// Optimize nudges the default persona's sliders: sass and nostalgia wander
// randomly, energy is biased upward. Values stay clamped to [1,10]. This is
// a simulated learning step, not real analytics.
func (s *personaService) Optimize(ctx context.Context) (*models.PersonaTraits, error) {
	persona, err := s.per.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, fmt.Errorf("%w: no persona to optimize", ErrNotFound)
	}

	traits, ok := persona.Traits()
	if !ok {
		traits = &models.PersonaTraits{SassLevel: 5, EnergyLevel: 5, NostalgiaLevel: 5}
	}

	next := models.PersonaTraits{
		SassLevel:      clampTrait(traits.SassLevel + randomNudge()),
		EnergyLevel:    clampTrait(traits.EnergyLevel + 1),
		NostalgiaLevel: clampTrait(traits.NostalgiaLevel + randomNudge()),
	}

	raw, _ := json.Marshal(next)
	if err := s.per.UpdateTraits(ctx, persona.ID, persona.VoiceSettings, string(raw), persona.AutopilotSettings); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *personaService) SetAvatar(ctx context.Context, id int64, avatarURL string) error {
	persona, err := s.per.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if persona == nil {
		return fmt.Errorf("%w: persona %d", ErrNotFound, id)
	}
	return s.per.UpdateAvatar(ctx, id, avatarURL)
}

func clampTrait(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

func randomNudge() int {
	if rand.Intn(2) == 0 {
		return -1
	}
	return 1
}
