package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

type PersonaRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Persona, error)
	GetDefault(ctx context.Context) (*models.Persona, error)
	List(ctx context.Context) ([]*models.Persona, error)
	Create(ctx context.Context, persona *models.Persona) (int64, error)
	Update(ctx context.Context, persona *models.Persona) error
	UpdateTraits(ctx context.Context, id int64, voiceSettings, personalityTraits, autopilotSettings string) error
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) error
}

type personaRepository struct {
	db *sql.DB
}

func NewPersonaRepository(db *sql.DB) PersonaRepository {
	return &personaRepository{db: db}
}

const personaColumns = `id, name, description, visual_description, avatar_url, voice_settings, personality_traits, autopilot_settings, is_default, created_at, updated_at`

func scanPersona(row interface{ Scan(...any) error }) (*models.Persona, error) {
	var p models.Persona
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.VisualDescription, &p.AvatarURL,
		&p.VoiceSettings, &p.PersonalityTraits, &p.AutopilotSettings, &p.IsDefault,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personaRepository) GetByID(ctx context.Context, id int64) (*models.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM personas WHERE id = $1`
	persona, err := scanPersona(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return persona, nil
}

// GetDefault returns the persona used when a project has no explicit
// assignment. At most one default row exists; falls back to the oldest
// persona when none is flagged.
func (r *personaRepository) GetDefault(ctx context.Context) (*models.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM personas ORDER BY is_default DESC, created_at ASC LIMIT 1`
	persona, err := scanPersona(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return persona, nil
}

func (r *personaRepository) List(ctx context.Context) ([]*models.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM personas ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var personas []*models.Persona
	for rows.Next() {
		persona, err := scanPersona(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		personas = append(personas, persona)
	}
	return personas, nil
}

func (r *personaRepository) Create(ctx context.Context, persona *models.Persona) (int64, error) {
	query := `
		INSERT INTO personas (name, description, visual_description, avatar_url, voice_settings, personality_traits, autopilot_settings, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, persona.Name, persona.Description, persona.VisualDescription,
		persona.AvatarURL, persona.VoiceSettings, persona.PersonalityTraits, persona.AutopilotSettings,
		persona.IsDefault).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *personaRepository) Update(ctx context.Context, persona *models.Persona) error {
	query := `
		UPDATE personas
		SET name = $1,
			description = $2,
			visual_description = $3,
			updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, persona.Name, persona.Description, persona.VisualDescription, time.Now(), persona.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *personaRepository) UpdateTraits(ctx context.Context, id int64, voiceSettings, personalityTraits, autopilotSettings string) error {
	query := `
		UPDATE personas
		SET voice_settings = $1,
			personality_traits = $2,
			autopilot_settings = $3,
			updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, voiceSettings, personalityTraits, autopilotSettings, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *personaRepository) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	query := `UPDATE personas SET avatar_url = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, avatarURL, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
