package models

import (
	"encoding/json"
	"time"
)

// Persona is the voice/identity configuration driving prompt compilation.
// Two shapes coexist: the narrative shape (Description/VisualDescription)
// and the legacy numeric shape stored as serialized trait blobs.
type Persona struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Description       string    `db:"description" json:"description"`
	VisualDescription string    `db:"visual_description" json:"visual_description"`
	AvatarURL         string    `db:"avatar_url" json:"avatar_url"`
	VoiceSettings     string    `db:"voice_settings" json:"voice_settings"`
	PersonalityTraits string    `db:"personality_traits" json:"personality_traits"`
	AutopilotSettings string    `db:"autopilot_settings" json:"autopilot_settings"`
	IsDefault         bool      `db:"is_default" json:"is_default"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// PersonaTraits are the legacy 1-10 behavioral sliders.
type PersonaTraits struct {
	SassLevel      int `json:"sassLevel"`
	EnergyLevel    int `json:"energyLevel"`
	NostalgiaLevel int `json:"nostalgiaLevel"`
}

type VoiceSettings struct {
	Voice string `json:"voice"`
}

// DefaultPersonalityTraits is the neutral slider blob assumed by the legacy
// script path when a persona carries no traits: all sliders mid-range, so no
// behavioral directive crosses a cut point.
const DefaultPersonalityTraits = `{"sassLevel":5,"energyLevel":5,"nostalgiaLevel":5}`

type AutopilotSettings struct {
	Enabled         bool `json:"enabled"`
	PostsPerDay     int  `json:"postsPerDay"`
	RequireApproval bool `json:"requireApproval"`
}

// Traits reports the legacy slider blob if one is populated. A persona with
// parseable traits selects the numeric prompt strategy.
func (p *Persona) Traits() (*PersonaTraits, bool) {
	if p == nil || p.PersonalityTraits == "" {
		return nil, false
	}
	var traits PersonaTraits
	if err := json.Unmarshal([]byte(p.PersonalityTraits), &traits); err != nil {
		return nil, false
	}
	if traits.SassLevel == 0 && traits.EnergyLevel == 0 && traits.NostalgiaLevel == 0 {
		return nil, false
	}
	return &traits, true
}

// Voice returns the configured voice name, empty when unset or malformed.
func (p *Persona) Voice() string {
	if p == nil || p.VoiceSettings == "" {
		return ""
	}
	var vs VoiceSettings
	if err := json.Unmarshal([]byte(p.VoiceSettings), &vs); err != nil {
		return ""
	}
	return vs.Voice
}
