package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMetricsNeverFails(t *testing.T) {
	assert.Equal(t, ContentMetrics{}, DecodeMetrics(""))
	assert.Equal(t, ContentMetrics{}, DecodeMetrics("not json"))

	m := DecodeMetrics(`{"script":"s","views":100}`)
	assert.Equal(t, "s", m.Script)
	assert.Equal(t, int64(100), m.Views)
}

func TestEffectiveScriptFallsBackToBlob(t *testing.T) {
	withColumn := &GeneratedContent{Script: "column", Metrics: `{"script":"blob"}`}
	assert.Equal(t, "column", withColumn.EffectiveScript())

	legacy := &GeneratedContent{Metrics: `{"script":"blob"}`}
	assert.Equal(t, "blob", legacy.EffectiveScript())

	empty := &GeneratedContent{}
	assert.Empty(t, empty.EffectiveScript())
}

func TestPersonaTraitsShapeDetection(t *testing.T) {
	narrative := &Persona{Description: "Dreamy baker"}
	_, ok := narrative.Traits()
	assert.False(t, ok)

	malformed := &Persona{PersonalityTraits: "{"}
	_, ok = malformed.Traits()
	assert.False(t, ok)

	allZero := &Persona{PersonalityTraits: `{"sassLevel":0,"energyLevel":0,"nostalgiaLevel":0}`}
	_, ok = allZero.Traits()
	assert.False(t, ok)

	slider := &Persona{PersonalityTraits: DefaultPersonalityTraits}
	traits, ok := slider.Traits()
	assert.True(t, ok)
	assert.Equal(t, 5, traits.SassLevel)
}
