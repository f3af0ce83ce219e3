package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecordAppliesFallbacks(t *testing.T) {
	b := FromRecord(map[string]interface{}{
		"name": "Luna",
	})

	require.NotNil(t, b)
	assert.Equal(t, "Luna", b.Name)
	assert.Equal(t, DefaultTone, b.Persona.Tone)
	assert.Equal(t, DefaultDescription, b.Description)
	assert.Empty(t, b.Persona.Traits)
	assert.Empty(t, b.Persona.Quirks)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, VisibilityDraft, b.Visibility)
}

func TestFromRecordNestedPersona(t *testing.T) {
	b := FromRecord(map[string]interface{}{
		"name": "Kai",
		"tone": "flat",
		"persona": map[string]interface{}{
			"tone":   "cheerful",
			"traits": []interface{}{"curious", "patient"},
			"quirks": []interface{}{"hums while thinking"},
		},
		"voice": map[string]interface{}{
			"enabled": true,
			"emotion": "happy",
		},
	})

	assert.Equal(t, "cheerful", b.Persona.Tone)
	assert.Equal(t, []string{"curious", "patient"}, b.Persona.Traits)
	assert.Equal(t, []string{"hums while thinking"}, b.Persona.Quirks)
	assert.True(t, b.Voice.Enabled)
	assert.Equal(t, "happy", b.Voice.Emotion)
}

func TestFromRecordIgnoresWrongTypes(t *testing.T) {
	b := FromRecord(map[string]interface{}{
		"name":   42,
		"traits": "not a list",
	})

	assert.Equal(t, "", b.Name)
	assert.Empty(t, b.Persona.Traits)
}

func TestFieldIsTotal(t *testing.T) {
	b := FromRecord(map[string]interface{}{"name": "Mira", "tone": "warm"})

	assert.Equal(t, "Mira", Field(b, "name", "?"))
	assert.Equal(t, "warm", Field(b, "tone", "?"))
	assert.Equal(t, DefaultDescription, Field(b, "desc", "?"))
	assert.Equal(t, "fallback", Field(b, "scenario", "fallback"))
	assert.Equal(t, "fallback", Field(b, "no_such_field", "fallback"))
	assert.Equal(t, "fallback", Field(nil, "name", "fallback"))
}

func TestNewBotAssignsFreshID(t *testing.T) {
	a := NewBot(Bot{Name: "A"})
	b := NewBot(Bot{Name: "B"})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, DefaultTone, a.Persona.Tone)
}
