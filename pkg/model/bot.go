package model

import (
	"time"

	"github.com/google/uuid"
)

// Field returns the named string field of a bot, or def when the field is
// absent or empty. It is total: any field name is answerable and a nil bot
// yields def. Callers never need to care how the bot record was produced.
func Field(b *Bot, name, def string) string {
	if b == nil {
		return def
	}
	var v string
	switch name {
	case "id":
		v = b.ID
	case "name":
		v = b.Name
	case "emoji":
		v = b.Emoji
	case "desc", "description":
		v = b.Description
	case "tone":
		v = b.Persona.Tone
	case "speech_pattern":
		v = b.Persona.SpeechPattern
	case "greeting":
		v = b.Persona.Greeting
	case "system_rules":
		v = b.SystemRules
	case "scenario":
		v = b.Scenario
	case "emotion":
		v = b.Voice.Emotion
	case "visibility":
		v = b.Visibility
	}
	if v == "" {
		return def
	}
	return v
}

// FromRecord normalizes a loosely-typed bot record into a Bot. Legacy and
// externally supplied bots arrive as maps with missing or null fields; all
// fallback handling happens here, once, so the rest of the system only ever
// sees a well-formed Bot.
func FromRecord(rec map[string]interface{}) *Bot {
	b := &Bot{
		ID:          stringField(rec, "id"),
		Name:        stringField(rec, "name"),
		Emoji:       stringField(rec, "emoji"),
		Description: stringField(rec, "desc"),
		SystemRules: stringField(rec, "system_rules"),
		Scenario:    stringField(rec, "scenario"),
		Visibility:  stringField(rec, "visibility"),
		CreatedAt:   time.Now(),
		Persona: Persona{
			Tone:          stringField(rec, "tone"),
			SpeechPattern: stringField(rec, "speech_pattern"),
			Traits:        stringSliceField(rec, "traits"),
			Quirks:        stringSliceField(rec, "quirks"),
			Greeting:      stringField(rec, "greeting"),
		},
	}

	if b.Description == "" {
		b.Description = stringField(rec, "description")
	}

	// 嵌套的 persona 子对象优先于顶层字段
	if p, ok := rec["persona"].(map[string]interface{}); ok {
		if v := stringField(p, "tone"); v != "" {
			b.Persona.Tone = v
		}
		if v := stringField(p, "speech_pattern"); v != "" {
			b.Persona.SpeechPattern = v
		}
		if v := stringSliceField(p, "traits"); v != nil {
			b.Persona.Traits = v
		}
		if v := stringSliceField(p, "quirks"); v != nil {
			b.Persona.Quirks = v
		}
		if v := stringField(p, "greeting"); v != "" {
			b.Persona.Greeting = v
		}
	}

	if v, ok := rec["voice"].(map[string]interface{}); ok {
		enabled, _ := v["enabled"].(bool)
		b.Voice = VoiceSettings{
			Enabled: enabled,
			Emotion: stringField(v, "emotion"),
		}
	}

	applyDefaults(b)
	return b
}

// NewBot builds a well-formed Bot from a strict record, assigning a fresh ID.
func NewBot(b Bot) *Bot {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	applyDefaults(&b)
	return &b
}

func applyDefaults(b *Bot) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Persona.Tone == "" {
		b.Persona.Tone = DefaultTone
	}
	if b.Description == "" {
		b.Description = DefaultDescription
	}
	if b.Persona.Traits == nil {
		b.Persona.Traits = []string{}
	}
	if b.Persona.Quirks == nil {
		b.Persona.Quirks = []string{}
	}
	if b.Visibility == "" {
		b.Visibility = VisibilityDraft
	}
}

func stringField(rec map[string]interface{}, key string) string {
	if rec == nil {
		return ""
	}
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

func stringSliceField(rec map[string]interface{}, key string) []string {
	if rec == nil {
		return nil
	}
	switch v := rec[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		// JSON 解码得到 []interface{}，逐个转换
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
