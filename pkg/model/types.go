package model

import "time"

// Bot represents a configured persona that drives one conversational agent
type Bot struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Emoji       string        `json:"emoji"`
	Description string        `json:"description"`
	Persona     Persona       `json:"persona"`
	SystemRules string        `json:"systemRules"`
	Scenario    string        `json:"scenario,omitempty"`
	Voice       VoiceSettings `json:"voice"`
	Visibility  string        `json:"visibility"` // draft|published
	CreatedAt   time.Time     `json:"createdAt"`
}

// Persona describes how a bot speaks and behaves
type Persona struct {
	Tone          string   `json:"tone"`
	Traits        []string `json:"traits"`
	SpeechPattern string   `json:"speechPattern"`
	Quirks        []string `json:"quirks"`
	Greeting      string   `json:"greeting"`
}

// VoiceSettings controls optional speech synthesis for a bot
type VoiceSettings struct {
	Enabled bool   `json:"enabled"`
	Emotion string `json:"emotion"` // must be reported by the TTS provider
}

// Message represents a single chat message
type Message struct {
	Role     string `json:"role"` // user|assistant
	Content  string `json:"content"`
	Greeting bool   `json:"greeting,omitempty"`
}

// GroupMessage is one entry of a group session's shared display log
type GroupMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Speaker string `json:"speaker,omitempty"` // bot name, empty for the user
}

// AudioState is the lifecycle of one cached speech synthesis
type AudioState string

const (
	AudioAbsent     AudioState = "absent"
	AudioGenerating AudioState = "generating"
	AudioReady      AudioState = "ready"
)

// Constants for roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Constants for bot visibility
const (
	VisibilityDraft     = "draft"
	VisibilityPublished = "published"
)

// Fallbacks for absent persona fields
const (
	DefaultTone        = "neutral"
	DefaultDescription = "A helpful AI assistant"
)
