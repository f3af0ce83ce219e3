package provider

import (
	"context"
	"fmt"
	"time"
)

// Registry manages all providers with unified interfaces
type Registry struct {
	llmProviders   map[string]LLMProvider
	ttsProviders   map[string]TTSProvider
	imageProviders map[string]ImageProvider
}

func NewRegistry() *Registry {
	return &Registry{
		llmProviders:   make(map[string]LLMProvider),
		ttsProviders:   make(map[string]TTSProvider),
		imageProviders: make(map[string]ImageProvider),
	}
}

// LLM Provider Interface
type LLMProvider interface {
	Name() string
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// Status is the TTS collaborator's initialization lifecycle.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusInitializing  Status = "initializing"
	StatusReady         Status = "ready"
	StatusFailed        Status = "failed"
)

// TTS Provider Interface. Initialization runs in the background; callers
// observe it through PollStatus or block on AwaitReady.
type TTSProvider interface {
	Name() string
	Initialize()
	PollStatus() (Status, error)
	AwaitReady(timeout time.Duration) error
	AvailableEmotions() []string
	// GenerateSpeech returns the synthesized audio file path. With
	// dialogueOnly set, only quoted dialogue is spoken and an empty path
	// means the text had no dialogue at all.
	GenerateSpeech(ctx context.Context, text, emotion string, dialogueOnly bool) (string, error)
}

// Image Provider Interface
type ImageProvider interface {
	Name() string
	Txt2Img(ctx context.Context, req *ImageRequest) ([]byte, error)
}

// Data structures
type ChatRequest struct {
	Model       string     `json:"model"`
	Messages    []*Message `json:"messages"`
	Temperature float64    `json:"temperature,omitempty"`
	TopP        float64    `json:"top_p,omitempty"`
	MaxTokens   int        `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"` // system|user|assistant
	Content string `json:"content"`
}

type ChatResponse struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
	Usage        *Usage `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ImageRequest struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Steps          int     `json:"steps,omitempty"`
	CfgScale       float64 `json:"cfg_scale,omitempty"`
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
	Sampler        string  `json:"sampler_name,omitempty"`
}

// Registry methods
func (r *Registry) RegisterLLM(name string, provider LLMProvider) {
	r.llmProviders[name] = provider
}

func (r *Registry) RegisterTTS(name string, provider TTSProvider) {
	r.ttsProviders[name] = provider
}

func (r *Registry) RegisterImage(name string, provider ImageProvider) {
	r.imageProviders[name] = provider
}

func (r *Registry) GetLLM(name string) (LLMProvider, error) {
	if provider, ok := r.llmProviders[name]; ok {
		return provider, nil
	}
	return nil, fmt.Errorf("LLM provider '%s' not found", name)
}

func (r *Registry) GetTTS(name string) (TTSProvider, error) {
	if provider, ok := r.ttsProviders[name]; ok {
		return provider, nil
	}
	return nil, fmt.Errorf("TTS provider '%s' not found", name)
}

func (r *Registry) GetImage(name string) (ImageProvider, error) {
	if provider, ok := r.imageProviders[name]; ok {
		return provider, nil
	}
	return nil, fmt.Errorf("image provider '%s' not found", name)
}

// 服务发现相关方法

// ProviderInfo 表示 Provider 信息
type ProviderInfo struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// GetAllProviders 获取所有 Provider 信息
func (r *Registry) GetAllProviders() []ProviderInfo {
	var providers []ProviderInfo

	for name := range r.llmProviders {
		providers = append(providers, ProviderInfo{
			Name:         name,
			Type:         "llm",
			Status:       "online",
			Capabilities: []string{"chat"},
		})
	}

	for name, p := range r.ttsProviders {
		status, _ := p.PollStatus()
		providers = append(providers, ProviderInfo{
			Name:         name,
			Type:         "tts",
			Status:       string(status),
			Capabilities: []string{"generate_speech", "emotions"},
		})
	}

	for name := range r.imageProviders {
		providers = append(providers, ProviderInfo{
			Name:         name,
			Type:         "image",
			Status:       "online",
			Capabilities: []string{"txt2img"},
		})
	}

	return providers
}

// GetProvidersByType 根据类型获取 Provider 信息
func (r *Registry) GetProvidersByType(providerType string) []ProviderInfo {
	var providers []ProviderInfo
	for _, p := range r.GetAllProviders() {
		if p.Type == providerType {
			providers = append(providers, p)
		}
	}
	return providers
}

// GetProviderInfo 获取特定 Provider 的信息
func (r *Registry) GetProviderInfo(providerType, name string) (*ProviderInfo, error) {
	for _, p := range r.GetProvidersByType(providerType) {
		if p.Name == name {
			info := p
			return &info, nil
		}
	}
	return nil, fmt.Errorf("provider '%s' of type '%s' not found", name, providerType)
}
