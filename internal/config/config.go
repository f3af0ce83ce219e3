package config

import "github.com/zeromicro/go-zero/rest"

type Config struct {
	rest.RestConf

	// 对话配置
	Chat ChatConfig `json:"chat,omitempty"`

	// Provider 配置
	Providers ProviderConfig `json:"providers,omitempty"`
}

type ChatConfig struct {
	// LLMProvider 选择注册表中的 LLM Provider，默认 ollama
	LLMProvider string `json:"llmProvider,omitempty"`
	// Model 传给 Provider 的模型名
	Model string `json:"model,omitempty"`
	// MemoryWindow 是 memory window 的消息数上限 W
	MemoryWindow int     `json:"memoryWindow,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
	MaxTokens    int     `json:"maxTokens,omitempty"`
}

type ProviderConfig struct {
	// 本地 LLM Provider 配置
	Ollama OllamaConfig       `json:"ollama,omitempty"`
	OpenAI OpenAICompatConfig `json:"openai,omitempty"`

	// TTS / 图片生成 Provider 配置
	TTS   TTSConfig   `json:"tts,omitempty"`
	Image ImageConfig `json:"image,omitempty"`
}

type OllamaConfig struct {
	BaseURL string `json:"baseUrl,omitempty"`
	Model   string `json:"model,omitempty"`
}

type OpenAICompatConfig struct {
	APIKey  string `json:"apiKey,omitempty"`
	BaseURL string `json:"baseUrl,omitempty"`
	Model   string `json:"model,omitempty"`
}

type TTSConfig struct {
	Enabled  bool   `json:"enabled,omitempty"`
	BaseURL  string `json:"baseUrl,omitempty"`
	AudioDir string `json:"audioDir,omitempty"` // 合成的音频文件目录
}

type ImageConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	BaseURL string `json:"baseUrl,omitempty"` // Stable Diffusion WebUI 地址
}
