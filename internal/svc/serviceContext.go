package svc

import (
	"os"

	"github.com/fablebox/FableTalk/internal/bots"
	"github.com/fablebox/FableTalk/internal/config"
	"github.com/fablebox/FableTalk/internal/conversation"
	"github.com/fablebox/FableTalk/internal/gateway"
	"github.com/fablebox/FableTalk/pkg/provider"
)

type ServiceContext struct {
	Config   config.Config
	Registry *provider.Registry

	Bots    *bots.Roster
	Store   *conversation.Store
	Cache   *conversation.AudioCache
	Engine  *conversation.Engine
	Groups  *conversation.GroupStore
	Gateway *gateway.Gateway
}

func NewServiceContext(c config.Config) *ServiceContext {
	// 创建 Provider Registry
	registry := provider.NewRegistry()

	// 注册 Ollama LLM Provider（本地默认）
	ollamaURL := c.Providers.Ollama.BaseURL
	if ollamaURL == "" {
		ollamaURL = os.Getenv("OLLAMA_BASE_URL")
	}
	ollamaProvider := provider.NewOllamaProvider(ollamaURL, c.Providers.Ollama.Model)
	registry.RegisterLLM("ollama", ollamaProvider)

	// 注册 OpenAI 兼容 LLM Provider（可选）
	openaiKey := c.Providers.OpenAI.APIKey
	if openaiKey == "" {
		openaiKey = os.Getenv("OPENAI_API_KEY")
	}
	openaiURL := c.Providers.OpenAI.BaseURL
	if openaiURL == "" {
		openaiURL = os.Getenv("OPENAI_BASE_URL")
	}
	if openaiKey != "" || openaiURL != "" {
		openaiProvider := provider.NewOpenAICompatProvider(openaiKey, openaiURL, c.Providers.OpenAI.Model)
		registry.RegisterLLM("openai", openaiProvider)
	}

	// 注册本地 TTS Provider，模型加载放到后台
	var tts provider.TTSProvider
	if c.Providers.TTS.Enabled {
		ttsProvider := provider.NewLocalTTSProvider(c.Providers.TTS.BaseURL, c.Providers.TTS.AudioDir)
		ttsProvider.Initialize()
		registry.RegisterTTS("local", ttsProvider)
		tts = ttsProvider
	}

	// 注册图片生成 Provider（可选）
	if c.Providers.Image.Enabled {
		imageProvider := provider.NewSDWebUIProvider(c.Providers.Image.BaseURL)
		registry.RegisterImage("sd-webui", imageProvider)
	}

	// 选择对话使用的 LLM
	llmName := c.Chat.LLMProvider
	if llmName == "" {
		llmName = "ollama"
	}
	llm, err := registry.GetLLM(llmName)
	if err != nil {
		llm = ollamaProvider
	}

	gw := gateway.New(llm, c.Chat.Model, c.Chat.Temperature, c.Chat.MaxTokens)

	store := conversation.NewStore(c.Chat.MemoryWindow)
	cache := conversation.NewAudioCache()
	roster := bots.NewDefaultRoster()

	var speech conversation.Speech
	if tts != nil {
		speech = tts
	}
	engine := conversation.NewEngine(store, cache, roster, gw, speech)

	return &ServiceContext{
		Config:   c,
		Registry: registry,
		Bots:     roster,
		Store:    store,
		Cache:    cache,
		Engine:   engine,
		Groups:   conversation.NewGroupStore(c.Chat.MemoryWindow),
		Gateway:  gw,
	}
}
