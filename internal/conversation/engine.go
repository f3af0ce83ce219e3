package conversation

import (
	"context"
	"sync"

	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/zeromicro/go-zero/core/logx"
)

// Gateway produces in-character assistant text. Collaborator failures are
// absorbed inside the gateway and surface as canned text, never as errors,
// so a flaky LLM can never leave history without a paired response.
type Gateway interface {
	Generate(ctx context.Context, bot *model.Bot, memory []model.Message, userInput string) string
	GenerateGreeting(ctx context.Context, bot *model.Bot) string
}

// Speech synthesizes one message to an audio file. dialogueOnly keeps quoted
// dialogue and drops narration; an empty path means nothing was speakable.
type Speech interface {
	GenerateSpeech(ctx context.Context, text, emotion string, dialogueOnly bool) (string, error)
}

// BotDirectory resolves bot names to their current configuration.
type BotDirectory interface {
	Get(name string) (*model.Bot, bool)
}

// Engine executes the compound conversation mutations. Each operation
// validates before mutating and holds one lock across the history change and
// the matching audio-cache invalidation, so no observer ever sees a
// partially applied edit. LLM and TTS calls happen strictly outside the
// locked mutation.
type Engine struct {
	mu      sync.Mutex
	store   *Store
	cache   *AudioCache
	bots    BotDirectory
	gateway Gateway
	tts     Speech
}

func NewEngine(store *Store, cache *AudioCache, bots BotDirectory, gateway Gateway, tts Speech) *Engine {
	return &Engine{
		store:   store,
		cache:   cache,
		bots:    bots,
		gateway: gateway,
		tts:     tts,
	}
}

// History returns the bot's display log, or ErrNotFound.
func (e *Engine) History(botName string) ([]model.Message, error) {
	hist, ok := e.store.History(botName)
	if !ok {
		return nil, ErrNotFound
	}
	return hist, nil
}

// MemoryWindow returns the bot's current prompt context.
func (e *Engine) MemoryWindow(botName string) []model.Message {
	return e.store.Memory(botName)
}

// EnsureGreeting delivers the bot's greeting once per session. Bots without
// a configured greeting get one generated in character.
func (e *Engine) EnsureGreeting(ctx context.Context, botName string) error {
	bot, ok := e.bots.Get(botName)
	if !ok {
		return ErrNotFound
	}
	if e.store.GreetingSent(botName) {
		return nil
	}

	greeting := bot.Persona.Greeting
	if greeting == "" {
		// LLM 调用在锁外进行
		greeting = e.gateway.GenerateGreeting(ctx, bot)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.store.GreetingSent(botName) {
		return nil
	}
	e.store.AppendGreeting(botName, greeting)
	return nil
}

// SendUserMessage appends the user's message to history. It deliberately
// does not call the LLM; the caller shows the message first and requests the
// reply as a separate step.
func (e *Engine) SendUserMessage(botName, text string) error {
	if _, ok := e.bots.Get(botName); !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Append(botName, model.RoleUser, text)
	return nil
}

// GenerateAndAppendResponse calls the gateway with the current memory window
// plus the trailing user message and appends the result. The gateway always
// returns displayable text, so the conversation always ends in a well-formed
// turn.
func (e *Engine) GenerateAndAppendResponse(ctx context.Context, botName string) (string, error) {
	bot, ok := e.bots.Get(botName)
	if !ok {
		return "", ErrNotFound
	}

	e.mu.Lock()
	hist, ok := e.store.History(botName)
	if !ok {
		e.mu.Unlock()
		return "", ErrNotFound
	}
	n := len(hist)
	if n == 0 || hist[n-1].Role != model.RoleUser {
		e.mu.Unlock()
		return "", ErrInvalidState
	}
	input := hist[n-1].Content
	memory := e.store.Memory(botName)
	e.mu.Unlock()

	reply := e.gateway.Generate(ctx, bot, memory, input)

	e.mu.Lock()
	e.store.Append(botName, model.RoleAssistant, reply)
	e.mu.Unlock()
	return reply, nil
}

// RegenerateLast discards the last assistant reply and produces a new one
// for the same preserved user message.
func (e *Engine) RegenerateLast(ctx context.Context, botName string) (string, error) {
	if _, ok := e.bots.Get(botName); !ok {
		return "", ErrNotFound
	}

	e.mu.Lock()
	hist, ok := e.store.History(botName)
	if !ok {
		e.mu.Unlock()
		return "", ErrNotFound
	}
	n := len(hist)
	if n < 2 {
		e.mu.Unlock()
		return "", ErrInvalidState
	}
	last := hist[n-1]
	if last.Role != model.RoleAssistant || last.Greeting || hist[n-2].Role != model.RoleUser {
		e.mu.Unlock()
		return "", ErrInvalidState
	}

	// 截断与缓存失效在同一个锁内完成
	if err := e.store.TruncateTo(botName, n-1); err != nil {
		e.mu.Unlock()
		return "", err
	}
	e.cache.InvalidateFrom(botName, n-1)
	e.mu.Unlock()

	return e.GenerateAndAppendResponse(ctx, botName)
}

// EditUserMessage replaces the content at index and discards everything
// after it; the edited message becomes the new end of history. Regeneration
// is a separate explicit call so edit and retry stay independent.
func (e *Engine) EditUserMessage(botName string, index int, newText string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	hist, ok := e.store.History(botName)
	if !ok {
		return ErrNotFound
	}
	if index <= 0 || index >= len(hist) {
		// index 0 是受保护的 greeting
		return ErrInvalidIndex
	}
	if hist[index].Role != model.RoleUser {
		return ErrInvalidRole
	}

	if err := e.store.SetContent(botName, index, newText); err != nil {
		return err
	}
	if err := e.store.TruncateTo(botName, index+1); err != nil {
		return err
	}
	e.cache.InvalidateFrom(botName, index+1)
	return nil
}

// DeleteMessage removes the message at index and all its descendants.
func (e *Engine) DeleteMessage(botName string, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	hist, ok := e.store.History(botName)
	if !ok {
		return ErrNotFound
	}
	if index <= 0 || index >= len(hist) {
		return ErrInvalidIndex
	}

	if err := e.store.TruncateTo(botName, index); err != nil {
		return err
	}
	e.cache.InvalidateFrom(botName, index)
	return nil
}

// ClearConversation empties the conversation, purges its audio and resets
// the greeting flag so the next view re-sends the greeting. Idempotent.
func (e *Engine) ClearConversation(botName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Clear(botName); err != nil {
		return err
	}
	e.cache.Purge(botName)
	e.store.ResetGreeting(botName)
	return nil
}

// DeleteBotState tears down the conversation and audio cache when a bot is
// removed.
func (e *Engine) DeleteBotState(botName string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_ = e.store.Delete(botName)
	e.cache.Purge(botName)
}

// BeginVoice starts speech synthesis for the assistant message at index as a
// detached background task. The generating entry in the audio cache is how
// the rest of the system tracks the outstanding work without blocking.
func (e *Engine) BeginVoice(botName string, index int) (model.AudioState, error) {
	bot, ok := e.bots.Get(botName)
	if !ok {
		return model.AudioAbsent, ErrNotFound
	}
	if !bot.Voice.Enabled {
		return model.AudioAbsent, ErrVoiceDisabled
	}
	if e.tts == nil {
		return model.AudioAbsent, ErrVoiceDisabled
	}

	e.mu.Lock()
	hist, ok := e.store.History(botName)
	if !ok {
		e.mu.Unlock()
		return model.AudioAbsent, ErrNotFound
	}
	if index < 0 || index >= len(hist) {
		e.mu.Unlock()
		return model.AudioAbsent, ErrInvalidIndex
	}
	msg := hist[index]
	if msg.Role != model.RoleAssistant {
		e.mu.Unlock()
		return model.AudioAbsent, ErrInvalidRole
	}
	if !e.cache.BeginGeneration(botName, index) {
		state, _ := e.cache.Lookup(botName, index)
		e.mu.Unlock()
		return state, nil
	}
	e.mu.Unlock()

	go e.synthesize(bot, botName, index, msg.Content)
	return model.AudioGenerating, nil
}

func (e *Engine) synthesize(bot *model.Bot, botName string, index int, content string) {
	path, err := e.tts.GenerateSpeech(context.Background(), content, bot.Voice.Emotion, true)
	if err != nil {
		logx.Errorf("TTS synthesis failed for %s[%d]: %v", botName, index, err)
	}
	// 完成提交由缓存检查 key 是否仍然存在；被截断的结果直接丢弃
	e.cache.CompleteGeneration(botName, index, path, err == nil && path != "")
}

// VoiceStatus reports the audio cache state for one message.
func (e *Engine) VoiceStatus(botName string, index int) (model.AudioState, string) {
	return e.cache.Lookup(botName, index)
}
