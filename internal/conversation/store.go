package conversation

import (
	"sync"

	"github.com/fablebox/FableTalk/pkg/model"
)

// DefaultMemoryWindow is the memory window cap in messages (W), i.e. W/2
// exchanges serialized into each prompt.
const DefaultMemoryWindow = 50

// MemoryLeadIn is the synthetic entry standing in for the greeting in the
// memory window, so the first real exchange has continuity context without
// counting the greeting itself.
const MemoryLeadIn = "(Conversation started)"

// Conversation is one bot's chat state: the display-authoritative history
// and the bounded memory window derived from it.
type Conversation struct {
	History      []model.Message
	Memory       []model.Message
	GreetingSent bool
}

// Store owns all per-bot conversation state for one session, keyed by bot
// name. History is unbounded; the memory window is capped at the configured
// window and always rebuilt from history after a mutation, never patched.
type Store struct {
	mu     sync.Mutex
	window int
	convs  map[string]*Conversation
}

func NewStore(window int) *Store {
	if window <= 0 {
		window = DefaultMemoryWindow
	}
	return &Store{
		window: window,
		convs:  make(map[string]*Conversation),
	}
}

// Window returns the configured memory window cap in messages.
func (s *Store) Window() int {
	return s.window
}

// GetOrCreate returns the bot's conversation, registering a new empty one
// when none exists yet. This and Append are the only calls allowed to create
// state implicitly.
func (s *Store) GetOrCreate(botName string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(botName)
}

func (s *Store) getOrCreateLocked(botName string) *Conversation {
	if conv, ok := s.convs[botName]; ok {
		return conv
	}
	conv := &Conversation{}
	s.convs[botName] = conv
	return conv
}

// History returns a snapshot of the bot's message log.
func (s *Store) History(botName string) ([]model.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[botName]
	if !ok {
		return nil, false
	}
	return snapshot(conv.History), true
}

// Memory returns a snapshot of the bot's memory window.
func (s *Store) Memory(botName string) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[botName]
	if !ok {
		return nil
	}
	return snapshot(conv.Memory)
}

// Len returns the current history length, 0 for unknown bots.
func (s *Store) Len(botName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.convs[botName]; ok {
		return len(conv.History)
	}
	return 0
}

// Append appends a message to history and rebuilds the memory window.
func (s *Store) Append(botName, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.getOrCreateLocked(botName)
	conv.History = append(conv.History, model.Message{Role: role, Content: content})
	conv.Memory = rebuildMemory(conv.History, s.window)
}

// AppendGreeting appends the tagged greeting message and marks it sent. The
// greeting lives in history only; the memory window represents it with the
// synthetic lead-in entry.
func (s *Store) AppendGreeting(botName, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.getOrCreateLocked(botName)
	conv.History = append(conv.History, model.Message{
		Role:     model.RoleAssistant,
		Content:  content,
		Greeting: true,
	})
	conv.GreetingSent = true
	conv.Memory = rebuildMemory(conv.History, s.window)
}

// GreetingSent reports whether the greeting has been delivered this session.
func (s *Store) GreetingSent(botName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.convs[botName]; ok {
		return conv.GreetingSent
	}
	return false
}

// ResetGreeting clears the greeting flag so the next view re-sends it.
func (s *Store) ResetGreeting(botName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.convs[botName]; ok {
		conv.GreetingSent = false
	}
}

// SetContent replaces the content of the message at index in place. Bounds
// are the caller's responsibility; the edit engine validates first.
func (s *Store) SetContent(botName string, index int, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[botName]
	if !ok {
		return ErrNotFound
	}
	if index < 0 || index >= len(conv.History) {
		return ErrInvalidIndex
	}
	conv.History[index].Content = content
	return nil
}

// TruncateTo keeps history[0:index] and rebuilds the memory window from the
// retained messages. Rebuilding, not patching, is what keeps the window from
// drifting relative to history after out-of-order edits.
func (s *Store) TruncateTo(botName string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[botName]
	if !ok {
		return ErrNotFound
	}
	if index < 0 || index > len(conv.History) {
		return ErrInvalidIndex
	}
	conv.History = conv.History[:index]
	conv.Memory = rebuildMemory(conv.History, s.window)
	return nil
}

// Clear empties history and memory. The Conversation object itself stays
// registered; the greeting flag is reset separately.
func (s *Store) Clear(botName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[botName]
	if !ok {
		return ErrNotFound
	}
	conv.History = nil
	conv.Memory = nil
	return nil
}

// Delete removes the conversation entirely. The caller must purge the audio
// cache for the bot as well.
func (s *Store) Delete(botName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.convs[botName]; !ok {
		return ErrNotFound
	}
	delete(s.convs, botName)
	return nil
}

// rebuildMemory derives the memory window from history: the synthetic
// lead-in for the greeting, then every completed (user, assistant) exchange,
// trimmed from the front by whole exchanges down to the window cap. A
// trailing user message with no reply yet is not part of the window.
func rebuildMemory(history []model.Message, window int) []model.Message {
	var mem []model.Message

	start := 0
	if len(history) > 0 && history[0].Greeting {
		mem = append(mem, model.Message{Role: model.RoleAssistant, Content: MemoryLeadIn})
		start = 1
	}

	var pendingUser *model.Message
	for i := start; i < len(history); i++ {
		msg := history[i]
		switch msg.Role {
		case model.RoleUser:
			m := msg
			pendingUser = &m
		case model.RoleAssistant:
			if pendingUser != nil {
				mem = append(mem, *pendingUser, msg)
				pendingUser = nil
			}
		}
	}

	for len(mem) > window {
		if mem[0].Content == MemoryLeadIn && mem[0].Role == model.RoleAssistant {
			mem = mem[1:]
			continue
		}
		// 按整个 exchange 从头部裁剪
		mem = mem[2:]
	}
	return mem
}

func snapshot(msgs []model.Message) []model.Message {
	out := make([]model.Message, len(msgs))
	copy(out, msgs)
	return out
}
