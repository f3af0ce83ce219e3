package conversation

import (
	"sync"

	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/google/uuid"
)

// GroupSession is a chat shared by several bots. The shared log is a
// read-only view kept for display; the per-bot memory windows are the single
// source of truth for what each bot has actually seen.
type GroupSession struct {
	ID           string
	Participants []string

	shared   []model.GroupMessage
	memories map[string][]model.Message
	pending  map[string]*model.Message
}

// GroupStore owns all group sessions for one session, keyed by session ID.
type GroupStore struct {
	mu       sync.Mutex
	window   int
	sessions map[string]*GroupSession
}

func NewGroupStore(window int) *GroupStore {
	if window <= 0 {
		window = DefaultMemoryWindow
	}
	return &GroupStore{
		window:   window,
		sessions: make(map[string]*GroupSession),
	}
}

// Create registers a new group session for the given bots.
func (g *GroupStore) Create(participants []string) *GroupSession {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := &GroupSession{
		ID:           uuid.NewString(),
		Participants: append([]string(nil), participants...),
		memories:     make(map[string][]model.Message),
		pending:      make(map[string]*model.Message),
	}
	g.sessions[s.ID] = s
	return s
}

// Get returns a session by ID.
func (g *GroupStore) Get(id string) (*GroupSession, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[id]
	return s, ok
}

// Delete removes a session.
func (g *GroupStore) Delete(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(g.sessions, id)
	return nil
}

// AppendUser records a user message in the shared log and marks it pending
// for every participant, to be paired with that bot's next reply.
func (g *GroupStore) AppendUser(id, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.shared = append(s.shared, model.GroupMessage{Role: model.RoleUser, Content: text})
	for _, name := range s.Participants {
		msg := model.Message{Role: model.RoleUser, Content: text}
		s.pending[name] = &msg
	}
	return nil
}

// AppendBot records a bot's reply. The speaking bot pairs the pending user
// message into its own memory; the other participants see the line as
// attributed user-role context, so each window reflects that bot's view of
// the room.
func (g *GroupStore) AppendBot(id, botName, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.shared = append(s.shared, model.GroupMessage{
		Role:    model.RoleAssistant,
		Content: text,
		Speaker: botName,
	})

	for _, name := range s.Participants {
		mem := s.memories[name]
		if name == botName {
			if p := s.pending[name]; p != nil {
				mem = append(mem, *p)
				s.pending[name] = nil
			}
			mem = append(mem, model.Message{Role: model.RoleAssistant, Content: text})
		} else {
			// 其他 bot 把这句话当作房间里的发言记录
			mem = append(mem, model.Message{
				Role:    model.RoleUser,
				Content: botName + ": " + text,
			})
		}
		for len(mem) > g.window {
			mem = mem[1:]
		}
		s.memories[name] = mem
	}
	return nil
}

// History returns the shared display log.
func (g *GroupStore) History(id string) ([]model.GroupMessage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]model.GroupMessage, len(s.shared))
	copy(out, s.shared)
	return out, nil
}

// MemoryFor returns one participant's authoritative memory window.
func (g *GroupStore) MemoryFor(id, botName string) ([]model.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	mem := s.memories[botName]
	out := make([]model.Message, len(mem))
	copy(out, mem)
	return out, nil
}

// PendingFor returns the not-yet-answered user message for a bot, if any.
func (g *GroupStore) PendingFor(id, botName string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[id]
	if !ok {
		return "", false
	}
	if p := s.pending[botName]; p != nil {
		return p.Content, true
	}
	return "", false
}
