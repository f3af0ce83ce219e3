package bots

import (
	"fmt"
	"sync"

	"github.com/fablebox/FableTalk/pkg/model"
)

// Roster is the in-memory bot collection for one session: the seeded default
// characters plus any user-created ones. Persistence is a collaborator
// concern; the roster only guarantees stable IDs and unique names.
type Roster struct {
	mu   sync.Mutex
	bots map[string]*model.Bot // keyed by name
}

func NewRoster() *Roster {
	return &Roster{bots: make(map[string]*model.Bot)}
}

// NewDefaultRoster seeds the fixed default characters.
func NewDefaultRoster() *Roster {
	r := NewRoster()
	for _, rec := range defaultBots() {
		_, _ = r.Add(model.FromRecord(rec))
	}
	return r
}

// Get implements conversation.BotDirectory.
func (r *Roster) Get(name string) (*model.Bot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bots[name]
	return b, ok
}

// List returns all bots.
func (r *Roster) List() []*model.Bot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Bot, 0, len(r.bots))
	for _, b := range r.bots {
		out = append(out, b)
	}
	return out
}

// Add registers a bot. Names are the conversation-state lookup key, so they
// must be unique among active bots.
func (r *Roster) Add(b *model.Bot) (*model.Bot, error) {
	if b.Name == "" {
		return nil, fmt.Errorf("bot name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bots[b.Name]; exists {
		return nil, fmt.Errorf("bot '%s' already exists", b.Name)
	}
	r.bots[b.Name] = b
	return b, nil
}

// Update replaces the configuration of an existing bot, keeping its ID.
func (r *Roster) Update(name string, updated *model.Bot) (*model.Bot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.bots[name]
	if !ok {
		return nil, fmt.Errorf("bot '%s' not found", name)
	}
	if updated.Name != "" && updated.Name != name {
		if _, exists := r.bots[updated.Name]; exists {
			return nil, fmt.Errorf("bot '%s' already exists", updated.Name)
		}
		delete(r.bots, name)
	}

	b := *updated
	if b.Name == "" {
		b.Name = name
	}
	b.ID = current.ID // ID 永不复用也永不改变
	b.CreatedAt = current.CreatedAt
	r.bots[b.Name] = &b
	return &b, nil
}

// Remove deletes a bot and returns it. The caller must also tear down the
// bot's conversation and audio cache.
func (r *Roster) Remove(name string) (*model.Bot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bots[name]
	if !ok {
		return nil, fmt.Errorf("bot '%s' not found", name)
	}
	delete(r.bots, name)
	return b, nil
}

// 预置角色，和用户自建 bot 走同一条 FromRecord 归一化路径
func defaultBots() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"name":       "Luna",
			"emoji":      "🌙",
			"desc":       "A dreamy companion who speaks in starlight and gentle riddles",
			"tone":       "gentle",
			"traits":     []interface{}{"curious", "poetic", "calming"},
			"quirks":     []interface{}{"references constellations", "never rushes an answer"},
			"greeting":   "\"Welcome, night wanderer.\" Luna looks up from the telescope. \"The sky is generous tonight. What shall we talk about?\"",
			"visibility": "published",
			"voice": map[string]interface{}{
				"enabled": true,
				"emotion": "calm",
			},
		},
		{
			"name":          "Captain Brass",
			"emoji":         "⚓",
			"desc":          "A retired airship captain full of tall tales and louder opinions",
			"tone":          "boisterous",
			"traits":        []interface{}{"brave", "stubborn", "loyal"},
			"speech_pattern": "salts every sentence with nautical slang",
			"quirks":        []interface{}{"measures everything in knots"},
			"greeting":      "\"Ahoy! Captain Brass, at your service. Pull up a crate and tell me where the wind's taking you!\"",
			"visibility":    "published",
			"voice": map[string]interface{}{
				"enabled": true,
				"emotion": "happy",
			},
		},
		{
			"name":       "Sage",
			"desc":       "A patient tutor who explains anything step by step",
			"tone":       "warm",
			"traits":     []interface{}{"patient", "precise"},
			"greeting":   "Hello! I'm Sage. Ask me anything and we'll work through it together, one step at a time.",
			"visibility": "published",
		},
	}
}
