package conversation

import (
	"sync"

	"github.com/fablebox/FableTalk/pkg/model"
)

type audioKey struct {
	bot   string
	index int
}

type audioEntry struct {
	state model.AudioState
	path  string
}

// AudioCache maps (bot, message index) to a synthesized speech file. It is a
// derived cache: an entry is only meaningful while the message that was
// current when generation began still occupies that history index, so every
// history truncation must invalidate the matching key range.
type AudioCache struct {
	mu      sync.Mutex
	entries map[audioKey]*audioEntry
}

func NewAudioCache() *AudioCache {
	return &AudioCache{entries: make(map[audioKey]*audioEntry)}
}

// Lookup reports the entry state and, when ready, the audio file path.
func (c *AudioCache) Lookup(botName string, index int) (model.AudioState, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[audioKey{botName, index}]; ok {
		return e.state, e.path
	}
	return model.AudioAbsent, ""
}

// BeginGeneration transitions absent -> generating. It reports false without
// touching the entry when a generation is already in flight or complete, so
// at most one synthesis runs per key.
func (c *AudioCache) BeginGeneration(botName string, index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := audioKey{botName, index}
	if _, ok := c.entries[k]; ok {
		return false
	}
	c.entries[k] = &audioEntry{state: model.AudioGenerating}
	return true
}

// CompleteGeneration commits a finished synthesis. ok=false (failure or no
// dialogue to speak) removes the entry so a retry can be attempted. A
// completion whose key no longer exists was invalidated mid-flight and is
// discarded; occupancy is the only staleness check, since synthesis is not
// preemptible.
func (c *AudioCache) CompleteGeneration(botName string, index int, path string, ok bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := audioKey{botName, index}
	e, exists := c.entries[k]
	if !exists || e.state != model.AudioGenerating {
		return false
	}
	if !ok {
		delete(c.entries, k)
		return false
	}
	e.state = model.AudioReady
	e.path = path
	return true
}

// InvalidateFrom removes every entry for the bot with index >= index,
// including in-flight generations; their results are dropped on arrival.
func (c *AudioCache) InvalidateFrom(botName string, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if k.bot == botName && k.index >= index {
			delete(c.entries, k)
		}
	}
}

// Purge removes all entries for a bot.
func (c *AudioCache) Purge(botName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if k.bot == botName {
			delete(c.entries, k)
		}
	}
}

// Indices returns the cached indices for a bot, for consistency checks.
func (c *AudioCache) Indices(botName string) []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []int
	for k := range c.entries {
		if k.bot == botName {
			out = append(out, k.index)
		}
	}
	return out
}
