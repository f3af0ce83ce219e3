package conversation

import (
	"testing"

	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/stretchr/testify/assert"
)

func TestAudioCacheLifecycle(t *testing.T) {
	c := NewAudioCache()

	state, _ := c.Lookup("luna", 2)
	assert.Equal(t, model.AudioAbsent, state)

	assert.True(t, c.BeginGeneration("luna", 2))
	state, _ = c.Lookup("luna", 2)
	assert.Equal(t, model.AudioGenerating, state)

	assert.True(t, c.CompleteGeneration("luna", 2, "/audio/luna-2.wav", true))
	state, path := c.Lookup("luna", 2)
	assert.Equal(t, model.AudioReady, state)
	assert.Equal(t, "/audio/luna-2.wav", path)
}

func TestBeginGenerationSingleFlight(t *testing.T) {
	c := NewAudioCache()

	assert.True(t, c.BeginGeneration("luna", 1))
	assert.False(t, c.BeginGeneration("luna", 1))

	c.CompleteGeneration("luna", 1, "/a.wav", true)
	// ready 状态下同样拒绝重新生成
	assert.False(t, c.BeginGeneration("luna", 1))
}

func TestFailedGenerationAllowsRetry(t *testing.T) {
	c := NewAudioCache()

	c.BeginGeneration("luna", 1)
	assert.False(t, c.CompleteGeneration("luna", 1, "", false))

	state, _ := c.Lookup("luna", 1)
	assert.Equal(t, model.AudioAbsent, state)
	assert.True(t, c.BeginGeneration("luna", 1))
}

func TestInvalidateFromRemovesTail(t *testing.T) {
	c := NewAudioCache()
	for i := 0; i < 6; i++ {
		c.BeginGeneration("luna", i)
		c.CompleteGeneration("luna", i, "/x.wav", true)
	}
	c.BeginGeneration("other", 5)

	c.InvalidateFrom("luna", 3)

	for i := 0; i < 3; i++ {
		state, _ := c.Lookup("luna", i)
		assert.Equal(t, model.AudioReady, state, "index %d", i)
	}
	for i := 3; i < 6; i++ {
		state, _ := c.Lookup("luna", i)
		assert.Equal(t, model.AudioAbsent, state, "index %d", i)
	}

	// 其他 bot 不受影响
	state, _ := c.Lookup("other", 5)
	assert.Equal(t, model.AudioGenerating, state)
}

func TestStaleCompletionDiscarded(t *testing.T) {
	c := NewAudioCache()

	c.BeginGeneration("luna", 4)
	c.InvalidateFrom("luna", 4)

	// 合成结果在失效后才到达，必须被丢弃
	assert.False(t, c.CompleteGeneration("luna", 4, "/stale.wav", true))
	state, _ := c.Lookup("luna", 4)
	assert.Equal(t, model.AudioAbsent, state)
}

func TestCompletionWithoutBeginRejected(t *testing.T) {
	c := NewAudioCache()
	assert.False(t, c.CompleteGeneration("luna", 0, "/x.wav", true))
	state, _ := c.Lookup("luna", 0)
	assert.Equal(t, model.AudioAbsent, state)
}

func TestPurgeRemovesAllEntriesForBot(t *testing.T) {
	c := NewAudioCache()
	c.BeginGeneration("luna", 0)
	c.BeginGeneration("luna", 1)
	c.BeginGeneration("kai", 0)

	c.Purge("luna")

	assert.Empty(t, c.Indices("luna"))
	assert.Len(t, c.Indices("kai"), 1)
}
