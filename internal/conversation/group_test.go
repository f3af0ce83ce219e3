package conversation

import (
	"testing"

	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSessionSharedLogAndMemories(t *testing.T) {
	g := NewGroupStore(0)
	s := g.Create([]string{"luna", "kai"})
	require.NotEmpty(t, s.ID)

	require.NoError(t, g.AppendUser(s.ID, "hello everyone"))
	require.NoError(t, g.AppendBot(s.ID, "luna", "hi, I'm Luna"))
	require.NoError(t, g.AppendBot(s.ID, "kai", "Kai here"))

	hist, err := g.History(s.ID)
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, model.GroupMessage{Role: model.RoleUser, Content: "hello everyone"}, hist[0])
	assert.Equal(t, "luna", hist[1].Speaker)
	assert.Equal(t, "kai", hist[2].Speaker)

	// luna 自己的回复构成 exchange，kai 的发言以署名形式出现
	lunaMem, err := g.MemoryFor(s.ID, "luna")
	require.NoError(t, err)
	require.Len(t, lunaMem, 3)
	assert.Equal(t, "hello everyone", lunaMem[0].Content)
	assert.Equal(t, "hi, I'm Luna", lunaMem[1].Content)
	assert.Equal(t, "kai: Kai here", lunaMem[2].Content)

	kaiMem, err := g.MemoryFor(s.ID, "kai")
	require.NoError(t, err)
	require.Len(t, kaiMem, 3)
	assert.Equal(t, "luna: hi, I'm Luna", kaiMem[0].Content)
	assert.Equal(t, "hello everyone", kaiMem[1].Content)
	assert.Equal(t, "Kai here", kaiMem[2].Content)
}

func TestGroupPendingPairing(t *testing.T) {
	g := NewGroupStore(0)
	s := g.Create([]string{"luna"})

	require.NoError(t, g.AppendUser(s.ID, "question"))
	text, ok := g.PendingFor(s.ID, "luna")
	require.True(t, ok)
	assert.Equal(t, "question", text)

	require.NoError(t, g.AppendBot(s.ID, "luna", "answer"))
	_, ok = g.PendingFor(s.ID, "luna")
	assert.False(t, ok)
}

func TestGroupMemoryBounded(t *testing.T) {
	g := NewGroupStore(4)
	s := g.Create([]string{"luna", "kai"})

	for i := 0; i < 20; i++ {
		require.NoError(t, g.AppendUser(s.ID, "ping"))
		require.NoError(t, g.AppendBot(s.ID, "luna", "pong"))
	}

	lunaMem, _ := g.MemoryFor(s.ID, "luna")
	assert.LessOrEqual(t, len(lunaMem), 4)
	kaiMem, _ := g.MemoryFor(s.ID, "kai")
	assert.LessOrEqual(t, len(kaiMem), 4)
}

func TestGroupUnknownSession(t *testing.T) {
	g := NewGroupStore(0)

	assert.ErrorIs(t, g.AppendUser("nope", "x"), ErrNotFound)
	assert.ErrorIs(t, g.AppendBot("nope", "luna", "x"), ErrNotFound)
	_, err := g.History("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, g.Delete("nope"), ErrNotFound)
}

func TestGroupDelete(t *testing.T) {
	g := NewGroupStore(0)
	s := g.Create([]string{"luna"})
	require.NoError(t, g.Delete(s.ID))
	_, ok := g.Get(s.ID)
	assert.False(t, ok)
}
