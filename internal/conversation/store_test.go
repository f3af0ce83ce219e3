package conversation

import (
	"fmt"
	"testing"

	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedConversation(t *testing.T, s *Store, bot string, exchanges int) {
	t.Helper()
	s.AppendGreeting(bot, "greetings")
	for i := 0; i < exchanges; i++ {
		s.Append(bot, model.RoleUser, fmt.Sprintf("question %d", i))
		s.Append(bot, model.RoleAssistant, fmt.Sprintf("answer %d", i))
	}
}

func TestGetOrCreateRegistersEmptyConversation(t *testing.T) {
	s := NewStore(0)

	conv := s.GetOrCreate("luna")
	require.NotNil(t, conv)
	assert.Empty(t, conv.History)
	assert.Empty(t, conv.Memory)

	again := s.GetOrCreate("luna")
	assert.Same(t, conv, again)
}

func TestMutationsNeverCreateState(t *testing.T) {
	s := NewStore(0)

	assert.ErrorIs(t, s.TruncateTo("ghost", 0), ErrNotFound)
	assert.ErrorIs(t, s.Clear("ghost"), ErrNotFound)
	assert.ErrorIs(t, s.Delete("ghost"), ErrNotFound)
	assert.ErrorIs(t, s.SetContent("ghost", 0, "x"), ErrNotFound)

	_, ok := s.History("ghost")
	assert.False(t, ok)
}

func TestGreetingStaysOutOfMemory(t *testing.T) {
	s := NewStore(0)
	s.AppendGreeting("luna", "hello there")

	hist, ok := s.History("luna")
	require.True(t, ok)
	require.Len(t, hist, 1)
	assert.True(t, hist[0].Greeting)
	assert.Equal(t, model.RoleAssistant, hist[0].Role)
	assert.True(t, s.GreetingSent("luna"))

	// greeting 只出现在 history，memory 里用合成条目代替
	mem := s.Memory("luna")
	require.Len(t, mem, 1)
	assert.Equal(t, MemoryLeadIn, mem[0].Content)
}

func TestFirstExchangePairedWithLeadIn(t *testing.T) {
	s := NewStore(0)
	seedConversation(t, s, "luna", 1)

	mem := s.Memory("luna")
	require.Len(t, mem, 3)
	assert.Equal(t, MemoryLeadIn, mem[0].Content)
	assert.Equal(t, model.Message{Role: model.RoleUser, Content: "question 0"}, mem[1])
	assert.Equal(t, model.Message{Role: model.RoleAssistant, Content: "answer 0"}, mem[2])
}

func TestUnansweredUserMessageNotInMemory(t *testing.T) {
	s := NewStore(0)
	s.AppendGreeting("luna", "hi")
	s.Append("luna", model.RoleUser, "hanging question")

	mem := s.Memory("luna")
	require.Len(t, mem, 1)
	assert.Equal(t, MemoryLeadIn, mem[0].Content)
}

func TestMemoryWindowBound(t *testing.T) {
	s := NewStore(6)
	seedConversation(t, s, "luna", 40)

	mem := s.Memory("luna")
	assert.LessOrEqual(t, len(mem), 6)

	// 保留的是最近的 exchange
	last := mem[len(mem)-1]
	assert.Equal(t, "answer 39", last.Content)
	first := mem[0]
	assert.Equal(t, model.RoleUser, first.Role)
}

func TestMemoryBoundHoldsAfterEveryAppend(t *testing.T) {
	s := NewStore(4)
	s.AppendGreeting("luna", "hi")
	for i := 0; i < 20; i++ {
		s.Append("luna", model.RoleUser, "u")
		s.Append("luna", model.RoleAssistant, "a")
		assert.LessOrEqual(t, len(s.Memory("luna")), 4)
	}
}

func TestTruncateRebuildsMemory(t *testing.T) {
	s := NewStore(0)
	seedConversation(t, s, "luna", 3) // greeting + 6 messages

	require.NoError(t, s.TruncateTo("luna", 3)) // keep greeting, u0, a0

	hist, _ := s.History("luna")
	require.Len(t, hist, 3)

	mem := s.Memory("luna")
	require.Len(t, mem, 3)
	assert.Equal(t, MemoryLeadIn, mem[0].Content)
	assert.Equal(t, "question 0", mem[1].Content)
	assert.Equal(t, "answer 0", mem[2].Content)
}

func TestTruncateToZeroEmptiesEverything(t *testing.T) {
	s := NewStore(0)
	seedConversation(t, s, "luna", 2)

	require.NoError(t, s.TruncateTo("luna", 0))

	hist, ok := s.History("luna")
	require.True(t, ok)
	assert.Empty(t, hist)
	assert.Empty(t, s.Memory("luna"))
}

func TestTruncateOutOfRange(t *testing.T) {
	s := NewStore(0)
	seedConversation(t, s, "luna", 1)

	assert.ErrorIs(t, s.TruncateTo("luna", -1), ErrInvalidIndex)
	assert.ErrorIs(t, s.TruncateTo("luna", 99), ErrInvalidIndex)
}

func TestClearKeepsConversationRegistered(t *testing.T) {
	s := NewStore(0)
	seedConversation(t, s, "luna", 2)

	require.NoError(t, s.Clear("luna"))

	hist, ok := s.History("luna")
	assert.True(t, ok)
	assert.Empty(t, hist)
	assert.Empty(t, s.Memory("luna"))

	// greeting 标记单独重置
	assert.True(t, s.GreetingSent("luna"))
	s.ResetGreeting("luna")
	assert.False(t, s.GreetingSent("luna"))
}

func TestDeleteRemovesConversation(t *testing.T) {
	s := NewStore(0)
	seedConversation(t, s, "luna", 1)

	require.NoError(t, s.Delete("luna"))
	_, ok := s.History("luna")
	assert.False(t, ok)
	assert.ErrorIs(t, s.Delete("luna"), ErrNotFound)
}

func TestHistorySnapshotIsIsolated(t *testing.T) {
	s := NewStore(0)
	seedConversation(t, s, "luna", 1)

	hist, _ := s.History("luna")
	hist[0].Content = "tampered"

	fresh, _ := s.History("luna")
	assert.Equal(t, "greetings", fresh[0].Content)
}
