package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/fablebox/FableTalk/pkg/model"
	"github.com/fablebox/FableTalk/pkg/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply   string
	err     error
	calls   int
	lastReq *provider.ChatRequest
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) Chat(_ context.Context, req *provider.ChatRequest) (*provider.ChatResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &provider.ChatResponse{Text: f.reply}, nil
}

func testBot() *model.Bot {
	return &model.Bot{
		ID:          "b-1",
		Name:        "Luna",
		Emoji:       "🌙",
		Description: "A dreamy night-sky companion",
		Persona: model.Persona{
			Tone:          "gentle",
			Traits:        []string{"curious", "poetic"},
			SpeechPattern: "speaks in soft metaphors",
			Quirks:        []string{"references constellations"},
		},
		SystemRules: "Never discuss politics.",
		Scenario:    "A quiet rooftop at midnight.",
	}
}

func TestGenerateEmbedsPersonaAndMemory(t *testing.T) {
	llm := &fakeLLM{reply: "The stars say hello."}
	g := New(llm, "llama3.1", 0.8, 512)

	memory := []model.Message{
		{Role: model.RoleUser, Content: "do you like the moon?"},
		{Role: model.RoleAssistant, Content: "I adore it."},
	}
	out := g.Generate(context.Background(), testBot(), memory, "tell me more")
	assert.Equal(t, "The stars say hello.", out)

	require.NotNil(t, llm.lastReq)
	assert.Equal(t, "llama3.1", llm.lastReq.Model)
	require.Len(t, llm.lastReq.Messages, 2)

	system := llm.lastReq.Messages[0].Content
	assert.Contains(t, system, "Luna")
	assert.Contains(t, system, "🌙")
	assert.Contains(t, system, "A dreamy night-sky companion")
	assert.Contains(t, system, "gentle")
	assert.Contains(t, system, "curious, poetic")
	assert.Contains(t, system, "soft metaphors")
	assert.Contains(t, system, "constellations")
	assert.Contains(t, system, "Never discuss politics.")
	assert.Contains(t, system, "A quiet rooftop at midnight.")
	assert.Contains(t, system, "do you like the moon?")
	assert.Contains(t, system, "I adore it.")
	assert.Contains(t, system, "Never break character")

	assert.Equal(t, model.RoleUser, llm.lastReq.Messages[1].Role)
	assert.Equal(t, "tell me more", llm.lastReq.Messages[1].Content)
}

func TestGenerateEmptyInputSkipsLLM(t *testing.T) {
	llm := &fakeLLM{reply: "should not be used"}
	g := New(llm, "m", 0.7, 0)

	out := g.Generate(context.Background(), testBot(), nil, "   ")
	assert.Equal(t, EmptyInputReply, out)
	assert.Zero(t, llm.calls)
}

func TestGenerateServiceErrorReturnsCannedApology(t *testing.T) {
	llm := &fakeLLM{err: errors.New("connection refused")}
	g := New(llm, "m", 0.7, 0)

	out := g.Generate(context.Background(), testBot(), nil, "hello")
	assert.Equal(t, ServiceErrorReply, out)
}

func TestGenerateBlankResponseTreatedAsServiceError(t *testing.T) {
	llm := &fakeLLM{reply: "   "}
	g := New(llm, "m", 0.7, 0)

	out := g.Generate(context.Background(), testBot(), nil, "hello")
	assert.Equal(t, ServiceErrorReply, out)
}

func TestGenerateGreeting(t *testing.T) {
	llm := &fakeLLM{reply: "Welcome, wanderer of the night."}
	g := New(llm, "m", 0.7, 0)

	out := g.GenerateGreeting(context.Background(), testBot())
	assert.Equal(t, "Welcome, wanderer of the night.", out)
	assert.Contains(t, llm.lastReq.Messages[0].Content, "4-5 sentence")
}

func TestGenerateGreetingFallback(t *testing.T) {
	llm := &fakeLLM{err: errors.New("down")}
	g := New(llm, "m", 0.7, 0)

	out := g.GenerateGreeting(context.Background(), testBot())
	assert.Contains(t, out, "Luna")
}

func TestEnhanceText(t *testing.T) {
	llm := &fakeLLM{reply: "A luminous, dreamlike companion."}
	g := New(llm, "m", 0.7, 0)

	out, err := g.EnhanceText(context.Background(), "a dreamy companion", "description", "fantasy chatbot")
	require.NoError(t, err)
	assert.Equal(t, "A luminous, dreamlike companion.", out)
	assert.Contains(t, llm.lastReq.Messages[0].Content, "ONLY the improved text")
}

func TestEnhanceTextErrorPropagates(t *testing.T) {
	llm := &fakeLLM{err: errors.New("down")}
	g := New(llm, "m", 0.7, 0)

	_, err := g.EnhanceText(context.Background(), "text", "greeting", "")
	assert.Error(t, err)
}

func TestEnhanceTextBlankPassthrough(t *testing.T) {
	llm := &fakeLLM{reply: "x"}
	g := New(llm, "m", 0.7, 0)

	out, err := g.EnhanceText(context.Background(), "  ", "greeting", "")
	require.NoError(t, err)
	assert.Equal(t, "  ", out)
	assert.Zero(t, llm.calls)
}
