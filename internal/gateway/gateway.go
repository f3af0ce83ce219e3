package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/fablebox/FableTalk/pkg/model"
	"github.com/fablebox/FableTalk/pkg/provider"

	"github.com/zeromicro/go-zero/core/logx"
)

// Canned replies substituted for classified failures. Either one forms a
// normal assistant turn, so a flaky LLM never corrupts history.
const (
	// EmptyInputReply is returned for blank input, without spending an LLM
	// call.
	EmptyInputReply = "Hmm, I didn't catch anything there. Type something meaningful and I'll answer!"

	// ServiceErrorReply is returned when the LLM call fails or times out.
	ServiceErrorReply = "I'm sorry, I'm having trouble gathering my thoughts right now. Please try again in a moment."
)

// Gateway translates bot persona + memory window + user input into a single
// LLM request and classifies the outcome. It is the only component that
// talks to the LLM provider for chat.
type Gateway struct {
	llm         provider.LLMProvider
	model       string
	temperature float64
	maxTokens   int
}

func New(llm provider.LLMProvider, model string, temperature float64, maxTokens int) *Gateway {
	return &Gateway{
		llm:         llm,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Generate produces the bot's next reply. The returned string is always
// displayable: classified failures come back as canned text rather than
// errors.
func (g *Gateway) Generate(ctx context.Context, bot *model.Bot, memory []model.Message, userInput string) string {
	if strings.TrimSpace(userInput) == "" {
		// 空输入不消耗 LLM 调用
		return EmptyInputReply
	}

	prompt := buildChatPrompt(bot, memory)
	resp, err := g.llm.Chat(ctx, &provider.ChatRequest{
		Model: g.model,
		Messages: []*provider.Message{
			{Role: model.RoleSystem, Content: prompt},
			{Role: model.RoleUser, Content: userInput},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		logx.Errorf("LLM call failed for bot %s: %v", bot.Name, err)
		return ServiceErrorReply
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		logx.Errorf("LLM returned empty response for bot %s", bot.Name)
		return ServiceErrorReply
	}
	return text
}

// GenerateGreeting produces a short in-character introduction for bots
// without a configured greeting.
func (g *Gateway) GenerateGreeting(ctx context.Context, bot *model.Bot) string {
	var b strings.Builder
	writePersona(&b, bot)
	b.WriteString("\nWrite a 4-5 sentence introduction of yourself to a new visitor, fully in character. ")
	b.WriteString("Greet them warmly and invite them to start the conversation. Return only the greeting text.")

	resp, err := g.llm.Chat(ctx, &provider.ChatRequest{
		Model: g.model,
		Messages: []*provider.Message{
			{Role: model.RoleSystem, Content: b.String()},
			{Role: model.RoleUser, Content: "Please introduce yourself."},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		logx.Errorf("greeting generation failed for bot %s: %v", bot.Name, err)
		return fmt.Sprintf("Hello! I'm %s. %s", bot.Name, model.Field(bot, "desc", model.DefaultDescription))
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return fmt.Sprintf("Hello! I'm %s. %s", bot.Name, model.Field(bot, "desc", model.DefaultDescription))
	}
	return text
}

// EnhanceText runs a free-text improvement pass for the authoring UI.
// Collaborator failures are returned as errors here; the caller shows them
// instead of substituting text.
func (g *Gateway) EnhanceText(ctx context.Context, text, fieldKind, contextHint string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You improve the writing of a chatbot's %s field.\n", fieldKind)
	if contextHint != "" {
		fmt.Fprintf(&b, "Context: %s\n", contextHint)
	}
	b.WriteString("Improve clarity, vividness and flow while keeping the original meaning and length. ")
	b.WriteString("Return ONLY the improved text, with no preamble, quotes or explanation.")

	resp, err := g.llm.Chat(ctx, &provider.ChatRequest{
		Model: g.model,
		Messages: []*provider.Message{
			{Role: model.RoleSystem, Content: b.String()},
			{Role: model.RoleUser, Content: text},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("enhance text failed: %w", err)
	}

	improved := strings.TrimSpace(resp.Text)
	if improved == "" {
		return "", fmt.Errorf("enhance text failed: empty response")
	}
	return improved, nil
}

// buildChatPrompt embeds persona, rules, scenario and the serialized memory
// window into one system prompt.
func buildChatPrompt(bot *model.Bot, memory []model.Message) string {
	var b strings.Builder
	writePersona(&b, bot)

	if len(memory) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, msg := range memory {
			speaker := "User"
			if msg.Role == model.RoleAssistant {
				speaker = bot.Name
			}
			fmt.Fprintf(&b, "%s: %s\n", speaker, msg.Content)
		}
	}

	b.WriteString("\nRespond to the user's next message in character. ")
	b.WriteString("Never break character, never mention being an AI language model, ")
	b.WriteString("and never ask the user to literally provide a 'user_input' value; their message follows.")
	return b.String()
}

func writePersona(b *strings.Builder, bot *model.Bot) {
	name := model.Field(bot, "name", "Assistant")
	if emoji := model.Field(bot, "emoji", ""); emoji != "" {
		fmt.Fprintf(b, "You are %s %s.\n", emoji, name)
	} else {
		fmt.Fprintf(b, "You are %s.\n", name)
	}
	fmt.Fprintf(b, "Description: %s\n", model.Field(bot, "desc", model.DefaultDescription))
	fmt.Fprintf(b, "Tone: %s\n", model.Field(bot, "tone", model.DefaultTone))

	if len(bot.Persona.Traits) > 0 {
		fmt.Fprintf(b, "Traits: %s\n", strings.Join(bot.Persona.Traits, ", "))
	}
	if sp := model.Field(bot, "speech_pattern", ""); sp != "" {
		fmt.Fprintf(b, "Speech pattern: %s\n", sp)
	}
	for _, quirk := range bot.Persona.Quirks {
		fmt.Fprintf(b, "Quirk: %s\n", quirk)
	}
	if rules := model.Field(bot, "system_rules", ""); rules != "" {
		fmt.Fprintf(b, "Rules you must follow: %s\n", rules)
	}
	if scenario := model.Field(bot, "scenario", ""); scenario != "" {
		fmt.Fprintf(b, "Current scenario: %s\n", scenario)
	}
}
