package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/bloomwell/bloom/internal/models"
)

// ChatService defines the interface for chat completion calls. The
// abstraction enables testing without calling the real API.
type ChatService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client wraps the hosted inference API behind the panels' chat and
// insight features. It sits outside the store/analytics core: nothing
// in the core calls it, and every failure resolves to local fallback
// content instead of propagating.
type Client struct {
	chat  ChatService
	model openai.ChatModel
}

const systemPrompt = "You are a warm, supportive companion for new parents. " +
	"Validate feelings, keep answers short and practical, and never provide medical diagnoses. " +
	"Encourage reaching out to a professional for persistent low mood."

func NewClient(apiKey string, model string) *Client {
	if apiKey == "" {
		return &Client{model: openai.ChatModel(model)}
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		chat:  client.Chat.Completions,
		model: openai.ChatModel(model),
	}
}

// Enabled reports whether a real inference backend is configured.
func (client *Client) Enabled() bool {
	return client.chat != nil
}

// Chat sends one user message with prior turns as context and returns
// the assistant reply. Without a configured backend it returns the
// canned support reply.
func (client *Client) Chat(ctx context.Context, history []string, message string) (string, error) {
	if !client.Enabled() {
		return FallbackChatReply(message), nil
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for index, turn := range history {
		if index%2 == 0 {
			messages = append(messages, openai.UserMessage(turn))
		} else {
			messages = append(messages, openai.AssistantMessage(turn))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	response, err := client.chat.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F(messages),
		Model:    openai.F(client.model),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat completion failed: no choices returned")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// SummarizeEntries asks the model for a compassionate pattern analysis
// of recent journal entries. Any failure falls back to the local
// rule-based summary so the panel always has content.
func (client *Client) SummarizeEntries(ctx context.Context, entries []models.Entry, distribution map[string]int) string {
	if !client.Enabled() || len(entries) == 0 {
		return FallbackInsight(entries, distribution)
	}

	response, err := client.chat.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildInsightPrompt(entries, distribution)),
		}),
		Model: openai.F(client.model),
	})
	if err != nil || len(response.Choices) == 0 {
		return FallbackInsight(entries, distribution)
	}

	summary := strings.TrimSpace(response.Choices[0].Message.Content)
	if len(summary) < 50 {
		return FallbackInsight(entries, distribution)
	}
	return summary
}

// buildInsightPrompt condenses the most recent entries into the
// analysis request. At most ten entries are quoted.
func buildInsightPrompt(entries []models.Entry, distribution map[string]int) string {
	recent := entries
	if len(recent) > 10 {
		recent = recent[:10]
	}

	lines := make([]string, 0, len(recent))
	for _, entry := range recent {
		note := entry.Note
		if strings.TrimSpace(note) == "" {
			note = entry.Title
		}
		lines = append(lines, fmt.Sprintf("[%s] %s", entry.Mood, note))
	}

	var builder strings.Builder
	builder.WriteString("Analyze these postpartum mood journal entries and describe emotional patterns, ")
	builder.WriteString("positive trends, and gentle practical suggestions. Be encouraging and non-judgmental.\n\n")
	builder.WriteString("Entries: ")
	builder.WriteString(strings.Join(lines, ". "))
	builder.WriteString("\n\nMood distribution (percent): ")
	for _, mood := range models.Moods() {
		builder.WriteString(fmt.Sprintf("%s=%d ", mood, distribution[mood]))
	}
	return builder.String()
}
