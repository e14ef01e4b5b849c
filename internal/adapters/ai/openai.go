// Package ai provides the OpenAI-backed advisory provider. It is the only
// package that knows which vendor sits behind the advisory capability; the
// core services see the narrow provider interface alone.
package ai

import (
	"context"
	"fmt"

	"github.com/baatie/controllerpro/internal/core/domain"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	openai "github.com/sashabaranov/go-openai"
)

const advisorSystemPrompt = "You are a financial advisor for small businesses. " +
	"Give concise, actionable advice on cash flow, receivables and expense optimization. " +
	"Answer in at most four sentences."

const researchSystemPrompt = "You are a market research assistant for small businesses. " +
	"Answer the query factually and list the sources you relied on, one per line, " +
	"as 'SOURCE: <url> <title>' after the answer."

// OpenAIAdvisor implements the advisory provider on top of the OpenAI chat
// completion API. Calls are single-shot; retry and degradation policy live
// with the caller.
type OpenAIAdvisor struct {
	client *openai.Client
	model  string
}

var _ portssvc.AdvisorProvider = (*OpenAIAdvisor)(nil)

// NewOpenAIAdvisor creates an advisor for the given API key and model.
func NewOpenAIAdvisor(apiKey, model string) *OpenAIAdvisor {
	return &OpenAIAdvisor{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GetAdvice returns free-text advice for an assembled context string.
func (a *OpenAIAdvisor) GetAdvice(ctx context.Context, contextText string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: advisorSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: contextText,
			},
		},
		MaxTokens: 500,
	})
	if err != nil {
		return "", fmt.Errorf("advice request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from advisor")
	}
	return resp.Choices[0].Message.Content, nil
}

// Search runs a market research query and returns text plus citations.
func (a *OpenAIAdvisor) Search(ctx context.Context, query string) (*domain.MarketSearchResult, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: researchSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: query,
			},
		},
		MaxTokens: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("market search request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices from advisor")
	}
	text, sources := splitSources(resp.Choices[0].Message.Content)
	return &domain.MarketSearchResult{Text: text, Sources: sources}, nil
}
