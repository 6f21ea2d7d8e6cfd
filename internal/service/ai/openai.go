package ai

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAIProvider implements Provider for the OpenAI API and for
// OpenAI-compatible endpoints.
type OpenAIProvider struct {
	client          openai.Client
	model           string
	name            string
	thinking        bool
	reasoningEffort string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, baseURL, model string, thinking bool, reasoningEffort string) (*OpenAIProvider, error) {
	return newOpenAIBackedProvider(ProviderOpenAI, apiKey, baseURL, model, thinking, reasoningEffort)
}

func newCompatibleProvider(apiKey, baseURL, model string, thinking bool, reasoningEffort string) (*OpenAIProvider, error) {
	return newOpenAIBackedProvider(ProviderCompatible, apiKey, baseURL, model, thinking, reasoningEffort)
}

func newOpenAIBackedProvider(name, apiKey, baseURL, model string, thinking bool, reasoningEffort string) (*OpenAIProvider, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client:          client,
		model:           model,
		name:            name,
		thinking:        thinking,
		reasoningEffort: reasoningEffort,
	}, nil
}

// Complete generates a response using the Chat Completions API.
func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(content))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	}

	// For reasoning models (o1, o3, gpt-5), use reasoning_effort
	if p.thinking && p.isReasoningModel() && p.reasoningEffort != "" {
		params.ReasoningEffort = shared.ReasoningEffort(p.reasoningEffort)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// isReasoningModel checks if the model supports the reasoning_effort
// parameter. Supports: o1, o3, o4, gpt-5 series
func (p *OpenAIProvider) isReasoningModel() bool {
	model := strings.ToLower(p.model)
	return strings.HasPrefix(model, "o1") ||
		strings.HasPrefix(model, "o3") ||
		strings.HasPrefix(model, "o4") ||
		strings.HasPrefix(model, "gpt-5")
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}
