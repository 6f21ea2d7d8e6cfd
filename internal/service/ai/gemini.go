package ai

import (
	"context"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider for the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Complete generates a response.
func (p *GeminiProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	var cfg *genai.GenerateContentConfig
	if systemPrompt != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemPrompt}},
				Role:  "system",
			},
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(content), cfg)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return ProviderGemini
}
