package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Backend performs one schema-constrained generation call and returns the raw
// JSON response body. It exists so the extractor can be exercised without the
// network.
type Backend interface {
	Generate(ctx context.Context, system, user string, model ModelConfig) ([]byte, error)
}

// GeminiBackend calls the Gemini API with a forced JSON array response schema.
type GeminiBackend struct {
	client *genai.Client
}

// NewGeminiBackend creates a backend authenticated with the given credential.
// The credential is held only by the underlying client and never logged.
func NewGeminiBackend(ctx context.Context, apiKey string) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiBackend{client: client}, nil
}

func (b *GeminiBackend) Generate(ctx context.Context, system, user string, model ModelConfig) ([]byte, error) {
	m := b.client.GenerativeModel(model.ID)
	m.SetTemperature(model.Temperature)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = responseSchema()

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from model %s", model.ID)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return []byte(sb.String()), nil
}

// Close releases the underlying client.
func (b *GeminiBackend) Close() {
	if b.client != nil {
		b.client.Close()
	}
}
