package coach

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"aisg/internal/domain/audit"
)

const (
	DefaultModel    = "gemini-2.5-flash"
	temperature     = 0.7
	maxOutputTokens = 500
)

type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// GeminiCompleter sends prompts to the Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	if apiKey == "" {
		return nil, ErrDisabled
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiCompleter{client: client, model: model}, nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, p Prompt) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contentsFor(p), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
		Temperature:       genai.Ptr[float32](temperature),
		MaxOutputTokens:   maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini completion: %w", err)
	}
	return resp.Text(), nil
}

func contentsFor(p Prompt) []*genai.Content {
	contents := make([]*genai.Content, 0, len(p.History)+1)
	for _, turn := range p.History {
		var role genai.Role = genai.RoleModel
		if turn.Role == audit.RoleUser {
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	return append(contents, genai.NewContentFromText(p.Message, genai.RoleUser))
}
