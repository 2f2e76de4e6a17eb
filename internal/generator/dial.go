package generator

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/arcanaland/spiderdeck/internal/config"
)

// Dial creates a client backed by the Gemini and Imagen APIs.
// It refuses to start without an API key.
func Dial(ctx context.Context, cfg *config.Config) (*Client, error) {
	if err := cfg.RequireCredential(); err != nil {
		return nil, err
	}

	textClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	images, err := NewImagenModel(ctx, cfg.APIKey, cfg.ImageModel)
	if err != nil {
		textClient.Close()
		return nil, fmt.Errorf("failed to create image client: %w", err)
	}

	c := NewClient(NewGeminiDetails(textClient, cfg.TextModel), images)
	c.closer = textClient
	return c, nil
}
