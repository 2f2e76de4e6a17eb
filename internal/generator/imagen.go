package generator

import (
	"context"

	imagegen "google.golang.org/genai"
)

// ImagenModel generates card artwork with an Imagen model
type ImagenModel struct {
	client *imagegen.Client
	model  string
}

// NewImagenModel connects to the Gemini API backend for image generation
func NewImagenModel(ctx context.Context, apiKey, modelName string) (*ImagenModel, error) {
	client, err := imagegen.NewClient(ctx, &imagegen.ClientConfig{
		APIKey:  apiKey,
		Backend: imagegen.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &ImagenModel{client: client, model: modelName}, nil
}

func (m *ImagenModel) GenerateImages(ctx context.Context, req ImageRequest) ([][]byte, error) {
	resp, err := m.client.Models.GenerateImages(ctx, m.model, req.Prompt, &imagegen.GenerateImagesConfig{
		NumberOfImages: int32(req.Count),
		OutputMIMEType: req.MIMEType,
		AspectRatio:    req.AspectRatio,
	})
	if err != nil {
		return nil, err
	}

	var images [][]byte
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil {
			continue
		}
		images = append(images, generated.Image.ImageBytes)
	}
	return images, nil
}
