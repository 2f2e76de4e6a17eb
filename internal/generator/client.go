package generator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/spiderdeck/internal/card"
	"github.com/arcanaland/spiderdeck/internal/logger"
	"github.com/arcanaland/spiderdeck/internal/validator"
)

// DetailsModel returns the raw JSON text for a details prompt
type DetailsModel interface {
	GenerateDetails(ctx context.Context, prompt string) (string, error)
}

// ImageRequest is a single artwork generation request
type ImageRequest struct {
	Prompt      string
	Count       int
	MIMEType    string
	AspectRatio string
}

// ImageModel returns the raw bytes of each generated image
type ImageModel interface {
	GenerateImages(ctx context.Context, req ImageRequest) ([][]byte, error)
}

// Details are the generated stats and backstory for one card
type Details struct {
	Stats     card.Stats
	Backstory string
}

// Client wraps the details and image models
type Client struct {
	details DetailsModel
	images  ImageModel
	closer  io.Closer
}

// NewClient creates a client over the given models
func NewClient(details DetailsModel, images ImageModel) *Client {
	return &Client{details: details, images: images}
}

// Close releases the underlying provider connections, if any
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// RequestCardDetails asks the details model for stats and a backstory.
// Provider failures are logged and reported as ErrDetailsFailed; payloads
// missing required fields additionally match ErrDataFormat.
func (c *Client) RequestCardDetails(ctx context.Context, character card.Character, level card.PowerLevel) (Details, error) {
	text, err := c.details.GenerateDetails(ctx, DetailsPrompt(character, level))
	if err != nil {
		logger.Error().Err(err).Str("character", string(character)).Str("power_level", string(level)).
			Msg("error generating card details")
		return Details{}, fmt.Errorf("%w: %w", ErrDetailsFailed, ErrTransport)
	}

	payload, err := validator.Decode([]byte(strings.TrimSpace(text)))
	if err != nil {
		logger.Error().Err(err).Str("payload", text).Msg("error parsing card details")
		return Details{}, fmt.Errorf("%w: %w", ErrDetailsFailed, ErrTransport)
	}

	results := validator.NewValidator(payload).Validate()
	for _, warning := range results.Warnings {
		logger.Warn().Str("character", string(character)).Msg(warning)
	}
	if !results.Valid() {
		logger.Error().Strs("errors", results.Errors).Str("payload", text).Msg("invalid card details")
		return Details{}, fmt.Errorf("%w: %w", ErrDetailsFailed, ErrDataFormat)
	}

	stats, backstory := payload.Details()
	return Details{Stats: stats, Backstory: backstory}, nil
}

// RequestCardImage asks the image model for one 3:4 PNG and returns it as a
// data URI.
func (c *Client) RequestCardImage(ctx context.Context, prompt string) (string, error) {
	images, err := c.images.GenerateImages(ctx, ImageRequest{
		Prompt:      prompt,
		Count:       1,
		MIMEType:    card.PNGMIMEType,
		AspectRatio: "3:4",
	})
	if err != nil {
		logger.Error().Err(err).Msg("error generating card image")
		return "", fmt.Errorf("%w: %w", ErrImageFailed, ErrTransport)
	}

	if len(images) == 0 || len(images[0]) == 0 {
		logger.Error().Int("images", len(images)).Msg("image model returned no image")
		return "", fmt.Errorf("%w: %w", ErrImageFailed, ErrEmptyResult)
	}

	return card.PNGDataURI(images[0]), nil
}
