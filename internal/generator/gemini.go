package generator

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

// detailsSchema declares the structured output expected from the details model
var detailsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"stats": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"intelligence": {Type: genai.TypeNumber, Description: "A number from 1 to 100 representing intelligence."},
				"strength":     {Type: genai.TypeNumber, Description: "A number from 1 to 100 representing physical strength."},
				"speed":        {Type: genai.TypeNumber, Description: "A number from 1 to 100 representing speed."},
				"durability":   {Type: genai.TypeNumber, Description: "A number from 1 to 100 representing durability."},
			},
			Required: []string{"intelligence", "strength", "speed", "durability"},
		},
		"backstory": {
			Type:        genai.TypeString,
			Description: "A short, engaging backstory for the character (2-4 sentences).",
		},
	},
	Required: []string{"stats", "backstory"},
}

// GeminiDetails generates card details with a Gemini model in JSON mode
type GeminiDetails struct {
	model *genai.GenerativeModel
}

// NewGeminiDetails configures modelName for structured card details output
func NewGeminiDetails(client *genai.Client, modelName string) *GeminiDetails {
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = detailsSchema
	return &GeminiDetails{model: model}
}

func (g *GeminiDetails) GenerateDetails(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return getText(resp), nil
}

// getText joins the text parts of the first candidate
func getText(resp *genai.GenerateContentResponse) string {
	var text string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text
}
