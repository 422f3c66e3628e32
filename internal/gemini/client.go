// Package gemini is the text-generation boundary, wrapping the official
// generative-ai-go SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyResponse means the API answered but produced no text parts.
var ErrEmptyResponse = errors.New("gemini returned an empty response")

type Client struct {
	apiKey      string
	model       string
	temperature float32
}

func NewClient(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model, temperature: 0.7}
}

// Generate sends one prompt and returns the reply text. The underlying
// client is built per call so a dead connection never sticks around.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)
	model.SetMaxOutputTokens(8192)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	var text string
	if len(res.Candidates) > 0 && res.Candidates[0].Content != nil {
		for _, part := range res.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
