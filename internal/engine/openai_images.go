package engine

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIImageClient implements ImageClient using the official openai-go SDK.
type OpenAIImageClient struct {
	client openai.Client
}

// NewOpenAIImageClient creates an image client for the given credential.
func NewOpenAIImageClient(apiKey string, opts ...option.RequestOption) (*OpenAIImageClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIImageClient{client: openai.NewClient(opts...)}, nil
}

// OpenAIImageFactory is the ImageClientFactory for real OpenAI clients.
func OpenAIImageFactory(apiKey string) (ImageClient, error) {
	return NewOpenAIImageClient(apiKey)
}

// Generate requests a single square image and returns its base64 payload.
func (c *OpenAIImageClient) Generate(ctx context.Context, prompt string) (string, error) {
	// gpt-image-1 always answers with base64 payloads; response_format is
	// a dall-e-only parameter and must not be sent.
	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:  openai.ImageModelGPTImage1,
		Prompt: prompt,
		Size:   openai.ImageGenerateParamsSize1024x1024,
		N:      openai.Int(1),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", errors.New("openai: empty image data")
	}
	return resp.Data[0].B64JSON, nil
}
