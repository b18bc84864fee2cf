package romanize

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// implements BatchJapanese using Google Gemini
type GeminiRomanizer struct {
	client  *genai.Client
	model   string
	options Options
}

func NewGeminiRomanizer(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*GeminiRomanizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiRomanizer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (r *GeminiRomanizer) RomanizeJapanese(ctx context.Context, text string) (string, error) {
	results, err := checkedBatch(ctx, []Item{{Index: 0, Text: text}}, r.romanizeBatch)
	if err != nil {
		return "", err
	}
	return results[0].Text, nil
}

func (r *GeminiRomanizer) RomanizeBatch(
	ctx context.Context,
	items []Item,
	concurrency int,
) ([]Result, error) {
	return runBatches(ctx, items, r.options.BatchSize, concurrency, r.romanizeBatch)
}

func (r *GeminiRomanizer) romanizeBatch(
	ctx context.Context,
	items []Item,
) ([]Result, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(BuildPrompt(items)),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := r.client.Models.GenerateContent(ctx, r.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("romanization failed: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var responseText string
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			responseText += part.Text
		}
		if responseText != "" {
			break
		}
	}

	return parseResponse("Gemini", responseText)
}

// shared tail of every LLM response handler
func parseResponse(provider, responseText string) ([]Result, error) {
	if responseText == "" {
		return nil, fmt.Errorf("no text in %s response", provider)
	}

	results, err := extractResults(responseText)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse JSON response: %w (response: %s)",
			err,
			truncateString(cleanJSONResponse(responseText), 200),
		)
	}
	return results, nil
}
