package romanize

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// implements BatchJapanese using Anthropic Claude
type AnthropicRomanizer struct {
	client  anthropic.Client
	model   anthropic.Model
	options Options
}

func NewAnthropicRomanizer(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*AnthropicRomanizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	model := anthropic.Model(opts.Model)
	if opts.Model == "" {
		model = anthropic.ModelClaudeHaiku4_5
	}

	return &AnthropicRomanizer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (r *AnthropicRomanizer) RomanizeJapanese(ctx context.Context, text string) (string, error) {
	results, err := checkedBatch(ctx, []Item{{Index: 0, Text: text}}, r.romanizeBatch)
	if err != nil {
		return "", err
	}
	return results[0].Text, nil
}

func (r *AnthropicRomanizer) RomanizeBatch(
	ctx context.Context,
	items []Item,
	concurrency int,
) ([]Result, error) {
	return runBatches(ctx, items, r.options.BatchSize, concurrency, r.romanizeBatch)
}

func (r *AnthropicRomanizer) romanizeBatch(
	ctx context.Context,
	items []Item,
) ([]Result, error) {
	message, err := r.client.Messages.New(
		ctx,
		anthropic.MessageNewParams{
			Model:     r.model,
			MaxTokens: 4096,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(
					anthropic.NewTextBlock(BuildPrompt(items)),
				),
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("romanization failed: %w", err)
	}

	if message == nil || len(message.Content) == 0 {
		return nil, fmt.Errorf("empty response from Anthropic")
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	return parseResponse("Anthropic", responseText)
}
