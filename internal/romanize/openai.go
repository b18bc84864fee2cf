package romanize

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements BatchJapanese using OpenAI Chat Completions
type OpenAIRomanizer struct {
	client  openai.Client
	model   string
	options Options
}

func NewOpenAIRomanizer(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAIRomanizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "gpt-5-mini"
	}

	return &OpenAIRomanizer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (r *OpenAIRomanizer) RomanizeJapanese(ctx context.Context, text string) (string, error) {
	results, err := checkedBatch(ctx, []Item{{Index: 0, Text: text}}, r.romanizeBatch)
	if err != nil {
		return "", err
	}
	return results[0].Text, nil
}

func (r *OpenAIRomanizer) RomanizeBatch(
	ctx context.Context,
	items []Item,
	concurrency int,
) ([]Result, error) {
	return runBatches(ctx, items, r.options.BatchSize, concurrency, r.romanizeBatch)
}

func (r *OpenAIRomanizer) romanizeBatch(
	ctx context.Context,
	items []Item,
) ([]Result, error) {
	completion, err := r.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(BuildPrompt(items)),
			},
			Model: r.model,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("romanization failed: %w", err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	return parseResponse("OpenAI", completion.Choices[0].Message.Content)
}
