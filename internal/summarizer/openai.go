package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const samplingTemperature = 0

// modelPricing maps a model name prefix to USD per one million prompt
// and completion tokens. Unknown models cost zero rather than failing
// the request.
var modelPricing = []struct {
	prefix        string
	promptUSD     float64
	completionUSD float64
}{
	{"gpt-4o-2024-05-13", 5.0, 15.0},
	{"gpt-4o-mini", 0.15, 0.6},
	{"gpt-4o", 2.5, 10.0},
	{"gpt-4.1-mini", 0.4, 1.6},
	{"gpt-4.1", 2.0, 8.0},
}

// OpenAISummarizer calls OpenAI's Chat Completions API to produce
// summaries at a fixed sampling temperature.
type OpenAISummarizer struct {
	client openai.Client
	model  string
}

// NewOpenAISummarizer builds a new summarizer instance for the given
// model identifier.
func NewOpenAISummarizer(apiKey string, model string) (*OpenAISummarizer, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, fmt.Errorf("model is empty")
	}

	return &OpenAISummarizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Summarize sends a single-turn request and returns the generated text
// verbatim together with its usage cost.
func (s *OpenAISummarizer) Summarize(ctx context.Context, prompt string) (*Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("prompt is empty")
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(s.model),
		Temperature: openai.Float(samplingTemperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("response has no choices (model = %s)", s.model)
	}

	answer := resp.Choices[0].Message.Content
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("output text is missing (model = %s)", s.model)
	}

	return &Result{
		Answer: answer,
		Cost:   usageCost(s.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens),
	}, nil
}

func usageCost(model string, promptTokens, completionTokens int64) float64 {
	for _, p := range modelPricing {
		if strings.HasPrefix(model, p.prefix) {
			return float64(promptTokens)/1e6*p.promptUSD +
				float64(completionTokens)/1e6*p.completionUSD
		}
	}

	return 0
}
