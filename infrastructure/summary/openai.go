// ABOUTME: OpenAI-backed summary provider using chat completions
// ABOUTME: Length bounds are passed to the model as prompt hints

package summary

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI implements interfaces.SummaryProvider against an
// OpenAI-compatible chat completion endpoint.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a summary provider for the given API key and model.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{client: openai.NewClient(apiKey), model: model}
}

// Summarize asks the model for a synopsis between the given character
// bounds. The bounds are hints; the model may land outside them.
func (o *OpenAI) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following article in roughly %d to %d characters. "+
			"State the contents directly without introductions like \"The article says\". "+
			"Respond with the summary only, no HTML or Markdown.\n\n%s",
		minLength, maxLength, text)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
