// ABOUTME: OpenAI-backed translation provider using chat completions
// ABOUTME: One instance per target language, fixed at startup

package translate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI implements interfaces.TranslationProvider for one target
// language against an OpenAI-compatible chat completion endpoint.
type OpenAI struct {
	client     *openai.Client
	model      string
	targetCode string
	targetName string
}

// NewOpenAI creates a translation provider for one language. targetName
// is the human-readable language name used in the prompt; it falls back
// to the code when empty.
func NewOpenAI(apiKey, model, targetCode, targetName string) *OpenAI {
	if model == "" {
		model = openai.GPT4oMini
	}
	if targetName == "" {
		targetName = targetCode
	}
	return &OpenAI{
		client:     openai.NewClient(apiKey),
		model:      model,
		targetCode: targetCode,
		targetName: targetName,
	}
}

// Target returns the language code this provider translates into.
func (o *OpenAI) Target() string {
	return o.targetCode
}

// Translate returns the text rendered in the target language.
func (o *OpenAI) Translate(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following text into %s. Respond with the translation only.\n\n%s",
		o.targetName, text)

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
