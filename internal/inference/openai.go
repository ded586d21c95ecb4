package inference

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"

	"github.com/spacesedan/reviewlens/internal/analysis"
)

const DefaultOpenAIModel = openai.ChatModelGPT4oMini

// OpenAICompleter sends the same analysis prompt as a single user message to
// the chat completions API.
type OpenAICompleter struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAICompleter(client *openai.Client, model string) *OpenAICompleter {
	chatModel := openai.ChatModel(model)
	if model == "" {
		chatModel = DefaultOpenAIModel
	}
	return &OpenAICompleter{client: client, model: chatModel}
}

func (o *OpenAICompleter) ModelID() string {
	return string(o.model)
}

func (o *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	slog.Info("[OpenAI] Requesting analysis from model", slog.String("model", string(o.model)))
	start := time.Now()

	chatCompletion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(o.model),
		MaxTokens:   openai.Int(analysis.MaxTokensToSample),
		Temperature: openai.Float(analysis.Temperature),
	})
	if err != nil {
		slog.Error("[OpenAI] Chat completion failed",
			slog.String("model", string(o.model)),
			slog.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("[OpenAI] chat completion %s failed: %w", string(o.model), err)
	}

	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("[OpenAI] %w: no choices returned", ErrMalformedResponse)
	}

	slog.Info("[OpenAI] Analysis request successful",
		slog.String("finish_reason", string(chatCompletion.Choices[0].FinishReason)),
		slog.Duration("elapsed", time.Since(start)))

	return chatCompletion.Choices[0].Message.Content, nil
}
