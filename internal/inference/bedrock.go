package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/spacesedan/reviewlens/internal/analysis"
	"github.com/spacesedan/reviewlens/internal/models"
)

const (
	DefaultBedrockModelID = "anthropic.claude-v2"
	contentTypeJSON       = "application/json"
)

var ErrMalformedResponse = errors.New("malformed inference response")

type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockCompleter sends prompts to an Anthropic text completion model on
// Bedrock. Each call is a single request; nothing is retried here.
type BedrockCompleter struct {
	client  InvokeModelAPI
	modelID string
}

func NewBedrockCompleter(client InvokeModelAPI, modelID string) *BedrockCompleter {
	if modelID == "" {
		modelID = DefaultBedrockModelID
	}
	return &BedrockCompleter{client: client, modelID: modelID}
}

func (b *BedrockCompleter) ModelID() string {
	return b.modelID
}

func (b *BedrockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(models.ClaudeTextCompletionRequest{
		Prompt:            prompt,
		MaxTokensToSample: analysis.MaxTokensToSample,
		Temperature:       analysis.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("[Bedrock] failed to marshal request: %w", err)
	}

	slog.Info("[Bedrock] Requesting analysis from model", slog.String("model_id", b.modelID))
	start := time.Now()

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		Body:        body,
		Accept:      aws.String(contentTypeJSON),
		ContentType: aws.String(contentTypeJSON),
	})
	if err != nil {
		slog.Error("[Bedrock] InvokeModel failed",
			slog.String("model_id", b.modelID),
			slog.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("[Bedrock] InvokeModel %s failed: %w", b.modelID, err)
	}

	var resp models.ClaudeTextCompletionResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("[Bedrock] %w: %w (preview %q)", ErrMalformedResponse, err, getPreview(out.Body))
	}
	if resp.Completion == nil {
		return "", fmt.Errorf("[Bedrock] %w: missing completion (preview %q)", ErrMalformedResponse, getPreview(out.Body))
	}

	slog.Info("[Bedrock] Analysis request successful",
		slog.String("stop_reason", resp.StopReason),
		slog.Duration("elapsed", time.Since(start)))

	return *resp.Completion, nil
}

func getPreview(body []byte) string {
	raw := string(body)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return raw
}
