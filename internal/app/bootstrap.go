// Package app wires configuration and clients into a ReviewHandler. It is
// shared by the Lambda entrypoint and the local invoke tool.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/db"
	"github.com/spacesedan/reviewlens/internal/handler"
	"github.com/spacesedan/reviewlens/internal/inference"
	"github.com/spacesedan/reviewlens/internal/objectstore"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

func NewReviewHandler(ctx context.Context, cfg *config.Config) (*handler.ReviewHandler, error) {
	awsClients, err := clients.NewAWS(ctx, cfg.AWSRegion, cfg.AWSEndpoint)
	if err != nil {
		return nil, err
	}

	completer, err := NewCompleter(cfg, awsClients)
	if err != nil {
		return nil, err
	}

	objects := objectstore.NewS3Store(awsClients.S3Client())
	store := db.NewReviewStore(awsClients.DynamoDBClient(), cfg.TableName)

	slog.Info("[App] Review handler initialized",
		slog.String("table", cfg.TableName),
		slog.String("provider", cfg.InferenceProvider),
		slog.String("model_id", completer.ModelID()),
		slog.Bool("baseline_sentiment", cfg.BaselineSentiment))

	return handler.NewReviewHandler(objects, completer, store, func(o *handler.Options) {
		if cfg.BaselineSentiment {
			o.Baseline = sentiment.NewVaderScorer()
		}
	}), nil
}

func NewCompleter(cfg *config.Config, awsClients *clients.AWS) (handler.Completer, error) {
	switch cfg.InferenceProvider {
	case config.ProviderBedrock:
		return inference.NewBedrockCompleter(awsClients.BedrockRuntimeClient(), cfg.BedrockModelID), nil
	case config.ProviderOpenAI:
		return inference.NewOpenAICompleter(clients.NewOpenAIClient(cfg.OpenAIAPIKey), cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("[App] unsupported inference provider %q", cfg.InferenceProvider)
	}
}
