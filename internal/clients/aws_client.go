package clients

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AWS bundles the shared aws.Config with an optional endpoint override used
// for LocalStack and other emulators.
type AWS struct {
	Config   aws.Config
	Endpoint string
}

func NewAWS(ctx context.Context, region, endpoint string) (*AWS, error) {
	slog.Info("[AWSClient] Initializing AWS Config...",
		slog.String("region", region),
		slog.String("endpoint", endpoint))

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		slog.Error("[AWSClient] Failed to load AWS config", slog.String("error", err.Error()))
		return nil, fmt.Errorf("[AWSClient] failed to load AWS config: %w", err)
	}

	slog.Info("[AWSClient] AWS Config Initialized")
	return &AWS{Config: cfg, Endpoint: endpoint}, nil
}

func (a *AWS) S3Client() *s3.Client {
	return s3.NewFromConfig(a.Config, func(o *s3.Options) {
		if a.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func (a *AWS) DynamoDBClient() *dynamodb.Client {
	return dynamodb.NewFromConfig(a.Config, func(o *dynamodb.Options) {
		if a.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.Endpoint)
		}
	})
}

func (a *AWS) BedrockRuntimeClient() *bedrockruntime.Client {
	return bedrockruntime.NewFromConfig(a.Config, func(o *bedrockruntime.Options) {
		if a.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.Endpoint)
		}
	})
}
