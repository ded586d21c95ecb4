package config

import (
	"errors"
	"fmt"
	"strings"

	"go-simpler.org/env"
)

const (
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
)

type Config struct {
	AppEnv            string `env:"APP_ENV" default:"dev"`
	TableName         string `env:"DYNAMODB_TABLE_NAME"`
	AWSRegion         string `env:"AWS_REGION" default:"us-east-1"`
	AWSEndpoint       string `env:"AWS_ENDPOINT"`
	InferenceProvider string `env:"INFERENCE_PROVIDER" default:"bedrock"`
	BedrockModelID    string `env:"BEDROCK_MODEL_ID" default:"anthropic.claude-v2"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	OpenAIModel       string `env:"OPENAI_MODEL" default:"gpt-4o-mini"`
	BaselineSentiment bool   `env:"BASELINE_SENTIMENT" default:"false"`
	LogLevel          string `env:"LOG_LEVEL" default:"info"`
	LogColor          bool   `env:"LOG_COLOR" default:"false"`
}

// Load reads the process environment. Call LoadEnv first to pick up an
// env file for local runs.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg.InferenceProvider = strings.ToLower(strings.TrimSpace(cfg.InferenceProvider))

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.TableName == "" {
		return errors.New("DYNAMODB_TABLE_NAME is required")
	}

	switch cfg.InferenceProvider {
	case ProviderBedrock:
		if cfg.BedrockModelID == "" {
			return errors.New("BEDROCK_MODEL_ID is required")
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("INFERENCE_PROVIDER must be one of %s, %s", ProviderBedrock, ProviderOpenAI)
	}

	return nil
}

// ModelID is the identifier of the model the configured provider will call.
func (c *Config) ModelID() string {
	if c.InferenceProvider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.BedrockModelID
}
