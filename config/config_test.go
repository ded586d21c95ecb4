package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears variables that may be set on the host so defaults apply.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "APP_ENV", "AWS_REGION", "AWS_ENDPOINT", "INFERENCE_PROVIDER", "BEDROCK_MODEL_ID", "BASELINE_SENTIMENT", "LOG_LEVEL")
	t.Setenv("DYNAMODB_TABLE_NAME", "Reviews")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Reviews", cfg.TableName)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, ProviderBedrock, cfg.InferenceProvider)
	assert.Equal(t, "anthropic.claude-v2", cfg.BedrockModelID)
	assert.Equal(t, "anthropic.claude-v2", cfg.ModelID())
	assert.False(t, cfg.BaselineSentiment)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DYNAMODB_TABLE_NAME", "Reviews")
	t.Setenv("AWS_ENDPOINT", "http://localhost:4566")
	t.Setenv("INFERENCE_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("BASELINE_SENTIMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4566", cfg.AWSEndpoint)
	assert.Equal(t, ProviderOpenAI, cfg.InferenceProvider)
	assert.Equal(t, "gpt-4o", cfg.ModelID())
	assert.True(t, cfg.BaselineSentiment)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing table name",
			env:     map[string]string{"DYNAMODB_TABLE_NAME": ""},
			wantErr: "DYNAMODB_TABLE_NAME is required",
		},
		{
			name: "openai without key",
			env: map[string]string{
				"DYNAMODB_TABLE_NAME": "Reviews",
				"INFERENCE_PROVIDER":  "openai",
				"OPENAI_API_KEY":      "",
			},
			wantErr: "OPENAI_API_KEY is required",
		},
		{
			name: "unknown provider",
			env: map[string]string{
				"DYNAMODB_TABLE_NAME": "Reviews",
				"INFERENCE_PROVIDER":  "vertex",
			},
			wantErr: "INFERENCE_PROVIDER must be one of bedrock, openai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
