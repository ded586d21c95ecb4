package clients

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *openai.Client {
	httpClient := &http.Client{
		Timeout: openAIRequestTimeout,
	}

	clientOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
		option.WithHeader("User-Agent", USER_AGENT),
	}, opts...)

	client := openai.NewClient(clientOpts...)
	slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout", slog.Duration("timeout", openAIRequestTimeout))
	return client
}
