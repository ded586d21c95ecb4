package models

// ClaudeTextCompletionRequest is the Bedrock body for Anthropic text
// completion models such as anthropic.claude-v2.
type ClaudeTextCompletionRequest struct {
	Prompt            string  `json:"prompt"`
	MaxTokensToSample int     `json:"max_tokens_to_sample"`
	Temperature       float64 `json:"temperature"`
}

type ClaudeTextCompletionResponse struct {
	Completion *string `json:"completion"`
	StopReason string  `json:"stop_reason,omitempty"`
	Stop       string  `json:"stop,omitempty"`
}

// BaselineSentiment is a local lexicon score computed alongside the model
// analysis.
type BaselineSentiment struct {
	Score float64
	Label string
}
