package models

import "time"

const (
	SentimentUnknown = "UNKNOWN"
	UrgencyUnknown   = "UNKNOWN"
)

// ReviewObject is an uploaded review as read from object storage.
type ReviewObject struct {
	Bucket string
	Key    string
	Raw    []byte
	Text   string
}

// AnalysisResult is the structured analysis returned by the model, after
// defaults have been applied. Sentiment and UrgencyLevel are passed through
// as the model wrote them.
type AnalysisResult struct {
	Sentiment    string   `json:"sentiment"`
	KeyTopics    []string `json:"key_topics"`
	UrgencyLevel string   `json:"urgency_level"`
}

// ReviewRecord is the item written to the reviews table, one per invocation.
type ReviewRecord struct {
	ReviewID      string    `json:"review_id" dynamodbav:"review_id"`
	OriginalText  string    `json:"original_text" dynamodbav:"original_text"`
	Sentiment     string    `json:"sentiment" dynamodbav:"sentiment"`
	KeyTopics     []string  `json:"key_topics" dynamodbav:"key_topics"`
	UrgencyLevel  string    `json:"urgency_level" dynamodbav:"urgency_level"`
	SourceBucket  string    `json:"source_bucket" dynamodbav:"source_bucket"`
	SourceKey     string    `json:"source_key" dynamodbav:"source_key"`
	ModelID       string    `json:"model_id" dynamodbav:"model_id"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at,unixtime"`
	BaselineScore *float64  `json:"baseline_score,omitempty" dynamodbav:"baseline_score,omitempty"`
	BaselineLabel string    `json:"baseline_label,omitempty" dynamodbav:"baseline_label,omitempty"`
}
