package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
)

var ErrInvalidCompletion = errors.New("completion is not a valid analysis JSON object")

// completionFields mirrors the JSON the prompt asks for. Pointers tell a
// missing (or null) key apart from an empty value.
type completionFields struct {
	Sentiment    *string   `json:"sentiment"`
	KeyTopics    *[]string `json:"key_topics"`
	UrgencyLevel *string   `json:"urgency_level"`
}

// ParseCompletion trims the completion and decodes it as a JSON object,
// substituting defaults for any field the model left out. Values are not
// checked against the documented enumerations.
func ParseCompletion(completion string) (models.AnalysisResult, error) {
	raw := strings.TrimSpace(completion)

	var fields completionFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w (preview %q)", ErrInvalidCompletion, err, preview(raw))
	}
	if !strings.HasPrefix(raw, "{") {
		// null decodes without error into the zero struct
		return models.AnalysisResult{}, fmt.Errorf("%w: expected an object (preview %q)", ErrInvalidCompletion, preview(raw))
	}

	result := models.AnalysisResult{
		Sentiment:    models.SentimentUnknown,
		KeyTopics:    []string{},
		UrgencyLevel: models.UrgencyUnknown,
	}
	if fields.Sentiment != nil {
		result.Sentiment = *fields.Sentiment
	}
	if fields.KeyTopics != nil && *fields.KeyTopics != nil {
		result.KeyTopics = *fields.KeyTopics
	}
	if fields.UrgencyLevel != nil {
		result.UrgencyLevel = *fields.UrgencyLevel
	}

	return result, nil
}

func preview(raw string) string {
	if len(raw) > 50 {
		return raw[:50]
	}
	return raw
}
