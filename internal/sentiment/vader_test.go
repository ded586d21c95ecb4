package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, LabelPositive},
		{0.20, LabelPositive},
		{0.19, LabelNeutral},
		{0, LabelNeutral},
		{-0.19, LabelNeutral},
		{-0.20, LabelNegative},
		{-0.8, LabelNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.score), "score %v", tt.score)
	}
}

func TestConvertMarkdownToText(t *testing.T) {
	in := "# Review\n\nThe **battery** is [great](https://example.com/battery), see https://example.com/more"

	assert.Equal(t, "Review The battery is great, see", ConvertMarkdownToText(in))
}

func TestVaderScorer_Score(t *testing.T) {
	scorer := NewVaderScorer()

	positive := scorer.Score("I love this phone. The battery is amazing and the screen is beautiful!")
	assert.Equal(t, LabelPositive, positive.Label)
	assert.Greater(t, positive.Score, 0.2)

	negative := scorer.Score("Terrible product. It broke after a day and support was awful.")
	assert.Equal(t, LabelNegative, negative.Label)
	assert.Less(t, negative.Score, -0.2)

	empty := scorer.Score("")
	assert.Equal(t, LabelNeutral, empty.Label)
}
