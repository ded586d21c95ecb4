package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/reviewlens/internal/models"
)

const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"

	positiveThreshold = 0.20
	negativeThreshold = -0.20
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// VaderScorer computes a lexicon-based baseline for a review. It does not
// call out to any service and never fails.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Score(text string) models.BaselineSentiment {
	plainText := ConvertMarkdownToText(text)
	score := v.analyzer.PolarityScores(plainText).Compound

	return models.BaselineSentiment{Score: score, Label: Label(score)}
}

func Label(score float64) string {
	switch {
	case score >= positiveThreshold:
		return LabelPositive
	case score <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown to HTML, drops the tags and
// collapses whitespace.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := tagPattern.ReplaceAllString(string(output), " ")
	return strings.Join(strings.Fields(plainText), " ")
}
