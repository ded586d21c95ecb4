package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/spacesedan/reviewlens/internal/analysis"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/objectstore"
)

const CompletionMessage = "Analysis complete!"

type ReviewFetcher interface {
	FetchReview(ctx context.Context, bucket, key string) (models.ReviewObject, error)
}

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	ModelID() string
}

type ReviewWriter interface {
	PutReview(ctx context.Context, record models.ReviewRecord) error
}

type BaselineScorer interface {
	Score(text string) models.BaselineSentiment
}

// Response is returned to the Lambda runtime on success.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Options configures a ReviewHandler. Zero values fall back to uuid.NewString
// and time.Now; a nil Baseline disables baseline scoring.
type Options struct {
	NewID    func() string
	Now      func() time.Time
	Baseline BaselineScorer
}

type ReviewHandler struct {
	objects ReviewFetcher
	model   Completer
	store   ReviewWriter
	opts    Options
}

func NewReviewHandler(objects ReviewFetcher, model Completer, store ReviewWriter, optFns ...func(o *Options)) *ReviewHandler {
	opts := Options{
		NewID: uuid.NewString,
		Now:   time.Now,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ReviewHandler{
		objects: objects,
		model:   model,
		store:   store,
		opts:    opts,
	}
}

// Handle analyzes the object named by the first record of the event and
// stores one ReviewRecord for it. Every failure is logged with the object key
// and returned as an *Error; nothing is retried or rolled back.
func (h *ReviewHandler) Handle(ctx context.Context, event events.S3Event) (Response, error) {
	if len(event.Records) == 0 {
		slog.Error("[ReviewHandler] Error processing event", slog.String("error", ErrNoRecords.Error()))
		return Response{}, &Error{Kind: KindEvent, Err: ErrNoRecords}
	}

	bucket, key := objectRef(event.Records[0])

	recordID, err := h.process(ctx, bucket, key)
	if err != nil {
		slog.Error("[ReviewHandler] Error processing file",
			slog.String("key", key),
			slog.String("bucket", bucket),
			slog.String("kind", string(KindOf(err))),
			slog.String("error", err.Error()))
		return Response{}, err
	}

	slog.Info("[ReviewHandler] Successfully processed and stored analysis",
		slog.String("key", key),
		slog.String("review_id", recordID))

	return Response{StatusCode: 200, Body: completionBody}, nil
}

func (h *ReviewHandler) process(ctx context.Context, bucket, key string) (string, error) {
	fail := func(kind Kind, err error) (string, error) {
		return "", &Error{Kind: kind, Bucket: bucket, Key: key, Err: err}
	}

	review, err := h.objects.FetchReview(ctx, bucket, key)
	if err != nil {
		return fail(fetchKind(err), err)
	}

	completion, err := h.model.Complete(ctx, analysis.BuildPrompt(review.Text))
	if err != nil {
		return fail(KindInference, err)
	}

	result, err := analysis.ParseCompletion(completion)
	if err != nil {
		return fail(KindParse, err)
	}

	record := models.ReviewRecord{
		ReviewID:     h.opts.NewID(),
		OriginalText: review.Text,
		Sentiment:    result.Sentiment,
		KeyTopics:    result.KeyTopics,
		UrgencyLevel: result.UrgencyLevel,
		SourceBucket: bucket,
		SourceKey:    key,
		ModelID:      h.model.ModelID(),
		CreatedAt:    h.opts.Now().UTC(),
	}

	if h.opts.Baseline != nil {
		baseline := h.opts.Baseline.Score(review.Text)
		record.BaselineScore = &baseline.Score
		record.BaselineLabel = baseline.Label
	}

	if err := h.store.PutReview(ctx, record); err != nil {
		return fail(KindPersist, err)
	}

	return record.ReviewID, nil
}

// objectRef prefers the URL-decoded key; S3 notifications encode keys the
// way form values are encoded.
func objectRef(record events.S3EventRecord) (string, string) {
	key := record.S3.Object.URLDecodedKey
	if key == "" {
		key = record.S3.Object.Key
	}
	return record.S3.Bucket.Name, key
}

func fetchKind(err error) Kind {
	switch {
	case errors.Is(err, objectstore.ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, objectstore.ErrInvalidUTF8):
		return KindDecode
	default:
		return KindFetch
	}
}

var completionBody = func() string {
	b, _ := json.Marshal(CompletionMessage)
	return string(b)
}()
