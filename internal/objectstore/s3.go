package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/spacesedan/reviewlens/internal/models"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidUTF8    = errors.New("object content is not valid UTF-8")
)

type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Store struct {
	client GetObjectAPI
}

func NewS3Store(client GetObjectAPI) *S3Store {
	return &S3Store{client: client}
}

// FetchReview reads the whole object and decodes it as UTF-8 text.
func (s *S3Store) FetchReview(ctx context.Context, bucket, key string) (models.ReviewObject, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return models.ReviewObject{}, fmt.Errorf("[S3] %s/%s: %w: %w", bucket, key, ErrObjectNotFound, err)
		}
		return models.ReviewObject{}, fmt.Errorf("[S3] Failed to get object %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return models.ReviewObject{}, fmt.Errorf("[S3] Failed to read object %s/%s: %w", bucket, key, err)
	}

	if !utf8.Valid(raw) {
		return models.ReviewObject{}, fmt.Errorf("[S3] %s/%s: %w", bucket, key, ErrInvalidUTF8)
	}

	slog.Debug("[S3] Fetched review object",
		slog.String("bucket", bucket),
		slog.String("key", key),
		slog.Int("bytes", len(raw)))

	return models.ReviewObject{
		Bucket: bucket,
		Key:    key,
		Raw:    raw,
		Text:   string(raw),
	}, nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	var noSuchBucket *types.NoSuchBucket
	return errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket)
}
