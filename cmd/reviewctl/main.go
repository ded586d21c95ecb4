// reviewctl runs the review analysis handler once from the command line,
// against the same AWS resources the Lambda uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/app"
	"github.com/spacesedan/reviewlens/internal/logging"
	"github.com/spf13/pflag"
)

func main() {
	var (
		bucket    = pflag.StringP("bucket", "b", "", "bucket holding the review object")
		key       = pflag.StringP("key", "k", "", "object key of the review")
		eventFile = pflag.StringP("event", "e", "", "path to an S3 event JSON file (overrides --bucket/--key)")
		env       = pflag.String("env", envOr("APP_ENV", "dev"), "environment file to load from config/envs")
	)
	pflag.Parse()

	config.LoadEnv(*env)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "reviewctl:", err)
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogColor)

	event, err := buildEvent(*eventFile, *bucket, *key)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reviewctl:", err)
		pflag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	h, err := app.NewReviewHandler(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize review handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	resp, err := h.Handle(ctx, event)
	if err != nil {
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func buildEvent(eventFile, bucket, key string) (events.S3Event, error) {
	if eventFile != "" {
		return readEventFile(eventFile)
	}
	if bucket == "" || key == "" {
		return events.S3Event{}, fmt.Errorf("either --event or both --bucket and --key are required")
	}
	return events.S3Event{Records: []events.S3EventRecord{{
		EventSource: "aws:s3",
		EventName:   "ObjectCreated:Put",
		S3: events.S3Entity{
			Bucket: events.S3Bucket{Name: bucket},
			Object: events.S3Object{Key: key, URLDecodedKey: key},
		},
	}}}, nil
}

func readEventFile(path string) (events.S3Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return events.S3Event{}, fmt.Errorf("failed to read event file: %w", err)
	}

	var event events.S3Event
	if err := json.Unmarshal(data, &event); err != nil {
		return events.S3Event{}, fmt.Errorf("failed to parse event file %s: %w", path, err)
	}
	return event, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
