package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/reviewlens/internal/models"
)

type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type ReviewStore struct {
	client    PutItemAPI
	tableName string
}

func NewReviewStore(client PutItemAPI, tableName string) *ReviewStore {
	return &ReviewStore{client: client, tableName: tableName}
}

// PutReview writes the record as a single unconditional insert.
func (s *ReviewStore) PutReview(ctx context.Context, record models.ReviewRecord) error {
	item, err := ReviewToDynamoDBItem(record)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal review %s: %w", record.ReviewID, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to put review %s into %s: %w", record.ReviewID, s.tableName, err)
	}

	slog.Info("[DynamoDB] Successfully stored review analysis",
		slog.String("table", s.tableName),
		slog.String("review_id", record.ReviewID))
	return nil
}

func ReviewToDynamoDBItem(record models.ReviewRecord) (map[string]types.AttributeValue, error) {
	// a nil slice would marshal as NULL rather than an empty list
	if record.KeyTopics == nil {
		record.KeyTopics = []string{}
	}
	return attributevalue.MarshalMap(record)
}
