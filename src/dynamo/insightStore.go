package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// InsightStore persists daily insights keyed by calendar date. Writes are
// full overwrites with no conditional check; concurrent writers to the same
// date race and the last write wins.
type InsightStore struct {
	client    dynamodbiface.DynamoDBAPI
	tableName string
	timeout   time.Duration
	now       func() time.Time
}

func NewInsightStore(client dynamodbiface.DynamoDBAPI, tableName string, timeout time.Duration) *InsightStore {
	return &InsightStore{
		client:    client,
		tableName: tableName,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Get fetches the stored insight for date. A miss is (nil, false, nil);
// backend failures wrap ErrStorage.
func (s *InsightStore) Get(ctx context.Context, date string) (map[string]interface{}, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]*dynamodb.AttributeValue{
			"date": {S: aws.String(date)},
		},
	})

	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to fetch insight for %s: %v", ErrStorage, date, err)
	}

	if len(result.Item) == 0 {
		return nil, false, nil
	}

	var item map[string]interface{}

	if err := dynamodbattribute.UnmarshalMap(result.Item, &item); err != nil {
		return nil, false, fmt.Errorf("%w: failed to unmarshal insight for %s: %v", ErrStorage, date, err)
	}

	return item, true, nil
}

// Put overwrites the insight stored under date, stamping stored_at as part
// of the write. The stored item, stamp included, is returned.
func (s *InsightStore) Put(ctx context.Context, date string, insight map[string]interface{}) (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	insight["date"] = date
	insight["stored_at"] = s.now().UTC().Format(time.RFC3339)

	item, err := dynamodbattribute.MarshalMap(insight)

	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal insight for %s: %v", ErrStorage, date, err)
	}

	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})

	if err != nil {
		return nil, fmt.Errorf("%w: failed to store insight for %s: %v", ErrStorage, date, err)
	}

	return insight, nil
}
