package dynamo

import (
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

var (
	clientInstance dynamodbiface.DynamoDBAPI
	once           sync.Once
)

// GetClient returns the process-wide DynamoDB client, creating it on first
// use. The client survives across warm invocations.
func GetClient(region string) dynamodbiface.DynamoDBAPI {
	once.Do(func() {
		sess := session.Must(session.NewSession(&aws.Config{Region: aws.String(region)}))
		clientInstance = dynamodb.New(sess)
	})

	return clientInstance
}
