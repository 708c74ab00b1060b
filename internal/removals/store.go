// Package removals persists executed org removals in DynamoDB so later
// reconcile runs never re-invite an explicitly removed login.
package removals

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bcgov/gh-org-report/internal/config"
	"github.com/bcgov/gh-org-report/internal/models"
)

// Store implements the RemovalStore interface using DynamoDB.
type Store struct {
	client    *dynamodb.Client
	tableName string
}

// NewStore creates a DynamoDB-backed RemovalStore.
func NewStore(ctx context.Context, cfg config.DynamoDBConfig) (*Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.Endpoint != "" {
		// Local development against dynamodb-local.
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	var clientOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &Store{
		client:    dynamodb.NewFromConfig(awsCfg, clientOpts...),
		tableName: cfg.TableName,
	}, nil
}

// SaveRemoval stores one executed removal.
func (s *Store) SaveRemoval(ctx context.Context, record models.RemovalRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshaling removal: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("saving removal: %w", err)
	}
	return nil
}

// ListRemovals returns all tracked removals for an org.
func (s *Store) ListRemovals(ctx context.Context, org string) ([]models.RemovalRecord, error) {
	var records []models.RemovalRecord
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String("pk = :pk AND begins_with(sk, :sk)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: "ORG#" + org},
				":sk": &types.AttributeValueMemberS{Value: "USER#"},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("querying removals: %w", err)
		}

		var page []models.RemovalRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshaling removals: %w", err)
		}
		records = append(records, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return records, nil
}
