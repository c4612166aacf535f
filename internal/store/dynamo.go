package store

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dkovalev/running-log/internal/config"
)

// NewDynamoClient constructs a DynamoDB client for the configured region
// using the default AWS credential chain (environment, shared config, IAM
// role).
func NewDynamoClient(ctx context.Context, cfg config.Storage) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg), nil
}
