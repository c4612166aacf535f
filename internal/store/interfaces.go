// Package store implements the data-access layer of the running-log service
// on top of Amazon DynamoDB.
//
// Each entity lives in its own table, partitioned by user_id so that all of
// a user's records are colocated. Repositories expose narrow, entity-shaped
// interfaces; the concrete DynamoDB client is injected through [DynamoAPI]
// so tests can substitute a fake without AWS access.
package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dkovalev/running-log/models"
)

// DynamoAPI is the subset of the DynamoDB client used by the repositories.
// *dynamodb.Client satisfies it.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// RunRepository persists and retrieves runs. Runs are immutable through the
// public API; UpdateRun and DeleteRun exist for the data-access layer only.
type RunRepository interface {
	SaveRun(ctx context.Context, run models.Run) error
	GetRunByID(ctx context.Context, userID string, runID string) (models.Run, error)
	GetRunsByUser(ctx context.Context, userID string) ([]models.Run, error)
	UpdateRun(ctx context.Context, run models.Run) error
	DeleteRun(ctx context.Context, userID string, runID string) error
}

// TargetRepository persists and retrieves periodic distance targets.
//
// SaveTarget has upsert semantics keyed on (user, type, period): any target
// already occupying the same period is replaced atomically together with
// the write of the new record.
type TargetRepository interface {
	SaveTarget(ctx context.Context, target models.Target) error
	GetTargetsByUser(ctx context.Context, userID string) ([]models.Target, error)
}

// UserRepository persists and retrieves the accounts mirrored from the
// identity provider.
type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}
