package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/models"
)

// dateLayout is the wire format for calendar dates stored in DynamoDB.
const dateLayout = "2006-01-02"

// runItem is the DynamoDB representation of a [models.Run]. The duration is
// stored as total seconds; date and creation time are ISO strings.
type runItem struct {
	UserID          string  `dynamodbav:"user_id"`
	RunID           string  `dynamodbav:"run_id"`
	Date            string  `dynamodbav:"date"`
	DistanceKm      float64 `dynamodbav:"distance_km"`
	DurationSeconds int     `dynamodbav:"duration_seconds"`
	Notes           string  `dynamodbav:"notes"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

func newRunItem(run models.Run) runItem {
	return runItem{
		UserID:          run.UserID,
		RunID:           run.RunID,
		Date:            run.Date.Format(dateLayout),
		DistanceKm:      run.DistanceKm,
		DurationSeconds: run.DurationSeconds,
		Notes:           run.Notes,
		CreatedAt:       run.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (i runItem) toModel() (models.Run, error) {
	date, err := time.Parse(dateLayout, i.Date)
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: bad date %q: %w", ErrUnmarshalingItem, i.Date, err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, i.CreatedAt)
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: bad created_at %q: %w", ErrUnmarshalingItem, i.CreatedAt, err)
	}

	return models.Run{
		RunID:           i.RunID,
		UserID:          i.UserID,
		Date:            date,
		DistanceKm:      i.DistanceKm,
		DurationSeconds: i.DurationSeconds,
		Notes:           i.Notes,
		CreatedAt:       createdAt,
	}, nil
}

// runRepository is the DynamoDB-backed implementation of [RunRepository].
// All of a user's runs share the user_id partition key; run_id is the sort
// key.
type runRepository struct {
	client DynamoAPI
	table  string
	logger *logger.Logger
}

// NewRunRepository constructs a [RunRepository] backed by the given DynamoDB
// client and table.
func NewRunRepository(client DynamoAPI, table string, logger *logger.Logger) RunRepository {
	logger.Debug().Str("table", table).Msg("creating run repository")
	return &runRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// SaveRun persists the run as a new item.
func (r *runRepository) SaveRun(ctx context.Context, run models.Run) error {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(newRunItem(run))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshalingItem, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		log.Err(err).Str("run_id", run.RunID).Msg("error saving run")
		return fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	return nil
}

// GetRunByID retrieves a single run by its composite key.
// Returns [ErrRunNotFound] when no item exists.
func (r *runRepository) GetRunByID(ctx context.Context, userID string, runID string) (models.Run, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       runKey(userID, runID),
	})
	if err != nil {
		log.Err(err).Str("run_id", runID).Msg("error getting run")
		return models.Run{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if out.Item == nil {
		return models.Run{}, ErrRunNotFound
	}

	var item runItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return models.Run{}, fmt.Errorf("%w: %w", ErrUnmarshalingItem, err)
	}

	return item.toModel()
}

// GetRunsByUser retrieves every run in the user's partition, in the store's
// native sort-key order.
func (r *runRepository) GetRunsByUser(ctx context.Context, userID string) ([]models.Run, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error querying runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var items []runItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalingItem, err)
	}

	runs := make([]models.Run, 0, len(items))
	for _, item := range items {
		run, err := item.toModel()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// UpdateRun replaces an existing run in place. The write is conditional on
// the item already existing; [ErrRunNotFound] is returned otherwise, so an
// update can never silently create a record.
func (r *runRepository) UpdateRun(ctx context.Context, run models.Run) error {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(newRunItem(run))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshalingItem, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(run_id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrRunNotFound
		}

		log.Err(err).Str("run_id", run.RunID).Msg("error updating run")
		return fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	return nil
}

// DeleteRun removes a run by its composite key. Deleting a missing run is
// not an error.
func (r *runRepository) DeleteRun(ctx context.Context, userID string, runID string) error {
	log := logger.FromContext(ctx)

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       runKey(userID, runID),
	})
	if err != nil {
		log.Err(err).Str("run_id", runID).Msg("error deleting run")
		return fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	return nil
}

func runKey(userID string, runID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
		"run_id":  &types.AttributeValueMemberS{Value: runID},
	}
}
