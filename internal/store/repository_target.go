package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/models"
)

// targetItem is the DynamoDB representation of a [models.Target].
type targetItem struct {
	UserID     string  `dynamodbav:"user_id"`
	TargetID   string  `dynamodbav:"target_id"`
	TargetType string  `dynamodbav:"target_type"`
	Period     string  `dynamodbav:"period"`
	DistanceKm float64 `dynamodbav:"distance_km"`
	CreatedAt  string  `dynamodbav:"created_at"`
}

func newTargetItem(target models.Target) targetItem {
	return targetItem{
		UserID:     target.UserID,
		TargetID:   target.TargetID,
		TargetType: target.Type,
		Period:     target.Period,
		DistanceKm: target.DistanceKm,
		CreatedAt:  target.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (i targetItem) toModel() (models.Target, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, i.CreatedAt)
	if err != nil {
		return models.Target{}, fmt.Errorf("%w: bad created_at %q: %w", ErrUnmarshalingItem, i.CreatedAt, err)
	}

	return models.Target{
		TargetID:   i.TargetID,
		UserID:     i.UserID,
		Type:       i.TargetType,
		Period:     i.Period,
		DistanceKm: i.DistanceKm,
		CreatedAt:  createdAt,
	}, nil
}

// targetRepository is the DynamoDB-backed implementation of
// [TargetRepository]. All of a user's targets share the user_id partition
// key; target_id is the sort key, so period uniqueness is an application
// rule enforced by the upsert in [targetRepository.SaveTarget].
type targetRepository struct {
	client DynamoAPI
	table  string
	logger *logger.Logger
}

// NewTargetRepository constructs a [TargetRepository] backed by the given
// DynamoDB client and table.
func NewTargetRepository(client DynamoAPI, table string, logger *logger.Logger) TargetRepository {
	logger.Debug().Str("table", table).Msg("creating target repository")
	return &targetRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// SaveTarget persists the target, replacing any existing target of the same
// user with the same type and period.
//
// The replacement is a single TransactWriteItems call carrying the deletes
// of every matched prior record together with the put of the new one, so
// concurrent upserts for one period can never leave a duplicate behind.
// When the period is free, a plain put suffices.
func (r *targetRepository) SaveTarget(ctx context.Context, target models.Target) error {
	log := logger.FromContext(ctx)

	existingIDs, err := r.findTargetIDsByPeriod(ctx, target.UserID, target.Type, target.Period)
	if err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(newTargetItem(target))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshalingItem, err)
	}

	if len(existingIDs) == 0 {
		_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.table),
			Item:      item,
		})
		if err != nil {
			log.Err(err).Str("target_id", target.TargetID).Msg("error saving target")
			return fmt.Errorf("%w: %w", ErrExecutingWrite, err)
		}
		return nil
	}

	writes := make([]types.TransactWriteItem, 0, len(existingIDs)+1)
	for _, targetID := range existingIDs {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.table),
				Key: map[string]types.AttributeValue{
					"user_id":   &types.AttributeValueMemberS{Value: target.UserID},
					"target_id": &types.AttributeValueMemberS{Value: targetID},
				},
			},
		})
	}
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(r.table),
			Item:      item,
		},
	})

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		log.Err(err).
			Str("target_id", target.TargetID).
			Str("period", target.Period).
			Msg("error replacing target")
		return fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	log.Debug().
		Str("period", target.Period).
		Int("replaced", len(existingIDs)).
		Msg("target replaced by period")

	return nil
}

// GetTargetsByUser retrieves every target in the user's partition, in the
// store's native sort-key order.
func (r *targetRepository) GetTargetsByUser(ctx context.Context, userID string) ([]models.Target, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error querying targets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var items []targetItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalingItem, err)
	}

	targets := make([]models.Target, 0, len(items))
	for _, item := range items {
		target, err := item.toModel()
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	return targets, nil
}

// findTargetIDsByPeriod returns the ids of the user's targets matching the
// given type and period. The partition is queried by key and narrowed with
// a filter expression; "period" is a DynamoDB reserved word, hence the name
// placeholder.
func (r *targetRepository) findTargetIDsByPeriod(ctx context.Context, userID string, targetType string, period string) ([]string, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		FilterExpression:       aws.String("target_type = :target_type AND #period = :period"),
		ExpressionAttributeNames: map[string]string{
			"#period": "period",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id":     &types.AttributeValueMemberS{Value: userID},
			":target_type": &types.AttributeValueMemberS{Value: targetType},
			":period":      &types.AttributeValueMemberS{Value: period},
		},
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error querying targets by period")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var items []targetItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalingItem, err)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.TargetID)
	}

	return ids, nil
}
