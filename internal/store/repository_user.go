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

// userItem is the DynamoDB representation of a [models.User].
type userItem struct {
	UserID       string `dynamodbav:"user_id"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	FirstName    string `dynamodbav:"first_name"`
	LastName     string `dynamodbav:"last_name"`
	CreatedAt    string `dynamodbav:"created_at"`
}

func newUserItem(user models.User) userItem {
	return userItem{
		UserID:       user.UserID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (i userItem) toModel() (models.User, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, i.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: bad created_at %q: %w", ErrUnmarshalingItem, i.CreatedAt, err)
	}

	return models.User{
		UserID:       i.UserID,
		Email:        i.Email,
		PasswordHash: i.PasswordHash,
		FirstName:    i.FirstName,
		LastName:     i.LastName,
		CreatedAt:    createdAt,
	}, nil
}

// userRepository is the DynamoDB-backed implementation of [UserRepository].
// Lookup by email goes through a global secondary index; the email is
// expected to be unique, which the identity provider already guarantees.
type userRepository struct {
	client     DynamoAPI
	table      string
	emailIndex string
	logger     *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the given
// DynamoDB client, table, and email index.
func NewUserRepository(client DynamoAPI, table string, emailIndex string, logger *logger.Logger) UserRepository {
	logger.Debug().Str("table", table).Msg("creating user repository")
	return &userRepository{
		client:     client,
		table:      table,
		emailIndex: emailIndex,
		logger:     logger,
	}
}

// SaveUser mirrors the account into the users table. A repeated save for
// the same user_id replaces the item.
func (r *userRepository) SaveUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(newUserItem(user))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshalingItem, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("error saving user")
		return fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	return nil
}

// GetUserByID retrieves a user by identifier.
// Returns [ErrNoUserWasFound] when no item exists.
func (r *userRepository) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error getting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if out.Item == nil {
		return models.User{}, ErrNoUserWasFound
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnmarshalingItem, err)
	}

	return item.toModel()
}

// GetUserByEmail retrieves a user through the email secondary index, taking
// the first match. Returns [ErrNoUserWasFound] on an empty result.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(r.emailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("error querying user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(out.Items) == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnmarshalingItem, err)
	}

	return item.toModel()
}
