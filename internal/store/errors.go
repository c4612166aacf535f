package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRunNotFound is returned when a lookup or update targets a run
	// (identified by user_id and run_id) that does not exist in the table.
	ErrRunNotFound = errors.New("run was not found")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level operation errors. These are wrapped by repository methods when a
// DynamoDB call or item conversion fails before any domain logic applies.
var (
	// ErrMarshalingItem is returned when a domain model cannot be converted
	// into a DynamoDB attribute-value map.
	ErrMarshalingItem = errors.New("error marshaling item")

	// ErrUnmarshalingItem is returned when a stored item cannot be converted
	// back into a domain model (corrupt attribute types or timestamps).
	ErrUnmarshalingItem = errors.New("error unmarshaling item")

	// ErrExecutingQuery is returned when a DynamoDB read operation
	// (GetItem, Query) fails at the SDK level.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingWrite is returned when a DynamoDB write operation
	// (PutItem, DeleteItem, TransactWriteItems) fails at the SDK level.
	ErrExecutingWrite = errors.New("error executing write")
)
