// Package config loads, merges, and validates the application configuration
// from environment variables and command-line flags.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// running-log application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and built-in defaults.
type StructuredConfig struct {
	// App holds application-level settings: the JWT signing secret and the
	// session token lifetime.
	App App

	// Storage holds the DynamoDB table names and the AWS region.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP server.
	Server Server

	// Identity holds the Cognito user pool identifiers.
	Identity Identity
}

// App holds application-level configuration values that control the session
// token lifecycle.
type App struct {
	// TokenSignKey is the shared secret used to sign and verify JWT session
	// tokens with HMAC-SHA256. Must be kept confidential.
	// Env: JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET"`

	// TokenDuration specifies how long an issued session token remains
	// valid. The product default is 24 hours.
	// Env: JWT_TOKEN_DURATION
	TokenDuration time.Duration `env:"JWT_TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading and writing
	// a single inbound request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Storage holds the DynamoDB table layout and the AWS region the tables
// live in. Each entity has its own table; all of a user's records share the
// user_id partition key.
type Storage struct {
	// RunsTable is the DynamoDB table storing runs
	// (partition key user_id, sort key run_id).
	// Env: RUNS_TABLE
	RunsTable string `env:"RUNS_TABLE"`

	// TargetsTable is the DynamoDB table storing targets
	// (partition key user_id, sort key target_id).
	// Env: TARGETS_TABLE
	TargetsTable string `env:"TARGETS_TABLE"`

	// UsersTable is the DynamoDB table storing users
	// (partition key user_id).
	// Env: USERS_TABLE
	UsersTable string `env:"USERS_TABLE"`

	// UsersEmailIndex is the global secondary index on UsersTable used for
	// lookup by email.
	// Env: USERS_EMAIL_INDEX
	UsersEmailIndex string `env:"USERS_EMAIL_INDEX"`

	// Region is the AWS region hosting the tables and the user pool.
	// Env: AWS_REGION
	Region string `env:"AWS_REGION"`
}

// Identity holds the Cognito user pool settings the identity adapter needs.
type Identity struct {
	// UserPoolID identifies the Cognito user pool that owns all accounts.
	// Env: COGNITO_USER_POOL_ID
	UserPoolID string `env:"COGNITO_USER_POOL_ID"`

	// ClientID is the Cognito app client used for the admin auth flow.
	// Env: COGNITO_CLIENT_ID
	ClientID string `env:"COGNITO_CLIENT_ID"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
}
