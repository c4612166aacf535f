package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token-sign-key JWT signing secret
//	-token-duration session token lifetime (e.g., "24h")
//	-runs-table DynamoDB table for runs
//	-targets-table DynamoDB table for targets
//	-users-table DynamoDB table for users
//	-region AWS region
//	-user-pool-id Cognito user pool id
//	-client-id Cognito app client id
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var requestTimeout time.Duration
	var tokenSignKey string
	var tokenDuration time.Duration
	var runsTable, targetsTable, usersTable string
	var region string
	var userPoolID, clientID string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	flag.StringVar(&runsTable, "runs-table", "", "DynamoDB table for runs")
	flag.StringVar(&targetsTable, "targets-table", "", "DynamoDB table for targets")
	flag.StringVar(&usersTable, "users-table", "", "DynamoDB table for users")
	flag.StringVar(&region, "region", "", "AWS region")
	flag.StringVar(&userPoolID, "user-pool-id", "", "Cognito user pool id")
	flag.StringVar(&clientID, "client-id", "", "Cognito app client id")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			RunsTable:    runsTable,
			TargetsTable: targetsTable,
			UsersTable:   usersTable,
			Region:       region,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Identity: Identity{
			UserPoolID: userPoolID,
			ClientID:   clientID,
		},
	}
}
