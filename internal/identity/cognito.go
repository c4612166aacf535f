package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/dkovalev/running-log/internal/config"
	"github.com/dkovalev/running-log/internal/logger"
)

// CognitoAPI is the subset of the Cognito identity provider client used by
// the adapter.
type CognitoAPI interface {
	AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cognitoidentityprovider.AdminSetUserPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminSetUserPasswordOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cognitoidentityprovider.AdminInitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminInitiateAuthOutput, error)
	GetUser(ctx context.Context, params *cognitoidentityprovider.GetUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GetUserOutput, error)
}

// NewCognitoClient constructs a Cognito client for the configured region
// using the default AWS credential chain.
func NewCognitoClient(ctx context.Context, region string) (*cognitoidentityprovider.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return cognitoidentityprovider.NewFromConfig(awsCfg), nil
}

// cognitoProvider implements [Provider] against an AWS Cognito user pool.
// The pool uses email as username, so provider usernames are the pool's
// generated UUIDs and sign-in goes by email.
type cognitoProvider struct {
	client     CognitoAPI
	userPoolID string
	clientID   string
	logger     *logger.Logger
}

// NewCognitoProvider constructs a [Provider] over the given Cognito client
// and user pool configuration.
func NewCognitoProvider(client CognitoAPI, cfg config.Identity, logger *logger.Logger) Provider {
	logger.Debug().Str("user_pool_id", cfg.UserPoolID).Msg("creating cognito identity provider")
	return &cognitoProvider{
		client:     client,
		userPoolID: cfg.UserPoolID,
		clientID:   cfg.ClientID,
		logger:     logger,
	}
}

// Register creates the user in the pool and immediately promotes the
// password to permanent so the account skips the FORCE_CHANGE_PASSWORD
// state. The welcome email is suppressed.
func (p *cognitoProvider) Register(ctx context.Context, email string, password string, firstName string, lastName string) (Identity, error) {
	log := logger.FromContext(ctx)

	out, err := p.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(email),
		UserAttributes: []cognitotypes.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("given_name"), Value: aws.String(firstName)},
			{Name: aws.String("family_name"), Value: aws.String(lastName)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
		TemporaryPassword: aws.String(password),
		MessageAction:     cognitotypes.MessageActionTypeSuppress,
	})
	if err != nil {
		var usernameExists *cognitotypes.UsernameExistsException
		if errors.As(err, &usernameExists) {
			return Identity{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("email", email).Msg("error creating user in cognito")
		return Identity{}, fmt.Errorf("%w: %w", ErrRegistrationRejected, err)
	}

	_, err = p.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(email),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("error setting permanent password in cognito")
		return Identity{}, fmt.Errorf("%w: %w", ErrRegistrationRejected, err)
	}

	if out.User == nil || out.User.Username == nil {
		return Identity{}, fmt.Errorf("%w: provider returned no username", ErrRegistrationRejected)
	}

	return Identity{
		UserID: aws.ToString(out.User.Username),
		Email:  email,
	}, nil
}

// Authenticate runs the ADMIN_NO_SRP_AUTH flow and resolves the pool-side
// identity from the issued access token.
func (p *cognitoProvider) Authenticate(ctx context.Context, email string, password string) (Identity, error) {
	log := logger.FromContext(ctx)

	out, err := p.client.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: aws.String(p.userPoolID),
		ClientId:   aws.String(p.clientID),
		AuthFlow:   cognitotypes.AuthFlowTypeAdminNoSrpAuth,
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		var notAuthorized *cognitotypes.NotAuthorizedException
		var userNotFound *cognitotypes.UserNotFoundException
		if errors.As(err, &notAuthorized) || errors.As(err, &userNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("error authenticating user in cognito")
		return Identity{}, fmt.Errorf("error authenticating with identity provider: %w", err)
	}

	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		// An auth challenge means the pool is misconfigured for this flow.
		return Identity{}, fmt.Errorf("error authenticating with identity provider: no authentication result")
	}

	user, err := p.client.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: out.AuthenticationResult.AccessToken,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("error fetching user from cognito")
		return Identity{}, fmt.Errorf("error fetching user from identity provider: %w", err)
	}

	identity := Identity{
		UserID: aws.ToString(user.Username),
		Email:  email,
	}
	for _, attr := range user.UserAttributes {
		if aws.ToString(attr.Name) == "email" {
			identity.Email = aws.ToString(attr.Value)
			break
		}
	}

	return identity, nil
}
