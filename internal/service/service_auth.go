package service

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/dkovalev/running-log/internal/config"
	"github.com/dkovalev/running-log/internal/identity"
	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/store"
	"github.com/dkovalev/running-log/internal/utils"
	"github.com/dkovalev/running-log/models"
)

// authService is the concrete implementation of AuthService.
// Credentials live with the identity provider; the service validates input,
// delegates registration and sign-in to the provider, mirrors the account
// into the user repository, and issues JWT tokens for the API.
type authService struct {
	// userRepository mirrors provider accounts into the local store so that
	// user records exist alongside runs and targets.
	userRepository store.UserRepository

	// provider owns registration and credential verification.
	provider identity.Provider

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and identity provider, with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, provider identity.Provider, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		provider:       provider,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Email format and password policy are checked before any provider call.
// On provider success the account is mirrored into the users table under
// the provider-issued id, and a signed token is returned.
//
// Returns:
//   - An [models.ErrValidation] error for a bad email or weak password.
//   - [identity.ErrEmailAlreadyRegistered] / [identity.ErrRegistrationRejected]
//     passed through from the provider.
//   - A wrapped storage error if mirroring the user fails.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := models.ValidateEmail(request.Email); err != nil {
		return models.User{}, models.Token{}, err
	}
	if err := validatePassword(request.Password); err != nil {
		return models.User{}, models.Token{}, err
	}

	registered, err := a.provider.Register(ctx, request.Email, request.Password, request.FirstName, request.LastName)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user registration failed")
		return models.User{}, models.Token{}, err
	}

	user, err := models.NewUser(registered.UserID, registered.Email, models.PasswordHashExternal, request.FirstName, request.LastName)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	if err := a.userRepository.SaveUser(ctx, user); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("user synchronization failed")
		return models.User{}, models.Token{}, fmt.Errorf("user synchronization failed: %w", err)
	}

	token, err := a.createToken(user.UserID, user.Email)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Login authenticates an existing account against the identity provider and
// issues a signed token.
//
// Returns [identity.ErrInvalidCredentials] on a bad email/password pair, or
// a wrapped provider error on other failures.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	authenticated, err := a.provider.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user authentication failed")
		return models.User{}, models.Token{}, err
	}

	user, err := a.userRepository.GetUserByID(ctx, authenticated.UserID)
	if err != nil {
		// The provider is authoritative; a missing mirror row is not a
		// login failure.
		log.Warn().Err(err).Str("user_id", authenticated.UserID).Msg("no mirrored user record found")
		user = models.User{UserID: authenticated.UserID, Email: authenticated.Email}
	}

	token, err := a.createToken(authenticated.UserID, authenticated.Email)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, bad signature, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) createToken(userID string, email string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(userID, email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// validatePassword enforces the user pool's password policy locally: at
// least 8 characters with an upper case letter, a lower case letter, and a
// digit.
func validatePassword(password string) error {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if len(password) < 8 || !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("%w: invalid password format", models.ErrValidation)
	}

	return nil
}
