package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/running-log/internal/identity"
	"github.com/dkovalev/running-log/models"
)

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string and identity.
func stubToken(signed string, userID string, email string) models.Token {
	return models.Token{SignedString: signed, UserID: userID, Email: email}
}

// validRegisterRequest is a convenience fixture used across multiple tests.
var validRegisterRequest = models.RegisterRequest{
	Email:     "test@example.com",
	Password:  "SecurePass123",
	FirstName: "Alice",
	LastName:  "Doe",
}

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerFn: func(_ context.Context, request models.RegisterRequest) (models.User, models.Token, error) {
			assert.Equal(t, validRegisterRequest, request)
			user := models.User{UserID: "cognito-uuid-1", Email: request.Email}
			return user, stubToken(signedToken, user.UserID, user.Email), nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, signedToken, response.AccessToken)
	assert.Equal(t, "bearer", response.TokenType)
	assert.Equal(t, "cognito-uuid-1", response.UserID)
	assert.Equal(t, "test@example.com", response.Email)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation failure",
			err:        fmt.Errorf("%w: invalid email format", models.ErrValidation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "email already registered",
			err:        identity.ErrEmailAlreadyRegistered,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "provider rejection",
			err:        fmt.Errorf("%w: password policy", identity.ErrRegistrationRejected),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure",
			err:        errors.New("dynamo is down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, models.Token, error) {
					return models.User{}, models.Token{}, tt.err
				},
			}

			h := newTestHandler(t, auth, nil, nil)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, models.Token, error) {
			assert.Equal(t, "test@example.com", request.Email)
			user := models.User{UserID: "cognito-uuid-1", Email: request.Email}
			return user, stubToken(signedToken, user.UserID, user.Email), nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.LoginRequest{Email: "test@example.com", Password: "SecurePass123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, signedToken, response.AccessToken)
	assert.Equal(t, "bearer", response.TokenType)
}

func TestLogin_BadCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, identity.ErrInvalidCredentials
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.LoginRequest{Email: "test@example.com", Password: "WrongPass123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestLogin_ProviderFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, errors.New("service unavailable")
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.LoginRequest{Email: "test@example.com", Password: "SecurePass123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
