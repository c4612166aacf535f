// Package http implements the HTTP transport layer of the running-log
// service. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging, and tracing concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and — on
// success — stores the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Rejections:
//   - HTTP 403 Forbidden when the "Authorization" header is absent.
//   - HTTP 401 Unauthorized when the header carries no bearer token or the
//     token is malformed, has a bad signature, or has expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusForbidden)
			return
		}

		tokenString, ok := getTokenFromAuthHeader(authHeader)
		if !ok {
			log.Err(ErrInvalidAuthorizationToken).Str("header", authHeader).Send()
			http.Error(w, ErrInvalidAuthorizationToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, ErrInvalidAuthorizationToken.Error(), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: Bearer <token>
//
// The second return value is false when the header has fewer than two
// space-separated parts or the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, bool) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
