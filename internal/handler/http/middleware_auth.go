package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/service"
	"github.com/MKhiriev/estate-hub/internal/utils"
)

// sessionAuth is an HTTP middleware that enforces JWT-based session
// authentication.
//
// The token is looked up in two places, in order:
//  1. the "Authorization" header ("Bearer <token>"), which wins when both
//     sources are present;
//  2. the http-only access token cookie set at signin.
//
// A found token is verified via [service.AuthService.ParseToken] and its
// subject resolved to a live account via [service.AuthService.GetUserByID].
// On success the user record (the password hash is stripped) is stored in the
// request context under [utils.SessionUserCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - Neither token source is present ([ErrNoTokenProvided]).
//   - The "Authorization" header exists but carries no usable token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired or otherwise invalid. The two cases are logged
//     distinctly but the response body does not reveal which one occurred.
//   - The token verifies but its account no longer exists.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			writeErrorStatus(w, r, err, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
			default:
				log.Err(err).Msg("token verification failed")
			}
			writeErrorStatus(w, r, err, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		// A token outliving its account must not open a session.
		sessionUser, err := h.services.AuthService.GetUserByID(ctx, token.UserID)
		if err != nil {
			log.Err(err).Str("id", token.UserID).Msg("token subject has no account")
			writeErrorStatus(w, r, err, http.StatusUnauthorized, "user not found")
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token. The hash
		// never travels past this point.
		sessionUser.PasswordHash = ""
		ctx = context.WithValue(ctx, utils.SessionUserCtxKey, sessionUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest extracts the raw session token from r, preferring the
// "Authorization" header over the access token cookie.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — the header is present but contains
//     fewer than two space-separated parts.
//   - [ErrEmptyToken] — the second part exists but is an empty string.
//   - [ErrNoTokenProvided] — neither the header nor the cookie is present.
func getTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 {
			return "", ErrInvalidAuthorizationHeader
		}
		if parts[1] == "" {
			return "", ErrEmptyToken
		}
		return parts[1], nil
	}

	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrNoTokenProvided
}
