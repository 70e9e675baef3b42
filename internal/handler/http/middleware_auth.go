package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/service"
	"github.com/MKhiriev/go-voice-keeper/internal/utils"
)

// auth resolves the bearer token to a user id and stores it under
// [utils.UserIDCtxKey]. Every rejection answers 401 with a
// WWW-Authenticate challenge; only an expired token names its reason.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("path", r.URL.Path).Msg("rejected authorization header")
			unauthorized(w, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		switch {
		case errors.Is(err, service.ErrTokenIsExpired):
			log.Err(err).Msg("token expired")
			unauthorized(w, service.ErrTokenIsExpired.Error())
			return
		case err != nil:
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w, http.StatusText(http.StatusUnauthorized))
			return
		case token.UserID <= 0:
			log.Error().Int64("user_id", token.UserID).Msg("token carries no user")
			unauthorized(w, http.StatusText(http.StatusUnauthorized))
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="voice-keeper"`)
	http.Error(w, msg, http.StatusUnauthorized)
}

// bearerToken extracts the token from "Bearer <token>". The scheme is
// matched case-insensitively.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, ok := strings.Cut(strings.TrimLeft(header, " "), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	if strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
