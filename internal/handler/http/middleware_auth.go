package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-vinted/internal/app"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/service"
	"github.com/MKhiriev/go-vinted/internal/utils"
	"github.com/MKhiriev/go-vinted/models"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves the user
// owning it via [service.AuthService.Authenticate] and stores that user in
// the request context under [utils.UserCtxKey].
//
// A missing header, an empty token or a token matching no user is answered
// with 401 {"message":"Unauthorized"} directly. Any other lookup failure
// goes through the central error responder as a 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteMessage(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				log.Debug().Err(err).Msg("token matches no user")
				utils.WriteMessage(w, app.MsgUnauthorized, http.StatusUnauthorized)
				return
			}
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader strips the "Bearer " prefix from a raw
// "Authorization" header value. A header without the prefix is taken as the
// token itself.
//
//	Authorization: Bearer 3f9c...
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// currentUser returns the user stored by auth. Handlers behind auth treat a
// missing user as an internal error.
func currentUser(r *http.Request) (user models.User, ok bool) {
	return utils.GetUserFromContext(r.Context())
}
