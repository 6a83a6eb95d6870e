package http

import (
	"errors"
	"net/http"
	"slices"

	"github.com/beatfluencer/beatfluencer-api/internal/app"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, resolves the
// user it was issued to via [service.AuthService.Authenticate] and stores
// that user in the request context before delegating to the next handler.
//
// A missing or malformed header, an invalid or expired token and a token of
// an unknown user are all answered with 401 and "WWW-Authenticate: Bearer".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
			log.Debug().Err(err).Msg("token rejected")
			unauthorized(w)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, app.MsgCouldNotValidateCredentials, http.StatusUnauthorized)
}

// requireRoles lets through only users whose role is one of roles. It must
// run after auth.
func requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrNoUserInContext)
				return
			}

			if !slices.Contains(roles, user.Role) {
				logger.FromRequest(r).Debug().
					Str("user_id", user.ID).
					Str("role", string(user.Role)).
					Msg("role is not allowed on route")
				utils.WriteError(w, app.MsgNotEnoughPermissions, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
