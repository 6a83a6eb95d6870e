package http

import (
	"errors"
	"net/http"

	"github.com/beatfluencer/beatfluencer-api/internal/app"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
)

// errorResponse is the status and detail a classified error is answered
// with. An empty detail means the error text itself is returned.
type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, ""},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgIncorrectEmailOrPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	service.ErrEmailAlreadyRegistered:  {http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
	service.ErrInfluencerEmailExists:   {http.StatusBadRequest, app.MsgEmailAlreadyExists},
	service.ErrInfluencerNotFound:      {http.StatusNotFound, app.MsgInfluencerNotFound},
	service.ErrFileNotFound:            {http.StatusNotFound, app.MsgFileNotFound},
	ErrInvalidQueryParameter:           {http.StatusBadRequest, ""},
	ErrNoUserInContext:                 {http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},

	store.ErrStoreUnavailable: {http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.detail == "" {
				return resp.status, err.Error()
			}
			return resp.status, resp.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status and detail err is classified as.
// Server-side failures are logged at error level, the rest at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, detail := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detail, status)
}
