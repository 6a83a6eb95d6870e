// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/beatfluencer/beatfluencer-api/internal/app"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
)

// notFound answers unknown routes with a JSON error body instead of chi's
// plain-text default.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed answers known routes requested with an unregistered
// method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
