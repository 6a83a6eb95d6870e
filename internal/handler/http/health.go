package http

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// getHealth answers liveness checks without touching the store.
//
// @Summary  Liveness
// @Tags     system
// @Produce  json
// @Success  200  {object}  healthResponse
// @Router   /health [get]
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, healthResponse{Status: "ok"})
}
