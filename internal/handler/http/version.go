package http

import (
	"io"
	"net/http"
)

// getServerVersion answers GET /api/version with the plain-text version.
//
// @Summary  Server version
// @Tags     system
// @Produce  plain
// @Success  200  {string}  string
// @Router   /version [get]
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
