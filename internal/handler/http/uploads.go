package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/beatfluencer/beatfluencer-api/internal/app"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// uploadFormField is the multipart field carrying the uploaded file.
const uploadFormField = "file"

// @Summary   Upload a file
// @Tags      uploads
// @Accept    multipart/form-data
// @Produce   json
// @Security  BearerAuth
// @Param     file  formData  file  true  "File to store"
// @Success   200   {object}  models.UploadedFile
// @Failure   413   {object}  utils.ErrorResponse
// @Router    /upload [post]
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			log.Debug().Err(err).Msg("malformed multipart request")
		}
		utils.WriteError(w, app.MsgNoFileProvided, http.StatusBadRequest)
		return
	}
	defer file.Close()

	uploaded, err := h.services.UploadService.Store(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, uploaded)
}

func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rc, err := h.services.UploadService.Open(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "serveUpload").Str("filename", name).Msg("error streaming upload")
	}
}
