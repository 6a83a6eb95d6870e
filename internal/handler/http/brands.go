package http

import (
	"net/http"

	"github.com/beatfluencer/beatfluencer-api/models"
)

// @Summary   Create a brand
// @Tags      brands
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     request  body      models.BrandCreateRequest  true  "request body"
// @Success   200      {object}  models.Brand
// @Router    /brands [post]
func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	var req models.BrandCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	brand, err := h.services.BrandService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, brand)
}

// @Summary   List brands
// @Tags      brands
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  models.Brand
// @Router    /brands [get]
func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.services.BrandService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, nonNil(brands))
}
