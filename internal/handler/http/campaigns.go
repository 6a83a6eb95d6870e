package http

import (
	"net/http"

	"github.com/beatfluencer/beatfluencer-api/models"
)

// @Summary   Create a campaign
// @Tags      campaigns
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     request  body      models.CampaignCreateRequest  true  "request body"
// @Success   200      {object}  models.Campaign
// @Router    /campaigns [post]
func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.CampaignCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	campaign, err := h.services.CampaignService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, campaign)
}

// @Summary   List campaigns
// @Tags      campaigns
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  models.Campaign
// @Router    /campaigns [get]
func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.services.CampaignService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, nonNil(campaigns))
}
