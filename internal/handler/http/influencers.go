package http

import (
	"net/http"

	"github.com/beatfluencer/beatfluencer-api/models"
	"github.com/go-chi/chi/v5"
)

// @Summary   Create an influencer
// @Tags      influencers
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     request  body      models.InfluencerCreateRequest  true  "request body"
// @Success   200      {object}  models.Influencer
// @Failure   400      {object}  utils.ErrorResponse
// @Failure   409      {object}  utils.ErrorResponse
// @Router    /influencers [post]
func (h *Handler) createInfluencer(w http.ResponseWriter, r *http.Request) {
	var req models.InfluencerCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inf, err := h.services.InfluencerService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, inf)
}

// @Summary      Check a social URL
// @Description  Reports whether any influencer already uses the URL.
// @Tags         influencers
// @Produce      json
// @Security     BearerAuth
// @Param        url  query     string  true  "Social media URL"
// @Success      200  {object}  models.URLCheckResponse
// @Router       /influencers/check-url [get]
func (h *Handler) checkSocialURL(w http.ResponseWriter, r *http.Request) {
	exists, err := h.services.InfluencerService.CheckSocialURL(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.URLCheckResponse{Exists: exists})
}

// @Summary      List influencers
// @Description  Campaign managers receive records with payment and contact fields removed.
// @Tags         influencers
// @Produce      json
// @Security     BearerAuth
// @Param        status    query  string  false  "Exact status"
// @Param        category  query  string  false  "Category membership"
// @Param        platform  query  string  false  "Social platform, case-insensitive"
// @Success      200       {array}  models.Influencer
// @Router       /influencers [get]
func (h *Handler) listInfluencers(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	infs, err := h.services.InfluencerService.List(r.Context(), models.InfluencerListQuery{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Platform: q.Get("platform"),
	}, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, nonNil(infs))
}

// @Summary   Get an influencer
// @Tags      influencers
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "Influencer ID"
// @Success   200  {object}  models.Influencer
// @Failure   404  {object}  utils.ErrorResponse
// @Router    /influencers/{id} [get]
func (h *Handler) getInfluencer(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	inf, err := h.services.InfluencerService.Get(r.Context(), chi.URLParam(r, "id"), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, inf)
}

// @Summary   Search published influencers
// @Tags      search
// @Produce   json
// @Security  BearerAuth
// @Param     q              query  string  false  "Free text"
// @Param     platform       query  string  false  "Social platform"
// @Param     min_followers  query  int     false  "Minimum followers of one account"
// @Param     max_followers  query  int     false  "Maximum followers of one account"
// @Param     category       query  string  false  "Category"
// @Param     gender         query  string  false  "Gender"
// @Param     min_age        query  int     false  "Minimum age in years"
// @Param     max_age        query  int     false  "Maximum age in years"
// @Param     division       query  string  false  "Division"
// @Success   200            {array}   models.Influencer
// @Failure   400            {object}  utils.ErrorResponse
// @Router    /search/influencers [get]
func (h *Handler) searchInfluencers(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	query, err := parseSearchQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	infs, err := h.services.InfluencerService.Search(r.Context(), query, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, nonNil(infs))
}

func parseSearchQuery(r *http.Request) (models.InfluencerSearchQuery, error) {
	q := r.URL.Query()
	query := models.InfluencerSearchQuery{
		Q:        q.Get("q"),
		Platform: q.Get("platform"),
		Category: q.Get("category"),
		Gender:   q.Get("gender"),
		Division: q.Get("division"),
	}

	var err error
	if query.MinFollowers, err = int64Query(r, "min_followers"); err != nil {
		return query, err
	}
	if query.MaxFollowers, err = int64Query(r, "max_followers"); err != nil {
		return query, err
	}
	if query.MinAge, err = intQuery(r, "min_age"); err != nil {
		return query, err
	}
	if query.MaxAge, err = intQuery(r, "max_age"); err != nil {
		return query, err
	}

	return query, nil
}
