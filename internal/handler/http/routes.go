package http

import (
	"net/http"

	_ "github.com/beatfluencer/beatfluencer-api/docs"
	"github.com/beatfluencer/beatfluencer-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// compressionLevel is the gzip level of compressed responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	// client address from X-Forwarded-For / X-Real-IP, used by logs and the login limiter
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// stored uploads are public
	router.Get("/uploads/{name}", h.serveUpload)
	router.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.getHealth)
		r.Post("/auth/register", h.register)
		r.With(h.limitLogins).Post("/auth/login", h.login)

		// routes for any authenticated user
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)

			r.With(requireRoles(models.RoleAdmin)).Get("/users", h.listUsers)

			r.Group(func(r chi.Router) {
				r.Use(requireRoles(models.RoleAdmin, models.RoleInfluencerManager))
				r.Post("/influencers", h.createInfluencer)
				r.Get("/influencers/check-url", h.checkSocialURL)
			})
			r.Get("/influencers", h.listInfluencers)
			r.Get("/influencers/{id}", h.getInfluencer)

			r.Post("/brands", h.createBrand)
			r.Get("/brands", h.listBrands)

			r.Post("/campaigns", h.createCampaign)
			r.Get("/campaigns", h.listCampaigns)

			r.Post("/upload", h.uploadFile)

			r.Get("/search/influencers", h.searchInfluencers)
		})
	})

	return router
}
