package http

import (
	"net"
	"net/http"

	"github.com/beatfluencer/beatfluencer-api/internal/app"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
)

// limitLogins throttles requests per client IP with the login limiter.
// Limiter failures let the request through.
func (h *Handler) limitLogins(next http.Handler) http.Handler {
	if h.loginLimiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ip := clientIP(r)

		allowed, err := h.loginLimiter.Allow(r.Context(), ip)
		if err != nil {
			log.Warn().Err(err).Str("func", "limitLogins").Msg("login limiter unavailable")
		}
		if !allowed {
			log.Info().Str("ip", ip).Msg("login rate limit exceeded")
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
