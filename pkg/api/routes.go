package api

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/navarrastar/leadpage/pkg/middleware"
)

// RegisterRoutes wires every landing page route onto router. static holds the
// browser assets served under /static.
func RegisterRoutes(router *gin.Engine, h *Handlers, limiter *middleware.ClientRateLimiter, static fs.FS) {
	router.Use(middleware.CORS())

	router.GET("/", h.LandingPage)
	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/countdown", h.Countdown)

	limited := router.Group("/", middleware.RateLimit(limiter))
	limited.POST("/contact", h.SubmitContactForm)
	limited.POST("/api/leads", h.SubmitLead)

	if static != nil {
		router.StaticFS("/static", http.FS(static))
	}
}
