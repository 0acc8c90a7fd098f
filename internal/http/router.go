package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/AgbediaSamuel/traverse-backend-wa/internal/config"
	h "github.com/AgbediaSamuel/traverse-backend-wa/internal/http/handlers"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Itinerary documents
		itineraries := api.Group("/itineraries")
		itineraries.GET("", h.ListItineraries)
		itineraries.GET("/:id", h.GetItinerary)
		itineraries.POST("", middleware.RequireAuth(env.JWTSecret), h.SaveItinerary)
		itineraries.DELETE("/:id", middleware.RequireAuth(env.JWTSecret), middleware.RequireRoles("admin"), h.DeleteItinerary)

		// Viewer (page model + export); gated by the template secret when set
		view := api.Group("/view")
		view.GET("", h.ViewItinerary)
		view.GET("/:id", h.ViewItinerary)
		view.GET("/:id/pages/:index", h.ViewPage)
		view.GET("/:id/export", h.ExportItinerary)
	}

	h.SetRouter(r)
	return r
}
