package server

import (
	"zyberian-site/internal/handlers"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// UploadsPrefix is where resumes stored on disk are served from.
const UploadsPrefix = "/uploads"

type Deps struct {
	Handler  *handlers.Handler
	Sessions sessions.Store
	Log      *logger.Logger

	// UploadDir is served at UploadsPrefix when set.
	UploadDir string
	// StaticDir holds the built frontend; empty disables it.
	StaticDir string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(d.Log), gin.Recovery())
	r.Use(sessions.Sessions(middleware.SessionCookie, d.Sessions))
	r.Use(middleware.InjectUser())

	h := d.Handler

	api := r.Group("/api")
	{
		// ПУБЛИЧНЫЕ
		api.GET("/jobs", h.ListActiveJobs)
		api.POST("/jobs/:id/apply", h.Apply)
		api.POST("/contact", h.SubmitContact)

		// AUTH
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", h.Me)
	}

	// АДМИНКА — всё за RequireAdmin
	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/jobs", h.ListJobs)
		admin.POST("/jobs", h.CreateJob)
		admin.PUT("/jobs/:id", h.UpdateJob)
		admin.DELETE("/jobs/:id", h.DeleteJob)

		admin.GET("/contact", h.ListContactSubmissions)
		admin.DELETE("/contact/:id", h.DeleteContactSubmission)

		admin.GET("/applications", h.ListApplications)
		admin.DELETE("/applications/:id", h.DeleteApplication)

		admin.POST("/change-credentials", h.ChangeCredentials)
		admin.GET("/audit", h.ListAuditLogs)
	}

	if d.UploadDir != "" {
		r.Static(UploadsPrefix, d.UploadDir)
	}

	// HEALTHCHECK
	r.GET("/health", handlers.Health)

	if d.StaticDir != "" {
		r.NoRoute(handlers.Frontend(d.StaticDir))
	}

	return r
}
