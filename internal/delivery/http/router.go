package http

import (
	"github.com/auditrecrut/backend/internal/delivery/http/handler"
	"github.com/auditrecrut/backend/internal/delivery/http/middleware"
	"github.com/auditrecrut/backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Router struct {
	authHandler      *handler.AuthHandler
	dashboardHandler *handler.DashboardHandler
	missionHandler   *handler.MissionHandler
	candidateHandler *handler.CandidateHandler
	profileHandler   *handler.ProfileHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	missionHandler *handler.MissionHandler,
	candidateHandler *handler.CandidateHandler,
	profileHandler *handler.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		missionHandler:   missionHandler,
		candidateHandler: candidateHandler,
		profileHandler:   profileHandler,
		authMiddleware:   authMiddleware,
	}
}

// registerValidations adds the userrole rule used by signup binding.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseRole(fl.Field().String())
			return err == nil
		})
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authHandler.SignUp)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.POST("/refresh-profile", r.authMiddleware.RequireAuth(), r.authHandler.RefreshProfile)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Dashboard routes
			protected.GET("/dashboard", r.dashboardHandler.GetDashboard)
			protected.GET("/dashboard/navigation", r.dashboardHandler.GetNavigation)

			// Profile form routes (candidate variants)
			profile := protected.Group("/profile")
			{
				profile.GET("/graduate", r.profileHandler.GetGraduate)
				profile.PUT("/graduate", r.profileHandler.SaveGraduate)
				profile.GET("/professional", r.profileHandler.GetProfessional)
				profile.PUT("/professional", r.profileHandler.SaveProfessional)
			}

			// Recruiter routes: non-recruiters are redirected to the
			// dashboard before any handler runs.
			recruiter := protected.Group("")
			recruiter.Use(middleware.RequireRecruiter())
			{
				missions := recruiter.Group("/missions")
				{
					missions.POST("", r.missionHandler.Create)
					missions.GET("", r.missionHandler.List)
					missions.DELETE("/:id", r.missionHandler.Delete)
				}

				recruiter.GET("/activities", r.missionHandler.Activities)

				candidates := recruiter.Group("/candidates")
				{
					candidates.GET("", r.candidateHandler.List)
					candidates.POST("/:match_id/viewed", r.candidateHandler.MarkViewed)
					candidates.POST("/:match_id/interest", r.candidateHandler.SetInterest)
				}
			}
		}
	}

	return router
}
