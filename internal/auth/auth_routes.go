package auth

import (
	"hazri/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		// Login endpoints are throttled per IP; there is no session yet
		// to key on.
		auth.POST("/login",
			middleware.RateLimitByIP(0.5, 3),
			handler.Login,
		)
		auth.POST("/teacher-login",
			middleware.RateLimitByIP(0.5, 3),
			handler.TeacherLogin,
		)
		auth.POST("/refresh",
			middleware.RateLimitByIP(1, 3),
			handler.Refresh,
		)

		auth.GET("/me",
			middleware.AuthMiddleware(),
			middleware.ExtractUserID(),
			handler.Me,
		)
	}
}
