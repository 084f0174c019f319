package teacher

import (
	"hazri/internal/middleware"
	"hazri/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	teachers := r.Group("/teachers")
	teachers.Use(middleware.AuthMiddleware())
	teachers.Use(middleware.ExtractUserID())
	teachers.Use(middleware.ContextLogger(logger))
	{
		teachers.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "teacher", "read"),
			handler.GetAll,
		)

		teachers.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "teacher", "read"),
			handler.GetOptions,
		)

		teachers.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "teacher", "read"),
			handler.GetByID,
		)

		teachers.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "teacher", "create"),
			handler.Create,
		)

		teachers.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "teacher", "update"),
			handler.Update,
		)

		teachers.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "teacher", "delete"),
			handler.Delete,
		)

		teachers.POST("/:id/password",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "password", "update"),
			handler.ChangePassword,
		)
	}
}
