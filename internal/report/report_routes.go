package report

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
	reports := r.Group("/teachers/:id/summary")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ExtractUserID())
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.Summary,
		)
	}
}
