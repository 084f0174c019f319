package app

import (
	"database/sql"
	"path/filepath"

	"hazri/internal/attendance"
	"hazri/internal/auth"
	"hazri/internal/messaging/kafka"
	"hazri/internal/rbac"
	"hazri/internal/report"
	"hazri/internal/shared/counter"
	"hazri/internal/teacher"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	teacherRepo := teacher.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService(
		filepath.Join("internal", "rbac", "model.conf"),
		filepath.Join("internal", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}

	// --- Services ---
	teacherService := teacher.NewServiceWithOutbox(db, teacherRepo, counterRepo, outboxRepo, rdb)
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, teacherRepo, outboxRepo)
	authService := auth.NewService(authRepo, teacherRepo)
	reportService := report.NewService(teacherRepo, attendanceRepo, report.WeekendFromEnv())

	// --- Handlers ---
	teacherHandler := teacher.NewHandler(teacherService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		teacher.RegisterRoutes(api, teacherHandler, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb, logger)
		report.RegisterRoutes(api, reportHandler, rbacService, logger)
	}

	return nil
}
