package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Leonguyenbk/QLCV/internal/absence"
	"github.com/Leonguyenbk/QLCV/internal/assessment"
	"github.com/Leonguyenbk/QLCV/internal/auth"
	"github.com/Leonguyenbk/QLCV/internal/authz"
	"github.com/Leonguyenbk/QLCV/internal/avatar"
	"github.com/Leonguyenbk/QLCV/internal/department"
	"github.com/Leonguyenbk/QLCV/internal/employee"
	"github.com/Leonguyenbk/QLCV/internal/history"
	"github.com/Leonguyenbk/QLCV/internal/kpi"
	"github.com/Leonguyenbk/QLCV/internal/messaging/kafka"
	"github.com/Leonguyenbk/QLCV/internal/middleware"
	"github.com/Leonguyenbk/QLCV/internal/shared/counter"
	"github.com/Leonguyenbk/QLCV/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	absenceRepo := absence.NewRepository(gormDB)
	assessmentRepo := assessment.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	historyRepo := history.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	userRepo := user.NewRepository(gormDB)

	// --- Authorization ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}
	gate := authz.NewGate(enforcer)

	avatarStorage := avatar.NewFSStorage("static/avatars")

	// --- Services ---
	absenceService := absence.NewService(db, absenceRepo)
	assessmentService := assessment.NewService(db, assessmentRepo)
	authService := auth.NewService(userRepo, employeeRepo)
	departmentService := department.NewService(db, departmentRepo, rdb)
	historyService := history.NewService(historyRepo)
	employeeService := employee.NewService(db, employeeRepo, historyService, gate, counterRepo, outboxRepo, avatarStorage)
	kpiService := kpi.NewService(absenceRepo, employeeRepo)
	userService := user.NewService(db, userRepo)

	// --- Handlers ---
	absenceHandler := absence.NewHandler(absenceService)
	assessmentHandler := assessment.NewHandler(assessmentService)
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	historyHandler := history.NewHandler(historyService)
	kpiHandler := kpi.NewHandler(kpiService)
	userHandler := user.NewHandler(userService)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Static("/static/avatars", "static/avatars")

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		absence.RegisterRoutes(api, absenceHandler, gate)
		assessment.RegisterRoutes(api, assessmentHandler, gate)
		department.RegisterRoutes(api, departmentHandler, gate)
		employee.RegisterRoutes(api, employeeHandler, historyHandler, gate)
		kpi.RegisterRoutes(api, kpiHandler, gate)
		user.RegisterRoutes(api, userHandler, gate)
	}

	return nil
}
