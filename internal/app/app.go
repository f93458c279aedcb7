package app

import (
	"database/sql"
	"os"

	"github.com/Muniya-64bit/Database-Backend/internal/account"
	"github.com/Muniya-64bit/Database-Backend/internal/authority"
	"github.com/Muniya-64bit/Database-Backend/internal/employee"
	"github.com/Muniya-64bit/Database-Backend/internal/leave"
	"github.com/Muniya-64bit/Database-Backend/internal/messaging/kafka"
	"github.com/Muniya-64bit/Database-Backend/internal/middleware"
	"github.com/Muniya-64bit/Database-Backend/internal/report"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and wires every module onto the
// router. It is the single composition root of the API binary.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, sqlDB, gormDB, rdb)
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authorityRepo := authority.NewRepository(gormDB)
	accountRepo := account.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Role authority ---
	enforcer, err := authority.NewEnforcer()
	if err != nil {
		return err
	}
	authorityService := authority.NewService(authorityRepo, enforcer)

	// --- Services ---
	accountService := account.NewService(db, accountRepo, authorityService)
	employeeService := employee.NewService(db, employeeRepo, authorityService, outboxRepo)
	leaveService := leave.NewService(db, leaveRepo, authorityService, outboxRepo)
	reportService := report.NewService(reportRepo, rdb)

	// --- Handlers ---
	authorityHandler := authority.NewHandler(authorityService)
	accountHandler := account.NewHandler(accountService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes ---
	account.RegisterRoutes(router, accountHandler, authorityService)
	authority.RegisterRoutes(router, authorityHandler, authorityService)
	employee.RegisterRoutes(router, employeeHandler, authorityService)
	leave.RegisterRoutes(router, leaveHandler, authorityService, rdb)
	report.RegisterRoutes(router, reportHandler, authorityService)

	return nil
}
