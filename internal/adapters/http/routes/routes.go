package routes

import (
	"libeasy/internal/adapters/http/handlers"
	"libeasy/internal/adapters/http/middleware"
	"libeasy/internal/adapters/persistence/repositories"
	"libeasy/internal/config"
	"libeasy/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	recordRepo := repositories.NewBorrowRecordRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	bookService := services.NewBookService(bookRepo, recordRepo)
	studentService := services.NewStudentService(studentRepo, recordRepo)
	borrowService := services.NewBorrowService(db, studentRepo, recordRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	bookHandler := handlers.NewBookHandler(bookService)
	studentHandler := handlers.NewStudentHandler(studentService, borrowService)
	borrowHandler := handlers.NewBorrowHandler(borrowService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	protected := middleware.Protected(cfg, userRepo)

	api := app.Group("/api")

	// Auth routes (public, stricter rate limit)
	authRoutes := api.Group("/auth", middleware.AuthRateLimiter())
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Book routes (reads public, writes staff-only)
	bookRoutes := api.Group("/books")
	bookRoutes.Get("/", bookHandler.List)
	bookRoutes.Get("/:id", bookHandler.GetByID)
	bookRoutes.Post("/", protected, middleware.StaffOnly(), bookHandler.Create)
	bookRoutes.Put("/:id", protected, middleware.StaffOnly(), bookHandler.Update)
	bookRoutes.Delete("/:id", protected, middleware.StaffOnly(), bookHandler.Delete)

	// Student routes (creation admin-only, the rest staff-only)
	studentRoutes := api.Group("/students", protected)
	studentRoutes.Get("/", middleware.StaffOnly(), studentHandler.List)
	studentRoutes.Post("/", middleware.AdminOnly(), studentHandler.Create)
	studentRoutes.Get("/:id", middleware.StaffOnly(), studentHandler.GetByID)
	studentRoutes.Put("/:id", middleware.StaffOnly(), studentHandler.Update)
	studentRoutes.Delete("/:id", middleware.StaffOnly(), studentHandler.Delete)
	studentRoutes.Get("/:id/borrow-history", middleware.StaffOnly(), studentHandler.BorrowHistory)

	// Borrow record routes
	borrowRoutes := api.Group("/borrow-records", protected)
	borrowRoutes.Get("/my-history", borrowHandler.MyHistory)
	borrowRoutes.Get("/", middleware.StaffOnly(), borrowHandler.List)
	borrowRoutes.Post("/issue", middleware.StaffOnly(), borrowHandler.Issue)
	borrowRoutes.Post("/:id/return", middleware.StaffOnly(), borrowHandler.Return)

	// Dashboard routes (staff-only)
	dashboardRoutes := api.Group("/dashboard", protected, middleware.StaffOnly())
	dashboardRoutes.Get("/stats", dashboardHandler.Stats)
}
