package FiberConfig

import (
	"fmt"
	"os"

	"Sentinel/Controllers"
	"Sentinel/Models"
	"Sentinel/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	templateController := Controllers.NewTemplateController(db)
	reportController := Controllers.NewReportController(db)
	completionController := Controllers.NewCompletionController(db)
	customTaskController := Controllers.NewCustomTaskController(db)
	overrideController := Controllers.NewOverrideController(db)
	removalController := Controllers.NewRemovalController(db)
	adherenceController := Controllers.NewAdherenceController(db)
	evidenceController := Controllers.NewEvidenceController(db)

	// API group
	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", Controllers.Login)
	api.Post("/auth/logout", Controllers.Logout)
	api.Get("/auth/me", middleware.Verify(1), Controllers.Me)
	api.Post("/auth/register", middleware.Verify(3), Controllers.RegisterUser)
	api.Get("/auth/users", middleware.Verify(2), Controllers.FetchUsers)

	// Task template routes
	templates := api.Group("/templates", middleware.Verify(1))
	templates.Get("/", templateController.GetTemplates)
	templates.Get("/:id", templateController.GetTemplate)
	templates.Post("/", middleware.Verify(2), templateController.CreateTemplate)
	templates.Put("/:id", middleware.Verify(2), templateController.UpdateTemplate)
	templates.Delete("/:id", middleware.Verify(2), templateController.DeleteTemplate)

	// Shift reports
	reports := api.Group("/reports", middleware.Verify(1))
	reports.Get("/", reportController.GetReports)
	reports.Post("/", reportController.SubmitReport)

	// Completions
	completions := api.Group("/completions", middleware.Verify(1))
	completions.Get("/", completionController.GetCompletions)
	completions.Post("/", completionController.Complete)
	completions.Delete("/", completionController.Uncomplete)

	// Ad-hoc tasks
	customTasks := api.Group("/custom-tasks", middleware.Verify(1))
	customTasks.Get("/", customTaskController.GetCustomTasks)
	customTasks.Post("/", middleware.Verify(2), customTaskController.CreateCustomTask)
	customTasks.Delete("/:public_id", middleware.Verify(2), customTaskController.DeactivateCustomTask)

	// Manager decisions
	overrides := api.Group("/overrides", middleware.Verify(2))
	overrides.Get("/", overrideController.GetOverrides)
	overrides.Post("/", overrideController.SetOverride)
	overrides.Delete("/", overrideController.ClearOverride)

	removals := api.Group("/removals", middleware.Verify(2))
	removals.Get("/", removalController.GetRemovals)
	removals.Post("/", removalController.SetRemoval)

	// Computed adherence views
	adherence := api.Group("/adherence", middleware.Verify(1))
	adherence.Get("/rows", middleware.Verify(2), adherenceController.Rows)
	adherence.Get("/daily", adherenceController.Daily)
	adherence.Get("/performance", middleware.Verify(2), adherenceController.Performance)
	adherence.Get("/performance/export", middleware.Verify(2), adherenceController.ExportPerformance)
	adherence.Get("/history", middleware.Verify(2), adherenceController.History)

	// Evidence photos
	evidence := api.Group("/evidence", middleware.Verify(1))
	evidence.Get("/", evidenceController.GetEvidence)
	evidence.Post("/:task_id", evidenceController.Upload)

	// Request log inspection
	api.Get("/logs", middleware.Verify(3), Controllers.GetLogs)
	api.Get("/logs/stats", middleware.Verify(3), Controllers.GetLogStats)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "Sentinel",
		})
	})
	app.Static("/uploads", "uploads/")

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
