package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/peccode-dev/peccode-api/internal/config"
	"github.com/peccode-dev/peccode-api/internal/handler"
	"github.com/peccode-dev/peccode-api/internal/middleware"
	"github.com/peccode-dev/peccode-api/internal/models"
	"github.com/peccode-dev/peccode-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	QuestionHandler   *handler.QuestionHandler
	SubmissionHandler *handler.SubmissionHandler
	ExecuteHandler    *handler.ExecuteHandler
	DashboardHandler  *handler.DashboardHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Login,
// registration and question reads are public; everything else sits behind
// the token gate, with role gates where an operation is restricted.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/v1/health", handler.HealthCheck(cfg))

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth", middleware.RateLimit("auth", 20, time.Minute))
		deps.AuthHandler.Register(auth)
	}

	if deps.UserHandler != nil {
		users := api.Group("/users", jwtMiddleware)
		deps.UserHandler.Register(users)
	}

	if deps.QuestionHandler != nil {
		questions := api.Group("/questions")
		deps.QuestionHandler.RegisterPublic(questions)

		staffQuestions := api.Group("/questions", jwtMiddleware, middleware.RequireRole(models.RoleStaff))
		deps.QuestionHandler.RegisterStaff(staffQuestions)
	}

	if deps.SubmissionHandler != nil {
		submissions := api.Group("/submissions", jwtMiddleware)
		deps.SubmissionHandler.Register(submissions)
	}

	if deps.ExecuteHandler != nil {
		execute := api.Group("/execute", jwtMiddleware, middleware.RateLimit("execute", 10, time.Minute))
		deps.ExecuteHandler.Register(execute)
	}

	if deps.DashboardHandler != nil {
		dashboard := api.Group("/dashboard", jwtMiddleware)
		dashboard.Get("/student-stats", middleware.RequireRole(models.RoleStudent), deps.DashboardHandler.StudentStats)
		dashboard.Get("/staff-stats", middleware.RequireRole(models.RoleStaff), deps.DashboardHandler.StaffStats)
	}
}
