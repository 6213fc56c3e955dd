package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/levitenleser/levitenleser/app/controllers"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/middleware"
	"github.com/levitenleser/levitenleser/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize admin story controller with repositories
	controllers.InitializeAdminStoryController(repository.GetGlobalRepositories())

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
