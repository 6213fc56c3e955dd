package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/levitenleser/levitenleser/app/controllers"
	"github.com/levitenleser/levitenleser/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	asc := controllers.GetAdminStoryController()

	adminGroup := app.Group("/admin", middleware.RequireAuthor)
	adminGroup.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin/stories")
	})

	// Story management
	adminGroup.Get("/stories", asc.HandleAdminDashboard)
	adminGroup.Get("/stories/create", asc.HandleAdminStoryCreate)
	adminGroup.Post("/stories", asc.HandleAdminStoryStore)
	adminGroup.Get("/stories/:id/edit", asc.HandleAdminStoryEdit)
	adminGroup.Post("/stories/:id", asc.HandleAdminStoryUpdate)
	adminGroup.Post("/stories/:id/delete", asc.HandleAdminStoryDelete)

	// Comment moderation requires the admin role, not just a CMS login
	adminGroup.Post("/comments/:id/delete", middleware.RequireAdmin, asc.HandleAdminCommentDelete)
}
