package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/levitenleser/levitenleser/app/controllers"
	"github.com/levitenleser/levitenleser/internal/pkg/constants"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Storefront + legal pages
	app.Get(constants.HomeRoute, controllers.HandleHome)
	app.Get(constants.ImpressumRoute, controllers.HandleImpressum)
	app.Get(constants.DatenschutzRoute, controllers.HandleDatenschutz)

	// Reader view + comments
	app.Get(constants.StoriesRoute+"/:slug", controllers.HandleStoryShow)
	app.Post(constants.StoriesRoute+"/:slug/comments", controllers.HandleCommentStore)

	// Newsletter
	app.Get(constants.NewsletterRoute, controllers.HandleNewsletterPage)
	app.Post(constants.NewsletterRoute, controllers.HandleNewsletterSignup)
	app.Get(constants.NewsletterRoute+"/abmelden/:token", controllers.HandleNewsletterUnsubscribe)

	// Auth
	app.Get(constants.LoginRoute, controllers.HandleLoginPage)
	app.Post(constants.LoginRoute, controllers.HandleLogin)
	app.Post("/logout", controllers.HandleLogout)
	app.Get("/register", controllers.HandleRegisterPage)
	app.Post("/register", controllers.HandleRegister)
	app.Get("/activate/:token", controllers.HandleActivate)
}
