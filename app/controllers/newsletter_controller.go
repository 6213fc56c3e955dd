package controllers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/constants"
)

var validate = validator.New()

// HandleNewsletterPage renders the signup page.
func HandleNewsletterPage(c *fiber.Ctx) error {
	data := baseLayout(c, "Newsletter – Der Levitenleser", nil)
	return c.Render("newsletter", data, "layouts/main")
}

// HandleNewsletterSignup stores a subscription. The unique index on the
// email column decides duplicates; a second signup with the same address
// gets a friendly notice instead of an error page.
func HandleNewsletterSignup(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))

	if err := validate.Var(email, "required,email,max=200"); err != nil {
		return flashError(c, "Bitte eine gültige E-Mail-Adresse eintragen.", constants.NewsletterRoute)
	}

	repo := repository.GetGlobalFactory().GetNewsletterRepository()
	signup := models.NewNewsletterSignup(email)
	if err := repo.Create(signup); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return flashSuccess(c, "Diese Adresse ist bereits eingetragen.", constants.NewsletterRoute)
		}
		return flashError(c, "Anmeldung fehlgeschlagen, bitte später erneut versuchen.", constants.NewsletterRoute)
	}

	return flashSuccess(c, "Danke! Du bekommst ab jetzt Post vom Levitenleser.", constants.NewsletterRoute)
}

// HandleNewsletterUnsubscribe removes a subscription by its token. The
// response does not reveal whether the token matched anything.
func HandleNewsletterUnsubscribe(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))
	if token == "" {
		return c.Redirect(constants.NewsletterRoute)
	}

	repo := repository.GetGlobalFactory().GetNewsletterRepository()
	if _, err := repo.DeleteByToken(token); err != nil {
		return flashError(c, "Abmeldung fehlgeschlagen, bitte später erneut versuchen.", constants.NewsletterRoute)
	}

	return flashSuccess(c, "Du bist abgemeldet.", constants.NewsletterRoute)
}
