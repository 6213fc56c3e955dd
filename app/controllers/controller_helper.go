package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/levitenleser/levitenleser/internal/pkg/usercontext"
	"github.com/levitenleser/levitenleser/internal/pkg/viewmodel"
)

// Fixed Rubriken always offered in the archive filter; tags observed in
// the data are merged in on top.
var defaultTags = []string{
	"Allgemeines",
	"Finanzen",
	"Gesellschaft",
	"Medien",
	"Politik",
	"Reise",
	"Sport",
	"Technik",
	"Wirtschaft",
}

// baseLayout assembles the data every template expects from the request
// context: login state, flash message, page meta.
func baseLayout(c *fiber.Ctx, title string, og *viewmodel.OpenGraph) fiber.Map {
	userCtx := usercontext.GetUserContext(c)
	return fiber.Map{
		"Title":      title,
		"IsLoggedIn": userCtx.IsLoggedIn,
		"IsAdmin":    userCtx.IsAdmin,
		"Username":   userCtx.Username,
		"Msg":        flash.Get(c),
		"OG":         og,
	}
}

// firstNonEmpty returns the first argument with visible content.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func flashError(c *fiber.Ctx, message, redirectTo string) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	return flash.WithError(c, fm).Redirect(redirectTo)
}

func flashSuccess(c *fiber.Ctx, message, redirectTo string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(redirectTo)
}
