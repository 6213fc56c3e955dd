package apiv1

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/middleware"
)

// Pong is the response of the ping endpoint
type Pong struct {
	Ping string `json:"ping"`
}

// APIServer implements the JSON API
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// RegisterHandlers attaches the v1 endpoints to the given group.
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)
	r.Get("/stories", s.GetStories)
	r.Get("/stories/:slug", s.GetStoryBySlug)
	r.Get("/stories/:slug/comments", s.GetStoryComments)

	// Redaktionsinterne Zahlen bleiben hinter der CMS-Session
	r.Get("/newsletter/count", middleware.RequireAPISessionAuth, s.GetNewsletterCount)
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// GetStories returns the sorted story list with comment counts. The
// fallback issue answers when the database cannot, same as the storefront.
func (s *APIServer) GetStories(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetStoryRepository()

	list, err := repo.GetAllWithCommentCounts()
	if err != nil || len(list) == 0 {
		list = models.FallbackStories()
	}
	list = models.SortStories(list)

	return c.JSON(fiber.Map{"stories": list})
}

// GetStoryBySlug returns a single story.
func (s *APIServer) GetStoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	repo := repository.GetGlobalFactory().GetStoryRepository()

	story, err := repo.GetBySlug(slug)
	if err != nil {
		for _, fb := range models.FallbackStories() {
			if fb.Slug == slug {
				return c.JSON(fb)
			}
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "not_found",
				"message": "story not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "story lookup failed",
		})
	}

	return c.JSON(story)
}

// GetNewsletterCount reports how many newsletter subscribers exist. The
// number feeds the CMS dashboard and is not public.
func (s *APIServer) GetNewsletterCount(c *fiber.Ctx) error {
	count, err := repository.GetGlobalFactory().GetNewsletterRepository().Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "subscriber count failed",
		})
	}

	return c.JSON(fiber.Map{"subscribers": count})
}

// GetStoryComments returns the approved comments of a story.
func (s *APIServer) GetStoryComments(c *fiber.Ctx) error {
	slug := c.Params("slug")
	repos := repository.GetGlobalFactory()

	story, err := repos.GetStoryRepository().GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "not_found",
				"message": "story not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "story lookup failed",
		})
	}

	comments, err := repos.GetCommentRepository().GetApprovedByStoryID(story.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "comment lookup failed",
		})
	}

	return c.JSON(fiber.Map{"comments": comments})
}
