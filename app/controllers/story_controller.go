package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/viewmodel"
)

// findStoryBySlug resolves a slug against the repository, then against the
// fallback issue, so the static stories stay readable when the database
// has no rows or no connection.
func findStoryBySlug(slug string) (*models.Story, bool) {
	repo := repository.GetGlobalFactory().GetStoryRepository()

	if story, err := repo.GetBySlug(slug); err == nil {
		return story, true
	}

	// Unknown slug or unreachable repository; the fallback issue may
	// still answer.
	for _, s := range models.FallbackStories() {
		if s.Slug == slug {
			fallback := s
			return &fallback, false
		}
	}
	return nil, false
}

// HandleStoryShow renders the reader view with the approved comments.
// Stories without a body show only their excerpt.
func HandleStoryShow(c *fiber.Ctx) error {
	slug := strings.TrimRight(c.Params("slug"), "/")

	story, persisted := findStoryBySlug(slug)
	if story == nil {
		return c.Status(fiber.StatusNotFound).Render("not_found", baseLayout(c, "Nicht gefunden – Der Levitenleser", nil), "layouts/main")
	}

	var comments []models.Comment
	if persisted {
		commentRepo := repository.GetGlobalFactory().GetCommentRepository()
		if loaded, err := commentRepo.GetApprovedByStoryID(story.ID); err == nil {
			comments = loaded
		}
	}

	teaser := viewmodel.NewStoryTeaser(*story)
	data := baseLayout(c, story.Title+" – Der Levitenleser", &viewmodel.OpenGraph{
		Title:       story.Title + " – Der Levitenleser",
		Description: story.Excerpt,
		URL:         "/stories/" + story.Slug,
	})
	data["Story"] = teaser
	data["Body"] = story.Body
	data["Comments"] = comments
	data["CanComment"] = persisted

	return c.Render("story", data, "layouts/main")
}

// HandleCommentStore accepts a reader comment. The hidden "trap" field is
// a honeypot: any content there rejects the post.
func HandleCommentStore(c *fiber.Ctx) error {
	slug := c.Params("slug")
	redirectTo := "/stories/" + slug + "#kommentare"

	if strings.TrimSpace(c.FormValue("trap")) != "" {
		return flashError(c, "Ungültige Eingabe.", redirectTo)
	}

	body := strings.TrimSpace(c.FormValue("body"))
	if body == "" {
		return flashError(c, "Bitte einen Kommentar eintragen.", redirectTo)
	}

	story, persisted := findStoryBySlug(slug)
	if story == nil || !persisted {
		return flashError(c, "Konnte Kommentar nicht speichern.", redirectTo)
	}

	author := strings.TrimSpace(c.FormValue("author_name"))
	if author == "" {
		author = models.COMMENT_DEFAULT_AUTHOR
	}

	comment := &models.Comment{
		StoryID:    story.ID,
		AuthorName: author,
		Body:       body,
		Status:     models.COMMENT_STATUS_APPROVED,
	}
	if err := comment.Validate(); err != nil {
		return flashError(c, "Bitte einen Kommentar eintragen.", redirectTo)
	}

	commentRepo := repository.GetGlobalFactory().GetCommentRepository()
	if err := commentRepo.Create(comment); err != nil {
		return flashError(c, "Konnte Kommentar nicht speichern.", redirectTo)
	}

	return flashSuccess(c, "Danke für deinen Kommentar!", redirectTo)
}
