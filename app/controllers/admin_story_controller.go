package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/newsletter"
	"github.com/levitenleser/levitenleser/internal/pkg/stories"
	"github.com/levitenleser/levitenleser/internal/pkg/usercontext"
)

// AdminStoryController handles the CMS story management using the
// repository pattern.
type AdminStoryController struct {
	storyRepo   repository.StoryRepository
	commentRepo repository.CommentRepository
	dispatcher  *newsletter.Dispatcher
}

// NewAdminStoryController creates a new admin story controller
func NewAdminStoryController(storyRepo repository.StoryRepository, commentRepo repository.CommentRepository, dispatcher *newsletter.Dispatcher) *AdminStoryController {
	return &AdminStoryController{
		storyRepo:   storyRepo,
		commentRepo: commentRepo,
		dispatcher:  dispatcher,
	}
}

var (
	adminStoryController     *AdminStoryController
	adminStoryControllerOnce sync.Once
)

// InitializeAdminStoryController sets up the singleton with repositories
func InitializeAdminStoryController(repos *repository.Repositories) {
	adminStoryControllerOnce.Do(func() {
		adminStoryController = NewAdminStoryController(
			repos.Story,
			repos.Comment,
			newsletter.NewDispatcher(repos.Story, repos.Newsletter),
		)
	})
}

// GetAdminStoryController returns the singleton instance
func GetAdminStoryController() *AdminStoryController {
	if adminStoryController == nil {
		panic("AdminStoryController not initialized. Call InitializeAdminStoryController first.")
	}
	return adminStoryController
}

// handleError is a helper method for consistent error handling
func (asc *AdminStoryController) handleError(c *fiber.Ctx, message string, err error) error {
	return flashError(c, message+": "+err.Error(), "/admin/stories")
}

// HandleAdminDashboard renders the story management overview.
func (asc *AdminStoryController) HandleAdminDashboard(c *fiber.Ctx) error {
	list, err := asc.storyRepo.GetAllWithCommentCounts()
	if err != nil {
		return asc.handleError(c, "Fehler beim Laden der Geschichten", err)
	}
	list = models.SortStories(list)

	data := baseLayout(c, "Geschichten verwalten – Der Levitenleser", nil)
	data["Stories"] = list
	data["Author"] = usercontext.GetUsername(c)
	return c.Render("admin/stories", data, "layouts/main")
}

// HandleAdminStoryCreate renders the empty story form.
func (asc *AdminStoryController) HandleAdminStoryCreate(c *fiber.Ctx) error {
	data := baseLayout(c, "Neue Geschichte – Der Levitenleser", nil)
	data["Story"] = &models.Story{Category: "Feuilleton"}
	data["Tags"] = defaultTags
	data["FormAction"] = "/admin/stories"
	data["DateValue"] = ""
	return c.Render("admin/story_form", data, "layouts/main")
}

// storyFromForm reads the shared form fields and runs the normalizer
// pipeline on date and read time. The slug stays untouched here; slug
// resolution happens in store/update.
func (asc *AdminStoryController) storyFromForm(c *fiber.Ctx, story *models.Story) {
	story.Title = strings.TrimSpace(c.FormValue("title"))
	story.Tag = strings.TrimSpace(c.FormValue("tag"))
	story.Excerpt = strings.TrimSpace(c.FormValue("excerpt"))
	story.Body = c.FormValue("body")
	story.Author = strings.TrimSpace(c.FormValue("author"))
	story.Date = stories.NormalizeDateInput(c.FormValue("date"))
	story.ReadTime = stories.NormalizeReadTime(c.FormValue("read_time"))
	if category := strings.TrimSpace(c.FormValue("category")); category != "" {
		story.Category = category
	}
}

// resolveSlug turns the author's slug wish (or the title) into a unique
// slug against the stories table.
func (asc *AdminStoryController) resolveSlug(slugInput, title string, excludeID uint64) (string, error) {
	candidate := stories.Slugify(firstNonEmpty(slugInput, title))
	return stories.ResolveUniqueSlug(asc.storyRepo, candidate, excludeID)
}

// slugErrorMessage maps the resolver's typed errors onto reader-facing
// German notices.
func slugErrorMessage(err error) string {
	switch {
	case errors.Is(err, stories.ErrSlugResolutionExhausted):
		return "Für diesen Titel ließ sich kein freier Slug finden, bitte einen eigenen Slug vergeben."
	case errors.Is(err, stories.ErrSlugLookupFailed):
		return "Slug-Prüfung fehlgeschlagen, bitte später erneut versuchen."
	default:
		return "Slug konnte nicht erzeugt werden."
	}
}

// HandleAdminStoryStore creates a story and triggers the newsletter
// dispatch. A failed dispatch never rolls the story back.
func (asc *AdminStoryController) HandleAdminStoryStore(c *fiber.Ctx) error {
	story := &models.Story{Category: "Feuilleton"}
	asc.storyFromForm(c, story)

	if story.Title == "" || story.Excerpt == "" || story.Date == "" {
		return flashError(c, "Titel, Teasertext und Datum sind erforderlich.", "/admin/stories/create")
	}

	slug, err := asc.resolveSlug(c.FormValue("slug"), story.Title, 0)
	if err != nil {
		return flashError(c, slugErrorMessage(err), "/admin/stories/create")
	}
	story.Slug = slug

	if err := story.Validate(); err != nil {
		return flashError(c, "Bitte alle Pflichtfelder ausfüllen.", "/admin/stories/create")
	}

	if err := asc.storyRepo.Create(story); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return flashError(c, "Slug bereits vergeben, bitte erneut speichern.", "/admin/stories/create")
		}
		return asc.handleError(c, "Fehler beim Speichern der Geschichte", err)
	}

	invalidateStorefrontCache()

	if err := asc.dispatcher.DispatchNewStory(story.ID); err != nil {
		return flashSuccess(c, "Gespeichert, aber Newsletter-Versand konnte nicht angestoßen werden.", "/admin/stories")
	}

	return flashSuccess(c, "Geschichte veröffentlicht.", "/admin/stories")
}

// HandleAdminStoryEdit renders the form for an existing story.
func (asc *AdminStoryController) HandleAdminStoryEdit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return flashError(c, "Ungültige Geschichte.", "/admin/stories")
	}

	story, err := asc.storyRepo.GetByID(id)
	if err != nil {
		return asc.handleError(c, "Geschichte nicht gefunden", err)
	}

	data := baseLayout(c, "Geschichte bearbeiten – Der Levitenleser", nil)
	data["Story"] = story
	data["Tags"] = defaultTags
	data["FormAction"] = "/admin/stories/" + c.Params("id")
	data["DateValue"] = stories.DatePickerValue(story.Date)
	return c.Render("admin/story_form", data, "layouts/main")
}

// HandleAdminStoryUpdate saves edits. The slug is only regenerated when
// the author cleared the field; otherwise the published URL stays stable.
func (asc *AdminStoryController) HandleAdminStoryUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return flashError(c, "Ungültige Geschichte.", "/admin/stories")
	}

	story, err := asc.storyRepo.GetByID(id)
	if err != nil {
		return asc.handleError(c, "Geschichte nicht gefunden", err)
	}

	asc.storyFromForm(c, story)

	editURL := "/admin/stories/" + c.Params("id") + "/edit"

	if story.Title == "" || story.Excerpt == "" || story.Date == "" {
		return flashError(c, "Titel, Teasertext und Datum sind erforderlich.", editURL)
	}

	slugInput := strings.TrimSpace(c.FormValue("slug"))
	if slugInput != story.Slug {
		slug, err := asc.resolveSlug(slugInput, story.Title, story.ID)
		if err != nil {
			return flashError(c, slugErrorMessage(err), editURL)
		}
		story.Slug = slug
	}

	if err := story.Validate(); err != nil {
		return flashError(c, "Bitte alle Pflichtfelder ausfüllen.", editURL)
	}

	if err := asc.storyRepo.Update(story); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return flashError(c, "Slug bereits vergeben, bitte erneut speichern.", editURL)
		}
		return asc.handleError(c, "Fehler beim Speichern der Geschichte", err)
	}

	invalidateStorefrontCache()

	return flashSuccess(c, "Geschichte aktualisiert.", "/admin/stories")
}

// HandleAdminStoryDelete removes a story.
func (asc *AdminStoryController) HandleAdminStoryDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return flashError(c, "Ungültige Geschichte.", "/admin/stories")
	}

	if err := asc.storyRepo.Delete(id); err != nil {
		return asc.handleError(c, "Fehler beim Löschen der Geschichte", err)
	}

	invalidateStorefrontCache()

	return flashSuccess(c, "Geschichte gelöscht.", "/admin/stories")
}

// HandleAdminCommentDelete removes a reader comment from a story. Only
// admins reach this handler; authors cannot moderate.
func (asc *AdminStoryController) HandleAdminCommentDelete(c *fiber.Ctx) error {
	redirectTo := "/admin/stories"
	if slug := strings.TrimSpace(c.FormValue("slug")); slug != "" {
		redirectTo = "/stories/" + slug + "#kommentare"
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return flashError(c, "Ungültiger Kommentar.", redirectTo)
	}

	if err := asc.commentRepo.Delete(id); err != nil {
		return flashError(c, "Kommentar konnte nicht entfernt werden.", redirectTo)
	}

	log.Printf("Kommentar %d entfernt von Benutzer %d", id, usercontext.GetUserID(c))
	invalidateStorefrontCache()

	return flashSuccess(c, "Kommentar entfernt.", redirectTo)
}
