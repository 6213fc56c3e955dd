package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/cache"
	"github.com/levitenleser/levitenleser/internal/pkg/stories"
	"github.com/levitenleser/levitenleser/internal/pkg/viewmodel"
)

// FallbackNotice is the only thing the public list reveals about a broken
// repository: a generic hint, never raw error detail.
const FallbackNotice = "Inhalte werden vorübergehend aus dem lokalen Archiv angezeigt."

const (
	storefrontCacheKey = "storefront:stories"
	storefrontCacheTTL = 5 * time.Minute
)

// loadStorefrontStories fetches the sorted story list, degrading to the
// static fallback issue when the repository cannot answer. The returned
// notice is empty on the happy path. Database results are kept in the
// Redis cache so the storefront survives comment-heavy traffic without
// hitting MySQL on every request; fallback content is never cached.
func loadStorefrontStories() ([]models.Story, string) {
	if payload, err := cache.Get(storefrontCacheKey); err == nil && payload != "" {
		var cached []models.Story
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			return cached, ""
		}
	}

	repo := repository.GetGlobalFactory().GetStoryRepository()

	list, err := repo.GetAllWithCommentCounts()
	notice := ""
	fromDB := err == nil && len(list) > 0
	if err != nil {
		list = models.FallbackStories()
		notice = FallbackNotice
	} else if len(list) == 0 {
		list = models.FallbackStories()
	}

	for i := range list {
		if list[i].Slug == "" {
			list[i].Slug = stories.EnsureSlug(stories.SlugSeed{
				Title:    list[i].Title,
				Tag:      list[i].Tag,
				Category: list[i].Category,
				ID:       list[i].ID,
				Position: i + 1,
			})
		}
	}

	sorted := models.SortStories(list)

	if fromDB {
		if payload, err := json.Marshal(sorted); err == nil {
			if err := cache.Set(storefrontCacheKey, string(payload), storefrontCacheTTL); err != nil {
				log.Printf("Storefront-Cache konnte nicht geschrieben werden: %v", err)
			}
		}
	}

	return sorted, notice
}

// invalidateStorefrontCache drops the cached story list after a CMS write
// so readers see the change with the next request.
func invalidateStorefrontCache() {
	if err := cache.Delete(storefrontCacheKey); err != nil {
		log.Printf("Storefront-Cache konnte nicht geleert werden: %v", err)
	}
}

// tagFilters merges the fixed Rubriken with every tag observed in the
// data, sorted for a stable filter row.
func tagFilters(list []models.Story) []string {
	seen := make(map[string]struct{}, len(defaultTags))
	tags := make([]string, 0, len(defaultTags))
	for _, t := range defaultTags {
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	for _, s := range list {
		t := s.DisplayTag()
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
	return tags
}

// HandleHome renders the storefront: lead story, archive selection, tag
// filter. An active "rubrik" query shows every story of that Rubrik; with
// no filter only the three newest archive teasers appear.
func HandleHome(c *fiber.Ctx) error {
	sorted, notice := loadStorefrontStories()

	activeTag := strings.TrimSpace(c.Query("rubrik"))

	var lead *viewmodel.StoryTeaser
	archive := []models.Story{}
	if len(sorted) > 0 {
		leadTeaser := viewmodel.NewStoryTeaser(sorted[0])
		lead = &leadTeaser
		archive = sorted[1:]
	}

	if activeTag != "" {
		filtered := make([]models.Story, 0, len(archive))
		for _, s := range archive {
			if strings.EqualFold(s.DisplayTag(), activeTag) {
				filtered = append(filtered, s)
			}
		}
		archive = filtered
	} else if len(archive) > 3 {
		archive = archive[:3]
	}

	issueNumber := fmt.Sprintf("%02d", maxInt(len(sorted), 1))

	data := baseLayout(c, "", &viewmodel.OpenGraph{
		Title:       "Der Levitenleser – Kurzgeschichten",
		Description: "Der Levitenleser veröffentlicht regelmäßig Kurzgeschichten im Stil des Feuilletons – kurz, pointiert, zugänglich.",
		URL:         "/",
	})
	data["Lead"] = lead
	data["Archive"] = viewmodel.NewStoryTeasers(archive)
	data["Tags"] = tagFilters(sorted)
	data["ActiveTag"] = activeTag
	data["IssueNumber"] = issueNumber
	data["Notice"] = notice

	return c.Render("index", data, "layouts/main")
}

// HandleImpressum renders the static Impressum page
func HandleImpressum(c *fiber.Ctx) error {
	return c.Render("impressum", baseLayout(c, "Impressum – Der Levitenleser", nil), "layouts/main")
}

// HandleDatenschutz renders the static privacy page
func HandleDatenschutz(c *fiber.Ctx) error {
	return c.Render("datenschutz", baseLayout(c, "Datenschutz – Der Levitenleser", nil), "layouts/main")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
