package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/database"
	"github.com/levitenleser/levitenleser/internal/pkg/env"
	"github.com/levitenleser/levitenleser/internal/pkg/sitemap"
)

// Generates public/sitemap.xml from the stories table, merged with the
// static fallback issue so the sitemap never goes empty when the database
// is unreachable.
func main() {
	env.SetupEnvFileOptional()

	origin := env.SiteURL()
	outPath := env.GetEnv("SITEMAP_OUT", "public/sitemap.xml")

	entries := sitemap.Merge(loadEntries(), sitemap.EntriesFromStories(models.FallbackStories()))

	xmlBytes, err := sitemap.Build(origin, entries)
	if err != nil {
		log.Fatalf("could not build sitemap: %v", err)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("could not create output directory: %v", err)
		}
	}
	if err := os.WriteFile(outPath, xmlBytes, 0o644); err != nil {
		log.Fatalf("could not write sitemap: %v", err)
	}

	log.Printf("sitemap written to %s (%d entries + %d static pages)", outPath, len(entries), len(sitemap.StaticPaths))
}

// loadEntries reads the published stories. An unreachable database is not
// fatal; the merge above keeps the fallback issue in that case.
func loadEntries() []sitemap.Entry {
	db, err := database.Connect()
	if err != nil {
		log.Printf("database unreachable, using fallback issue only: %v", err)
		return nil
	}

	repository.InitializeFactory(db)
	list, err := repository.GetGlobalFactory().GetStoryRepository().GetAll()
	if err != nil {
		log.Printf("could not load stories, using fallback issue only: %v", err)
		return nil
	}

	return sitemap.EntriesFromStories(list)
}
