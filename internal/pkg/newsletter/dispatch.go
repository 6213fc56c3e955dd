package newsletter

import (
	"fmt"
	"log"
	"strings"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/env"
	"github.com/levitenleser/levitenleser/internal/pkg/mail"
	"github.com/levitenleser/levitenleser/internal/pkg/stories"
)

// Dispatcher mails every subscriber when a story is published. Callers
// treat a returned error as a soft failure: the story stays saved, the
// author sees "gespeichert, aber nicht benachrichtigt".
type Dispatcher struct {
	storyRepo  repository.StoryRepository
	signupRepo repository.NewsletterRepository
}

// NewDispatcher creates a dispatcher over the given repositories
func NewDispatcher(storyRepo repository.StoryRepository, signupRepo repository.NewsletterRepository) *Dispatcher {
	return &Dispatcher{storyRepo: storyRepo, signupRepo: signupRepo}
}

// DispatchNewStory looks the story up, loads all subscriber addresses and
// sends one mail per subscriber with the story title as subject. No
// subscribers is a successful no-op.
func (d *Dispatcher) DispatchNewStory(storyID uint64) error {
	story, err := d.storyRepo.GetByID(storyID)
	if err != nil {
		return fmt.Errorf("newsletter: load story %d: %w", storyID, err)
	}

	emails, err := d.signupRepo.GetAllEmails()
	if err != nil {
		return fmt.Errorf("newsletter: load subscribers: %w", err)
	}
	if len(emails) == 0 {
		log.Printf("newsletter: no subscribers, skipping dispatch for %q", story.Title)
		return nil
	}

	subject := "Neu: " + story.Title
	body := renderBody(story)

	var failed int
	for _, to := range emails {
		addr := strings.ToLower(strings.TrimSpace(to))
		if addr == "" {
			continue
		}
		if err := mail.SendMail(addr, subject, body); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("newsletter: delivery failed for %d of %d subscribers", failed, len(emails))
	}
	return nil
}

func renderBody(story *models.Story) string {
	readTime := stories.NormalizeReadTime(story.ReadTime)
	if readTime == "" {
		readTime = "–"
	}
	link := fmt.Sprintf("%s/stories/%s", env.SiteURL(), story.Slug)

	var b strings.Builder
	b.WriteString("<h1>" + story.Title + "</h1>\n")
	b.WriteString("<p>" + story.Excerpt + "</p>\n")
	b.WriteString("<p>" + story.DateHuman() + " · " + readTime + "</p>\n")
	b.WriteString(`<p><a href="` + link + `">Jetzt lesen</a></p>` + "\n")
	return b.String()
}
