package newsletter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/mail"
)

type stubStoryRepo struct {
	repository.StoryRepository
	story *models.Story
	err   error
}

func (s *stubStoryRepo) GetByID(id uint64) (*models.Story, error) {
	return s.story, s.err
}

type stubSignupRepo struct {
	repository.NewsletterRepository
	emails []string
	err    error
}

func (s *stubSignupRepo) GetAllEmails() ([]string, error) {
	return s.emails, s.err
}

type sentMail struct {
	to      string
	subject string
	body    string
}

// swapMailer replaces the package mailer for the duration of a test.
func swapMailer(t *testing.T, fn func(to, subject, body string) error) {
	t.Helper()
	original := mail.SendMail
	mail.SendMail = fn
	t.Cleanup(func() { mail.SendMail = original })
}

func testStory() *models.Story {
	return &models.Story{
		ID:       7,
		Title:    "Die Steuererklärung",
		Slug:     "die-steuererklaerung",
		Date:     "12. März 2024",
		ReadTime: "4 Min",
		Excerpt:  "Über ein Formular, das niemand versteht.",
	}
}

func TestDispatchNewStory(t *testing.T) {
	t.Run("MailsEverySubscriber", func(t *testing.T) {
		var sent []sentMail
		swapMailer(t, func(to, subject, body string) error {
			sent = append(sent, sentMail{to: to, subject: subject, body: body})
			return nil
		})

		d := NewDispatcher(
			&stubStoryRepo{story: testStory()},
			&stubSignupRepo{emails: []string{"a@example.de", "B@Example.de"}},
		)

		err := d.DispatchNewStory(7)
		require.NoError(t, err)
		require.Len(t, sent, 2)

		assert.Equal(t, "a@example.de", sent[0].to)
		assert.Equal(t, "b@example.de", sent[1].to)
		for _, m := range sent {
			assert.Equal(t, "Neu: Die Steuererklärung", m.subject)
			assert.Contains(t, m.body, "/stories/die-steuererklaerung")
			assert.Contains(t, m.body, "Über ein Formular, das niemand versteht.")
			assert.Contains(t, m.body, "12. März 2024")
		}
	})

	t.Run("NoSubscribersIsNoOp", func(t *testing.T) {
		swapMailer(t, func(to, subject, body string) error {
			t.Fatalf("unexpected mail to %s", to)
			return nil
		})

		d := NewDispatcher(&stubStoryRepo{story: testStory()}, &stubSignupRepo{})
		assert.NoError(t, d.DispatchNewStory(7))
	})

	t.Run("SkipsBlankAddresses", func(t *testing.T) {
		var sent []sentMail
		swapMailer(t, func(to, subject, body string) error {
			sent = append(sent, sentMail{to: to})
			return nil
		})

		d := NewDispatcher(
			&stubStoryRepo{story: testStory()},
			&stubSignupRepo{emails: []string{"  ", "a@example.de", ""}},
		)

		require.NoError(t, d.DispatchNewStory(7))
		require.Len(t, sent, 1)
		assert.Equal(t, "a@example.de", sent[0].to)
	})

	t.Run("PartialFailureStillTriesEveryRecipient", func(t *testing.T) {
		var attempts []string
		swapMailer(t, func(to, subject, body string) error {
			attempts = append(attempts, to)
			if to == "broken@example.de" {
				return errors.New("smtp down")
			}
			return nil
		})

		d := NewDispatcher(
			&stubStoryRepo{story: testStory()},
			&stubSignupRepo{emails: []string{"broken@example.de", "ok@example.de"}},
		)

		err := d.DispatchNewStory(7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2")
		assert.Equal(t, []string{"broken@example.de", "ok@example.de"}, attempts)
	})

	t.Run("StoryLookupErrorAborts", func(t *testing.T) {
		swapMailer(t, func(to, subject, body string) error {
			t.Fatalf("unexpected mail to %s", to)
			return nil
		})

		lookupErr := errors.New("gone")
		d := NewDispatcher(&stubStoryRepo{err: lookupErr}, &stubSignupRepo{emails: []string{"a@example.de"}})

		err := d.DispatchNewStory(7)
		require.Error(t, err)
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("SubscriberLookupErrorAborts", func(t *testing.T) {
		swapMailer(t, func(to, subject, body string) error {
			t.Fatalf("unexpected mail to %s", to)
			return nil
		})

		d := NewDispatcher(&stubStoryRepo{story: testStory()}, &stubSignupRepo{err: errors.New("no table")})
		assert.Error(t, d.DispatchNewStory(7))
	})
}
