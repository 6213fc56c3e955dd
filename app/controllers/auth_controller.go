package controllers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/app/repository"
	"github.com/levitenleser/levitenleser/internal/pkg/constants"
	"github.com/levitenleser/levitenleser/internal/pkg/env"
	"github.com/levitenleser/levitenleser/internal/pkg/mail"
	"github.com/levitenleser/levitenleser/internal/pkg/session"
	"github.com/levitenleser/levitenleser/internal/pkg/usercontext"
)

// HandleLoginPage renders the CMS login form.
func HandleLoginPage(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect(constants.AdminRoute)
	}
	data := baseLayout(c, "Anmelden – Der Levitenleser", nil)
	return c.Render("auth/login", data, "layouts/main")
}

// HandleLogin authenticates an author and writes the session. The error
// message never distinguishes unknown address from wrong password.
func HandleLogin(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	if email == "" || password == "" {
		return flashError(c, "Bitte E-Mail und Passwort eintragen.", constants.LoginRoute)
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return flashError(c, "E-Mail oder Passwort ist falsch.", constants.LoginRoute)
		}
		return flashError(c, "Anmeldung derzeit nicht möglich, bitte später erneut versuchen.", constants.LoginRoute)
	}

	if !user.CheckPassword(password) {
		return flashError(c, "E-Mail oder Passwort ist falsch.", constants.LoginRoute)
	}
	if !user.IsActive() {
		return flashError(c, "Dieses Konto ist noch nicht aktiviert. Bitte den Link aus der Aktivierungs-Mail öffnen.", constants.LoginRoute)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return flashError(c, "Anmeldung derzeit nicht möglich, bitte später erneut versuchen.", constants.LoginRoute)
	}
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.Role == models.ROLE_ADMIN)
	if err := sess.Save(); err != nil {
		return flashError(c, "Anmeldung derzeit nicht möglich, bitte später erneut versuchen.", constants.LoginRoute)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := userRepo.Update(user); err != nil {
		log.Printf("could not record login time for user %d: %v", user.ID, err)
	}

	return c.Redirect(constants.AdminRoute)
}

// HandleLogout destroys the session.
func HandleLogout(c *fiber.Ctx) error {
	if sess, err := session.GetSessionStore().Get(c); err == nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("could not destroy session: %v", err)
		}
	}
	return c.Redirect(constants.HomeRoute)
}

// HandleRegisterPage renders the author registration form.
func HandleRegisterPage(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect(constants.AdminRoute)
	}
	data := baseLayout(c, "Registrieren – Der Levitenleser", nil)
	return c.Render("auth/register", data, "layouts/main")
}

// HandleRegister creates a new author account. Registration is closed to
// addresses outside the allowlist; new accounts start inactive and get a
// mailed activation link.
func HandleRegister(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	repos := repository.GetGlobalFactory()

	entry, err := repos.GetAllowlistRepository().FindByEmail(email)
	if err != nil {
		return flashError(c, "Registrierung derzeit nicht möglich, bitte später erneut versuchen.", "/register")
	}
	if entry == nil {
		return flashError(c, "Diese E-Mail ist nicht für das CMS freigeschaltet.", "/register")
	}

	user, err := models.CreateUser(name, email, password)
	if err != nil {
		return flashError(c, "Bitte alle Felder korrekt ausfüllen (Passwort mindestens 6 Zeichen).", "/register")
	}
	if err := user.GenerateActivationToken(); err != nil {
		return flashError(c, "Registrierung derzeit nicht möglich, bitte später erneut versuchen.", "/register")
	}

	if err := repos.GetUserRepository().Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return flashError(c, "Für diese E-Mail existiert bereits ein Konto.", constants.LoginRoute)
		}
		return flashError(c, "Registrierung derzeit nicht möglich, bitte später erneut versuchen.", "/register")
	}

	sendActivationMail(user)

	return flashSuccess(c, "Konto angelegt. Bitte den Aktivierungslink aus der E-Mail öffnen.", constants.LoginRoute)
}

// HandleActivate activates an account via the mailed token.
func HandleActivate(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))
	if token == "" {
		return c.Redirect(constants.LoginRoute)
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByActivationToken(token)
	if err != nil {
		return flashError(c, "Dieser Aktivierungslink ist ungültig oder bereits verwendet.", constants.LoginRoute)
	}

	user.Status = models.STATUS_ACTIVE
	user.ActivationToken = ""
	if err := userRepo.Update(user); err != nil {
		return flashError(c, "Aktivierung fehlgeschlagen, bitte später erneut versuchen.", constants.LoginRoute)
	}

	return flashSuccess(c, "Konto aktiviert, du kannst dich jetzt anmelden.", constants.LoginRoute)
}

func sendActivationMail(user *models.User) {
	link := fmt.Sprintf("%s/activate/%s", env.SiteURL(), user.ActivationToken)
	body := fmt.Sprintf(
		"<h1>Willkommen beim Levitenleser</h1>"+
			"<p>Hallo %s, bitte bestätige dein Autorenkonto:</p>"+
			"<p><a href=\"%s\">Konto aktivieren</a></p>",
		user.Name, link,
	)
	if err := mail.SendMail(user.Email, "Dein Autorenkonto beim Levitenleser", body); err != nil {
		log.Printf("could not send activation mail to %s: %v", user.Email, err)
	}
}
