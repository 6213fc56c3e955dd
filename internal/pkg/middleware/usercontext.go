package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/levitenleser/levitenleser/internal/pkg/session"
	"github.com/levitenleser/levitenleser/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into a UserContext local for
// every request, so controllers never touch the session store directly.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := func() error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		c.Locals(usercontext.KeyLoggedIn, false)
		c.Locals(usercontext.KeyIsAdmin, false)
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return anonymous()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		return anonymous()
	}

	id, ok := userID.(uint64)
	if !ok {
		return anonymous()
	}

	username := session.GetSessionValue(c, usercontext.KeyUsername)
	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)

	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		UserID:     id,
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	})
	c.Locals(usercontext.KeyLoggedIn, true)
	c.Locals(usercontext.KeyUserID, id)
	c.Locals(usercontext.KeyIsAdmin, isAdmin)

	return c.Next()
}
