package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/dra200/exwork/internal/models"
	"github.com/dra200/exwork/internal/store"
)

const (
	userContextKey   = "currentUser"
	sessionUserIDKey = "userID"
)

// NewSessionStore builds the cookie-session store backing authentication.
// Sessions live in memory alongside the content store, so they are lost
// on restart just like everything else.
func NewSessionStore(ttl time.Duration) *session.Store {
	return session.New(session.Config{
		Expiration:     ttl,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// SaveUserSession records the user id in the request's session.
func SaveUserSession(c *fiber.Ctx, sessions *session.Store, userID int) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserIDKey, userID)
	return sess.Save()
}

// ClearUserSession destroys the request's session, if any.
func ClearUserSession(c *fiber.Ctx, sessions *session.Store) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// CurrentUser resolves the session cookie to a user record. The session
// only carries the user id; the record is re-read from the store on every
// request so role changes take effect immediately.
func CurrentUser(c *fiber.Ctx, sessions *session.Store, st *store.Store) (models.User, bool) {
	sess, err := sessions.Get(c)
	if err != nil {
		return models.User{}, false
	}

	id, ok := sess.Get(sessionUserIDKey).(int)
	if !ok {
		return models.User{}, false
	}

	return st.GetUser(id)
}

// RequireAuth rejects anonymous requests with 401 and loads the
// authenticated user into context.
func RequireAuth(sessions *session.Store, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c, sessions, st)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and authenticated
// non-admin users with 403.
func RequireAdmin(sessions *session.Store, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c, sessions, st)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		if user.Role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// UserFromContext extracts the authenticated user placed by RequireAuth
// or RequireAdmin.
func UserFromContext(c *fiber.Ctx) (models.User, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return models.User{}, false
	}

	if user, ok := value.(models.User); ok {
		return user, true
	}

	return models.User{}, false
}
