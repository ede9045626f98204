package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/dra200/exwork/internal/middleware"
	"github.com/dra200/exwork/internal/models"
	"github.com/dra200/exwork/internal/store"
	"github.com/dra200/exwork/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	store    *store.Store
	sessions *session.Store
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st *store.Store, sessions *session.Store) *AuthHandler {
	return &AuthHandler{store: st, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func userResponse(user models.User) fiber.Map {
	return fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"isAdmin":  user.IsAdmin(),
	}
}

// Login authenticates a user and establishes a session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, ok := h.store.GetUserByUsername(req.Username)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Incorrect username",
		})
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Incorrect password",
		})
	}

	if err := middleware.SaveUserSession(c, h.sessions, user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Authentication successful",
		"user":    userResponse(user),
	})
}

// Logout invalidates the current session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := middleware.ClearUserSession(c, h.sessions); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Status reports whether the request carries an authenticated session.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c, h.sessions, h.store)
	if !ok {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user":          userResponse(user),
	})
}
