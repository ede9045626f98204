package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dra200/exwork/internal/models"
	"github.com/dra200/exwork/internal/store"
	"github.com/dra200/exwork/internal/validators"
)

// ContactHandler manages the public contact form and the admin view of
// submitted requests.
type ContactHandler struct {
	store *store.Store
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(st *store.Store) *ContactHandler {
	return &ContactHandler{store: st}
}

// Submit accepts a contact form from the public site. The request always
// starts in the "new" status regardless of the payload.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var form validators.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errors := form.Validate(); len(errors) > 0 {
		return validationError(c, errors)
	}

	request := h.store.CreateContactRequest(models.ContactRequest{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Service: form.Service,
		Message: form.Message,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Contact request submitted successfully",
		"id":      request.ID,
	})
}

// List returns every contact request (admin endpoint).
func (h *ContactHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.ListContactRequests())
}

// UpdateStatus moves a contact request between the new / in-progress /
// completed states (admin endpoint).
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in validators.StatusInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(in.Validate()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid status",
		})
	}

	request, ok := h.store.UpdateContactRequestStatus(id, in.Status)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Contact request not found")
	}
	return c.JSON(request)
}

// Delete removes a contact request (admin endpoint).
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if !h.store.DeleteContactRequest(id) {
		return fiber.NewError(fiber.StatusNotFound, "Contact request not found")
	}
	return c.JSON(fiber.Map{"message": "Contact request deleted successfully"})
}
