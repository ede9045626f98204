package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dra200/exwork/internal/models"
	"github.com/dra200/exwork/internal/store"
	"github.com/dra200/exwork/internal/validators"
)

// CompanyHandler manages the company details singleton.
type CompanyHandler struct {
	store *store.Store
}

// NewCompanyHandler constructs CompanyHandler.
func NewCompanyHandler(st *store.Store) *CompanyHandler {
	return &CompanyHandler{store: st}
}

// Get returns the company details (public endpoint). A 404 is only
// possible before the singleton has been seeded.
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	details, ok := h.store.GetCompanyDetails()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Company details not found")
	}
	return c.JSON(details)
}

// Update creates or updates the company details (admin endpoint). The
// singleton keeps its id across updates.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in validators.CompanyDetailsInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errors := in.Validate(); len(errors) > 0 {
		return validationError(c, errors)
	}

	details := h.store.UpsertCompanyDetails(models.CompanyDetails{
		Address:     in.Address,
		Email:       in.Email,
		Phone:       in.Phone,
		SocialLinks: in.SocialLinks,
	})
	return c.JSON(details)
}
