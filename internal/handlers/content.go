package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dra200/exwork/internal/models"
	"github.com/dra200/exwork/internal/store"
	"github.com/dra200/exwork/internal/validators"
)

// ContentHandler manages services, features and testimonials.
type ContentHandler struct {
	store *store.Store
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(st *store.Store) *ContentHandler {
	return &ContentHandler{store: st}
}

func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func validationError(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation error",
		"errors":  errors,
	})
}

// Services

// ListServices returns every service (public endpoint).
func (h *ContentHandler) ListServices(c *fiber.Ctx) error {
	return c.JSON(h.store.ListServices())
}

// CreateService adds a new service (admin endpoint).
func (h *ContentHandler) CreateService(c *fiber.Ctx) error {
	var in validators.ServiceInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errors := in.Validate(); len(errors) > 0 {
		return validationError(c, errors)
	}

	service := h.store.CreateService(models.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Features:    in.Features,
	})
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService replaces the editable fields of a service (admin endpoint).
func (h *ContentHandler) UpdateService(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in validators.ServiceInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errors := in.Validate(); len(errors) > 0 {
		return validationError(c, errors)
	}

	service, ok := h.store.UpdateService(id, store.ServicePatch{
		Title:       &in.Title,
		Description: &in.Description,
		Icon:        &in.Icon,
		Features:    &in.Features,
	})
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Service not found")
	}
	return c.JSON(service)
}

// DeleteService removes a service (admin endpoint).
func (h *ContentHandler) DeleteService(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if !h.store.DeleteService(id) {
		return fiber.NewError(fiber.StatusNotFound, "Service not found")
	}
	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}

// Features

// ListFeatures returns every feature (public endpoint).
func (h *ContentHandler) ListFeatures(c *fiber.Ctx) error {
	return c.JSON(h.store.ListFeatures())
}

// CreateFeature adds a new feature (admin endpoint).
func (h *ContentHandler) CreateFeature(c *fiber.Ctx) error {
	var in validators.FeatureInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errors := in.Validate(); len(errors) > 0 {
		return validationError(c, errors)
	}

	feature := h.store.CreateFeature(models.Feature{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
	})
	return c.Status(fiber.StatusCreated).JSON(feature)
}

// UpdateFeature replaces the editable fields of a feature (admin endpoint).
func (h *ContentHandler) UpdateFeature(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in validators.FeatureInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errors := in.Validate(); len(errors) > 0 {
		return validationError(c, errors)
	}

	feature, ok := h.store.UpdateFeature(id, store.FeaturePatch{
		Title:       &in.Title,
		Description: &in.Description,
		Icon:        &in.Icon,
	})
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Feature not found")
	}
	return c.JSON(feature)
}

// DeleteFeature removes a feature (admin endpoint).
func (h *ContentHandler) DeleteFeature(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if !h.store.DeleteFeature(id) {
		return fiber.NewError(fiber.StatusNotFound, "Feature not found")
	}
	return c.JSON(fiber.Map{"message": "Feature deleted successfully"})
}

// Testimonials

// ListTestimonials returns every testimonial (public endpoint).
func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	return c.JSON(h.store.ListTestimonials())
}

// CreateTestimonial adds a new testimonial (admin endpoint).
func (h *ContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	var in validators.TestimonialInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errors := in.Validate(); len(errors) > 0 {
		return validationError(c, errors)
	}

	testimonial := h.store.CreateTestimonial(models.Testimonial{
		Name:     in.Name,
		Position: in.Position,
		Company:  in.Company,
		Content:  in.Content,
		Rating:   in.Rating,
	})
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// UpdateTestimonial replaces the editable fields of a testimonial (admin endpoint).
func (h *ContentHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in validators.TestimonialInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errors := in.Validate(); len(errors) > 0 {
		return validationError(c, errors)
	}

	testimonial, ok := h.store.UpdateTestimonial(id, store.TestimonialPatch{
		Name:     &in.Name,
		Position: &in.Position,
		Company:  &in.Company,
		Content:  &in.Content,
		Rating:   &in.Rating,
	})
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Testimonial not found")
	}
	return c.JSON(testimonial)
}

// DeleteTestimonial removes a testimonial (admin endpoint).
func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if !h.store.DeleteTestimonial(id) {
		return fiber.NewError(fiber.StatusNotFound, "Testimonial not found")
	}
	return c.JSON(fiber.Map{"message": "Testimonial deleted successfully"})
}
