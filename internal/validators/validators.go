package validators

import (
	"regexp"
	"strings"

	"github.com/dra200/exwork/internal/models"
)

// Each payload type has a Validate method returning a field-keyed error
// map. An empty map means the payload is acceptable; handlers turn a
// non-empty map into a 400 response. Validation never panics and runs
// before any store mutation.

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ContactForm is the public contact submission payload.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Validate checks the contact form rules. Phone is optional.
func (f ContactForm) Validate() map[string]string {
	errors := make(map[string]string)

	if len(strings.TrimSpace(f.Name)) < 2 {
		errors["name"] = "Name must be at least 2 characters"
	}
	if f.Email == "" || !isValidEmail(f.Email) {
		errors["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(f.Service) == "" {
		errors["service"] = "Please select a service"
	}
	if len(strings.TrimSpace(f.Message)) < 10 {
		errors["message"] = "Message must be at least 10 characters"
	}

	return errors
}

// ServiceInput is the admin create/update payload for services.
type ServiceInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

// Validate checks the service schema. The features key must be present,
// though the list itself may be empty.
func (in ServiceInput) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		errors["title"] = "Title is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		errors["description"] = "Description is required"
	}
	if strings.TrimSpace(in.Icon) == "" {
		errors["icon"] = "Icon is required"
	}
	if in.Features == nil {
		errors["features"] = "Features are required"
	}

	return errors
}

// FeatureInput is the admin create/update payload for features.
type FeatureInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Validate checks the feature schema.
func (in FeatureInput) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		errors["title"] = "Title is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		errors["description"] = "Description is required"
	}
	if strings.TrimSpace(in.Icon) == "" {
		errors["icon"] = "Icon is required"
	}

	return errors
}

// TestimonialInput is the admin create/update payload for testimonials.
type TestimonialInput struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
}

// Validate checks the testimonial schema, including the 1-5 rating range.
func (in TestimonialInput) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(in.Name) == "" {
		errors["name"] = "Name is required"
	}
	if strings.TrimSpace(in.Position) == "" {
		errors["position"] = "Position is required"
	}
	if strings.TrimSpace(in.Company) == "" {
		errors["company"] = "Company is required"
	}
	if strings.TrimSpace(in.Content) == "" {
		errors["content"] = "Content is required"
	}
	if in.Rating < 1 || in.Rating > 5 {
		errors["rating"] = "Rating must be between 1 and 5"
	}

	return errors
}

// CompanyDetailsInput is the admin upsert payload for company details.
type CompanyDetailsInput struct {
	Address     string   `json:"address"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	SocialLinks []string `json:"socialLinks"`
}

// Validate checks the company details schema. Social links are optional.
func (in CompanyDetailsInput) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(in.Address) == "" {
		errors["address"] = "Address is required"
	}
	if in.Email == "" || !isValidEmail(in.Email) {
		errors["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(in.Phone) == "" {
		errors["phone"] = "Phone is required"
	}

	return errors
}

// StatusInput is the contact-request status change payload.
type StatusInput struct {
	Status models.RequestStatus `json:"status"`
}

// Validate checks the status against the known values.
func (in StatusInput) Validate() map[string]string {
	errors := make(map[string]string)

	if !in.Status.Valid() {
		errors["status"] = "Status must be one of new, in-progress, completed"
	}

	return errors
}
