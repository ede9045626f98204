package store

import (
	"github.com/dra200/exwork/internal/models"
	"github.com/dra200/exwork/internal/utils"
)

// Seed loads the default site content and the admin account. The admin
// password is hashed before it is stored; the plaintext never leaves
// this function.
func (s *Store) Seed(adminUsername, adminPassword string) error {
	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	s.CreateUser(models.User{
		Username:     adminUsername,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	})

	s.CreateService(models.Service{
		Title:       "Software Development",
		Description: "Custom software solutions designed to streamline your business processes, enhance productivity, and drive growth.",
		Icon:        "code",
		Features:    []string{"Web Applications", "Mobile Applications", "Desktop Software"},
	})
	s.CreateService(models.Service{
		Title:       "IT Support & Consulting",
		Description: "Comprehensive technical support and expert consulting to keep your systems running smoothly and efficiently.",
		Icon:        "server",
		Features:    []string{"24/7 Technical Support", "Infrastructure Management", "IT Strategy Consulting"},
	})
	s.CreateService(models.Service{
		Title:       "Data Management",
		Description: "Effective data solutions that help you organize, secure, and leverage your business information.",
		Icon:        "database",
		Features:    []string{"Database Design & Optimization", "Data Migration & Integration", "Business Intelligence Solutions"},
	})
	s.CreateService(models.Service{
		Title:       "Cybersecurity",
		Description: "Protect your business with our comprehensive security solutions designed to safeguard your digital assets.",
		Icon:        "shield",
		Features:    []string{"Security Assessments", "Threat Protection & Monitoring", "Compliance & Governance"},
	})

	s.CreateFeature(models.Feature{
		Title:       "Expertise",
		Description: "Our team of experts brings years of experience in software development and IT solutions across various industries.",
		Icon:        "code",
	})
	s.CreateFeature(models.Feature{
		Title:       "Client-Focused",
		Description: "We prioritize your needs, working closely with you to deliver solutions that address your specific challenges.",
		Icon:        "users",
	})
	s.CreateFeature(models.Feature{
		Title:       "Results-Driven",
		Description: "Our solutions are designed to deliver measurable results, helping your business grow and succeed.",
		Icon:        "bar-chart-2",
	})

	s.CreateTestimonial(models.Testimonial{
		Name:     "Sarah Johnson",
		Position: "CEO",
		Company:  "TechInnovate",
		Content:  "ExWork transformed our business operations with their custom software solution. The team was professional, responsive, and delivered exactly what we needed. I highly recommend their services.",
		Rating:   5,
	})

	s.UpsertCompanyDetails(models.CompanyDetails{
		Address:     "123 Business Avenue, Tech District, 10000, City, Country",
		Email:       "contact@exwork.eu",
		Phone:       "+1 (123) 456-7890",
		SocialLinks: []string{"https://linkedin.com", "https://twitter.com", "https://facebook.com", "https://instagram.com"},
	})

	return nil
}
