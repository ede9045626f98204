package models

// CompanyDetails stores the contact block shown in the site footer.
// There is at most one record (singleton pattern).
type CompanyDetails struct {
	ID          int      `json:"id"`
	Address     string   `json:"address"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	SocialLinks []string `json:"socialLinks"`
}
