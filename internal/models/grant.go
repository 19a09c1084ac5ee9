// internal/models/grant.go
package models

// Grant is a funding program record shown to applicants. The catalog is fixed
// at startup; grants are never created or mutated at runtime.
type Grant struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Amount      string   `json:"amount"`   // free-text range, e.g. "$10,000 - $150,000"
	Deadline    string   `json:"deadline"` // free-text date or "Rolling Basis" / "Open Enrollment"
	Description string   `json:"description"`
	Eligibility []string `json:"eligibility"`
}

// TeamMember is a staff profile shown on the about page.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

// FAQItem is a question/answer pair for the resources page.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ResourceItem describes a downloadable document.
type ResourceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"` // PDF, DOCX, XLSX
	Size        string `json:"size"`
	URL         string `json:"url"`
}
