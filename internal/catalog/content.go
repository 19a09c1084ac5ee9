// internal/catalog/content.go
package catalog

import "grant-portal/internal/models"

var team = []models.TeamMember{
	{
		ID:       "1",
		Name:     "Sarah Jennings",
		Role:     "Program Director",
		Bio:      "Sarah oversees the equitable distribution of funds and ensures compliance with federal grant standards.",
		ImageURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&q=80&w=400&h=400",
	},
	{
		ID:       "2",
		Name:     "David Ross",
		Role:     "SBA Specialist",
		Bio:      "David assists business owners in navigating the Small Business Administration application requirements.",
		ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=400&h=400",
	},
	{
		ID:       "3",
		Name:     "Elena Rodriguez",
		Role:     "Case Manager",
		Bio:      "Elena works with individual applicants to verify eligibility and expedite personal hardship claims.",
		ImageURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&q=80&w=400&h=400",
	},
}

var faqs = []models.FAQItem{
	{
		ID:       "q1",
		Question: "How do I know if I qualify?",
		Answer:   "Eligibility varies by program. Generally, you must be a US resident or citizen. Business grants require a registered business entity. Check specific grant details for more info.",
	},
	{
		ID:       "q2",
		Question: "Is there a cost to apply?",
		Answer:   "No. The National Grant Assistance Portal never charges an application fee. All programs listed are publicly funded or subsidized.",
	},
	{
		ID:       "q3",
		Question: "How long does the review process take?",
		Answer:   "Most applications are reviewed within 5-7 business days. You will be notified via email regarding your status.",
	},
}

var resources = []models.ResourceItem{
	{
		ID:          "r1",
		Title:       "Required Documents Checklist",
		Description: "A list of identification and financial documents needed for your application.",
		Type:        "PDF",
		Size:        "150 KB",
		URL:         "#",
	},
	{
		ID:          "r2",
		Title:       "SBA Eligibility Guide",
		Description: "Official criteria for Small Business Administration assistance.",
		Type:        "PDF",
		Size:        "1.2 MB",
		URL:         "#",
	},
	{
		ID:          "r3",
		Title:       "Income Verification Worksheet",
		Description: "Form to help you calculate and report household income accurately.",
		Type:        "DOCX",
		Size:        "45 KB",
		URL:         "#",
	},
}

// Team returns the staff profiles for the about page.
func Team() []models.TeamMember {
	out := make([]models.TeamMember, len(team))
	copy(out, team)
	return out
}

// FAQs returns the question/answer pairs for the resources page.
func FAQs() []models.FAQItem {
	out := make([]models.FAQItem, len(faqs))
	copy(out, faqs)
	return out
}

// Resources returns the downloadable document descriptors.
func Resources() []models.ResourceItem {
	out := make([]models.ResourceItem, len(resources))
	copy(out, resources)
	return out
}
