// internal/catalog/catalog.go
package catalog

import (
	"sort"
	"strings"

	"grant-portal/internal/models"
)

// grants is the fixed program table loaded at startup. Listing, filtering and
// the application form all read from this slice; it is never mutated.
var grants = []models.Grant{
	{
		ID:          "sba-biz-2026",
		Title:       "SBA Small Business Assistance",
		Category:    "Business Support",
		Amount:      "$10,000 - $150,000",
		Deadline:    "Open Enrollment",
		Description: "Federal assistance program for US small businesses. Provides capital for operational expansion, payroll support, and equipment purchase. Administered according to Small Business Administration guidelines.",
		Eligibility: []string{"US-Based Business", "Under 500 Employees", "Valid Tax ID"},
	},
	{
		ID:          "home-equity-24",
		Title:       "Homeowner Repair & Equity Grant",
		Category:    "Home Relief",
		Amount:      "$5,000 - $50,000",
		Deadline:    "April 15, 2026",
		Description: "Funding for primary residence homeowners to perform critical repairs, safety upgrades, and energy efficiency improvements. Helps stabilize property value and ensure safe housing.",
		Eligibility: []string{"US Homeowner", "Primary Residence", "Property Tax Current"},
	},
	{
		ID:          "personal-hardship",
		Title:       "Personal Financial Hardship Relief",
		Category:    "Personal Support",
		Amount:      "$2,000 - $15,000",
		Deadline:    "Rolling Basis",
		Description: "Direct financial aid for individuals and families experiencing economic hardship. Funds can be used for rent, utilities, food, and essential debt management.",
		Eligibility: []string{"US Citizen/Resident", "Proof of Hardship", "18+ Years Old"},
	},
	{
		ID:          "health-care-assist",
		Title:       "Medical Assistance Program",
		Category:    "Health",
		Amount:      "$5,000 - $25,000",
		Deadline:    "May 30, 2026",
		Description: "Supplementary funding to assist with high out-of-pocket medical expenses, prescription costs, and necessary medical procedures not fully covered by insurance.",
		Eligibility: []string{"Income Qualified", "Documented Medical Need"},
	},
}

// All returns every grant program in catalog order.
func All() []models.Grant {
	out := make([]models.Grant, len(grants))
	copy(out, grants)
	return out
}

// Get returns the grant with the given id.
func Get(id string) (models.Grant, bool) {
	for _, g := range grants {
		if g.ID == id {
			return g, true
		}
	}
	return models.Grant{}, false
}

// FilterByCategory returns grants whose category matches, case-insensitively.
// An empty category returns the full catalog.
func FilterByCategory(category string) []models.Grant {
	if category == "" {
		return All()
	}
	var out []models.Grant
	for _, g := range grants {
		if strings.EqualFold(g.Category, category) {
			out = append(out, g)
		}
	}
	return out
}

// Categories returns the distinct grant categories, sorted.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, g := range grants {
		if !seen[g.Category] {
			seen[g.Category] = true
			out = append(out, g.Category)
		}
	}
	sort.Strings(out)
	return out
}
