// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_ReturnsFourPrograms(t *testing.T) {
	all := All()
	assert.Len(t, all, 4)

	ids := make([]string, 0, len(all))
	for _, g := range all {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"sba-biz-2026", "home-equity-24", "personal-hardship", "health-care-assist"}, ids)
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Title = "mutated"

	assert.Equal(t, "SBA Small Business Assistance", All()[0].Title)
}

func TestGet(t *testing.T) {
	g, ok := Get("home-equity-24")
	assert.True(t, ok)
	assert.Equal(t, "Homeowner Repair & Equity Grant", g.Title)
	assert.Equal(t, "Home Relief", g.Category)

	_, ok = Get("no-such-grant")
	assert.False(t, ok)
}

func TestFilterByCategory(t *testing.T) {
	health := FilterByCategory("Health")
	assert.Len(t, health, 1)
	assert.Equal(t, "health-care-assist", health[0].ID)

	// Case-insensitive match.
	assert.Len(t, FilterByCategory("health"), 1)

	// Empty category returns everything.
	assert.Len(t, FilterByCategory(""), 4)

	assert.Empty(t, FilterByCategory("Agriculture"))
}

func TestCategories_SortedDistinct(t *testing.T) {
	assert.Equal(t, []string{"Business Support", "Health", "Home Relief", "Personal Support"}, Categories())
}

func TestContent_FixedEntries(t *testing.T) {
	assert.Len(t, Team(), 3)
	assert.Len(t, FAQs(), 3)
	assert.Len(t, Resources(), 3)

	assert.Equal(t, "Sarah Jennings", Team()[0].Name)
}
