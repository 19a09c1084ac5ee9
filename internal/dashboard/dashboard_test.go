// internal/dashboard/dashboard_test.go
package dashboard

import (
	"testing"
	"time"

	"grant-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_SamplesAlwaysPresent(t *testing.T) {
	view := Aggregate(nil, SortByDate)

	require.Len(t, view.Records, 3)
	ids := map[string]bool{}
	for _, r := range view.Records {
		ids[r.ID] = true
		assert.True(t, r.IsStatic)
	}
	assert.True(t, ids["SBA-2025-X992"])
	assert.True(t, ids["HE-24-881"])
	assert.True(t, ids["PH-00-112"])
}

func TestAggregate_SortByDateDescending(t *testing.T) {
	user := []models.DisplayRecord{
		{ID: "REF-NEW", Title: "Medical Assistance Program", Status: models.StatusPendingReview, Date: "02/11/2026"},
	}

	view := Aggregate(user, SortByDate)

	require.Len(t, view.Records, 4)
	assert.Equal(t, "REF-NEW", view.Records[0].ID)
	assert.Equal(t, "HE-24-881", view.Records[1].ID)      // 01/14/2025
	assert.Equal(t, "SBA-2025-X992", view.Records[2].ID)  // 01/12/2025
	assert.Equal(t, "PH-00-112", view.Records[3].ID)      // 01/10/2025
}

func TestAggregate_UnparseableDatesSortLast(t *testing.T) {
	user := []models.DisplayRecord{
		{ID: "REF-BAD", Status: models.StatusPendingReview, Date: "sometime soon"},
	}

	view := Aggregate(user, SortByDate)

	assert.Equal(t, "REF-BAD", view.Records[len(view.Records)-1].ID)
}

func TestAggregate_SortByStatusRank(t *testing.T) {
	user := []models.DisplayRecord{
		{ID: "REF-PEND", Status: models.StatusPendingReview, Date: "02/11/2026"},
		{ID: "REF-ODD", Status: "Archived", Date: "02/11/2026"},
	}

	view := Aggregate(user, SortByStatus)

	statuses := make([]string, 0, len(view.Records))
	for _, r := range view.Records {
		statuses = append(statuses, r.Status)
	}
	assert.Equal(t, []string{
		models.StatusApproved,
		models.StatusUnderReview,
		models.StatusPendingReview,
		models.StatusIncomplete,
		"Archived",
	}, statuses)
}

func TestAggregate_StatusSortIsStable(t *testing.T) {
	user := []models.DisplayRecord{
		{ID: "REF-A", Status: models.StatusApproved, Date: "02/01/2026"},
		{ID: "REF-B", Status: models.StatusApproved, Date: "02/02/2026"},
	}

	view := Aggregate(user, SortByStatus)

	// Equal ranks keep input order: the two user records ahead of the
	// approved sample.
	assert.Equal(t, "REF-A", view.Records[0].ID)
	assert.Equal(t, "REF-B", view.Records[1].ID)
	assert.Equal(t, "SBA-2025-X992", view.Records[2].ID)
}

func TestComputeStats(t *testing.T) {
	view := Aggregate(nil, SortByDate)

	// Samples alone: one approved, one under review.
	assert.Equal(t, 1, view.Stats.ApprovedCount)
	assert.Equal(t, 1, view.Stats.UnderReviewCount)
	assert.Equal(t, 15000, view.Stats.TotalFunding)
}

func TestComputeStats_FundingStepsWithApprovals(t *testing.T) {
	user := []models.DisplayRecord{
		{ID: "REF-A", Status: models.StatusApproved, Date: "02/01/2026"},
		{ID: "REF-P", Status: models.StatusPendingReview, Date: "02/02/2026"},
	}

	view := Aggregate(user, SortByDate)

	assert.Equal(t, 2, view.Stats.ApprovedCount)
	// Pending Review counts into the under-review figure.
	assert.Equal(t, 2, view.Stats.UnderReviewCount)
	assert.Equal(t, 20000, view.Stats.TotalFunding)
}

func TestFromApplications(t *testing.T) {
	apps := []models.Application{
		{
			ID:          "7d0e37f2",
			GrantID:     "sba-biz-2026",
			Status:      models.StatusPendingReview,
			SubmittedAt: time.Date(2026, 2, 11, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          "0a6f1b0c",
			GrantID:     "retired-grant",
			Status:      models.StatusPendingReview,
			SubmittedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	records := FromApplications(apps)

	require.Len(t, records, 2)
	assert.Equal(t, "SBA Small Business Assistance", records[0].Title)
	assert.Equal(t, "business", records[0].GrantType)
	assert.Equal(t, "02/11/2026", records[0].Date)
	assert.False(t, records[0].IsStatic)

	// Unknown grant ids fall back to the raw id.
	assert.Equal(t, "retired-grant", records[1].Title)
	assert.Equal(t, "personal", records[1].GrantType)
}
