package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatraflow/yatraflow/internal/domain"
)

func queryFixture() []domain.Report {
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local)
	mk := func(id string, t domain.ReportType, sev domain.Severity, status domain.ReportStatus, zone, loc string, offset time.Duration) domain.Report {
		return domain.Report{
			ID: id, Zone: zone, LocationName: loc,
			Type: t, Severity: sev, Status: status,
			Description: "desc " + id,
			ReportedAt:  base.Add(offset),
		}
	}
	return []domain.Report{
		mk("1", domain.ReportTypeAccident, domain.SeverityCritical, domain.ReportStatusActive, "North Zone", "MG Road Junction", 0),
		mk("2", domain.ReportTypeHazard, domain.SeverityCritical, domain.ReportStatusPending, "South Zone", "Brigade Road", time.Hour),
		mk("3", domain.ReportTypeAccident, domain.SeverityLow, domain.ReportStatusResolved, "East Zone", "Whitefield Main Road", 2*time.Hour),
		mk("4", domain.ReportTypeAccident, domain.SeverityCritical, domain.ReportStatusActive, "West Zone", "Rajajinagar", 3*time.Hour),
		mk("5", domain.ReportTypeHazard, domain.SeverityMedium, domain.ReportStatusActive, "North Zone", "Hebbal Flyover", 4*time.Hour),
	}
}

func TestFilterReports_Equality(t *testing.T) {
	reports := queryFixture()
	accident := domain.ReportTypeAccident
	critical := domain.SeverityCritical
	active := domain.ReportStatusActive

	tests := []struct {
		name   string
		filter ReportFilter
		want   []string
	}{
		{"by type", ReportFilter{Type: &accident}, []string{"1", "3", "4"}},
		{"by severity", ReportFilter{Severity: &critical}, []string{"1", "2", "4"}},
		{"by status", ReportFilter{Status: &active}, []string{"1", "4", "5"}},
		{"conjunction", ReportFilter{Type: &accident, Severity: &critical}, []string{"1", "4"}},
		{"empty filter keeps all", ReportFilter{}, []string{"1", "2", "3", "4", "5"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterReports(reports, tc.filter)
			ids := make([]string, len(got))
			for i, r := range got {
				ids[i] = r.ID
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestFilterReports_ConjunctionOrderIndependent(t *testing.T) {
	reports := queryFixture()
	accident := domain.ReportTypeAccident
	critical := domain.SeverityCritical

	sequential := FilterReports(FilterReports(reports, ReportFilter{Severity: &critical}), ReportFilter{Type: &accident})
	reversed := FilterReports(FilterReports(reports, ReportFilter{Type: &accident}), ReportFilter{Severity: &critical})
	combined := FilterReports(reports, ReportFilter{Type: &accident, Severity: &critical})

	assert.Equal(t, combined, sequential)
	assert.Equal(t, combined, reversed)
}

func TestFilterReports_SearchMatchesAnyField(t *testing.T) {
	reports := queryFixture()

	tests := []struct {
		search string
		want   int
	}{
		{"brigade", 1},     // locationName
		{"north zone", 2},  // zone
		{"desc 3", 1},      // description
		{"hazard", 2},      // type
		{"critical", 3},    // severity
		{"pending", 1},     // status
		{"no-such-term", 0},
	}
	for _, tc := range tests {
		t.Run(tc.search, func(t *testing.T) {
			got := FilterReports(reports, ReportFilter{Search: tc.search})
			assert.Len(t, got, tc.want)
		})
	}
}

func TestSortReports_ReportedAtAscThenDescReverses(t *testing.T) {
	asc := queryFixture()
	SortReports(asc, SortSpec{Field: SortByReportedAt})

	desc := queryFixture()
	SortReports(desc, SortSpec{Field: SortByReportedAt, Descending: true})

	require.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortReports_StableOnTies(t *testing.T) {
	reports := queryFixture()
	// ids 1, 2 and 4 share the critical severity; stable sort keeps their
	// original relative order.
	SortReports(reports, SortSpec{Field: SortBySeverity, Descending: true})

	ids := make([]string, len(reports))
	for i, r := range reports {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"1", "2", "4", "5", "3"}, ids)
}

func TestSortReports_SeverityUsesUrgencyOrder(t *testing.T) {
	reports := queryFixture()
	SortReports(reports, SortSpec{Field: SortBySeverity})

	assert.Equal(t, domain.SeverityLow, reports[0].Severity)
	assert.Equal(t, domain.SeverityCritical, reports[len(reports)-1].Severity)
}

func TestQueryReports_Pagination(t *testing.T) {
	reports := make([]domain.Report, 23)
	for i := range reports {
		reports[i] = domain.Report{ID: fmt.Sprintf("r%02d", i)}
	}

	tests := []struct {
		page      int
		wantItems int
	}{
		{1, 10},
		{2, 10},
		{3, 3},
		{4, 0},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("page %d", tc.page), func(t *testing.T) {
			result := QueryReports(reports, ReportFilter{}, SortSpec{}, tc.page, 10)
			assert.Len(t, result.Items, tc.wantItems)
			assert.Equal(t, 23, result.TotalItems)
			assert.Equal(t, 3, result.PageCount)
		})
	}
}

func TestQueryReports_DefaultsPageAndSize(t *testing.T) {
	reports := make([]domain.Report, 15)
	for i := range reports {
		reports[i] = domain.Report{ID: fmt.Sprintf("r%02d", i)}
	}

	result := QueryReports(reports, ReportFilter{}, SortSpec{}, 0, 0)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, DefaultPageSize, result.PageSize)
	assert.Len(t, result.Items, 10)
	assert.Equal(t, 2, result.PageCount)
}
