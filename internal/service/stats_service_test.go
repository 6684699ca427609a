package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatraflow/yatraflow/internal/domain"
)

func TestComputeStats_Scenario(t *testing.T) {
	mk := func(reportType domain.ReportType, sev domain.Severity) domain.Report {
		return domain.Report{Type: reportType, Severity: sev, Status: domain.ReportStatusActive, Zone: "North Zone"}
	}
	reports := []domain.Report{
		mk(domain.ReportTypeAccident, domain.SeverityHigh),
		mk(domain.ReportTypeAccident, domain.SeverityCritical),
		mk(domain.ReportTypeAccident, domain.SeverityMedium),
		mk(domain.ReportTypeHazard, domain.SeverityLow),
		mk(domain.ReportTypeHazard, domain.SeverityCritical),
	}

	stats := ComputeStats(reports)
	assert.Equal(t, 5, stats.TotalReports)
	assert.Equal(t, 3, stats.TotalAccidents)
	assert.Equal(t, 2, stats.TotalHazards)
	assert.Equal(t, 3, stats.HighPriority)
	assert.Equal(t, 5, stats.ActiveReports)
	assert.Equal(t, 2, stats.BySeverity["critical"])
	assert.Equal(t, 5, stats.ByZone["North Zone"])
}

func TestComputeStats_StatusBuckets(t *testing.T) {
	reports := []domain.Report{
		{Type: domain.ReportTypeAccident, Severity: domain.SeverityLow, Status: domain.ReportStatusActive},
		{Type: domain.ReportTypeAccident, Severity: domain.SeverityLow, Status: domain.ReportStatusPending},
		{Type: domain.ReportTypeHazard, Severity: domain.SeverityLow, Status: domain.ReportStatusResolved},
		{Type: domain.ReportTypeHazard, Severity: domain.SeverityLow, Status: domain.ReportStatusResolved},
	}

	stats := ComputeStats(reports)
	assert.Equal(t, 1, stats.ActiveReports)
	assert.Equal(t, 1, stats.PendingReports)
	assert.Equal(t, 2, stats.ResolvedReports)
	assert.Equal(t, 0, stats.HighPriority)
}

func TestComputeTrend_BucketsByCalendarDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	reports := []domain.Report{
		{Type: domain.ReportTypeAccident, ReportedAt: now.Add(-2 * time.Hour)},            // today
		{Type: domain.ReportTypeHazard, ReportedAt: now.Add(-2 * time.Hour)},              // today
		{Type: domain.ReportTypeAccident, ReportedAt: now.AddDate(0, 0, -3)},              // four days back
		{Type: domain.ReportTypeAccident, ReportedAt: now.AddDate(0, 0, -6)},              // window start
		{Type: domain.ReportTypeHazard, ReportedAt: now.AddDate(0, 0, -8)},                // outside window
		{Type: domain.ReportTypeAccident, ReportedAt: now.Add(26 * time.Hour)},            // future, outside
	}

	trend := ComputeTrend(reports, now)
	require.Len(t, trend, 7)

	assert.Equal(t, "2026-08-25", trend[0].Date)
	assert.Equal(t, "2026-08-31", trend[6].Date)

	assert.Equal(t, 1, trend[0].Accidents)
	assert.Equal(t, 1, trend[3].Accidents)
	assert.Equal(t, 1, trend[6].Accidents)
	assert.Equal(t, 1, trend[6].Hazards)
	assert.Equal(t, 2, trend[6].Total)

	total := 0
	for _, p := range trend {
		total += p.Total
	}
	assert.Equal(t, 4, total)
}
