package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatraflow/yatraflow/internal/domain"
)

func TestExportCSV(t *testing.T) {
	reportedAt := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	reports := []domain.Report{
		{
			ID: "r1", Zone: "North Zone", LocationName: "MG Road Junction",
			Type: domain.ReportTypeAccident, Severity: domain.SeverityHigh,
			Description: "Two-vehicle collision blocking left lane.",
			ReportedAt:  reportedAt, Status: domain.ReportStatusActive,
		},
		{
			ID: "r2", Zone: "South Zone", LocationName: "Brigade Road",
			Type: domain.ReportTypeHazard, Severity: domain.SeverityLow,
			Description: `Pothole near the "old" bus stop`,
			ReportedAt:  reportedAt, Status: domain.ReportStatusPending,
		},
	}

	csv := ExportCSV(reports)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "ID,Zone,Location,Type,Severity,Description,Reported At,Status", lines[0])
	assert.Equal(t, `r1,North Zone,MG Road Junction,accident,high,"Two-vehicle collision blocking left lane.",2026-08-30T10:30:00Z,active`, lines[1])
	// embedded quotes are doubled
	assert.Contains(t, lines[2], `"Pothole near the ""old"" bus stop"`)
}

func TestExportCSV_EmptyViewStillHasHeader(t *testing.T) {
	csv := ExportCSV(nil)
	assert.Equal(t, "ID,Zone,Location,Type,Severity,Description,Reported At,Status\n", csv)
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "yatraflow-reports-2026-09-01.csv", ExportFileName(now))
}
