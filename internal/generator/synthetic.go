package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/yatraflow/yatraflow/internal/domain"
)

var (
	zones = []string{"North Zone", "South Zone", "East Zone", "West Zone", "Central Zone"}

	reportTypes = []domain.ReportType{domain.ReportTypeAccident, domain.ReportTypeHazard}

	severities = []domain.Severity{
		domain.SeverityLow,
		domain.SeverityMedium,
		domain.SeverityHigh,
		domain.SeverityCritical,
	}

	// Seeded reports land either still-open or already handled.
	seedStatuses = []domain.ReportStatus{domain.ReportStatusActive, domain.ReportStatusResolved}

	accidentDescriptions = []string{
		"Two-vehicle collision blocking left lane. Minor injuries reported.",
		"Single vehicle skidded off road. No injuries.",
		"Multi-vehicle pileup. Emergency services on site.",
		"Rear-end collision at signal. Traffic moving slowly.",
	}

	hazardDescriptions = []string{
		"Large pothole causing vehicle damage. Water accumulation.",
		"Faded road markings reducing visibility at night.",
		"Loose gravel on bridge approach. Slippery conditions.",
		"Fallen tree branch partially blocking carriageway.",
	}
)

// Rough bounding box around the metro area the zones cover.
const (
	latBase = 12.90
	latSpan = 0.15
	lngBase = 77.50
	lngSpan = 0.25
)

// SeedReports produces n randomized reports with timestamps uniformly
// spread over the trailing seven days. Histories carry at most the initial
// entry.
func SeedReports(n int) []domain.Report {
	reports := make([]domain.Report, 0, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		zone := pick(zones)
		reportType := pick(reportTypes)
		status := pick(seedStatuses)
		reportedAt := now.Add(-time.Duration(rand.Int63n(int64(7 * 24 * time.Hour))))

		report := domain.Report{
			ID:           uuid.NewString(),
			Zone:         zone,
			LocationName: fmt.Sprintf("%s - Location %d", zone, i+1),
			Latitude:     randomCoord(latBase, latSpan),
			Longitude:    randomCoord(lngBase, lngSpan),
			Type:         reportType,
			Severity:     pick(severities),
			Description:  describe(reportType),
			ReportedAt:   reportedAt,
			Status:       status,
			ReportedBy:   "System",
		}
		if rand.Intn(2) == 0 {
			report.StatusHistory = []domain.StatusChange{{
				Status:    status,
				Timestamp: reportedAt,
				ChangedBy: "System",
			}}
		}
		reports = append(reports, report)
	}
	return reports
}

// NewBatch synthesizes one feed tick: two or three accidents plus exactly
// one hazard, all with fresh identifiers and timestamps.
func NewBatch() []domain.Report {
	count := 2 + rand.Intn(2)
	batch := make([]domain.Report, 0, count+1)
	for i := 0; i < count; i++ {
		batch = append(batch, newFeedReport(domain.ReportTypeAccident))
	}
	batch = append(batch, newFeedReport(domain.ReportTypeHazard))
	return batch
}

func newFeedReport(reportType domain.ReportType) domain.Report {
	now := time.Now()
	zone := pick(zones)
	status := pick(seedStatuses)
	return domain.Report{
		ID:           uuid.NewString(),
		Zone:         zone,
		LocationName: fmt.Sprintf("%s - Location %d", zone, rand.Intn(100)),
		Latitude:     randomCoord(latBase, latSpan),
		Longitude:    randomCoord(lngBase, lngSpan),
		Type:         reportType,
		Severity:     pick(severities),
		Description:  describe(reportType),
		ReportedAt:   now,
		Status:       status,
		ReportedBy:   "System",
		StatusHistory: []domain.StatusChange{{
			Status:    status,
			Timestamp: now,
			ChangedBy: "System",
		}},
	}
}

func describe(reportType domain.ReportType) string {
	if reportType == domain.ReportTypeAccident {
		return pick(accidentDescriptions)
	}
	return pick(hazardDescriptions)
}

func randomCoord(base, span float64) *float64 {
	v := base + rand.Float64()*span
	return &v
}

func pick[T any](options []T) T {
	return options[rand.Intn(len(options))]
}
