package service

import (
	"time"

	"github.com/yatraflow/yatraflow/internal/domain"
)

// Stats aggregates the unfiltered collection for the dashboard cards and
// charts. HighPriority counts high plus critical severities.
type Stats struct {
	TotalReports    int            `json:"totalReports"`
	TotalAccidents  int            `json:"totalAccidents"`
	TotalHazards    int            `json:"totalHazards"`
	ActiveReports   int            `json:"activeReports"`
	PendingReports  int            `json:"pendingReports"`
	ResolvedReports int            `json:"resolvedReports"`
	HighPriority    int            `json:"highPriority"`
	BySeverity      map[string]int `json:"bySeverity"`
	ByZone          map[string]int `json:"byZone"`
}

// TrendPoint is one calendar-day bucket of the trailing week.
type TrendPoint struct {
	Date      string `json:"date"` // YYYY-MM-DD, local time
	Accidents int    `json:"accidents"`
	Hazards   int    `json:"hazards"`
	Total     int    `json:"total"`
}

// ComputeStats derives the aggregate counters from a snapshot.
func ComputeStats(reports []domain.Report) Stats {
	stats := Stats{
		TotalReports: len(reports),
		BySeverity:   make(map[string]int),
		ByZone:       make(map[string]int),
	}
	for _, r := range reports {
		switch r.Type {
		case domain.ReportTypeAccident:
			stats.TotalAccidents++
		case domain.ReportTypeHazard:
			stats.TotalHazards++
		}
		switch r.Status {
		case domain.ReportStatusActive:
			stats.ActiveReports++
		case domain.ReportStatusPending:
			stats.PendingReports++
		case domain.ReportStatusResolved:
			stats.ResolvedReports++
		}
		if r.Severity.IsHighPriority() {
			stats.HighPriority++
		}
		stats.BySeverity[string(r.Severity)]++
		stats.ByZone[r.Zone]++
	}
	return stats
}

// ComputeTrend buckets reports into the trailing seven calendar days ending
// today, split by type. Days are local-time calendar days.
func ComputeTrend(reports []domain.Report, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		key := day.Format("2006-01-02")
		points[i] = TrendPoint{Date: key}
		index[key] = i
	}

	for _, r := range reports {
		key := r.ReportedAt.Local().Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		switch r.Type {
		case domain.ReportTypeAccident:
			points[i].Accidents++
		case domain.ReportTypeHazard:
			points[i].Hazards++
		}
		points[i].Total++
	}
	return points
}
