package domain

import (
	"strings"
	"time"
)

// ReportType classifies an incident report.
type ReportType string

const (
	ReportTypeAccident ReportType = "accident"
	ReportTypeHazard   ReportType = "hazard"
)

// Severity enumerates urgency, ordered low to critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank orders severities by ascending urgency.
var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Rank returns the urgency rank of the severity, -1 for unknown values.
func (s Severity) Rank() int {
	if rank, ok := severityRank[s]; ok {
		return rank
	}
	return -1
}

// IsHighPriority reports whether the severity is high or critical.
func (s Severity) IsHighPriority() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// ReportStatus enumerates lifecycle states for reports.
type ReportStatus string

const (
	ReportStatusActive   ReportStatus = "active"
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
)

// StatusChange is an immutable audit entry recording one status transition.
type StatusChange struct {
	Status    ReportStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	ChangedBy string       `json:"changedBy"`
}

// Report is the aggregate for a single logged accident or hazard incident.
// StatusHistory is append-only: entries are never reordered or rewritten.
type Report struct {
	ID            string         `json:"id"`
	Zone          string         `json:"zone"`
	LocationName  string         `json:"locationName"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	Type          ReportType     `json:"type"`
	Severity      Severity       `json:"severity"`
	Description   string         `json:"description"`
	ReportedAt    time.Time      `json:"reportedAt"`
	Status        ReportStatus   `json:"status"`
	ReportedBy    string         `json:"reportedBy,omitempty"`
	StatusHistory []StatusChange `json:"statusHistory,omitempty"`
}

// ValidReportType reports whether t is a known report type.
func ValidReportType(t ReportType) bool {
	return t == ReportTypeAccident || t == ReportTypeHazard
}

// ValidSeverity reports whether s is a known severity level.
func ValidSeverity(s Severity) bool {
	_, ok := severityRank[s]
	return ok
}

// ValidReportStatus reports whether s is a known status.
func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportStatusActive, ReportStatusPending, ReportStatusResolved:
		return true
	}
	return false
}

// Validate checks required fields and enum membership. It returns the names
// of the fields that failed, empty when the report is well formed.
func (r Report) Validate() []string {
	var missing []string
	if strings.TrimSpace(r.Zone) == "" {
		missing = append(missing, "zone")
	}
	if strings.TrimSpace(r.LocationName) == "" {
		missing = append(missing, "locationName")
	}
	if strings.TrimSpace(r.Description) == "" {
		missing = append(missing, "description")
	}
	if !ValidReportType(r.Type) {
		missing = append(missing, "type")
	}
	if !ValidSeverity(r.Severity) {
		missing = append(missing, "severity")
	}
	if !ValidReportStatus(r.Status) {
		missing = append(missing, "status")
	}
	return missing
}

// Clone returns a deep copy so callers can hand out snapshots safely.
func (r Report) Clone() Report {
	clone := r
	if r.Latitude != nil {
		lat := *r.Latitude
		clone.Latitude = &lat
	}
	if r.Longitude != nil {
		lng := *r.Longitude
		clone.Longitude = &lng
	}
	if r.StatusHistory != nil {
		clone.StatusHistory = append([]StatusChange(nil), r.StatusHistory...)
	}
	return clone
}
