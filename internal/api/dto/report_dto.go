package dto

import (
	"time"

	"github.com/yatraflow/yatraflow/internal/domain"
)

// CreateReportRequest payload.
type CreateReportRequest struct {
	Zone         string            `json:"zone"`
	LocationName string            `json:"locationName"`
	Latitude     *float64          `json:"latitude"`
	Longitude    *float64          `json:"longitude"`
	Type         domain.ReportType `json:"type"`
	Severity     domain.Severity   `json:"severity"`
	Description  string            `json:"description"`
}

// UpdateReportRequest carries a partial update; nil fields are untouched.
type UpdateReportRequest struct {
	Zone         *string              `json:"zone"`
	LocationName *string              `json:"locationName"`
	Type         *domain.ReportType   `json:"type"`
	Severity     *domain.Severity     `json:"severity"`
	Description  *string              `json:"description"`
	Status       *domain.ReportStatus `json:"status"`
}

// ReportResponse mirrors the domain shape for API consumers.
type ReportResponse struct {
	ID            string                `json:"id"`
	Zone          string                `json:"zone"`
	LocationName  string                `json:"locationName"`
	Latitude      *float64              `json:"latitude,omitempty"`
	Longitude     *float64              `json:"longitude,omitempty"`
	Type          domain.ReportType     `json:"type"`
	Severity      domain.Severity       `json:"severity"`
	Description   string                `json:"description"`
	ReportedAt    time.Time             `json:"reportedAt"`
	Status        domain.ReportStatus   `json:"status"`
	ReportedBy    string                `json:"reportedBy,omitempty"`
	StatusHistory []domain.StatusChange `json:"statusHistory,omitempty"`
}

// NewReportResponse maps a domain report.
func NewReportResponse(r domain.Report) ReportResponse {
	return ReportResponse{
		ID:            r.ID,
		Zone:          r.Zone,
		LocationName:  r.LocationName,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Type:          r.Type,
		Severity:      r.Severity,
		Description:   r.Description,
		ReportedAt:    r.ReportedAt,
		Status:        r.Status,
		ReportedBy:    r.ReportedBy,
		StatusHistory: r.StatusHistory,
	}
}

// NewReportResponses maps a slice of domain reports.
func NewReportResponses(reports []domain.Report) []ReportResponse {
	out := make([]ReportResponse, len(reports))
	for i, r := range reports {
		out[i] = NewReportResponse(r)
	}
	return out
}
