package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/auth"
	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/repository"
	"github.com/yatraflow/yatraflow/pkg/util"
)

// ReportService coordinates report workflows: validation, the role policy
// and the append-only history rule live here, above the repository.
type ReportService struct {
	reports repository.ReportRepository
	logger  *zap.Logger
}

// NewReportService constructs the service.
func NewReportService(reports repository.ReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{reports: reports, logger: logger}
}

// ReportCreateInput describes report creation payload.
type ReportCreateInput struct {
	Zone         string
	LocationName string
	Latitude     *float64
	Longitude    *float64
	Type         domain.ReportType
	Severity     domain.Severity
	Description  string
}

// ReportUpdateInput describes a partial update. Nil fields are untouched.
type ReportUpdateInput struct {
	Zone         *string
	LocationName *string
	Type         *domain.ReportType
	Severity     *domain.Severity
	Description  *string
	Status       *domain.ReportStatus
}

// List returns the full collection in last-written order.
func (s *ReportService) List() []domain.Report {
	return s.reports.List()
}

// Get fetches one report.
func (s *ReportService) Get(id string) (*domain.Report, error) {
	report, ok := s.reports.Get(id)
	if !ok {
		return nil, util.NewNotFound("report", map[string]any{"id": id})
	}
	return report, nil
}

// Create submits a new report on behalf of the actor. The initial status is
// active and seeds the first history entry.
func (s *ReportService) Create(ctx context.Context, actor *domain.User, input ReportCreateInput) (*domain.Report, error) {
	if actor == nil || !auth.CanSubmitReports(actor.Role) {
		return nil, util.NewForbidden("not allowed to submit reports")
	}

	now := time.Now()
	report := domain.Report{
		ID:           uuid.NewString(),
		Zone:         input.Zone,
		LocationName: input.LocationName,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Type:         input.Type,
		Severity:     input.Severity,
		Description:  input.Description,
		ReportedAt:   now,
		Status:       domain.ReportStatusActive,
		ReportedBy:   actor.Name,
		StatusHistory: []domain.StatusChange{{
			Status:    domain.ReportStatusActive,
			Timestamp: now,
			ChangedBy: actor.Name,
		}},
	}
	if err := s.reports.Add(ctx, report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Update merges the given fields into an existing report. A status change
// appends exactly one history entry naming the actor; other fields merge in
// place. Returns the updated report.
func (s *ReportService) Update(ctx context.Context, actor *domain.User, id string, input ReportUpdateInput) (*domain.Report, error) {
	if actor == nil || !auth.CanManageReports(actor.Role) {
		return nil, util.NewForbidden("admin role required")
	}

	current, ok := s.reports.Get(id)
	if !ok {
		return nil, util.NewNotFound("report", map[string]any{"id": id})
	}

	if input.Type != nil && !domain.ValidReportType(*input.Type) {
		return nil, util.NewValidationError("unknown report type", map[string]any{"type": *input.Type})
	}
	if input.Severity != nil && !domain.ValidSeverity(*input.Severity) {
		return nil, util.NewValidationError("unknown severity", map[string]any{"severity": *input.Severity})
	}
	if input.Status != nil && !domain.ValidReportStatus(*input.Status) {
		return nil, util.NewValidationError("unknown status", map[string]any{"status": *input.Status})
	}

	patch := repository.ReportPatch{
		Zone:         input.Zone,
		LocationName: input.LocationName,
		Type:         input.Type,
		Severity:     input.Severity,
		Description:  input.Description,
	}
	if input.Status != nil && *input.Status != current.Status {
		patch.Status = input.Status
		patch.HistoryEntry = &domain.StatusChange{
			Status:    *input.Status,
			Timestamp: time.Now(),
			ChangedBy: actor.Name,
		}
	}
	s.reports.Update(ctx, id, patch)

	updated, _ := s.reports.Get(id)
	return updated, nil
}

// Delete removes a report.
func (s *ReportService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if actor == nil || !auth.CanManageReports(actor.Role) {
		return util.NewForbidden("admin role required")
	}
	if _, ok := s.reports.Get(id); !ok {
		return util.NewNotFound("report", map[string]any{"id": id})
	}
	s.reports.Remove(ctx, id)
	s.logger.Info("report deleted", zap.String("report_id", id), zap.String("by", actor.Name))
	return nil
}
