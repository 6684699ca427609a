package service

import (
	"sort"
	"strings"

	"github.com/yatraflow/yatraflow/internal/domain"
)

// DefaultPageSize matches the dashboard table.
const DefaultPageSize = 10

// ReportFilter is a conjunction of optional predicates. Search matches a
// case-insensitive substring against locationName, zone, description, type,
// severity and status; a hit on any of them keeps the record.
type ReportFilter struct {
	Type     *domain.ReportType
	Severity *domain.Severity
	Status   *domain.ReportStatus
	Search   string
}

// SortField selects the comparison key.
type SortField string

const (
	SortByZone         SortField = "zone"
	SortByLocationName SortField = "locationName"
	SortByReportedAt   SortField = "reportedAt"
	SortBySeverity     SortField = "severity"
	SortByStatus       SortField = "status"
	SortByType         SortField = "type"
)

// SortSpec pairs a field with a direction. A zero SortSpec leaves the
// last-written order untouched.
type SortSpec struct {
	Field      SortField
	Descending bool
}

// ReportPage is one page of a filtered, sorted projection.
type ReportPage struct {
	Items      []domain.Report `json:"items"`
	TotalItems int             `json:"totalItems"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	PageCount  int             `json:"pageCount"`
}

// QueryReports derives a projection from a snapshot in the fixed pipeline
// order filter, sort, paginate. It never mutates the input and holds no
// state of its own.
func QueryReports(reports []domain.Report, filter ReportFilter, spec SortSpec, page, pageSize int) ReportPage {
	filtered := FilterReports(reports, filter)
	SortReports(filtered, spec)
	return paginate(filtered, page, pageSize)
}

// FilterReports applies the conjunction of the filter's predicates.
func FilterReports(reports []domain.Report, filter ReportFilter) []domain.Report {
	out := make([]domain.Report, 0, len(reports))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, r := range reports {
		if filter.Type != nil && r.Type != *filter.Type {
			continue
		}
		if filter.Severity != nil && r.Severity != *filter.Severity {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r domain.Report, search string) bool {
	for _, field := range []string{
		r.LocationName,
		r.Zone,
		r.Description,
		string(r.Type),
		string(r.Severity),
		string(r.Status),
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// SortReports sorts in place. Ties keep their original relative order.
func SortReports(reports []domain.Report, spec SortSpec) {
	if spec.Field == "" {
		return
	}
	sort.SliceStable(reports, func(i, j int) bool {
		less := lessByField(reports[i], reports[j], spec.Field)
		if spec.Descending {
			return lessByField(reports[j], reports[i], spec.Field)
		}
		return less
	})
}

func lessByField(a, b domain.Report, field SortField) bool {
	switch field {
	case SortByZone:
		return a.Zone < b.Zone
	case SortByLocationName:
		return a.LocationName < b.LocationName
	case SortByReportedAt:
		return a.ReportedAt.Before(b.ReportedAt)
	case SortBySeverity:
		return a.Severity.Rank() < b.Severity.Rank()
	case SortByStatus:
		return a.Status < b.Status
	case SortByType:
		return a.Type < b.Type
	default:
		return false
	}
}

// paginate slices out a 1-based page. Pages beyond the last yield an empty
// slice rather than an error.
func paginate(reports []domain.Report, page, pageSize int) ReportPage {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	total := len(reports)
	pageCount := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return ReportPage{Items: []domain.Report{}, TotalItems: total, Page: page, PageSize: pageSize, PageCount: pageCount}
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return ReportPage{
		Items:      reports[start:end],
		TotalItems: total,
		Page:       page,
		PageSize:   pageSize,
		PageCount:  pageCount,
	}
}
