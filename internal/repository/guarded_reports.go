package repository

import (
	"sync"

	"github.com/yatraflow/yatraflow/internal/domain"
)

// guardedReports is the mutex-protected slice behind the repository. The
// collection keeps last-written order: new reports sit at the front.
type guardedReports struct {
	mu      sync.RWMutex
	reports []domain.Report
}

func (g *guardedReports) snapshot() []domain.Report {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]domain.Report, len(g.reports))
	for i, r := range g.reports {
		out[i] = r.Clone()
	}
	return out
}

func (g *guardedReports) count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.reports)
}

func (g *guardedReports) find(id string) (*domain.Report, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, r := range g.reports {
		if r.ID == id {
			clone := r.Clone()
			return &clone, true
		}
	}
	return nil, false
}

// insertFront prepends the report, refusing duplicate ids.
func (g *guardedReports) insertFront(report domain.Report) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range g.reports {
		if r.ID == report.ID {
			return false
		}
	}
	g.reports = append([]domain.Report{report.Clone()}, g.reports...)
	return true
}

func (g *guardedReports) replace(reports []domain.Report) {
	clones := make([]domain.Report, len(reports))
	for i, r := range reports {
		clones[i] = r.Clone()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reports = clones
}

func (g *guardedReports) delete(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, r := range g.reports {
		if r.ID == id {
			g.reports = append(g.reports[:i], g.reports[i+1:]...)
			return true
		}
	}
	return false
}

// apply merges a patch into the report matching id. ID and ReportedAt are
// immutable; the history entry, if any, is appended.
func (g *guardedReports) apply(id string, patch ReportPatch) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.reports {
		if g.reports[i].ID != id {
			continue
		}
		r := &g.reports[i]
		if patch.Zone != nil {
			r.Zone = *patch.Zone
		}
		if patch.LocationName != nil {
			r.LocationName = *patch.LocationName
		}
		if patch.Latitude != nil {
			lat := *patch.Latitude
			r.Latitude = &lat
		}
		if patch.Longitude != nil {
			lng := *patch.Longitude
			r.Longitude = &lng
		}
		if patch.Type != nil {
			r.Type = *patch.Type
		}
		if patch.Severity != nil {
			r.Severity = *patch.Severity
		}
		if patch.Description != nil {
			r.Description = *patch.Description
		}
		if patch.Status != nil {
			r.Status = *patch.Status
		}
		if patch.ReportedBy != nil {
			r.ReportedBy = *patch.ReportedBy
		}
		if patch.HistoryEntry != nil {
			r.StatusHistory = append(r.StatusHistory, *patch.HistoryEntry)
		}
		return true
	}
	return false
}
