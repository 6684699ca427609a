package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/events"
	"github.com/yatraflow/yatraflow/internal/observability"
	"github.com/yatraflow/yatraflow/internal/persistence"
	"github.com/yatraflow/yatraflow/pkg/util"
)

// ReportPatch carries a partial update. Nil fields are left untouched.
// HistoryEntry, when present, is appended to the status history; existing
// entries are never rewritten.
type ReportPatch struct {
	Zone         *string
	LocationName *string
	Latitude     *float64
	Longitude    *float64
	Type         *domain.ReportType
	Severity     *domain.Severity
	Description  *string
	Status       *domain.ReportStatus
	ReportedBy   *string
	HistoryEntry *domain.StatusChange
}

// ReportRepository owns the authoritative report collection. Every mutation
// persists the snapshot and broadcasts a payload-less reports-updated signal
// before the call returns.
type ReportRepository interface {
	List() []domain.Report
	Get(id string) (*domain.Report, bool)
	Add(ctx context.Context, report domain.Report) error
	Update(ctx context.Context, id string, patch ReportPatch)
	ReplaceAll(ctx context.Context, reports []domain.Report)
	Remove(ctx context.Context, id string)
	Initialize(ctx context.Context, seed func() []domain.Report)
	Subscribe(listener func()) (unsubscribe func())
}

type reportRepository struct {
	guarded    guardedReports
	store      persistence.Store
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewReportRepository builds the repository, restoring any persisted
// snapshot from the store.
func NewReportRepository(ctx context.Context, store persistence.Store, dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger) ReportRepository {
	repo := &reportRepository{
		store:      store,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}

	raw, err := store.Get(ctx, persistence.KeyReports)
	switch {
	case err == nil:
		var reports []domain.Report
		if err := json.Unmarshal(raw, &reports); err != nil {
			logger.Warn("discarding corrupt reports snapshot", zap.Error(err))
		} else {
			repo.guarded.replace(reports)
			logger.Info("restored reports snapshot", zap.Int("count", len(reports)))
		}
	case errors.Is(err, persistence.ErrKeyNotFound):
		// fresh store
	default:
		logger.Warn("unable to read reports snapshot", zap.Error(err))
	}

	return repo
}

func (r *reportRepository) List() []domain.Report {
	return r.guarded.snapshot()
}

func (r *reportRepository) Get(id string) (*domain.Report, bool) {
	return r.guarded.find(id)
}

func (r *reportRepository) Add(ctx context.Context, report domain.Report) error {
	if fields := report.Validate(); len(fields) > 0 {
		return util.NewValidationError("report is missing required fields", map[string]any{"fields": fields})
	}
	if !r.guarded.insertFront(report) {
		return util.NewValidationError("report id already exists", map[string]any{"id": report.ID})
	}
	r.afterMutation(ctx, "add")
	return nil
}

func (r *reportRepository) Update(ctx context.Context, id string, patch ReportPatch) {
	if !r.guarded.apply(id, patch) {
		// silent no-op on absent id
		return
	}
	r.afterMutation(ctx, "update")
}

func (r *reportRepository) ReplaceAll(ctx context.Context, reports []domain.Report) {
	r.guarded.replace(reports)
	r.afterMutation(ctx, "replace_all")
}

func (r *reportRepository) Remove(ctx context.Context, id string) {
	if !r.guarded.delete(id) {
		return
	}
	r.afterMutation(ctx, "remove")
}

func (r *reportRepository) Initialize(ctx context.Context, seed func() []domain.Report) {
	if r.guarded.count() > 0 {
		return
	}
	r.guarded.replace(seed())
	r.afterMutation(ctx, "initialize")
}

func (r *reportRepository) Subscribe(listener func()) func() {
	return r.dispatcher.Subscribe(events.EventReportsUpdated, func(context.Context, events.Event) {
		listener()
	})
}

// afterMutation persists the current snapshot and then notifies listeners.
// A persistence failure is logged but does not roll back the in-memory
// write: memory stays the source of truth.
func (r *reportRepository) afterMutation(ctx context.Context, op string) {
	r.metrics.RecordMutation("reports_" + op)

	snapshot := r.guarded.snapshot()
	raw, err := json.Marshal(snapshot)
	if err != nil {
		r.logger.Error("marshal reports snapshot", zap.Error(err))
	} else if err := r.store.Set(ctx, persistence.KeyReports, raw); err != nil {
		r.logger.Error("persist reports snapshot", zap.String("op", op), zap.Error(err))
	}

	r.dispatcher.Publish(ctx, events.Event{Type: events.EventReportsUpdated})
}
