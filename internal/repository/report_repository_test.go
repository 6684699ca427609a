package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/events"
	"github.com/yatraflow/yatraflow/internal/observability"
	"github.com/yatraflow/yatraflow/internal/persistence"
	"github.com/yatraflow/yatraflow/pkg/util"
)

func newTestReportRepo(t *testing.T, store persistence.Store) ReportRepository {
	t.Helper()
	if store == nil {
		store = persistence.NewMemoryStore()
	}
	return NewReportRepository(context.Background(), store, events.NewInMemoryDispatcher(), observability.NewMetrics(), zap.NewNop())
}

func validReport(id string) domain.Report {
	return domain.Report{
		ID:           id,
		Zone:         "North Zone",
		LocationName: "Hebbal Flyover",
		Type:         domain.ReportTypeHazard,
		Severity:     domain.SeverityMedium,
		Description:  "Loose gravel on bridge approach.",
		ReportedAt:   time.Now(),
		Status:       domain.ReportStatusActive,
	}
}

func TestReportRepository_AddAndList(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validReport("r1")))
	require.NoError(t, repo.Add(ctx, validReport("r2")))

	list := repo.List()
	require.Len(t, list, 2)
	// newest first
	assert.Equal(t, "r2", list[0].ID)
	assert.Equal(t, "r1", list[1].ID)
}

func TestReportRepository_AddValidation(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.Report)
	}{
		{"missing zone", func(r *domain.Report) { r.Zone = " " }},
		{"missing location", func(r *domain.Report) { r.LocationName = "" }},
		{"missing description", func(r *domain.Report) { r.Description = "" }},
		{"unknown type", func(r *domain.Report) { r.Type = "earthquake" }},
		{"unknown severity", func(r *domain.Report) { r.Severity = "extreme" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := validReport("bad")
			tc.mutate(&report)
			err := repo.Add(ctx, report)
			require.Error(t, err)
			assert.True(t, util.IsCode(err, "VALIDATION_FAILED"))
		})
	}
	assert.Empty(t, repo.List())
}

func TestReportRepository_AddDuplicateID(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validReport("r1")))
	err := repo.Add(ctx, validReport("r1"))
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "VALIDATION_FAILED"))
	assert.Len(t, repo.List(), 1)
}

func TestReportRepository_AddThenRemoveRestoresPrior(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validReport("r1")))
	before := repo.List()

	require.NoError(t, repo.Add(ctx, validReport("r2")))
	repo.Remove(ctx, "r2")

	assert.Equal(t, before, repo.List())
}

func TestReportRepository_RemoveAbsentIsNoop(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validReport("r1")))
	repo.Remove(ctx, "ghost")
	assert.Len(t, repo.List(), 1)
}

func TestReportRepository_UpdateMergesAndAppendsHistory(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	report := validReport("r1")
	report.StatusHistory = []domain.StatusChange{{
		Status: domain.ReportStatusActive, Timestamp: report.ReportedAt, ChangedBy: "System",
	}}
	require.NoError(t, repo.Add(ctx, report))

	resolved := domain.ReportStatusResolved
	repo.Update(ctx, "r1", ReportPatch{
		Status: &resolved,
		HistoryEntry: &domain.StatusChange{
			Status: resolved, Timestamp: time.Now(), ChangedBy: "Admin",
		},
	})

	updated, ok := repo.Get("r1")
	require.True(t, ok)
	assert.Equal(t, resolved, updated.Status)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, resolved, updated.StatusHistory[1].Status)
	assert.Equal(t, "Admin", updated.StatusHistory[1].ChangedBy)
	// head still reflects the initial status
	assert.Equal(t, domain.ReportStatusActive, updated.StatusHistory[0].Status)
}

func TestReportRepository_UpdateAbsentIsNoop(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validReport("r1")))
	before := repo.List()

	zone := "South Zone"
	repo.Update(ctx, "ghost", ReportPatch{Zone: &zone})

	assert.Equal(t, before, repo.List())
}

func TestReportRepository_ReplaceAll(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validReport("r1")))
	repo.ReplaceAll(ctx, []domain.Report{validReport("a"), validReport("b")})

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
}

func TestReportRepository_InitializeOnlySeedsWhenEmpty(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	seed := func() []domain.Report {
		return []domain.Report{validReport("seeded")}
	}
	repo.Initialize(ctx, seed)
	assert.Len(t, repo.List(), 1)

	repo.Initialize(ctx, func() []domain.Report {
		t.Fatal("seed ran on a non-empty repository")
		return nil
	})
	assert.Len(t, repo.List(), 1)
}

func TestReportRepository_NotifiesOnEveryMutation(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	fired := 0
	unsubscribe := repo.Subscribe(func() { fired++ })

	require.NoError(t, repo.Add(ctx, validReport("r1")))
	zone := "East Zone"
	repo.Update(ctx, "r1", ReportPatch{Zone: &zone})
	repo.ReplaceAll(ctx, []domain.Report{validReport("r2")})
	repo.Remove(ctx, "r2")
	assert.Equal(t, 4, fired)

	unsubscribe()
	require.NoError(t, repo.Add(ctx, validReport("r3")))
	assert.Equal(t, 4, fired)
}

func TestReportRepository_RestoresPersistedSnapshot(t *testing.T) {
	store := persistence.NewMemoryStore()
	ctx := context.Background()

	first := newTestReportRepo(t, store)
	require.NoError(t, first.Add(ctx, validReport("r1")))

	second := newTestReportRepo(t, store)
	list := second.List()
	require.Len(t, list, 1)
	assert.Equal(t, "r1", list[0].ID)
}

func TestReportRepository_SnapshotsAreIsolated(t *testing.T) {
	repo := newTestReportRepo(t, nil)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validReport("r1")))
	list := repo.List()
	list[0].Zone = "mutated"

	fresh := repo.List()
	assert.Equal(t, "North Zone", fresh[0].Zone)
}
