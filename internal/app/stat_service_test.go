package app

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/example/statsdash/internal/core/stat"
	"github.com/example/statsdash/internal/ports/primary"
	"github.com/example/statsdash/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockStatRepository implements secondary.StatRepository for testing.
type mockStatRepository struct {
	records   map[int64]*secondary.StatRecord
	nextID    int64
	clock     time.Time
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
	latestErr error

	updateCalls int
	deleteCalls int
}

func newMockStatRepository() *mockStatRepository {
	return &mockStatRepository{
		records: make(map[int64]*secondary.StatRecord),
		nextID:  1,
		clock:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *mockStatRepository) Create(ctx context.Context, record *secondary.StatRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	record.ID = m.nextID
	record.Timestamp = m.clock
	m.nextID++
	m.clock = m.clock.Add(time.Second)

	stored := *record
	m.records[record.ID] = &stored
	return nil
}

func (m *mockStatRepository) GetByID(ctx context.Context, id int64) (*secondary.StatRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if r, ok := m.records[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, secondary.NotFoundError(id)
}

func (m *mockStatRepository) Update(ctx context.Context, record *secondary.StatRecord) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	r, ok := m.records[record.ID]
	if !ok {
		return secondary.NotFoundError(record.ID)
	}
	r.Values = record.Values
	return nil
}

func (m *mockStatRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.records[id]; !ok {
		return secondary.NotFoundError(id)
	}
	delete(m.records, id)
	return nil
}

func (m *mockStatRepository) List(ctx context.Context) ([]*secondary.StatSummary, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.StatSummary
	for _, r := range m.records {
		result = append(result, &secondary.StatSummary{ID: r.ID, Timestamp: r.Timestamp})
	}
	slices.SortFunc(result, func(a, b *secondary.StatSummary) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return result, nil
}

func (m *mockStatRepository) GetLatest(ctx context.Context) (*secondary.StatRecord, error) {
	if m.latestErr != nil {
		return nil, m.latestErr
	}
	var latest *secondary.StatRecord
	for _, r := range m.records {
		if latest == nil || r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}
	return latest, nil
}

func (m *mockStatRepository) Count(ctx context.Context) (int, error) {
	return len(m.records), nil
}

// ============================================================================
// Test Helper
// ============================================================================

func newTestStatService() (*StatServiceImpl, *mockStatRepository, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := newMockStatRepository()
	service := NewStatService(repo, zap.New(core))
	return service, repo, logs
}

var exampleValues = stat.Values{
	Score:                150,
	MostConsecutiveFlips: 7,
	ObjectsDestroyed:     3,
	AirTime:              12.4,
	TasksCompleted:       2,
	TrophiesCollected:    1,
}

// ============================================================================
// CreateStat Tests
// ============================================================================

func TestCreateStat_Success(t *testing.T) {
	service, repo, logs := newTestStatService()
	ctx := context.Background()

	resp, err := service.CreateStat(ctx, primary.CreateStatRequest{Values: exampleValues})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatID == 0 {
		t.Error("expected stat ID to be set")
	}
	if resp.Stat.Values != exampleValues {
		t.Errorf("expected %+v, got %+v", exampleValues, resp.Stat.Values)
	}
	if resp.Stat.Timestamp.IsZero() {
		t.Error("expected timestamp to be assigned by store")
	}
	if len(repo.records) != 1 {
		t.Errorf("expected 1 stored record, got %d", len(repo.records))
	}
	if logs.FilterMessage("record created").Len() != 1 {
		t.Error("expected create to be logged")
	}
}

func TestCreateStat_StorageError(t *testing.T) {
	service, repo, logs := newTestStatService()
	repo.createErr = &secondary.StorageError{Op: "create stat record", Err: errors.New("disk full")}

	_, err := service.CreateStat(context.Background(), primary.CreateStatRequest{Values: exampleValues})

	var storageErr *secondary.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if logs.FilterLevelExact(zapcore.ErrorLevel).Len() != 1 {
		t.Error("expected failure to be logged at error level")
	}
}

// ============================================================================
// GetStat / GetLatestStat Tests
// ============================================================================

func TestGetStat_NotFound(t *testing.T) {
	service, _, _ := newTestStatService()

	_, err := service.GetStat(context.Background(), 5)
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetLatestStat_Empty(t *testing.T) {
	service, _, _ := newTestStatService()

	latest, err := service.GetLatestStat(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if latest != nil {
		t.Errorf("expected nil, got %+v", latest)
	}
}

func TestGetLatestStat_AfterCreates(t *testing.T) {
	service, _, _ := newTestStatService()
	ctx := context.Background()

	var lastID int64
	for i := int64(1); i <= 4; i++ {
		resp, err := service.CreateStat(ctx, primary.CreateStatRequest{Values: stat.Values{Score: i}})
		if err != nil {
			t.Fatalf("CreateStat failed: %v", err)
		}
		lastID = resp.StatID
	}

	latest, err := service.GetLatestStat(ctx)
	if err != nil {
		t.Fatalf("GetLatestStat failed: %v", err)
	}
	if latest.ID != lastID || latest.Values.Score != 4 {
		t.Errorf("expected record %d, got %+v", lastID, latest)
	}
}

// ============================================================================
// UpdateStat Tests
// ============================================================================

func TestUpdateStat_Success(t *testing.T) {
	service, _, _ := newTestStatService()
	ctx := context.Background()

	created, err := service.CreateStat(ctx, primary.CreateStatRequest{Values: exampleValues})
	if err != nil {
		t.Fatalf("CreateStat failed: %v", err)
	}

	changed := stat.Values{Score: 1, AirTime: 2.5}
	updated, err := service.UpdateStat(ctx, primary.UpdateStatRequest{ID: created.StatID, Values: changed})
	if err != nil {
		t.Fatalf("UpdateStat failed: %v", err)
	}

	if updated.Values != changed {
		t.Errorf("expected %+v, got %+v", changed, updated.Values)
	}
	if updated.ID != created.StatID {
		t.Errorf("ID changed: %d -> %d", created.StatID, updated.ID)
	}
	if !updated.Timestamp.Equal(created.Stat.Timestamp) {
		t.Errorf("timestamp changed: %v -> %v", created.Stat.Timestamp, updated.Timestamp)
	}
}

func TestUpdateStat_NotFound(t *testing.T) {
	service, repo, _ := newTestStatService()

	_, err := service.UpdateStat(context.Background(), primary.UpdateStatRequest{ID: 99, Values: exampleValues})
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Error("expected no write for missing record")
	}
}

func TestUpdateStat_LookupStorageError(t *testing.T) {
	service, repo, _ := newTestStatService()
	repo.getErr = &secondary.StorageError{Op: "get stat record", Err: errors.New("io")}

	_, err := service.UpdateStat(context.Background(), primary.UpdateStatRequest{ID: 1})

	var storageErr *secondary.StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("expected StorageError, got %v", err)
	}
	if errors.Is(err, secondary.ErrNotFound) {
		t.Error("storage failure must not be reported as not found")
	}
}

// ============================================================================
// DeleteStat Tests
// ============================================================================

func TestDeleteStat_Confirmed(t *testing.T) {
	service, _, logs := newTestStatService()
	ctx := context.Background()

	created, err := service.CreateStat(ctx, primary.CreateStatRequest{Values: exampleValues})
	if err != nil {
		t.Fatalf("CreateStat failed: %v", err)
	}

	if err := service.DeleteStat(ctx, primary.DeleteStatRequest{ID: created.StatID, Confirmed: true}); err != nil {
		t.Fatalf("DeleteStat failed: %v", err)
	}

	_, err = service.GetStat(ctx, created.StatID)
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if logs.FilterMessage("record deleted").Len() != 1 {
		t.Error("expected delete to be logged")
	}
}

func TestDeleteStat_Unconfirmed(t *testing.T) {
	service, repo, _ := newTestStatService()
	ctx := context.Background()

	created, err := service.CreateStat(ctx, primary.CreateStatRequest{Values: exampleValues})
	if err != nil {
		t.Fatalf("CreateStat failed: %v", err)
	}

	err = service.DeleteStat(ctx, primary.DeleteStatRequest{ID: created.StatID, Confirmed: false})
	if err == nil {
		t.Fatal("expected unconfirmed delete to be refused")
	}
	if repo.deleteCalls != 0 {
		t.Error("expected no delete call without confirmation")
	}
	if _, ok := repo.records[created.StatID]; !ok {
		t.Error("record should still exist")
	}
}

func TestDeleteStat_NotFound(t *testing.T) {
	service, repo, _ := newTestStatService()

	err := service.DeleteStat(context.Background(), primary.DeleteStatRequest{ID: 4, Confirmed: true})
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Error("expected no delete call for missing record")
	}
}

// ============================================================================
// ListStats / CountStats Tests
// ============================================================================

func TestListStats_NewestFirst(t *testing.T) {
	service, _, _ := newTestStatService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := service.CreateStat(ctx, primary.CreateStatRequest{}); err != nil {
			t.Fatalf("CreateStat failed: %v", err)
		}
	}

	summaries, err := service.ListStats(ctx)
	if err != nil {
		t.Fatalf("ListStats failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != 3 || summaries[2].ID != 1 {
		t.Errorf("expected newest first, got IDs %d..%d", summaries[0].ID, summaries[2].ID)
	}
	if summaries[0].Label() != "ID 3 | 2025-01-01 12:00:02" {
		t.Errorf("unexpected label %q", summaries[0].Label())
	}
}

func TestListStats_Error(t *testing.T) {
	service, repo, _ := newTestStatService()
	repo.listErr = errors.New("boom")

	if _, err := service.ListStats(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestCountStats(t *testing.T) {
	service, _, _ := newTestStatService()
	ctx := context.Background()

	if _, err := service.CreateStat(ctx, primary.CreateStatRequest{}); err != nil {
		t.Fatalf("CreateStat failed: %v", err)
	}

	count, err := service.CountStats(ctx)
	if err != nil {
		t.Fatalf("CountStats failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1, got %d", count)
	}
}
