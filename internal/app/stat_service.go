package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/statsdash/internal/core/stat"
	"github.com/example/statsdash/internal/ports/primary"
	"github.com/example/statsdash/internal/ports/secondary"
)

// StatServiceImpl implements the StatService interface.
type StatServiceImpl struct {
	statRepo secondary.StatRepository
	log      *zap.Logger
}

// NewStatService creates a new StatService with injected dependencies.
func NewStatService(statRepo secondary.StatRepository, log *zap.Logger) *StatServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatServiceImpl{
		statRepo: statRepo,
		log:      log.Named("stats"),
	}
}

// CreateStat stores a new record and returns it as persisted.
func (s *StatServiceImpl) CreateStat(ctx context.Context, req primary.CreateStatRequest) (*primary.CreateStatResponse, error) {
	record := &secondary.StatRecord{Values: req.Values}
	if err := s.statRepo.Create(ctx, record); err != nil {
		s.log.Error("create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create stat record: %w", err)
	}

	created, err := s.statRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created stat record: %w", err)
	}

	s.log.Info("record created", zap.Int64("id", created.ID), zap.Time("timestamp", created.Timestamp))

	return &primary.CreateStatResponse{
		StatID: created.ID,
		Stat:   s.recordToStat(created),
	}, nil
}

// GetStat retrieves a record by ID.
func (s *StatServiceImpl) GetStat(ctx context.Context, id int64) (*primary.Stat, error) {
	record, err := s.statRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.recordToStat(record), nil
}

// UpdateStat overwrites the six values of an existing record.
func (s *StatServiceImpl) UpdateStat(ctx context.Context, req primary.UpdateStatRequest) (*primary.Stat, error) {
	exists, err := s.exists(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if result := stat.CanUpdate(stat.UpdateContext{ID: req.ID, RecordExists: exists}); !result.Allowed {
		return nil, secondary.NotFoundError(req.ID)
	}

	if err := s.statRepo.Update(ctx, &secondary.StatRecord{ID: req.ID, Values: req.Values}); err != nil {
		s.log.Error("update failed", zap.Int64("id", req.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update stat record: %w", err)
	}

	updated, err := s.statRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated stat record: %w", err)
	}

	s.log.Info("record updated", zap.Int64("id", req.ID))
	return s.recordToStat(updated), nil
}

// DeleteStat removes a record. Unconfirmed requests are refused before any write.
func (s *StatServiceImpl) DeleteStat(ctx context.Context, req primary.DeleteStatRequest) error {
	exists, err := s.exists(ctx, req.ID)
	if err != nil {
		return err
	}
	if !exists {
		return secondary.NotFoundError(req.ID)
	}

	guardCtx := stat.DeleteContext{ID: req.ID, RecordExists: exists, Confirmed: req.Confirmed}
	if result := stat.CanDelete(guardCtx); !result.Allowed {
		return result.Error()
	}

	if err := s.statRepo.Delete(ctx, req.ID); err != nil {
		s.log.Error("delete failed", zap.Int64("id", req.ID), zap.Error(err))
		return fmt.Errorf("failed to delete stat record: %w", err)
	}

	s.log.Info("record deleted", zap.Int64("id", req.ID))
	return nil
}

// ListStats returns every record's id and timestamp, newest first.
func (s *StatServiceImpl) ListStats(ctx context.Context) ([]*primary.StatSummary, error) {
	records, err := s.statRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stat records: %w", err)
	}

	summaries := make([]*primary.StatSummary, len(records))
	for i, r := range records {
		summaries[i] = &primary.StatSummary{ID: r.ID, Timestamp: r.Timestamp}
	}
	return summaries, nil
}

// GetLatestStat returns the newest record, or nil when the store is empty.
func (s *StatServiceImpl) GetLatestStat(ctx context.Context) (*primary.Stat, error) {
	record, err := s.statRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest stat record: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return s.recordToStat(record), nil
}

// CountStats returns the number of stored records.
func (s *StatServiceImpl) CountStats(ctx context.Context) (int, error) {
	return s.statRepo.Count(ctx)
}

// Helper methods

func (s *StatServiceImpl) exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.statRepo.GetByID(ctx, id)
	if errors.Is(err, secondary.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *StatServiceImpl) recordToStat(r *secondary.StatRecord) *primary.Stat {
	return &primary.Stat{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Values:    r.Values,
	}
}

// Ensure StatServiceImpl implements the interface.
var _ primary.StatService = (*StatServiceImpl)(nil)
