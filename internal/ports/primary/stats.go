package primary

import (
	"context"
	"time"

	"github.com/example/statsdash/internal/core/stat"
)

// StatService defines the primary port for stat record operations.
type StatService interface {
	// CreateStat stores a new record with the current UTC timestamp.
	CreateStat(ctx context.Context, req CreateStatRequest) (*CreateStatResponse, error)

	// GetStat retrieves a record by ID.
	GetStat(ctx context.Context, id int64) (*Stat, error)

	// UpdateStat overwrites a record's six values. Timestamp is left unchanged.
	UpdateStat(ctx context.Context, req UpdateStatRequest) (*Stat, error)

	// DeleteStat removes a record once the caller has confirmed.
	DeleteStat(ctx context.Context, req DeleteStatRequest) error

	// ListStats returns id and timestamp of every record, newest first.
	ListStats(ctx context.Context) ([]*StatSummary, error)

	// GetLatestStat returns the newest record, or nil when none exist.
	GetLatestStat(ctx context.Context) (*Stat, error)

	// CountStats returns the number of stored records.
	CountStats(ctx context.Context) (int, error)
}

// CreateStatRequest contains parameters for creating a record.
type CreateStatRequest struct {
	Values stat.Values
}

// CreateStatResponse contains the result of creating a record.
type CreateStatResponse struct {
	StatID int64
	Stat   *Stat
}

// UpdateStatRequest contains parameters for updating a record.
type UpdateStatRequest struct {
	ID     int64
	Values stat.Values
}

// DeleteStatRequest contains parameters for deleting a record.
type DeleteStatRequest struct {
	ID        int64
	Confirmed bool
}

// Stat represents a stat record at the port boundary.
type Stat struct {
	ID        int64
	Timestamp time.Time
	Values    stat.Values
}

// StatSummary is one entry of the record list.
type StatSummary struct {
	ID        int64
	Timestamp time.Time
}

// Label renders the list entry, e.g. "ID 3 | 2025-01-02 15:04:05".
func (s *StatSummary) Label() string {
	return stat.ListLabel(s.ID, s.Timestamp)
}
