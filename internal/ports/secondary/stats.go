// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/statsdash/internal/core/stat"
)

// StatRepository defines the secondary port for stat record persistence.
type StatRepository interface {
	// Create persists a new record, assigning its ID and Timestamp.
	Create(ctx context.Context, record *StatRecord) error

	// GetByID retrieves a record by its ID.
	GetByID(ctx context.Context, id int64) (*StatRecord, error)

	// Update overwrites the six stat values of an existing record.
	Update(ctx context.Context, record *StatRecord) error

	// Delete removes a record from persistence.
	Delete(ctx context.Context, id int64) error

	// List retrieves every record's id and timestamp, newest first.
	List(ctx context.Context) ([]*StatSummary, error)

	// GetLatest retrieves the newest record, or nil if there are none.
	GetLatest(ctx context.Context) (*StatRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// StatRecord represents a stat snapshot as stored in persistence.
type StatRecord struct {
	ID        int64
	Timestamp time.Time
	Values    stat.Values
}

// StatSummary is the (id, timestamp) pair used to populate record lists.
type StatSummary struct {
	ID        int64
	Timestamp time.Time
}

// ErrNotFound is returned when a record ID does not exist.
var ErrNotFound = errors.New("not found")

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string // e.g. "create stat record"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error (%s): %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NotFoundError returns an error wrapping ErrNotFound that names the record.
func NotFoundError(id int64) error {
	return fmt.Errorf("stat record %d %w", id, ErrNotFound)
}
