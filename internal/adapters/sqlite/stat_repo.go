// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/example/statsdash/internal/ports/secondary"
)

const statColumns = `id, timestamp, score, most_consecutive_flips, objects_destroyed,
	air_time, tasks_completed, trophies_collected`

// StatRepository implements secondary.StatRepository with SQLite.
type StatRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewStatRepository creates a new SQLite stat repository.
func NewStatRepository(db *sql.DB) *StatRepository {
	return NewStatRepositoryWithClock(db, time.Now)
}

// NewStatRepositoryWithClock creates a repository that stamps records using now.
func NewStatRepositoryWithClock(db *sql.DB, now func() time.Time) *StatRepository {
	return &StatRepository{db: db, now: now}
}

// Create persists a new record. ID and Timestamp are assigned here and
// written back into record; any caller-supplied values are ignored.
func (r *StatRepository) Create(ctx context.Context, record *secondary.StatRecord) error {
	ts := r.now().UTC()
	v := record.Values

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO stats (timestamp, score, most_consecutive_flips, objects_destroyed,
			air_time, tasks_completed, trophies_collected)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ts, v.Score, v.MostConsecutiveFlips, v.ObjectsDestroyed,
		v.AirTime, v.TasksCompleted, v.TrophiesCollected,
	)
	if err != nil {
		return &secondary.StorageError{Op: "create stat record", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return &secondary.StorageError{Op: "read new stat record id", Err: err}
	}

	record.ID = id
	record.Timestamp = ts
	return nil
}

// GetByID retrieves a record by its ID.
func (r *StatRepository) GetByID(ctx context.Context, id int64) (*secondary.StatRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+statColumns+" FROM stats WHERE id = ?",
		id,
	)

	record, err := scanStat(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.NotFoundError(id)
	}
	if err != nil {
		return nil, &secondary.StorageError{Op: "get stat record", Err: err}
	}

	return record, nil
}

// Update overwrites the six stat values. The timestamp column is never written.
func (r *StatRepository) Update(ctx context.Context, record *secondary.StatRecord) error {
	v := record.Values

	result, err := r.db.ExecContext(ctx,
		`UPDATE stats SET score = ?, most_consecutive_flips = ?, objects_destroyed = ?,
			air_time = ?, tasks_completed = ?, trophies_collected = ?
		WHERE id = ?`,
		v.Score, v.MostConsecutiveFlips, v.ObjectsDestroyed,
		v.AirTime, v.TasksCompleted, v.TrophiesCollected,
		record.ID,
	)
	if err != nil {
		return &secondary.StorageError{Op: "update stat record", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &secondary.StorageError{Op: "update stat record", Err: err}
	}
	if rowsAffected == 0 {
		return secondary.NotFoundError(record.ID)
	}

	return nil
}

// Delete removes a record from persistence.
func (r *StatRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM stats WHERE id = ?", id)
	if err != nil {
		return &secondary.StorageError{Op: "delete stat record", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &secondary.StorageError{Op: "delete stat record", Err: err}
	}
	if rowsAffected == 0 {
		return secondary.NotFoundError(id)
	}

	return nil
}

// List retrieves id and timestamp of every record, newest first.
func (r *StatRepository) List(ctx context.Context) ([]*secondary.StatSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, timestamp FROM stats ORDER BY timestamp DESC, id DESC",
	)
	if err != nil {
		return nil, &secondary.StorageError{Op: "list stat records", Err: err}
	}
	defer rows.Close()

	var summaries []*secondary.StatSummary
	for rows.Next() {
		var (
			id int64
			ts time.Time
		)
		if err := rows.Scan(&id, &ts); err != nil {
			return nil, &secondary.StorageError{Op: "scan stat record", Err: err}
		}
		summaries = append(summaries, &secondary.StatSummary{ID: id, Timestamp: ts.UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "list stat records", Err: err}
	}

	return summaries, nil
}

// GetLatest retrieves the record with the greatest timestamp (nil if none).
func (r *StatRepository) GetLatest(ctx context.Context) (*secondary.StatRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+statColumns+" FROM stats ORDER BY timestamp DESC, id DESC LIMIT 1",
	)

	record, err := scanStat(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &secondary.StorageError{Op: "get latest stat record", Err: err}
	}

	return record, nil
}

// Count returns the number of stored records.
func (r *StatRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stats").Scan(&count); err != nil {
		return 0, &secondary.StorageError{Op: "count stat records", Err: err}
	}
	return count, nil
}

func scanStat(row *sql.Row) (*secondary.StatRecord, error) {
	var (
		record secondary.StatRecord
		ts     time.Time
	)
	v := &record.Values
	err := row.Scan(&record.ID, &ts, &v.Score, &v.MostConsecutiveFlips, &v.ObjectsDestroyed,
		&v.AirTime, &v.TasksCompleted, &v.TrophiesCollected)
	if err != nil {
		return nil, err
	}
	record.Timestamp = ts.UTC()
	return &record, nil
}

// Ensure StatRepository implements the interface.
var _ secondary.StatRepository = (*StatRepository)(nil)
