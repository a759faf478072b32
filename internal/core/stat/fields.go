// Package stat contains the pure logic for stat records: the six tracked
// fields, conversion of raw text input, tile formatting, and guards.
// Nothing here touches storage or the terminal.
package stat

// Field identifies one of the six tracked statistics.
type Field int

const (
	FieldScore Field = iota
	FieldMostConsecutiveFlips
	FieldObjectsDestroyed
	FieldAirTime
	FieldTasksCompleted
	FieldTrophiesCollected
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldScore,
	FieldMostConsecutiveFlips,
	FieldObjectsDestroyed,
	FieldAirTime,
	FieldTasksCompleted,
	FieldTrophiesCollected,
}

var fieldKeys = map[Field]string{
	FieldScore:                "score",
	FieldMostConsecutiveFlips: "most_consecutive_flips",
	FieldObjectsDestroyed:     "objects_destroyed",
	FieldAirTime:              "air_time",
	FieldTasksCompleted:       "tasks_completed",
	FieldTrophiesCollected:    "trophies_collected",
}

var fieldLabels = map[Field]string{
	FieldScore:                "Score",
	FieldMostConsecutiveFlips: "Most Consecutive Flips",
	FieldObjectsDestroyed:     "Objects Destroyed",
	FieldAirTime:              "Air Time (s)",
	FieldTasksCompleted:       "Tasks Completed",
	FieldTrophiesCollected:    "Trophies Collected",
}

// Key returns the column name, e.g. "air_time".
func (f Field) Key() string { return fieldKeys[f] }

// Label returns the human-readable name shown on forms and tiles.
func (f Field) Label() string { return fieldLabels[f] }

// IsFloat reports whether the field holds seconds rather than a count.
func (f Field) IsFloat() bool { return f == FieldAirTime }

func (f Field) String() string { return f.Key() }

// Values holds the six statistics of one record. The zero value is the
// all-zero record produced by empty input.
type Values struct {
	Score                int64
	MostConsecutiveFlips int64
	ObjectsDestroyed     int64
	AirTime              float64 // seconds
	TasksCompleted       int64
	TrophiesCollected    int64
}

// Int returns an integer field's value. Air time returns 0.
func (v Values) Int(f Field) int64 {
	switch f {
	case FieldScore:
		return v.Score
	case FieldMostConsecutiveFlips:
		return v.MostConsecutiveFlips
	case FieldObjectsDestroyed:
		return v.ObjectsDestroyed
	case FieldTasksCompleted:
		return v.TasksCompleted
	case FieldTrophiesCollected:
		return v.TrophiesCollected
	}
	return 0
}

func (v *Values) setInt(f Field, n int64) {
	switch f {
	case FieldScore:
		v.Score = n
	case FieldMostConsecutiveFlips:
		v.MostConsecutiveFlips = n
	case FieldObjectsDestroyed:
		v.ObjectsDestroyed = n
	case FieldTasksCompleted:
		v.TasksCompleted = n
	case FieldTrophiesCollected:
		v.TrophiesCollected = n
	}
}
