package stat

import (
	"fmt"
	"strconv"
	"time"
)

// Placeholder is shown on every tile when there is no record.
const Placeholder = "—"

// NoDataLabel replaces the timestamp when there is no record.
const NoDataLabel = "(no data yet)"

// Tile is one labelled value on the dashboard.
type Tile struct {
	Field Field
	Label string
	Value string
}

// Tiles formats the six display tiles. A nil record yields placeholders.
func Tiles(v *Values) []Tile {
	tiles := make([]Tile, 0, len(Fields))
	for _, f := range Fields {
		tiles = append(tiles, Tile{
			Field: f,
			Label: f.Label(),
			Value: TileValue(v, f),
		})
	}
	return tiles
}

// TileValue formats a single field: counts as plain integers, air time as
// seconds with one decimal place.
func TileValue(v *Values, f Field) string {
	if v == nil {
		return Placeholder
	}
	if f.IsFloat() {
		return fmt.Sprintf("%.1fs", v.AirTime)
	}
	return strconv.FormatInt(v.Int(f), 10)
}

// FormatTimestamp renders a record timestamp for the dashboard header.
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format("2006-01-02 15:04:05") + " UTC"
}

// ListLabel renders one record-list entry.
func ListLabel(id int64, ts time.Time) string {
	return fmt.Sprintf("ID %d | %s", id, ts.UTC().Format("2006-01-02 15:04:05"))
}
