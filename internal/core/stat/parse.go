package stat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawValues is the untyped text entered for each field.
// Missing keys are treated the same as empty input.
type RawValues map[Field]string

// ConversionError reports non-numeric text in a numeric field.
type ConversionError struct {
	Field Field
	Input string
}

func (e *ConversionError) Error() string {
	kind := "a whole number"
	if e.Field.IsFloat() {
		kind = "a number"
	}
	return fmt.Sprintf("%s must be %s (got %q)", e.Field.Label(), kind, e.Input)
}

// ParseValues converts raw input to typed values. Empty input becomes zero.
// The first unparsable field is reported as a *ConversionError; callers must
// discard the partial result in that case.
func ParseValues(raw RawValues) (Values, error) {
	var v Values
	for _, f := range Fields {
		if err := v.parseInto(f, raw[f]); err != nil {
			return Values{}, err
		}
	}
	return v, nil
}

// ParseField converts one field's raw input into v, leaving v unchanged on error.
func ParseField(v *Values, f Field, raw string) error {
	return v.parseInto(f, raw)
}

func (v *Values) parseInto(f Field, raw string) error {
	s := strings.TrimSpace(raw)

	if f.IsFloat() {
		if s == "" {
			v.AirTime = 0
			return nil
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return &ConversionError{Field: f, Input: raw}
		}
		v.AirTime = x
		return nil
	}

	if s == "" {
		v.setInt(f, 0)
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &ConversionError{Field: f, Input: raw}
	}
	v.setInt(f, n)
	return nil
}

// FormatValues renders values back to text, the inverse of ParseValues.
// Used to pre-fill inputs when a record is selected for editing.
func FormatValues(v Values) RawValues {
	raw := make(RawValues, len(Fields))
	for _, f := range Fields {
		if f.IsFloat() {
			raw[f] = strconv.FormatFloat(v.AirTime, 'f', -1, 64)
			continue
		}
		raw[f] = strconv.FormatInt(v.Int(f), 10)
	}
	return raw
}
