// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle input conversion and output
// formatting, but delegate persistence to services.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/statsdash/internal/core/stat"
	"github.com/example/statsdash/internal/ports/primary"
	"github.com/example/statsdash/internal/ports/secondary"
)

// clearCommand typed at any form prompt discards all inputs and starts over.
const clearCommand = "clear"

var (
	titleColor     = color.New(color.Bold)
	tileLabelColor = color.New(color.BgGreen, color.FgHiWhite)
	tileValueColor = color.New(color.BgGreen, color.FgHiWhite, color.Bold)
	okColor        = color.New(color.FgHiGreen)
	errColor       = color.New(color.FgRed)
	mutedColor     = color.New(color.FgHiBlack)
)

// StatAdapter is a thin adapter that translates CLI operations to StatService calls.
// It depends only on the StatService interface, enabling easy testing with mocks.
type StatAdapter struct {
	service primary.StatService
	in      *bufio.Reader
	out     io.Writer
}

// NewStatAdapter creates a new StatAdapter reading answers from in and writing to out.
func NewStatAdapter(service primary.StatService, in io.Reader, out io.Writer) *StatAdapter {
	return &StatAdapter{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Dashboard renders the latest record as tiles.
func (a *StatAdapter) Dashboard(ctx context.Context) error {
	latest, err := a.service.GetLatestStat(ctx)
	if err != nil {
		return err
	}
	a.renderTiles("Stats", latest)
	return nil
}

// Create converts raw input, stores a new record and re-renders the dashboard.
// Nothing is stored when any field fails to convert.
func (a *StatAdapter) Create(ctx context.Context, raw stat.RawValues) error {
	values, err := stat.ParseValues(raw)
	if err != nil {
		return err
	}
	return a.create(ctx, values)
}

// Form prompts for each field in turn. Invalid input is reported and the
// field is asked again; typing "clear" discards everything entered so far.
func (a *StatAdapter) Form(ctx context.Context) error {
	fmt.Fprintln(a.out, titleColor.Sprint("Enter Stats"))
	mutedColor.Fprintf(a.out, "Leave a field empty for 0. Type %q to start over.\n\n", clearCommand)

	var values stat.Values
	for i := 0; i < len(stat.Fields); {
		f := stat.Fields[i]
		fmt.Fprintf(a.out, "%-24s ", f.Label()+":")

		line, err := a.readLine()
		if err != nil {
			return fmt.Errorf("form input closed before %s was entered: %w", f.Label(), err)
		}

		if strings.EqualFold(strings.TrimSpace(line), clearCommand) {
			values = stat.Values{}
			i = 0
			fmt.Fprintln(a.out, okColor.Sprint("Inputs cleared."))
			continue
		}

		if err := stat.ParseField(&values, f, line); err != nil {
			fmt.Fprintln(a.out, errColor.Sprintf("✗ %v", err))
			continue
		}
		i++
	}

	fmt.Fprintln(a.out)
	return a.create(ctx, values)
}

// List prints the record list, newest first.
func (a *StatAdapter) List(ctx context.Context) error {
	summaries, err := a.service.ListStats(ctx)
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(a.out, "No records yet")
		return nil
	}

	fmt.Fprintln(a.out, titleColor.Sprint("Records:"))
	for _, s := range summaries {
		fmt.Fprintln(a.out, s.Label())
	}
	return nil
}

// Show renders a single selected record.
func (a *StatAdapter) Show(ctx context.Context, id int64) error {
	record, err := a.service.GetStat(ctx, id)
	if err != nil {
		return err
	}
	a.renderTiles(fmt.Sprintf("Record ID %d", id), record)
	return nil
}

// Edit loads a record's values, overlays the given inputs, and updates it.
// Fields absent from overrides keep their stored values.
func (a *StatAdapter) Edit(ctx context.Context, id int64, overrides stat.RawValues) error {
	record, err := a.service.GetStat(ctx, id)
	if err != nil {
		return err
	}

	raw := stat.FormatValues(record.Values)
	for f, v := range overrides {
		raw[f] = v
	}

	values, err := stat.ParseValues(raw)
	if err != nil {
		return err
	}

	if _, err := a.service.UpdateStat(ctx, primary.UpdateStatRequest{ID: id, Values: values}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, okColor.Sprintf("✓ Updated record ID %d.", id))
	return a.Dashboard(ctx)
}

// Delete asks for confirmation (unless assumeYes) and removes the record.
func (a *StatAdapter) Delete(ctx context.Context, id int64, assumeYes bool) error {
	if _, err := a.service.GetStat(ctx, id); err != nil {
		return err
	}

	confirmed := assumeYes
	if !confirmed {
		fmt.Fprintf(a.out, "Delete record ID %d? [y/N] ", id)
		answer, err := a.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		confirmed = isYes(answer)
	}

	if !confirmed {
		fmt.Fprintln(a.out, "Delete cancelled.")
		return nil
	}

	if err := a.service.DeleteStat(ctx, primary.DeleteStatRequest{ID: id, Confirmed: true}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, okColor.Sprintf("✓ Deleted record ID %d.", id))
	return a.Dashboard(ctx)
}

// FormatError renders an error for the user, naming its kind.
func FormatError(err error) string {
	var (
		convErr    *stat.ConversionError
		storageErr *secondary.StorageError
	)
	switch {
	case errors.As(err, &convErr):
		return errColor.Sprintf("✗ Invalid input: %v. Nothing was saved.", convErr)
	case errors.Is(err, secondary.ErrNotFound):
		return errColor.Sprintf("✗ %v. It may have been deleted in another session.", err)
	case errors.As(err, &storageErr):
		return errColor.Sprintf("✗ Storage error: %v", storageErr.Err)
	default:
		return errColor.Sprintf("✗ %v", err)
	}
}

func (a *StatAdapter) create(ctx context.Context, values stat.Values) error {
	resp, err := a.service.CreateStat(ctx, primary.CreateStatRequest{Values: values})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, okColor.Sprintf("✓ Created new record ID %d.", resp.StatID))
	return a.Dashboard(ctx)
}

func (a *StatAdapter) renderTiles(title string, s *primary.Stat) {
	var (
		values    *stat.Values
		timestamp = stat.NoDataLabel
	)
	if s != nil {
		values = &s.Values
		timestamp = stat.FormatTimestamp(s.Timestamp)
	}

	fmt.Fprintf(a.out, "\n%s  %s\n\n", titleColor.Sprint(title), mutedColor.Sprint(timestamp))
	for _, tile := range stat.Tiles(values) {
		fmt.Fprintf(a.out, "%s%s\n",
			tileLabelColor.Sprintf(" %-24s", tile.Label),
			tileValueColor.Sprintf("%12s ", tile.Value))
	}
	fmt.Fprintln(a.out)
}

func (a *StatAdapter) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
