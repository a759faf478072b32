package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/statsdash/internal/adapters/cli"
	"github.com/example/statsdash/internal/core/stat"
	"github.com/example/statsdash/internal/wire"
)

// ShowCmd returns the show command (also the root default)
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the latest record as tiles",
		Args:  cobra.NoArgs,
		RunE:  runDashboard,
	}
}

// CreateCmd returns the create command
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Save a new stats record",
		Long: `Save a new stats record and show it on the dashboard.

Fields left out are saved as 0. Non-numeric values are rejected and nothing is saved.

Examples:
  statsdash create --score 150 --most-consecutive-flips 7 --objects-destroyed 3 \
    --air-time 12.4 --tasks-completed 2 --trophies-collected 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := newAdapter(cmd)
			if err != nil {
				return err
			}
			return adapter.Create(NewContext(), statFlagValues(cmd, false))
		},
	}
	addStatFlags(cmd)
	return cmd
}

// FormCmd returns the interactive form command
func FormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Enter a new record field by field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := newAdapter(cmd)
			if err != nil {
				return err
			}
			return adapter.Form(NewContext())
		},
	}
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := newAdapter(cmd)
			if err != nil {
				return err
			}
			return adapter.List(NewContext())
		},
	}
}

// GetCmd returns the get command
func GetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			adapter, err := newAdapter(cmd)
			if err != nil {
				return err
			}
			return adapter.Show(NewContext(), id)
		},
	}
}

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change the values of an existing record",
		Long: `Change the values of an existing record. Only the fields given are changed;
the record's timestamp is kept.

Examples:
  statsdash edit 3 --score 175`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			adapter, err := newAdapter(cmd)
			if err != nil {
				return err
			}
			return adapter.Edit(NewContext(), id, statFlagValues(cmd, true))
		},
	}
	addStatFlags(cmd)
	return cmd
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a record (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			adapter, err := newAdapter(cmd)
			if err != nil {
				return err
			}
			return adapter.Delete(NewContext(), id, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	adapter, err := newAdapter(cmd)
	if err != nil {
		return err
	}
	return adapter.Dashboard(NewContext())
}

func newAdapter(cmd *cobra.Command) (*cliadapter.StatAdapter, error) {
	return wire.StatAdapterWithIO(cmd.InOrStdin(), cmd.OutOrStdout())
}

// flagName maps a field to its flag, e.g. air_time -> air-time.
func flagName(f stat.Field) string {
	return strings.ReplaceAll(f.Key(), "_", "-")
}

func addStatFlags(cmd *cobra.Command) {
	for _, f := range stat.Fields {
		usage := f.Label()
		if f.IsFloat() {
			usage += " in seconds"
		}
		cmd.Flags().String(flagName(f), "", usage)
	}
}

// statFlagValues collects the raw field values. With onlyChanged, flags the
// user did not pass are left out so stored values are kept.
func statFlagValues(cmd *cobra.Command, onlyChanged bool) stat.RawValues {
	raw := stat.RawValues{}
	for _, f := range stat.Fields {
		name := flagName(f)
		if onlyChanged && !cmd.Flags().Changed(name) {
			continue
		}
		v, _ := cmd.Flags().GetString(name)
		raw[f] = v
	}
	return raw
}

func parseRecordID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record ID '%s'. Use the number shown by 'statsdash list'", s)
	}
	return id, nil
}
