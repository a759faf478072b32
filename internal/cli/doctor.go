package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/statsdash/internal/db"
	"github.com/example/statsdash/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Printed below the table when set
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check config, database and schema",
		Long: `Health check for statsdash.

Validates:
- Config file (statsdash.yaml beside the program, or defaults)
- Database opens and its schema is current
- Stored record count

Examples:
  statsdash doctor              # Run full health check
  statsdash doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkConfig(),
				checkDatabase(),
				checkRecords(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printResults(cmd.OutOrStdout(), results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func printResults(out io.Writer, results []CheckResult, hasErrors bool) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Check              Status")
	fmt.Fprintln(out, "─────────────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-18s %s\n", r.Name, r.Status)
	}
	fmt.Fprintln(out)

	hasDetails := false
	for _, r := range results {
		if r.Details == "" {
			continue
		}
		if !hasDetails {
			fmt.Fprintln(out, "Details:")
			hasDetails = true
		}
		fmt.Fprintf(out, "\n%s:\n%s\n", r.Name, r.Details)
	}

	if hasErrors {
		fmt.Fprintln(out, "\n⚠ Issues found.")
	} else {
		fmt.Fprintln(out, "\nAll checks passed.")
	}
}

// checkConfig reports which config file is in effect
func checkConfig() CheckResult {
	cfg := ActiveConfig()
	if cfg == nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  Config was not loaded"}
	}

	if _, err := os.Stat(cfg.Path()); errors.Is(err, os.ErrNotExist) {
		return CheckResult{
			Name:    "Config",
			Status:  "⚠",
			Details: fmt.Sprintf("  No %s found, using defaults. Run 'statsdash init' to write one.", cfg.Path()),
		}
	}

	return CheckResult{Name: "Config", Status: "✓", Details: "  " + cfg.Path()}
}

// checkDatabase opens the database and compares its schema version
func checkDatabase() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	path, _ := db.GetDBPath()
	version, err := db.SchemaVersion(database)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}
	if version != db.LatestVersion() {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: fmt.Sprintf("  %s at schema version %d, expected %d", path, version, db.LatestVersion()),
		}
	}

	return CheckResult{Name: "Database", Status: "✓", Details: fmt.Sprintf("  %s (schema v%d)", path, version)}
}

// checkRecords counts stored records through the service
func checkRecords() CheckResult {
	service, err := wire.StatService()
	if err != nil {
		return CheckResult{Name: "Records", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	count, err := service.CountStats(NewContext())
	if err != nil {
		return CheckResult{Name: "Records", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}

	return CheckResult{Name: "Records", Status: "✓", Details: fmt.Sprintf("  %d stored", count)}
}
